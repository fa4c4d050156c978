package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumSlice(t *testing.T) {
	assert.Equal(t, 10, SumSlice([]int{1, 2, 3, 4}))
	assert.Equal(t, 1.5, SumSlice([]float64{0.5, 1.0}))
	assert.Zero(t, SumSlice([]float64(nil)))
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 2, Argmax([]float64{1., 3., 7., 2.}))
	assert.Equal(t, 0, Argmax([]int{5, 5, 5}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.5, Average([]float64{1., 2., 3., 4.}))
}

func TestTableIntegrate(t *testing.T) {
	// rectangle sum of x^2 over [0, 1)
	n := 1000
	step := 1. / float64(n)
	table := make([]float64, n)
	for i := range table {
		x := float64(i) * step
		table[i] = x * x
	}
	assert.InDelta(t, 1./3., TableIntegrate(table, nil, step), 1e-3)

	// multiplier applied at the sample abscissa
	ones := []float64{1., 1., 1.}
	assert.InDelta(t, 0.75, TableIntegrate(ones, func(x float64) float64 { return x }, 0.5), 1e-12)
}

func TestEV2electronVelocity(t *testing.T) {
	// 1 eV electron moves at about 593 km/s
	assert.InEpsilon(t, 5.93e5, EV2electronVelocity(1.), 1e-3)
	assert.Zero(t, EV2electronVelocity(0.))
	// velocity scales as sqrt(energy)
	assert.InEpsilon(t, 2., EV2electronVelocity(4.)/EV2electronVelocity(1.), 1e-12)
}

func TestGetFilename(t *testing.T) {
	assert.Equal(t, "rates_Peng", GetFilename("data/rates_Peng.csv"))
	assert.Equal(t, "model", GetFilename("model"))
}

func TestCSVNaturalOrder(t *testing.T) {
	data := CSV{{"m10", "a"}, {"m2", "b"}, {"m1", "c"}}
	assert.True(t, data.Less(2, 0))
	assert.True(t, data.Less(1, 0)) // natural, not lexicographic
}
