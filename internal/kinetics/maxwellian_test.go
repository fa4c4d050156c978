package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plasmagm/airgm/internal/constants"
)

func TestMaxwellianRateConstantCrossSection(t *testing.T) {
	// for sigma independent of energy the integral reduces to
	// sigma * <v> with <v> = sqrt(8 e Te / (pi m))
	const sigma = 1e-20 // [m^2]
	for _, teEv := range []float64{0.5, 1., 2., 5.} {
		meanSpeed := math.Sqrt(8. * teEv * constants.ElectronCharge / (math.Pi * constants.ElectornMass))
		got := MaxwellianRate(func(float64) float64 { return sigma }, teEv, 40.*teEv)
		assert.InEpsilon(t, sigma*meanSpeed, got, 0.02, "Te=%g eV", teEv)
	}
}

func TestMaxwellianRateThreshold(t *testing.T) {
	// a 10 eV threshold process at a cold temperature is strongly
	// suppressed against the thresholdless case
	step := func(e float64) float64 {
		if e < 10. {
			return 0.
		}
		return 1e-20
	}
	cold := MaxwellianRate(step, 0.5, 100.)
	hot := MaxwellianRate(step, 5., 100.)
	assert.Less(t, cold, 1e-6*hot)
	assert.Positive(t, hot)
}

func TestMaxwellianRateDegenerate(t *testing.T) {
	assert.Zero(t, MaxwellianRate(func(float64) float64 { return 1e-20 }, 0., 100.))
	assert.Zero(t, MaxwellianRate(func(float64) float64 { return 1e-20 }, 1., 0.))
}
