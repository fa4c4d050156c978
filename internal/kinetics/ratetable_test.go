package kinetics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0640))
	return path
}

const smallTable = `mean_energy_eV,Te_eV,R5
1.0,0.666667,10.0
2.0,1.333333,20.0
3.0,2.000000,40.0
`

func loadSmallTable(t *testing.T) *RateTable {
	t.Helper()
	table := NewRateTable()
	require.NoError(t, table.Load(writeTable(t, smallTable)))
	return table
}

func TestInterpolateLinear(t *testing.T) {
	table := loadSmallTable(t)

	rate, err := table.Interpolate(5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, rate)
}

func TestInterpolateClamps(t *testing.T) {
	table := loadSmallTable(t)

	cases := []struct {
		name   string
		energy float64
		want   float64
	}{
		{"below range", 0.0, 10.0},
		{"at first point", 1.0, 10.0},
		{"above range", 5.0, 40.0},
		{"at last point", 3.0, 40.0},
		{"exact interior sample", 2.0, 20.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rate, err := table.Interpolate(5, c.energy)
			require.NoError(t, err)
			assert.Equal(t, c.want, rate)
		})
	}
}

func TestInterpolateIdempotent(t *testing.T) {
	table := loadSmallTable(t)

	first, err := table.Interpolate(5, 1.7)
	require.NoError(t, err)
	for range 10 {
		again, err := table.Interpolate(5, 1.7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestInterpolateNoOvershoot(t *testing.T) {
	table := loadSmallTable(t)

	// column values increase with energy; interpolants must stay bracketed
	for _, e := range []float64{1.1, 1.5, 1.9, 2.1, 2.5, 2.9} {
		rate, err := table.Interpolate(5, e)
		require.NoError(t, err)
		if e < 2.0 {
			assert.GreaterOrEqual(t, rate, 10.0)
			assert.LessOrEqual(t, rate, 20.0)
		} else {
			assert.GreaterOrEqual(t, rate, 20.0)
			assert.LessOrEqual(t, rate, 40.0)
		}
	}
}

func TestInterpolateErrors(t *testing.T) {
	table := loadSmallTable(t)

	_, err := table.Interpolate(6, 1.5)
	assert.ErrorIs(t, err, ErrReactionNotTabulated)

	_, err = table.Interpolate(700, 1.5)
	assert.ErrorIs(t, err, ErrReactionNotTabulated)

	_, err = table.Interpolate(-1, 1.5)
	assert.ErrorIs(t, err, ErrReactionNotTabulated)

	_, err = NewRateTable().Interpolate(5, 1.5)
	assert.ErrorIs(t, err, ErrTableNotLoaded)
}

func TestLoadHeaderRoundTrip(t *testing.T) {
	table := NewRateTable()
	require.NoError(t, table.Load(writeTable(t, `mean_energy_eV,Te_eV,R625,R633,R653_C18,R673
0.1,0.066667,1e-18,0.0,2e-17,0.0
1.0,0.666667,2e-17,1e-19,3e-16,1e-20
`)))

	// every R-labelled header column must be addressable
	for _, peng := range []int{625, 633, 673} {
		assert.True(t, table.HasColumn(peng), "R%d", peng)
		_, err := table.Interpolate(peng, 0.5)
		assert.NoError(t, err)
	}
	// "Te_eV" and the flagged "R653_C18" label are not Peng columns
	assert.False(t, table.HasColumn(653))
}

func TestLoadRowOverflow(t *testing.T) {
	var b strings.Builder
	b.WriteString("mean_energy_eV,R5\n")
	for i := range 51 {
		fmt.Fprintf(&b, "%d.0,1e-17\n", i+1)
	}

	err := NewRateTable().Load(writeTable(t, b.String()))
	assert.ErrorIs(t, err, ErrTableOverflow)
}

func TestLoadColumnOverflow(t *testing.T) {
	header := []string{"mean_energy_eV"}
	row := []string{"1.0"}
	for i := range 51 {
		header = append(header, fmt.Sprintf("R%d", i))
		row = append(row, "1e-17")
	}
	contents := strings.Join(header, ",") + "\n" + strings.Join(row, ",") + "\n"

	err := NewRateTable().Load(writeTable(t, contents))
	assert.ErrorIs(t, err, ErrTableOverflow)
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"ragged row", "mean_energy_eV,R5\n1.0,1e-17\n2.0\n"},
		{"bad rate", "mean_energy_eV,R5\n1.0,not-a-number\n"},
		{"bad energy", "mean_energy_eV,R5\nx,1e-17\n"},
		{"unsorted axis", "mean_energy_eV,R5\n2.0,1e-17\n1.0,2e-17\n"},
		{"duplicate energy", "mean_energy_eV,R5\n1.0,1e-17\n1.0,2e-17\n"},
		{"no data rows", "mean_energy_eV,R5\n"},
		{"energy only header", "mean_energy_eV\n1.0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := NewRateTable().Load(writeTable(t, c.contents))
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	err := NewRateTable().Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReloadReplaces(t *testing.T) {
	table := loadSmallTable(t)

	require.NoError(t, table.Load(writeTable(t, `mean_energy_eV,R6
1.0,7.0
2.0,9.0
`)))
	assert.False(t, table.HasColumn(5))
	rate, err := table.Interpolate(6, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 8.0, rate)
}

func TestFailedLoadPreservesTable(t *testing.T) {
	table := loadSmallTable(t)

	err := table.Load(writeTable(t, "mean_energy_eV,R9\n1.0,bad\n"))
	require.ErrorIs(t, err, ErrMalformedTable)

	// prior contents untouched
	assert.True(t, table.Loaded())
	rate, err := table.Interpolate(5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, rate)
}
