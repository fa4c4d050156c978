package kinetics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/plasmagm/airgm/internal/constants"
)

// RateTable holds BOLSIG+ electron-impact rate coefficients tabulated
// against electron energy. It is loaded once at startup and read by every
// Reaction afterwards; after a successful Load the table never mutates, so
// unsynchronized concurrent Interpolate calls are safe.
type RateTable struct {
	energy  []float64   // [eV], strictly increasing
	grid    [][]float64 // [point][column], [m^3 s^-1]
	pengCol [constants.NoPengNumbers]int
	loaded  bool
}

func NewRateTable() *RateTable {
	t := &RateTable{}
	for peng := range t.pengCol {
		t.pengCol[peng] = -1
	}
	return t
}

// Load reads a rates CSV: a header naming the Peng reaction per column
// ("R625", "R633", ...), then up to MaxTablePoints rows whose first field
// is the electron energy sample in eV. Columns with labels that are not
// Peng numbers (e.g. "Te_eV") are kept but unaddressable. A failed Load
// leaves a previously loaded table intact; a successful one replaces it.
func (t *RateTable) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("kinetics: open rate table: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(header) < 2 {
		return fmt.Errorf("%w: header has %d fields, need energy plus at least one rate column", ErrMalformedTable, len(header))
	}
	numCols := len(header) - 1
	if numCols > constants.MaxTableColumns {
		return fmt.Errorf("%w: %d rate columns, at most %d", ErrTableOverflow, numCols, constants.MaxTableColumns)
	}

	var pengCol [constants.NoPengNumbers]int
	for peng := range pengCol {
		pengCol[peng] = -1
	}
	for col, label := range header[1:] {
		if peng, ok := parsePengLabel(label); ok {
			pengCol[peng] = col
		}
	}

	var energy []float64
	var grid [][]float64
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil { // includes csv.ErrFieldCount on ragged rows
			return fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}
		if len(energy) == constants.MaxTablePoints {
			return fmt.Errorf("%w: more than %d energy points", ErrTableOverflow, constants.MaxTablePoints)
		}

		e, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return fmt.Errorf("%w: energy field %q: %v", ErrMalformedTable, record[0], err)
		}
		if len(energy) > 0 && e <= energy[len(energy)-1] {
			return fmt.Errorf("%w: energy axis not strictly increasing at %g eV", ErrMalformedTable, e)
		}

		row := make([]float64, numCols)
		for i, field := range record[1:] {
			row[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fmt.Errorf("%w: rate field %q: %v", ErrMalformedTable, field, err)
			}
		}
		energy = append(energy, e)
		grid = append(grid, row)
	}
	if len(energy) == 0 {
		return fmt.Errorf("%w: no data rows", ErrMalformedTable)
	}

	t.energy = energy
	t.grid = grid
	t.pengCol = pengCol
	t.loaded = true
	return nil
}

// Interpolate returns the rate coefficient of the given Peng reaction at
// electron energy teEv, linearly interpolated between the bracketing
// samples. Energies outside the tabulated range clamp to the first or last
// sample; an energy that hits a sample exactly returns the stored value.
func (t *RateTable) Interpolate(peng int, teEv float64) (float64, error) {
	if !t.loaded {
		return 0, ErrTableNotLoaded
	}
	if peng < 0 || peng >= constants.NoPengNumbers {
		return 0, fmt.Errorf("%w: Peng number %d outside 0..%d", ErrReactionNotTabulated, peng, constants.NoPengNumbers-1)
	}
	col := t.pengCol[peng]
	if col < 0 {
		return 0, fmt.Errorf("%w: Peng number %d", ErrReactionNotTabulated, peng)
	}

	last := len(t.energy) - 1
	if teEv <= t.energy[0] {
		return t.grid[0][col], nil
	}
	if teEv >= t.energy[last] {
		return t.grid[last][col], nil
	}
	hi := sort.SearchFloat64s(t.energy, teEv)
	if t.energy[hi] == teEv {
		return t.grid[hi][col], nil
	}
	lo := hi - 1
	frac := (teEv - t.energy[lo]) / (t.energy[hi] - t.energy[lo])
	return t.grid[lo][col] + (t.grid[hi][col]-t.grid[lo][col])*frac, nil
}

func (t *RateTable) Loaded() bool {
	return t.loaded
}

func (t *RateTable) NumPoints() int {
	return len(t.energy)
}

// HasColumn reports whether a Peng number resolves to a table column.
func (t *RateTable) HasColumn(peng int) bool {
	return t.loaded && 0 <= peng && peng < constants.NoPengNumbers && t.pengCol[peng] >= 0
}

func parsePengLabel(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if !strings.HasPrefix(label, "R") {
		return 0, false
	}
	peng, err := strconv.Atoi(label[1:])
	if err != nil || peng < 0 || peng >= constants.NoPengNumbers {
		return 0, false
	}
	return peng, true
}
