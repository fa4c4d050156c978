package kinetics

import (
	"fmt"

	"github.com/plasmagm/airgm/internal/constants"
)

// Reaction is one kinetic process of the mechanism. It holds its own rate
// coefficient and reactant/product species lists; the shared RateTable is
// only read, never owned. A Reaction instance is not safe for concurrent
// UpdateRate calls; the driving simulation keeps one instance per cell.
type Reaction struct {
	rate float64

	reactants    [constants.MaxReactionSpecies]int
	products     [constants.MaxReactionSpecies]int
	numReactants int
	numProducts  int

	mechanism *Mechanism
	table     *RateTable
}

func NewReaction(mechanism *Mechanism, table *RateTable) Reaction {
	return Reaction{mechanism: mechanism, table: table}
}

// Configure copies the reactant and product species of reaction index j
// from the mechanism. Must be called before UpdateRate or the species
// accessors.
func (r *Reaction) Configure(j int) error {
	schema, err := r.mechanism.Schema(j)
	if err != nil {
		return err
	}
	r.numReactants = copy(r.reactants[:], schema.Reactants)
	r.numProducts = copy(r.products[:], schema.Products)
	return nil
}

// UpdateRate recomputes the rate coefficient of reaction index j at the
// given gas and electron temperatures [K]. Table-driven laws look up the
// BOLSIG+ column at the electron temperature in eV; analytic laws evaluate
// their closed form. On any error the stored rate is left unchanged.
func (r *Reaction) UpdateRate(j int, gasTemp, electronTemp float64) error {
	law, err := r.mechanism.Law(j)
	if err != nil {
		return err
	}
	if peng, tabulated := law.Tabulated(); tabulated {
		rate, err := r.table.Interpolate(peng, electronTemp/constants.EvToKelvin)
		if err != nil {
			return err
		}
		r.rate = rate
		return nil
	}
	r.rate = law.formula(gasTemp, electronTemp)
	return nil
}

func (r *Reaction) NumReactants() int {
	return r.numReactants
}

func (r *Reaction) NumProducts() int {
	return r.numProducts
}

// Reactant returns the species index at 1-based position k.
func (r *Reaction) Reactant(k int) (int, error) {
	if k < 1 || k > r.numReactants {
		return 0, fmt.Errorf("%w: reactant %d of %d", ErrIndexOutOfRange, k, r.numReactants)
	}
	return r.reactants[k-1], nil
}

// Product returns the species index at 1-based position k.
func (r *Reaction) Product(k int) (int, error) {
	if k < 1 || k > r.numProducts {
		return 0, fmt.Errorf("%w: product %d of %d", ErrIndexOutOfRange, k, r.numProducts)
	}
	return r.products[k-1], nil
}

// Rate returns the last computed rate coefficient, zero before the first
// successful UpdateRate.
func (r *Reaction) Rate() float64 {
	return r.rate
}
