package kinetics

import (
	"fmt"
	"math"

	"github.com/plasmagm/airgm/internal/constants"
)

// Formula is a closed-form rate coefficient; both temperatures in kelvin,
// result in the units of the reaction order ([m^3 s^-1] for two-body).
type Formula func(gasTemp, electronTemp float64) float64

// RateLaw is the tagged choice between the two rate mechanisms: a BOLSIG+
// table column keyed by Peng number, or an analytic closed form.
type RateLaw struct {
	peng      int
	formula   Formula
	tabulated bool
}

func TabulatedLaw(peng int) RateLaw {
	return RateLaw{peng: peng, tabulated: true}
}

func AnalyticLaw(f Formula) RateLaw {
	return RateLaw{formula: f}
}

// Tabulated returns the Peng number and whether the law is table-driven.
func (l RateLaw) Tabulated() (int, bool) {
	return l.peng, l.tabulated
}

// Schema lists the species indices a reaction consumes and produces,
// at most MaxReactionSpecies on each side. Repeats are meaningful: a
// species appearing twice among the reactants is consumed twice.
type Schema struct {
	Reactants []int
	Products  []int
}

// Mechanism is the externally supplied registry mapping reaction index to
// its species schema and rate law. The core stores what it is given and
// never validates species identity.
type Mechanism struct {
	laws    map[int]RateLaw
	schemas map[int]Schema
}

func NewMechanism() *Mechanism {
	return &Mechanism{
		laws:    map[int]RateLaw{},
		schemas: map[int]Schema{},
	}
}

// Register binds index j to a schema and rate law, replacing any previous
// binding for j.
func (m *Mechanism) Register(j int, schema Schema, law RateLaw) error {
	if len(schema.Reactants) > constants.MaxReactionSpecies {
		return fmt.Errorf("kinetics: reaction %d: %d reactants, at most %d", j, len(schema.Reactants), constants.MaxReactionSpecies)
	}
	if len(schema.Products) > constants.MaxReactionSpecies {
		return fmt.Errorf("kinetics: reaction %d: %d products, at most %d", j, len(schema.Products), constants.MaxReactionSpecies)
	}
	m.schemas[j] = schema
	m.laws[j] = law
	return nil
}

func (m *Mechanism) Law(j int) (RateLaw, error) {
	law, ok := m.laws[j]
	if !ok {
		return RateLaw{}, fmt.Errorf("%w: %d", ErrUnknownReaction, j)
	}
	return law, nil
}

func (m *Mechanism) Schema(j int) (Schema, error) {
	schema, ok := m.schemas[j]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %d", ErrUnknownReaction, j)
	}
	return schema, nil
}

// Indices returns the registered reaction indices in unspecified order.
func (m *Mechanism) Indices() []int {
	indices := make([]int, 0, len(m.laws))
	for j := range m.laws {
		indices = append(indices, j)
	}
	return indices
}

// Arrhenius builds the gas-temperature closed form
// k = a * (Tg/300)^n * exp(-ea/Tg), ea in kelvin.
func Arrhenius(a, n, ea float64) Formula {
	return func(gasTemp, _ float64) float64 {
		return a * math.Pow(gasTemp/300., n) * math.Exp(-ea/gasTemp)
	}
}

// ElectronArrhenius is the electron-temperature analogue of Arrhenius.
func ElectronArrhenius(a, n, ea float64) Formula {
	return func(_, electronTemp float64) float64 {
		return a * math.Pow(electronTemp/300., n) * math.Exp(-ea/electronTemp)
	}
}
