package config

import (
	"fmt"

	"github.com/wildstyl3r/lxgata"

	"github.com/plasmagm/airgm/internal/kinetics"
	"github.com/plasmagm/airgm/internal/species"
)

const defaultMaxEnergy = 100. // [eV], Maxwellian integration cap

// BuildMechanism turns the model's reaction declarations into a kinetics
// registry. Species are resolved by formula; each declaration must name
// exactly one rate source. CrossSectionKind entries load the model's LXCat
// file once and share the collision set.
func BuildMechanism(p *ModelParameters) (*kinetics.Mechanism, error) {
	mechanism := kinetics.NewMechanism()

	var collisions *lxgata.Collisions
	for _, spec := range p.Reactions {
		schema, err := resolveSchema(spec)
		if err != nil {
			return nil, err
		}

		if countRateSources(spec) != 1 {
			return nil, fmt.Errorf("config: reaction %d: exactly one of Peng, Arrhenius, ElectronArrhenius or CrossSectionKind required", spec.Index)
		}
		var law kinetics.RateLaw
		switch {
		case spec.Peng != nil:
			law = kinetics.TabulatedLaw(*spec.Peng)
		case spec.Arrhenius != nil:
			law = kinetics.AnalyticLaw(kinetics.Arrhenius(spec.Arrhenius.A, spec.Arrhenius.N, spec.Arrhenius.Ea))
		case spec.ElectronArrhenius != nil:
			law = kinetics.AnalyticLaw(kinetics.ElectronArrhenius(spec.ElectronArrhenius.A, spec.ElectronArrhenius.N, spec.ElectronArrhenius.Ea))
		default:
			if collisions == nil {
				if p.CrossSections == "" {
					return nil, fmt.Errorf("config: reaction %d: CrossSectionKind requires a CrossSections file", spec.Index)
				}
				loaded, err := lxgata.LoadCrossSections(p.CrossSections)
				if err != nil {
					return nil, fmt.Errorf("config: invalid cross section file: %w", err)
				}
				collisions = &loaded
			}
			maxEnergy := spec.MaxEnergy
			if maxEnergy == 0 {
				maxEnergy = defaultMaxEnergy
			}
			law = kinetics.MaxwellianLaw(collisions, lxgata.CollisionType(spec.CrossSectionKind), maxEnergy)
		}

		if err := mechanism.Register(spec.Index, schema, law); err != nil {
			return nil, err
		}
	}
	return mechanism, nil
}

func resolveSchema(spec ReactionSpec) (kinetics.Schema, error) {
	schema := kinetics.Schema{}
	for _, formula := range spec.Reactants {
		i, ok := species.Lookup(formula)
		if !ok {
			return kinetics.Schema{}, fmt.Errorf("config: reaction %d: unknown reactant %q", spec.Index, formula)
		}
		schema.Reactants = append(schema.Reactants, i)
	}
	for _, formula := range spec.Products {
		i, ok := species.Lookup(formula)
		if !ok {
			return kinetics.Schema{}, fmt.Errorf("config: reaction %d: unknown product %q", spec.Index, formula)
		}
		schema.Products = append(schema.Products, i)
	}
	return schema, nil
}

func countRateSources(spec ReactionSpec) (n int) {
	if spec.Peng != nil {
		n++
	}
	if spec.Arrhenius != nil {
		n++
	}
	if spec.ElectronArrhenius != nil {
		n++
	}
	if spec.CrossSectionKind != "" {
		n++
	}
	return
}
