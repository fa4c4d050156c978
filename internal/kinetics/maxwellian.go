package kinetics

import (
	"math"

	"github.com/wildstyl3r/lxgata"

	"github.com/plasmagm/airgm/internal/constants"
	"github.com/plasmagm/airgm/internal/utils"
)

// CrossSection gives a cross section [m^2] at electron energy [eV].
type CrossSection func(energyEv float64) float64

const maxwellianEnergyStep = 0.01 // [eV]

// MaxwellianRate is the rate coefficient [m^3 s^-1] of a cross section
// under a Maxwellian electron energy distribution at temperature teEv:
//
//	k = integral of sigma(e) * v(e) * f(e; Te) de, 0 <= e <= maxEnergyEv
//
// with f(e) = 2 sqrt(e/pi) Te^{-3/2} exp(-e/Te).
func MaxwellianRate(sigma CrossSection, teEv, maxEnergyEv float64) float64 {
	if teEv <= 0 || maxEnergyEv <= 0 {
		return 0
	}
	table := make([]float64, int(maxEnergyEv/maxwellianEnergyStep))
	norm := 2. / (math.Sqrt(math.Pi) * teEv * math.Sqrt(teEv))
	for i := range table {
		e := float64(i) * maxwellianEnergyStep
		table[i] = sigma(e) * utils.EV2electronVelocity(e) * norm * math.Sqrt(e) * math.Exp(-e/teEv)
	}
	return utils.TableIntegrate(table, nil, maxwellianEnergyStep)
}

// MaxwellianLaw backs a rate law with an LXCat cross-section set: the rate
// at a given electron temperature is the Maxwellian average of the total
// cross section of the given collision kind. Used for processes that have
// cross-section data but no BOLSIG+ rate column.
func MaxwellianLaw(collisions *lxgata.Collisions, kind lxgata.CollisionType, maxEnergyEv float64) RateLaw {
	return AnalyticLaw(func(_, electronTemp float64) float64 {
		return MaxwellianRate(func(e float64) float64 {
			return collisions.TotalCrossSectionOfKindAt(kind, e)
		}, electronTemp/constants.EvToKelvin, maxEnergyEv)
	})
}
