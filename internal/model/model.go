package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/plasmagm/airgm/internal/config"
	"github.com/plasmagm/airgm/internal/constants"
	"github.com/plasmagm/airgm/internal/kinetics"
	"github.com/plasmagm/airgm/internal/species"
	"github.com/plasmagm/airgm/internal/utils"
)

// Background species (M and N2, O2, H2O) are held fixed; only indices
// 1..numEvolvingSpecies are advanced by the balance equations.
const numEvolvingSpecies = 50

// GlobalModel integrates the species balance equations of a pulsed
// humid-air plasma. It owns its species and reaction instances and reads
// the shared rate table; the table is loaded by the caller before the
// model is constructed and never written afterwards.
type GlobalModel struct {
	Parameters config.ModelParameters

	Species   []species.Species
	reactions map[int]*kinetics.Reaction
	indices   []int // registered reaction indices, ascending

	peakElectronTemperature float64 // [K]
	electronTemperature     float64 // [K]
	gasTemperature          float64 // [K]

	simulationTime float64 // [s]
	lastSavedTime  float64 // [s]
	stepCount      int
}

func New(parameters config.ModelParameters, mechanism *kinetics.Mechanism, table *kinetics.RateTable) (*GlobalModel, error) {
	m := &GlobalModel{
		Parameters:              parameters,
		gasTemperature:          parameters.GasTemperature,
		electronTemperature:     parameters.GasTemperature,
		peakElectronTemperature: config.EvToK(parameters.ElectronTemperature),
		lastSavedTime:           -1.,
		reactions:               map[int]*kinetics.Reaction{},
	}

	m.Species = make([]species.Species, constants.NoSpecies+1)
	for i := range m.Species {
		m.Species[i] = species.New(i)
	}
	m.setDefaultDensities()

	m.indices = mechanism.Indices()
	sort.Ints(m.indices)
	for _, j := range m.indices {
		r := kinetics.NewReaction(mechanism, table)
		if err := r.Configure(j); err != nil {
			return nil, err
		}
		m.reactions[j] = &r
	}

	m.buildBalanceEquations()
	return m, nil
}

func (m *GlobalModel) setDefaultDensities() {
	m.Species[0].SetDensity(2.40e25) // M
	m.Species[17].SetDensity(1.00e3) // e
	m.Species[51].SetDensity(1.92e25)
	m.Species[52].SetDensity(4.80e24)
	m.Species[36].SetDensity(m.Parameters.O3Density)
	m.Species[39].SetDensity(m.Parameters.NO2Density)
	m.Species[53].SetDensity(m.Parameters.H2ODensity)
}

// ElectronTemperatureAt evaluates the pulse profile: a gaussian peak
// centered at five pulse durations, relaxing to the gas temperature.
func (m *GlobalModel) ElectronTemperatureAt(t float64) float64 {
	if t >= 10.*m.Parameters.PlasmaTime {
		return m.gasTemperature
	}
	arg := (t - 5.*m.Parameters.PlasmaTime) / m.Parameters.PlasmaTime
	return m.gasTemperature + (m.peakElectronTemperature-m.gasTemperature)*math.Exp(-0.5*arg*arg)
}

// SetReactionRates recomputes every reaction's rate coefficient at the
// current temperatures. The first error aborts: a missing rate must reach
// the caller, not default to zero.
func (m *GlobalModel) SetReactionRates() error {
	for _, j := range m.indices {
		if err := m.reactions[j].UpdateRate(j, m.gasTemperature, m.electronTemperature); err != nil {
			return fmt.Errorf("reaction %d: %w", j, err)
		}
	}
	return nil
}

// Reaction exposes a configured reaction instance, nil if j is not part
// of the mechanism.
func (m *GlobalModel) Reaction(j int) *kinetics.Reaction {
	return m.reactions[j]
}

func (m *GlobalModel) Indices() []int {
	return m.indices
}

// buildBalanceEquations records, per species, which reactions consume and
// produce it and how many times, then cancels the overlap.
func (m *GlobalModel) buildBalanceEquations() {
	for i := 1; i <= constants.NoSpecies; i++ {
		for _, j := range m.indices {
			r := m.reactions[j]

			repeatLoss := 0
			for k := 1; k <= r.NumReactants(); k++ {
				if reactant, _ := r.Reactant(k); reactant == i {
					repeatLoss++
				}
			}
			if repeatLoss > 0 {
				m.Species[i].AddLoss(j, repeatLoss)
			}

			repeatSource := 0
			for k := 1; k <= r.NumProducts(); k++ {
				if product, _ := r.Product(k); product == i {
					repeatSource++
				}
			}
			if repeatSource > 0 {
				m.Species[i].AddSource(j, repeatSource)
			}
		}
		m.Species[i].ReduceLists()
	}
}

// reactantDensityProduct is the concentration product driving reaction j.
func (m *GlobalModel) reactantDensityProduct(j int) float64 {
	r := m.reactions[j]
	product := 1.
	for k := 1; k <= r.NumReactants(); k++ {
		reactant, _ := r.Reactant(k)
		product *= m.Species[reactant].Density()
	}
	return product
}

// processBalanceEquations accumulates each evolving species' volumetric
// source and loss terms from the current densities and rates.
func (m *GlobalModel) processBalanceEquations() {
	dryAir := m.Species[53].Density() == 0.
	for i := 1; i <= numEvolvingSpecies; i++ {
		m.Species[i].SetLoss(0.)
		m.Species[i].SetSource(0.)

		if dryAir && species.ContainsHydrogen(i) {
			continue
		}

		if m.Species[i].Density() > 0. {
			for h := 1; h <= m.Species[i].NumLosses(); h++ {
				j, multiplier := m.Species[i].LossReaction(h)
				loss := m.reactions[j].Rate() * m.reactantDensityProduct(j) * float64(multiplier)
				m.Species[i].SetLoss(m.Species[i].Loss() + loss)
			}
		}

		for h := 1; h <= m.Species[i].NumSources(); h++ {
			j, multiplier := m.Species[i].SourceReaction(h)
			source := m.reactions[j].Rate() * m.reactantDensityProduct(j) * float64(multiplier)
			m.Species[i].SetSource(m.Species[i].Source() + source)
		}
	}
}

// stepDensities advances the evolving species by one forward Euler step.
func (m *GlobalModel) stepDensities() {
	for i := 1; i <= numEvolvingSpecies; i++ {
		if m.Species[i].Loss() <= 0. && m.Species[i].Source() <= 0. {
			continue
		}
		net := m.Species[i].Source() - m.Species[i].Loss()
		increment := net * m.Parameters.Dt

		if net > 0. && increment > m.Species[i].Density() && m.Species[i].Density() > 1e5 {
			logrus.Warnf("species [%s] > x2 density at time %g", m.Species[i].Formula(), m.simulationTime)
		}

		if net != 0. {
			m.Species[i].SetDensity(m.Species[i].Density() + increment)
		}
	}
}

// Step advances the model one time step at the current rates.
func (m *GlobalModel) Step() {
	m.processBalanceEquations()
	m.stepDensities()
	m.simulationTime += m.Parameters.Dt
	m.stepCount++
}

func (m *GlobalModel) SimulationTime() float64 {
	return m.simulationTime
}

func (m *GlobalModel) StepCount() int {
	return m.stepCount
}

func (m *GlobalModel) ElectronTemperature() float64 {
	return m.electronTemperature
}

func (m *GlobalModel) SetElectronTemperatureEv(te float64) {
	m.electronTemperature = config.EvToK(te)
}

func (m *GlobalModel) SetGasTemperature(t float64) {
	m.gasTemperature = t
}

// FastestReaction returns the mechanism entry with the largest current
// rate coefficient, a run diagnostic.
func (m *GlobalModel) FastestReaction() (index int, rate float64) {
	if len(m.indices) == 0 {
		return 0, 0.
	}
	rates := make([]float64, len(m.indices))
	for i, j := range m.indices {
		rates[i] = m.reactions[j].Rate()
	}
	at := utils.Argmax(rates)
	return m.indices[at], rates[at]
}

// saveIntervalStep spaces the saved rows roughly logarithmically in
// simulation time, scaled to the configured step size.
func (m *GlobalModel) saveIntervalStep() int {
	result := 1
	switch {
	case m.simulationTime <= 1e-9:
		result = 1
	case m.simulationTime <= 1e-8:
		result = 10
	case m.simulationTime <= 1e-7:
		result = 100
	case m.simulationTime <= 1e-6:
		result = 1000
	case m.simulationTime <= 1e-5:
		result = 10000
	case m.simulationTime <= 1e-4:
		result = 100000
	case m.simulationTime <= 1e-3:
		result = 1000000
	case m.simulationTime <= 1e-2:
		result = 10000000
	case m.simulationTime <= 1e-1:
		result = 100000000
	case m.simulationTime <= 1e0:
		result = 1000000000
	case m.simulationTime <= 1e1:
		result = 10000000000
	case m.simulationTime <= 1e2:
		result = 100000000000
	default:
		result = 1000000000000
	}
	ratioFactor := m.Parameters.Dt / 50e-12
	result = int(float64(result) / ratioFactor)
	if result < 1 {
		result = 1
	}
	return result
}

// Run integrates the plasma pulse and the afterglow, appending state rows
// to the model's output file. During the pulse the electron temperature
// follows the pulse profile and rates are refreshed every step; in the
// afterglow the rates stay frozen at their end-of-pulse values.
func (m *GlobalModel) Run(outputPath, modelName string) error {
	out, err := m.openStateFile(outputPath, modelName)
	if err != nil {
		return err
	}
	defer out.Close()

	logrus.Infof("plasma pulse (duration %g s)", m.Parameters.PlasmaTime)
	for m.simulationTime < m.Parameters.TotalTime && m.simulationTime < 10.*m.Parameters.PlasmaTime {
		m.electronTemperature = m.ElectronTemperatureAt(m.simulationTime)
		if err := m.SetReactionRates(); err != nil {
			return err
		}
		m.Step()
		if err := m.maybeSaveState(out); err != nil {
			return err
		}
	}

	m.electronTemperature = m.ElectronTemperatureAt(m.simulationTime)
	if err := m.SetReactionRates(); err != nil {
		return err
	}

	logrus.Info("afterglow")
	for m.simulationTime < m.Parameters.TotalTime {
		m.Step()
		if err := m.maybeSaveState(out); err != nil {
			return err
		}
	}
	return nil
}
