package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	OutputDir string
	RateTable string // BOLSIG+ rates csv, shared by every model
	Models    map[string]ModelParameters
}

type ModelParameters struct {
	CrossSections       string  // optional LXCat file for Maxwellian-backed laws
	ElectronTemperature float64 // peak, [eV]
	GasTemperature      float64 // [K]
	H2ODensity          float64 // [m^-3]
	O3Density           float64 // [m^-3]
	NO2Density          float64 // [m^-3]
	TotalTime           float64 // [s]
	PlasmaTime          float64 // pulse duration, [s]
	Dt                  float64 // [s]
	MakeDir             bool
	Resume              bool // continue from the last saved state row
	Verbose             bool

	Reactions []ReactionSpec
}

// ReactionSpec declares one reaction of the mechanism: species by formula
// and exactly one rate source.
type ReactionSpec struct {
	Index     int
	Reactants []string
	Products  []string

	Peng              *int // BOLSIG+ table column
	Arrhenius         *ArrheniusSpec
	ElectronArrhenius *ArrheniusSpec
	CrossSectionKind  string  // LXCat collision kind, Maxwellian-averaged
	MaxEnergy         float64 // integration cap for CrossSectionKind, [eV]
}

// ArrheniusSpec carries the coefficients of k = A*(T/300)^N*exp(-Ea/T).
type ArrheniusSpec struct {
	A  float64
	N  float64
	Ea float64 // [K]
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(strings.TrimSuffix(configFileName, ".toml")+".toml", &config)
	if err != nil {
		return Config{}, meta, err
	}
	if len(config.Models) == 0 {
		return Config{}, meta, fmt.Errorf("config: no models provided")
	}
	return config, meta, nil
}

// ApplyDefaults fills the fields the file leaves out, mirroring the
// defaults of the original command line driver.
func (p *ModelParameters) ApplyDefaults(modelName string, meta *toml.MetaData) {
	defaulted := func(field string) bool {
		return !meta.IsDefined("Models", modelName, field)
	}
	if defaulted("ElectronTemperature") {
		p.ElectronTemperature = 2.
	}
	if defaulted("GasTemperature") {
		p.GasTemperature = 298.
	}
	if defaulted("H2ODensity") {
		p.H2ODensity = 1.20e24
	}
	if defaulted("TotalTime") {
		p.TotalTime = 1e-6
	}
	if defaulted("PlasmaTime") {
		p.PlasmaTime = 1e-9
	}
	if defaulted("Dt") {
		p.Dt = 50e-12
	}
}
