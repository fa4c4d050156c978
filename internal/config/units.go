package config

import "github.com/plasmagm/airgm/internal/constants"

// Electron temperatures are configured in eV, simulated in kelvin.

func EvToK(te float64) float64 {
	return te * constants.EvToKelvin
}

func KToEv(t float64) float64 {
	return t / constants.EvToKelvin
}
