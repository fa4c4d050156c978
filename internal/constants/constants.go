package constants

const KBolzmann float64 = 1.380649e-23
const ElectronCharge = 1.602176634e-19        // C
const ElectornMass float64 = 9.1093837139e-31 // [kg]
const EvToKelvin float64 = 11605.             // [K / eV]

const NoSpecies = 53
const MaxReactionSpecies = 4 // per side, reactants or products

// BOLSIG+ rate table caps, hard invariants of the table layout.
const MaxTablePoints = 50
const MaxTableColumns = 50
const NoPengNumbers = 674 // Peng reaction numbers 0..673
