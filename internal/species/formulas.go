package species

// Humid-air species set. Index 0 is the total gas density M; 51..53 are
// the background gases whose densities the model holds fixed.
var formulas = [...]string{
	0:  "M",
	1:  "N+",
	2:  "N2+",
	3:  "N3+",
	4:  "N4+",
	5:  "O+",
	6:  "O2+",
	7:  "O4+",
	8:  "NO+",
	9:  "N2O+",
	10: "NO2+",
	11: "H+",
	12: "H2+",
	13: "H3+",
	14: "OH+",
	15: "H2O+",
	16: "H3O+",
	17: "e",
	18: "O-",
	19: "O2-",
	20: "O3-",
	21: "O4-",
	22: "NO-",
	23: "N2O-",
	24: "NO2-",
	25: "NO3-",
	26: "H-",
	27: "OH-",
	28: "N(2_D)",
	29: "N2(A_3_Sigma)",
	30: "N2(B_3_Pi)",
	31: "O(1_D)",
	32: "H",
	33: "N",
	34: "O",
	35: "O2(a_1_Delta)",
	36: "O3",
	37: "NO",
	38: "N2O",
	39: "NO2",
	40: "NO3",
	41: "N2O3",
	42: "N2O4",
	43: "N2O5",
	44: "H2",
	45: "OH",
	46: "HO2",
	47: "H2O2",
	48: "HNO",
	49: "HNO2",
	50: "HNO3",
	51: "N2",
	52: "O2",
	53: "H2O",
}

var indexOf = func() map[string]int {
	m := make(map[string]int, len(formulas))
	for i, f := range formulas {
		m[f] = i
	}
	return m
}()

// Hydrogen-bearing species, skipped by the balance equations when the
// water density is zero.
var containsHydrogen = map[int]struct{}{
	11: {}, 12: {}, 13: {}, 14: {}, 15: {}, 16: {}, 26: {}, 27: {},
	32: {}, 44: {}, 45: {}, 46: {}, 47: {}, 48: {}, 49: {}, 50: {},
}

// Formula returns the formula of a species index, "X" if unknown.
func Formula(i int) string {
	if i < 0 || i >= len(formulas) {
		return "X"
	}
	return formulas[i]
}

// Lookup resolves a formula to its species index.
func Lookup(formula string) (int, bool) {
	i, ok := indexOf[formula]
	return i, ok
}

// ContainsHydrogen reports whether the species holds hydrogen atoms.
func ContainsHydrogen(i int) bool {
	_, ok := containsHydrogen[i]
	return ok
}
