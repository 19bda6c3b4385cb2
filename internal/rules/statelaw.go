package rules

// Written-contract limitations periods for consumer debt, in years.
// States not listed fall back to defaultSOLYears.
var stateSOLYears = map[string]int{
	"AL": 6, "AK": 3, "AZ": 6, "AR": 5, "CA": 4, "CO": 6, "CT": 6,
	"DE": 3, "DC": 3, "FL": 5, "GA": 6, "HI": 6, "ID": 5, "IL": 10,
	"IN": 6, "IA": 10, "KS": 5, "KY": 10, "LA": 10, "ME": 6, "MD": 3,
	"MA": 6, "MI": 6, "MN": 6, "MS": 3, "MO": 10, "MT": 8, "NE": 5,
	"NV": 6, "NH": 3, "NJ": 6, "NM": 6, "NY": 6, "NC": 3, "ND": 6,
	"OH": 6, "OK": 5, "OR": 6, "PA": 4, "RI": 10, "SC": 3, "SD": 6,
	"TN": 6, "TX": 4, "UT": 6, "VT": 6, "VA": 5, "WA": 6, "WV": 10,
	"WI": 6, "WY": 10,
}

const defaultSOLYears = 6

// Annual interest caps for consumer debt, as fractions. Coarse legal-rate
// figures good enough for flagging; states without a meaningful cap are
// omitted and inherit defaultRateCap.
var stateRateCap = map[string]float64{
	"AR": 0.17, "CA": 0.10, "CO": 0.12, "CT": 0.12, "DC": 0.24,
	"FL": 0.18, "GA": 0.16, "IL": 0.09, "KY": 0.08, "MD": 0.24,
	"MA": 0.20, "MI": 0.07, "MN": 0.08, "MO": 0.09, "NJ": 0.16,
	"NY": 0.16, "NC": 0.08, "OH": 0.08, "PA": 0.06, "TX": 0.18,
	"VT": 0.12, "VA": 0.08, "WA": 0.12, "WI": 0.12,
}

const defaultRateCap = 0.25

// States that require debt buyers to hold a collection license before
// collecting from residents.
var debtBuyerLicenseStates = map[string]bool{
	"CO": true, "CT": true, "MA": true, "MD": true, "ME": true,
	"MI": true, "MN": true, "NC": true, "ND": true, "NM": true,
	"NY": true, "OR": true, "WA": true, "WI": true,
}

func solYears(state string) int {
	if y, ok := stateSOLYears[state]; ok {
		return y
	}
	return defaultSOLYears
}

func rateCap(state string) float64 {
	if c, ok := stateRateCap[state]; ok {
		return c
	}
	return defaultRateCap
}
