// Package damages turns rule flags, detected patterns, and harm facts into
// a litigation value estimate.
package damages

import (
	"strings"

	"github.com/opensource-credit/harrier/internal/domain"
)

// stateCircuit maps two-letter state codes to federal judicial circuits.
var stateCircuit = map[string]string{
	"ME": "1st", "MA": "1st", "NH": "1st", "RI": "1st", "PR": "1st",
	"CT": "2nd", "NY": "2nd", "VT": "2nd",
	"DE": "3rd", "NJ": "3rd", "PA": "3rd",
	"MD": "4th", "NC": "4th", "SC": "4th", "VA": "4th", "WV": "4th",
	"LA": "5th", "MS": "5th", "TX": "5th",
	"KY": "6th", "MI": "6th", "OH": "6th", "TN": "6th",
	"IL": "7th", "IN": "7th", "WI": "7th",
	"AR": "8th", "IA": "8th", "MN": "8th", "MO": "8th", "NE": "8th", "ND": "8th", "SD": "8th",
	"AK": "9th", "AZ": "9th", "CA": "9th", "HI": "9th", "ID": "9th",
	"MT": "9th", "NV": "9th", "OR": "9th", "WA": "9th",
	"CO": "10th", "KS": "10th", "NM": "10th", "OK": "10th", "UT": "10th", "WY": "10th",
	"AL": "11th", "FL": "11th", "GA": "11th",
	"DC": "DC",
}

// circuitProfiles hold coarse damages environments per circuit, drawn from
// published FCRA verdict and settlement surveys.
var circuitProfiles = map[string]domain.JurisdictionProfile{
	"1st": {Circuit: "1st", AvgStatutoryAward: 600, AvgActualDamages: 12000, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 350, Max: 550}, FilingFee: 405, ConsumerFriendly: true},
	"2nd": {Circuit: "2nd", AvgStatutoryAward: 650, AvgActualDamages: 15000, PunitiveMultiplier: 2.5,
		HourlyRate: domain.MoneyRange{Min: 400, Max: 700}, FilingFee: 405, ConsumerFriendly: true},
	"3rd": {Circuit: "3rd", AvgStatutoryAward: 600, AvgActualDamages: 13000, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 350, Max: 600}, FilingFee: 405, ConsumerFriendly: true},
	"4th": {Circuit: "4th", AvgStatutoryAward: 500, AvgActualDamages: 10000, PunitiveMultiplier: 1.5,
		HourlyRate: domain.MoneyRange{Min: 300, Max: 500}, FilingFee: 405},
	"5th": {Circuit: "5th", AvgStatutoryAward: 450, AvgActualDamages: 9000, PunitiveMultiplier: 1.5,
		HourlyRate: domain.MoneyRange{Min: 300, Max: 500}, FilingFee: 405},
	"6th": {Circuit: "6th", AvgStatutoryAward: 550, AvgActualDamages: 11000, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 300, Max: 525}, FilingFee: 405},
	"7th": {Circuit: "7th", AvgStatutoryAward: 600, AvgActualDamages: 12500, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 350, Max: 575}, FilingFee: 405, ConsumerFriendly: true},
	"8th": {Circuit: "8th", AvgStatutoryAward: 450, AvgActualDamages: 8500, PunitiveMultiplier: 1.5,
		HourlyRate: domain.MoneyRange{Min: 275, Max: 475}, FilingFee: 405},
	"9th": {Circuit: "9th", AvgStatutoryAward: 700, AvgActualDamages: 16000, PunitiveMultiplier: 3.0,
		HourlyRate: domain.MoneyRange{Min: 400, Max: 750}, FilingFee: 405, ConsumerFriendly: true},
	"10th": {Circuit: "10th", AvgStatutoryAward: 500, AvgActualDamages: 9500, PunitiveMultiplier: 1.75,
		HourlyRate: domain.MoneyRange{Min: 300, Max: 500}, FilingFee: 405},
	"11th": {Circuit: "11th", AvgStatutoryAward: 550, AvgActualDamages: 11500, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 325, Max: 550}, FilingFee: 405, ConsumerFriendly: true},
	"DC": {Circuit: "DC", AvgStatutoryAward: 600, AvgActualDamages: 13000, PunitiveMultiplier: 2.0,
		HourlyRate: domain.MoneyRange{Min: 400, Max: 700}, FilingFee: 405},
}

// defaultProfile is used when the state cannot be resolved. Conservative
// mid-band numbers, never an error.
var defaultProfile = domain.JurisdictionProfile{
	Circuit: "default", AvgStatutoryAward: 500, AvgActualDamages: 10000, PunitiveMultiplier: 1.5,
	HourlyRate: domain.MoneyRange{Min: 300, Max: 500}, FilingFee: 405,
}

// Jurisdiction resolves a state code to its circuit's damages profile.
func Jurisdiction(state string) domain.JurisdictionProfile {
	st := strings.ToUpper(strings.TrimSpace(state))
	circuit, ok := stateCircuit[st]
	if !ok {
		return defaultProfile
	}
	if p, ok := circuitProfiles[circuit]; ok {
		return p
	}
	return defaultProfile
}
