// Package patterns matches extracted signal sets against named patterns of
// furnisher and collector misconduct.
package patterns

import "github.com/opensource-credit/harrier/internal/domain"

// Catalog returns the static pattern catalog. Each entry names the signal
// combination that evidences a recognized scheme, plus its damages profile.
func Catalog() []domain.PatternDefinition {
	return []domain.PatternDefinition{
		{
			ID:       "PT-REAGING",
			Name:     "Classic Re-Aging Scheme",
			Severity: domain.SeverityCritical,
			RequiredSignals: []domain.Signal{
				domain.SignalDOFDBeforeOpened,
				domain.SignalReAgingFlagged,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDOFDChanged,
				domain.SignalDOFDMismatch,
				domain.SignalRemovalDateDrift,
				domain.SignalRecentActivity,
			},
			MinConfidence:          60,
			LegalBasis:             []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1681s-2(a)(5)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "emotional distress", "time and expense"},
			PunitiveEligible:       true,
			Recommendations: []string{
				"Dispute every reported date and demand the furnisher's original delinquency records",
				"Preserve dated copies of each report showing the shifted timeline",
			},
			Narrative: "The tradeline's dates have been manipulated to restart the reporting clock, keeping a derogatory item on file beyond its lawful life.",
		},
		{
			ID:       "PT-ZOMBIE",
			Name:     "Zombie Debt Resurrection",
			Severity: domain.SeverityCritical,
			RequiredSignals: []domain.Signal{
				domain.SignalZombieDebt,
				domain.SignalDebtBuyer,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalRecentActivity,
				domain.SignalBeyond7Years,
				domain.SignalCollectionLateOpen,
				domain.SignalSOLExpired,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1692e(2)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "emotional distress"},
			PunitiveEligible:       true,
			ClassActionEligible:    true,
			Recommendations: []string{
				"Demand deletion of the expired debt and written confirmation that collection has ceased",
				"Demand the complete chain of assignment from the original creditor",
			},
			Narrative: "An expired debt has been purchased and pushed back onto the report with fresh activity, the signature of portfolio zombie-debt collection.",
		},
		{
			ID:       "PT-PARKING",
			Name:     "Debt Parking",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalCollectionLateOpen,
				domain.SignalCollectionStatus,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDebtBuyer,
				domain.SignalNoOriginalCred,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1692e", "15 U.S.C. § 1692g(a)"},
			Statutory:              domain.MoneyRange{Min: 0, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "time and expense"},
			Recommendations: []string{
				"Demand proof that a validation notice was sent when the account was placed",
			},
			Narrative: "The collection surfaced on the report long after the delinquency without notice to the consumer, positioned to be discovered at loan time.",
		},
		{
			ID:       "PT-INFLATION",
			Name:     "Balance Inflation",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalBalanceGrowth150,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalBalanceGrowth200,
				domain.SignalExcessiveInterest,
				domain.SignalBalanceChanged,
				domain.SignalBalanceNoOriginal,
			},
			MinConfidence:          60,
			LegalBasis:             []string{"15 U.S.C. § 1692f(1)"},
			Statutory:              domain.MoneyRange{Min: 0, Max: 1000},
			ActualDamageCategories: []string{"overpayment", "credit denial"},
			Recommendations: []string{
				"Demand a complete itemization of principal, interest, and fees",
			},
			Narrative: "The reported balance has grown far beyond the original obligation through unexplained interest or fees.",
		},
		{
			ID:       "PT-PHANTOM",
			Name:     "Phantom Balance After Satisfaction",
			Severity: domain.SeverityCritical,
			RequiredSignals: []domain.Signal{
				domain.SignalPaidWithBalance,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalStatusChanged,
				domain.SignalBalanceChanged,
			},
			MinConfidence:          65,
			LegalBasis:             []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681s-2(a)(1)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "emotional distress"},
			PunitiveEligible:       true,
			Recommendations: []string{
				"Dispute the balance with proof of payment or settlement",
			},
			Narrative: "A satisfied debt continues to report a balance, keeping a paid obligation alive on the consumer's file.",
		},
		{
			ID:       "PT-DOUBLEDIP",
			Name:     "Double Collection After Sale",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalSoldWithBalance,
				domain.SignalDebtSold,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDebtBuyer,
				domain.SignalBalanceChanged,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1681s-2(a)(1)", "15 U.S.C. § 1692e(2)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"overpayment", "credit denial"},
			Recommendations: []string{
				"Dispute the seller's balance as duplicative of the purchaser's tradeline",
			},
			Narrative: "The debt is reported with a balance by its seller after transfer, so the same obligation counts against the consumer twice.",
		},
		{
			ID:       "PT-MEDICAL",
			Name:     "Medical Debt Reporting Abuse",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalMedicalDebt,
				domain.SignalCollectionStatus,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDebtBuyer,
				domain.SignalBalanceNoOriginal,
				domain.SignalPaidWithBalance,
			},
			MinConfidence:          60,
			LegalBasis:             []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1692g"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "emotional distress"},
			Recommendations: []string{
				"Demand validation with an itemized statement of services and insurance adjudication",
			},
			Narrative: "A medical account is being reported in ways the post-2023 medical debt rules no longer permit.",
		},
		{
			ID:       "PT-STUDENT",
			Name:     "Student Loan Status Misreporting",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalStudentLoan,
				domain.SignalVerificationFailure,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalStatusChanged,
				domain.SignalDisputeRubberStamp,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"20 U.S.C. § 1078-6", "15 U.S.C. § 1681s-2(a)(1)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial", "program ineligibility"},
			Recommendations: []string{
				"Dispute with servicer records of forbearance, deferment, or rehabilitation",
			},
			Narrative: "The loan's reported status contradicts its lawful servicing state and disputes have not corrected it.",
		},
		{
			ID:       "PT-RUBBERSTAMP",
			Name:     "Rubber-Stamp Verification",
			Severity: domain.SeverityCritical,
			RequiredSignals: []domain.Signal{
				domain.SignalDisputeRubberStamp,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalRepeatDisputes,
				domain.SignalDisputeIgnored30,
				domain.SignalVerificationFailure,
			},
			MinConfidence:          60,
			LegalBasis:             []string{"15 U.S.C. § 1681i(a)", "15 U.S.C. § 1681s-2(b)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"time and expense", "emotional distress"},
			PunitiveEligible:       true,
			ClassActionEligible:    true,
			Recommendations: []string{
				"Send a method-of-verification demand and preserve every dispute result",
				"Escalate to a CFPB complaint documenting the verification pattern",
			},
			Narrative: "Disputes are being verified without investigation while demonstrably inaccurate data stays on the file, indicating an automated verification practice.",
		},
		{
			ID:       "PT-OBSTRUCTION",
			Name:     "Dispute Obstruction",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalDisputeIgnored30,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDisputeIgnored45,
				domain.SignalRepeatDisputes,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1681i(a)(1)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"time and expense"},
			Recommendations: []string{
				"Demand deletion for failure to timely reinvestigate",
			},
			Narrative: "Statutory reinvestigation deadlines are being missed, leaving contested data on the file unexamined.",
		},
		{
			ID:       "PT-XBUREAU",
			Name:     "Inconsistent Cross-Bureau Reporting",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalXBDOFDMismatch,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalXBBalanceSpread,
				domain.SignalXBStatusMismatch,
				domain.SignalXBSelectiveReport,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681s-2(a)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial"},
			ClassActionEligible:    true,
			Recommendations: []string{
				"Dispute at every bureau citing the contradictions between files",
			},
			Narrative: "The furnisher sends materially different data to different bureaus, so at least one file is wrong by construction.",
		},
		{
			ID:       "PT-SELECTIVE",
			Name:     "Selective Furnishing",
			Severity: domain.SeverityMedium,
			RequiredSignals: []domain.Signal{
				domain.SignalXBSelectiveReport,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalXBStatusMismatch,
				domain.SignalDOFDMissing,
			},
			MinConfidence:          50,
			LegalBasis:             []string{"15 U.S.C. § 1681s-2(a)"},
			Statutory:              domain.MoneyRange{Min: 100, Max: 1000},
			ActualDamageCategories: []string{"credit denial"},
			ClassActionEligible:    true,
			Recommendations: []string{
				"Demand complete and consistent furnishing at every bureau",
			},
			Narrative: "Key fields are furnished to some bureaus and withheld from others, shaping how the debt appears depending on who pulls the file.",
		},
		{
			ID:       "PT-BROKENCHAIN",
			Name:     "Broken Chain of Title",
			Severity: domain.SeverityHigh,
			RequiredSignals: []domain.Signal{
				domain.SignalNoOriginalCred,
				domain.SignalDebtBuyer,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalCollectionLateOpen,
				domain.SignalBalanceNoOriginal,
			},
			MinConfidence:          55,
			LegalBasis:             []string{"15 U.S.C. § 1692g(a)(2)"},
			Statutory:              domain.MoneyRange{Min: 0, Max: 1000},
			ActualDamageCategories: []string{"time and expense"},
			Recommendations: []string{
				"Demand the complete chain of assignment before any payment discussion",
			},
			Narrative: "The reported debt cannot be traced to an identifiable original obligation, so its ownership and amount are unverifiable.",
		},
		{
			ID:       "PT-NEGLECT",
			Name:     "Neglected Furnishing",
			Severity: domain.SeverityMedium,
			RequiredSignals: []domain.Signal{
				domain.SignalStaleReporting,
			},
			OptionalSignals: []domain.Signal{
				domain.SignalDOFDMissing,
				domain.SignalStatusChanged,
			},
			MinConfidence:          50,
			LegalBasis:             []string{"15 U.S.C. § 1681s-2(a)(2)"},
			Statutory:              domain.MoneyRange{Min: 0, Max: 1000},
			ActualDamageCategories: []string{"credit denial"},
			Recommendations: []string{
				"Dispute the currency of the reported balance and status",
			},
			Narrative: "The furnisher has stopped maintaining the tradeline while leaving its derogatory content in place.",
		},
	}
}
