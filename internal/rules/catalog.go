package rules

import "github.com/opensource-credit/harrier/internal/domain"

// Catalog returns the static violation rule catalog. Definitions are
// immutable values; RelatedRules entries are ids resolved by lookup, never
// live references, so the catalog cannot form reference cycles.
//
// Statutory ranges: FCRA rules carry the $100-$1,000 per-violation band of
// 15 U.S.C. 1681n; FDCPA rules carry the up-to-$1,000 aggregate band of 15
// U.S.C. 1692k. The damages calculator preserves that asymmetry.
func Catalog() []domain.RuleDefinition {
	return []domain.RuleDefinition{
		// ── Timeline / re-aging ────────────────────────────────────────
		{
			ID: "RA1", Name: "DOFD predates account opening",
			Category: domain.CategoryReAging, Severity: domain.SeverityCritical,
			SuccessProbability: 95, WillfulnessScore: 85,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A delinquency cannot occur before the account existed. A DOFD earlier than the open date is chronologically impossible and indicates the date was altered.",
			Evidence:     []string{"dateOpened", "dofd"},
			Citations:    []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute the DOFD as impossible; demand the furnisher's original delinquency records.",
			RelatedRules: []string{"RA2", "RA5"},
		},
		{
			ID: "RA2", Name: "DOFD after charge-off date",
			Category: domain.CategoryReAging, Severity: domain.SeverityCritical,
			SuccessProbability: 92, WillfulnessScore: 85,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "An account charges off only after sustained delinquency; a DOFD later than the charge-off date is impossible and consistent with re-aging.",
			Evidence:     []string{"dofd", "chargeOffDate"},
			Citations:    []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute the date sequence; demand payment history establishing the true first delinquency.",
			RelatedRules: []string{"RA1", "RA5"},
		},
		{
			ID: "RA3", Name: "Reporting beyond seven-year window",
			Category: domain.CategoryReAging, Severity: domain.SeverityCritical,
			SuccessProbability: 90, WillfulnessScore: 70,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Adverse items must be excluded seven years plus 180 days after the DOFD. The item remains on file past that deadline.",
			Evidence:     []string{"dofd"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1681c(c)(1)"},
			Remediation:  "Demand immediate deletion as obsolete information.",
			RelatedRules: []string{"RA4", "ZD1"},
		},
		{
			ID: "RA4", Name: "Removal date extends past statutory window",
			Category: domain.CategoryReAging, Severity: domain.SeverityHigh,
			SuccessProbability: 85, WillfulnessScore: 75,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The estimated removal date drifts more than 30 days past DOFD plus seven years and 180 days, extending the reporting period beyond what the statute allows.",
			Evidence:     []string{"dofd", "estimatedRemovalDate"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute the removal date and demand it be recalculated from the original DOFD.",
			RelatedRules: []string{"RA3"},
		},
		{
			ID: "RA5", Name: "DOFD changed between reports",
			Category: domain.CategoryReAging, Severity: domain.SeverityCritical,
			SuccessProbability: 88, WillfulnessScore: 90,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The DOFD moved between historical snapshots of the same tradeline. The DOFD is fixed at the start of the delinquency that led to the adverse status; changing it is the signature of re-aging.",
			Evidence:     []string{"dofd"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1681s-2(a)(5)"},
			Remediation:  "Preserve both reports and dispute citing the inconsistent DOFDs.",
			RelatedRules: []string{"RA1", "RA2", "XB1"},
		},
		{
			ID: "RA6", Name: "DOFD missing on derogatory account",
			Category: domain.CategoryReAging, Severity: domain.SeverityHigh,
			SuccessProbability: 75, WillfulnessScore: 55,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A collection or charged-off account reports no DOFD, making the removal deadline unverifiable and the reporting period effectively unlimited.",
			Evidence:     []string{"accountStatus", "accountType"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(5)"},
			Remediation:  "Demand the furnisher supply the DOFD or delete the tradeline.",
			RelatedRules: []string{"FD2"},
		},
		{
			ID: "RA7", Name: "Identical critical dates",
			Category: domain.CategoryReAging, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Open date, DOFD, and charge-off date are identical. Genuine account histories separate these events; identical dates suggest the record was fabricated or bulk-populated.",
			Evidence:    []string{"dateOpened", "dofd", "chargeOffDate"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the record as implausible and demand the underlying account history.",
		},
		{
			ID: "RA8", Name: "Recent activity re-anchoring old debt",
			Category: domain.CategoryReAging, Severity: domain.SeverityHigh,
			SuccessProbability: 70, WillfulnessScore: 65,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Payment or reporting activity within the last six months on a debt whose DOFD is over six years old is consistent with manufacturing recency to restart the reporting clock.",
			Evidence:     []string{"dofd", "lastPaymentDate", "lastReportedDate"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute the activity dates; a consumer payment cannot move the DOFD.",
			RelatedRules: []string{"ZD1"},
		},
		{
			ID: "RA9", Name: "Charge-off predates account opening",
			Category: domain.CategoryReAging, Severity: domain.SeverityCritical,
			SuccessProbability: 95, WillfulnessScore: 80,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The charge-off date falls before the account was opened, which is chronologically impossible.",
			Evidence:     []string{"dateOpened", "chargeOffDate"},
			Citations:    []string{"15 U.S.C. § 1681e(b)"},
			Remediation:  "Dispute the date sequence as impossible on its face.",
			RelatedRules: []string{"RA1"},
		},

		// ── Balance forensics ──────────────────────────────────────────
		{
			ID: "BF1", Name: "Paid or settled account shows balance",
			Category: domain.CategoryBalance, Severity: domain.SeverityCritical,
			SuccessProbability: 90, WillfulnessScore: 70,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The status reads paid or settled while a nonzero balance is still reported. A satisfied debt has no balance; reporting one is inaccurate on its face.",
			Evidence:     []string{"accountStatus", "currentBalance"},
			Citations:    []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681s-2(a)(1)"},
			Remediation:  "Dispute the balance with proof of payment or settlement.",
			RelatedRules: []string{"SI1"},
		},
		{
			ID: "BF2", Name: "Balance exceeds twice the original amount",
			Category: domain.CategoryBalance, Severity: domain.SeverityHigh,
			SuccessProbability: 72, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The reported balance has more than doubled from the original amount, implying fees or interest far beyond what most contracts or state caps allow.",
			Evidence:     []string{"currentBalance", "originalAmount"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand an itemized accounting of all amounts added to the principal.",
			RelatedRules: []string{"BF3", "BF4", "CP2"},
		},
		{
			ID: "BF3", Name: "Balance exceeds 1.5x the original amount",
			Category: domain.CategoryBalance, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 45,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "Balance growth past 150% of the original amount warrants an itemization even where it does not prove unlawful fees by itself.",
			Evidence:     []string{"currentBalance", "originalAmount"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Request an itemized statement of interest and fees.",
			RelatedRules: []string{"BF2"},
		},
		{
			ID: "BF4", Name: "Implied interest rate exceeds 25% annually",
			Category: domain.CategoryBalance, Severity: domain.SeverityHigh,
			SuccessProbability: 68, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The balance growth over the account's life implies an annual rate above 25%, exceeding nearly every state's cap for consumer debt.",
			Evidence:     []string{"currentBalance", "originalAmount", "chargeOffDate"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand the contractual basis for the rate applied.",
			RelatedRules: []string{"ST2"},
		},
		{
			ID: "BF5", Name: "Sold or transferred account still shows balance",
			Category: domain.CategoryBalance, Severity: domain.SeverityHigh,
			SuccessProbability: 80, WillfulnessScore: 65,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "An account marked sold or transferred should report a zero balance with the seller; the balance belongs to the purchaser's tradeline. Reporting it twice double-counts the debt.",
			Evidence:     []string{"accountStatus", "remarks", "currentBalance"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation:  "Dispute the balance on the transferred account as duplicative.",
			RelatedRules: []string{"CT5"},
		},
		{
			ID: "BF6", Name: "Collection balance without original amount",
			Category: domain.CategoryBalance, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "A collection reports a balance but no original amount, concealing how much of the figure is principal versus added charges.",
			Evidence:    []string{"currentBalance", "originalAmount"},
			Citations:   []string{"15 U.S.C. § 1692g"},
			Remediation: "Demand validation itemizing principal, interest, and fees.",
		},
		{
			ID: "BF7", Name: "Balance exceeds credit limit",
			Category: domain.CategoryBalance, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 35,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The reported balance exceeds the credit limit by more than half, distorting utilization and suggesting unexplained added charges.",
			Evidence:    []string{"currentBalance", "creditLimit"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the balance and demand a statement history.",
		},
		{
			ID: "BF8", Name: "Balance grew after charge-off",
			Category: domain.CategoryBalance, Severity: domain.SeverityHigh,
			SuccessProbability: 70, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "Historical snapshots show the balance increasing after charge-off. Most creditors cease interest accrual at charge-off; post-charge-off growth requires a contractual basis.",
			Evidence:     []string{"currentBalance", "chargeOffDate"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand the contractual authority for post-charge-off accrual.",
			RelatedRules: []string{"BF4"},
		},
		{
			ID: "BF9", Name: "Past-due status with zero balance",
			Category: domain.CategoryBalance, Severity: domain.SeverityLow,
			SuccessProbability: 45, WillfulnessScore: 25,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The account reports a past-due status while carrying no balance; nothing is owed, so nothing can be past due.",
			Evidence:    []string{"accountStatus", "currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the status as inconsistent with the zero balance.",
		},

		// ── Medical debt ───────────────────────────────────────────────
		{
			ID: "MD1", Name: "Medical collection below the reporting exclusion threshold",
			Category: domain.CategoryMedical, Severity: domain.SeverityHigh,
			SuccessProbability: 85, WillfulnessScore: 60,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Small-balance medical collections are excluded from consumer reports under the bureaus' adopted policy following the CFPB's medical debt rulemaking.",
			Evidence:    []string{"accountType", "currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Demand deletion under the small-balance medical collection exclusion.",
		},
		{
			ID: "MD2", Name: "Medical collection within one-year waiting period",
			Category: domain.CategoryMedical, Severity: domain.SeverityHigh,
			SuccessProbability: 78, WillfulnessScore: 55,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Medical collections may not be reported until one year after the date of first delinquency, to allow insurance resolution.",
			Evidence:    []string{"accountType", "dofd"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute as prematurely reported within the waiting period.",
		},
		{
			ID: "MD3", Name: "Paid medical collection still reporting",
			Category: domain.CategoryMedical, Severity: domain.SeverityCritical,
			SuccessProbability: 88, WillfulnessScore: 65,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Paid medical collections must be removed entirely from consumer reports, not merely updated to paid status.",
			Evidence:     []string{"accountType", "accountStatus"},
			Citations:    []string{"15 U.S.C. § 1681e(b)"},
			Remediation:  "Demand deletion of the paid medical collection.",
			RelatedRules: []string{"BF1"},
		},
		{
			ID: "MD4", Name: "Medical debt without insurance-resolution notation",
			Category: domain.CategoryMedical, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 35,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The medical collection carries no notation of insurance billing or resolution, leaving open whether the amount was ever the consumer's responsibility.",
			Evidence:    []string{"accountType", "remarks"},
			Citations:   []string{"15 U.S.C. § 1692g"},
			Remediation: "Demand validation showing insurance was billed and adjudicated.",
		},
		{
			ID: "MD5", Name: "Medical debt held by portfolio debt buyer",
			Category: domain.CategoryMedical, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 45,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "Medical receivables sold to portfolio buyers frequently lack itemized treatment records, making validation and HIPAA-compliant verification doubtful.",
			Evidence:     []string{"accountType", "furnisher"},
			Citations:    []string{"15 U.S.C. § 1692g"},
			Remediation:  "Demand validation with an itemized statement of services.",
			RelatedRules: []string{"CT3"},
		},
		{
			ID: "MD6", Name: "Medical collection reported while insurance is pending",
			Category: domain.CategoryMedical, Severity: domain.SeverityHigh,
			SuccessProbability: 72, WillfulnessScore: 50,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The remarks show an insurance claim still pending while the account reports as a collection; the amount may never become the consumer's responsibility.",
			Evidence:     []string{"accountType", "remarks"},
			Citations:    []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1692e(2)"},
			Remediation:  "Dispute as premature pending insurance adjudication.",
			RelatedRules: []string{"MD2"},
		},

		// ── Student loans ──────────────────────────────────────────────
		// The source material defined two distinct rules under one id.
		// They are kept as SL1 and SL2 with a mutual related-rule link.
		{
			ID: "SL1", Name: "Administrative forbearance reported as delinquent",
			Category: domain.CategoryStudentLoan, Severity: domain.SeverityHigh,
			SuccessProbability: 70, WillfulnessScore: 55,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A loan in administrative forbearance accrues no delinquency; reporting it as delinquent during the forbearance window is inaccurate.",
			Evidence:     []string{"accountType", "accountStatus", "remarks"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation:  "Dispute with the servicer's forbearance confirmation.",
			RelatedRules: []string{"SL2"},
		},
		{
			ID: "SL2", Name: "Rehabilitated loan still reported in default",
			Category: domain.CategoryStudentLoan, Severity: domain.SeverityHigh,
			SuccessProbability: 75, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Completed rehabilitation removes the default from the loan's reporting; a rehabilitated loan still shown in default violates the rehabilitation statute's reporting mandate.",
			Evidence:     []string{"accountType", "accountStatus", "remarks"},
			Citations:    []string{"20 U.S.C. § 1078-6", "15 U.S.C. § 1681s-2(a)(1)"},
			Remediation:  "Dispute with the rehabilitation completion letter.",
			RelatedRules: []string{"SL1"},
		},
		{
			ID: "SL3", Name: "Student loan charged off during deferment",
			Category: domain.CategoryStudentLoan, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 45,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The remarks indicate deferment while a charge-off is reported; payments are not due in deferment, so no qualifying delinquency could have run.",
			Evidence:    []string{"accountType", "chargeOffDate", "remarks"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation: "Dispute with deferment period documentation.",
		},
		{
			ID: "SL4", Name: "Defaulted student loan without guarantor attribution",
			Category: domain.CategoryStudentLoan, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 40,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "A defaulted federal loan transfers to the guarantor; collection reporting without guarantor or original-servicer attribution obscures who holds the debt.",
			Evidence:     []string{"accountType", "originalCreditor"},
			Citations:    []string{"15 U.S.C. § 1692g"},
			Remediation:  "Demand chain-of-assignment documentation.",
			RelatedRules: []string{"CT2"},
		},
		{
			ID: "SL5", Name: "Discharged loan still reporting a balance",
			Category: domain.CategoryStudentLoan, Severity: domain.SeverityHigh,
			SuccessProbability: 78, WillfulnessScore: 65,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The remarks show the loan discharged or forgiven while a balance continues to report; a discharged obligation owes nothing.",
			Evidence:    []string{"accountType", "remarks", "currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation: "Dispute with the discharge or forgiveness documentation.",
		},

		// ── Chain of title ─────────────────────────────────────────────
		{
			ID: "CT1", Name: "Collection opened years after delinquency",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityHigh,
			SuccessProbability: 70, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The collection tradeline was opened more than three years after the DOFD, a zombie-debt indicator: the debt was bought long after default and is being re-reported late in or past its life.",
			Evidence:     []string{"dateOpened", "dofd"},
			Citations:    []string{"15 U.S.C. § 1692e", "15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Demand proof of assignment and the original DOFD.",
			RelatedRules: []string{"ZD1", "CT6"},
		},
		{
			ID: "CT2", Name: "Collection lacks original creditor",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityHigh,
			SuccessProbability: 78, WillfulnessScore: 55,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A collection tradeline must identify the original creditor so the consumer can recognize the debt; its absence defeats the validation right.",
			Evidence:    []string{"accountType", "originalCreditor"},
			Citations:   []string{"15 U.S.C. § 1692g(a)(2)", "15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the original creditor's identity and account number.",
		},
		{
			ID: "CT3", Name: "Known debt buyer without chain documentation",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityMedium,
			SuccessProbability: 58, WillfulnessScore: 50,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The furnisher is a recognized portfolio debt buyer and the tradeline shows no assignment documentation; purchased-portfolio records routinely fail validation.",
			Evidence:     []string{"furnisher"},
			Citations:    []string{"15 U.S.C. § 1692g"},
			Remediation:  "Demand the complete chain of assignment from the original creditor.",
			RelatedRules: []string{"CT6"},
		},
		{
			ID: "CT4", Name: "Debt resold while under dispute",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 55,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The remarks show the account both disputed and sold or transferred; selling a debt while its accuracy is contested passes known-disputed paper without the dispute notation.",
			Evidence:    []string{"remarks"},
			Citations:   []string{"15 U.S.C. § 1692e(8)"},
			Remediation: "Dispute with the purchaser and demand the dispute flag carry over.",
		},
		{
			ID: "CT5", Name: "Transferred account keeps original furnisher's balance",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 45,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "After transfer the selling furnisher should report zero; continuing to report the balance alongside the buyer's tradeline duplicates the obligation.",
			Evidence:     []string{"remarks", "currentBalance", "furnisher"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation:  "Dispute the duplicated balance with both furnishers.",
			RelatedRules: []string{"BF5"},
		},
		{
			ID: "CT6", Name: "Expired debt re-reported by debt buyer",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityCritical,
			SuccessProbability: 82, WillfulnessScore: 80,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A recognized debt buyer is reporting a debt whose DOFD puts it past the reporting window. Re-reporting expired portfolio debt is the core zombie-debt practice.",
			Evidence:     []string{"furnisher", "dofd"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1692e(2)"},
			Remediation:  "Demand deletion and cease-reporting as obsolete.",
			RelatedRules: []string{"ZD1", "RA3"},
		},

		// ── Verification procedure ─────────────────────────────────────
		{
			ID: "VP1", Name: "Dispute unanswered past 30 days",
			Category: domain.CategoryVerification, Severity: domain.SeverityCritical,
			SuccessProbability: 85, WillfulnessScore: 70,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The bureau must complete a reinvestigation within 30 days of a dispute; the dispute record shows no response inside that period.",
			Evidence:     []string{"disputeHistory"},
			Citations:    []string{"15 U.S.C. § 1681i(a)(1)(A)"},
			Remediation:  "Demand deletion for failure to timely reinvestigate.",
			RelatedRules: []string{"VP2"},
		},
		{
			ID: "VP2", Name: "Dispute unanswered past 45 days",
			Category: domain.CategoryVerification, Severity: domain.SeverityCritical,
			SuccessProbability: 90, WillfulnessScore: 80,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Even with the 15-day extension for supplemental information, the reinvestigation deadline has lapsed with no response.",
			Evidence:     []string{"disputeHistory"},
			Citations:    []string{"15 U.S.C. § 1681i(a)(1)(B)"},
			Remediation:  "Demand deletion; the statutory deadline has run.",
			RelatedRules: []string{"VP1"},
		},
		{
			ID: "VP3", Name: "Verified while impossible data persists",
			Category: domain.CategoryVerification, Severity: domain.SeverityCritical,
			SuccessProbability: 88, WillfulnessScore: 85,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The dispute was returned verified while chronologically impossible data remains on the tradeline, which is only possible if no reasonable reinvestigation occurred.",
			Evidence:     []string{"disputeHistory"},
			Citations:    []string{"15 U.S.C. § 1681i(a)", "15 U.S.C. § 1681s-2(b)"},
			Remediation:  "Dispute again in writing and preserve both results for a willfulness claim.",
			RelatedRules: []string{"RA1", "RA2"},
		},
		{
			ID: "VP4", Name: "Repeat disputes rubber-stamped",
			Category: domain.CategoryVerification, Severity: domain.SeverityHigh,
			SuccessProbability: 75, WillfulnessScore: 75,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Three or more disputes of the same tradeline were each verified with no data change, the pattern of automated verification without investigation.",
			Evidence:    []string{"disputeHistory"},
			Citations:   []string{"15 U.S.C. § 1681i(a)", "15 U.S.C. § 1681s-2(b)"},
			Remediation: "Escalate to a method-of-verification demand and preserve the pattern.",
		},
		{
			ID: "VP5", Name: "No dispute notation after dispute filed",
			Category: domain.CategoryVerification, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A dispute is on file but the tradeline carries no disputed-by-consumer notation, concealing the dispute from report users.",
			Evidence:    []string{"disputeHistory", "remarks"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(3)", "15 U.S.C. § 1692e(8)"},
			Remediation: "Demand the dispute notation be added.",
		},
		{
			ID: "VP6", Name: "Deleted item reinserted",
			Category: domain.CategoryVerification, Severity: domain.SeverityCritical,
			SuccessProbability: 85, WillfulnessScore: 85,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Historical snapshots show the item deleted and later reappearing. Reinsertion requires furnisher certification and written notice to the consumer within five business days.",
			Evidence:    []string{"disputeHistory"},
			Citations:   []string{"15 U.S.C. § 1681i(a)(5)(B)"},
			Remediation: "Demand the reinsertion certification and notice; absent both, demand deletion.",
		},
		{
			ID: "VP7", Name: "Verification without method disclosed",
			Category: domain.CategoryVerification, Severity: domain.SeverityLow,
			SuccessProbability: 45, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A verified dispute result with no method-of-verification description deprives the consumer of the statutory right to request how the item was verified.",
			Evidence:    []string{"disputeHistory"},
			Citations:   []string{"15 U.S.C. § 1681i(a)(7)"},
			Remediation: "Send a method-of-verification request.",
		},
		{
			ID: "VP8", Name: "Dispute response predates the dispute",
			Category: domain.CategoryVerification, Severity: domain.SeverityHigh,
			SuccessProbability: 80, WillfulnessScore: 70,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The recorded response date falls before the dispute was filed, which no genuine reinvestigation could produce.",
			Evidence:    []string{"disputeHistory"},
			Citations:   []string{"15 U.S.C. § 1681i(a)(1)"},
			Remediation: "Demand the reinvestigation record; the dates impeach it.",
		},

		// ── Furnisher duties ───────────────────────────────────────────
		{
			ID: "FD1", Name: "Stale reporting",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 30,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The tradeline has not been updated in over 90 days, so the reported balance and status no longer reflect the account's current state.",
			Evidence:    []string{"lastReportedDate"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(2)"},
			Remediation: "Dispute the currency of the reported data.",
		},
		{
			ID: "FD2", Name: "Collection furnished without DOFD",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityHigh,
			SuccessProbability: 78, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A furnisher reporting a collection must supply the DOFD within 90 days; the tradeline carries none.",
			Evidence:     []string{"accountType", "dofd"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(5)"},
			Remediation:  "Demand the DOFD be furnished or the item deleted.",
			RelatedRules: []string{"RA6"},
		},
		{
			ID: "FD3", Name: "Seller still reporting as current furnisher",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityMedium,
			SuccessProbability: 52, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The account is marked sold yet the original creditor still appears as the reporting furnisher, leaving ownership of the tradeline ambiguous.",
			Evidence:    []string{"remarks", "furnisher", "originalCreditor"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation: "Demand clarification of which entity currently owns and reports the debt.",
		},
		{
			ID: "FD4", Name: "Reporting continued after fraud notation",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityCritical,
			SuccessProbability: 80, WillfulnessScore: 85,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The remarks carry an identity-theft or fraud notation while the account continues to report as a collectible debt against the consumer.",
			Evidence:    []string{"remarks", "accountStatus"},
			Citations:   []string{"15 U.S.C. § 1681c-2", "15 U.S.C. § 1681s-2(a)(6)"},
			Remediation: "Submit an identity-theft block request with the FTC report.",
		},
		{
			ID: "FD5", Name: "Reported after removal deadline passed",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityHigh,
			SuccessProbability: 75, WillfulnessScore: 70,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The furnisher reported activity after the tradeline's own estimated removal date, continuing to furnish an item it had already scheduled for exclusion.",
			Evidence:     []string{"estimatedRemovalDate", "lastReportedDate"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Demand immediate deletion as past the removal date.",
			RelatedRules: []string{"RA3"},
		},
		{
			ID: "FD6", Name: "Active collection missing payment history anchor",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityLow,
			SuccessProbability: 40, WillfulnessScore: 25,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "An active collection reports no last-payment date, removing the anchor needed to test the limitations period and the DOFD.",
			Evidence:    []string{"accountType", "lastPaymentDate"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the complete payment history.",
		},
		{
			ID: "FD7", Name: "Furnisher identity missing",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The tradeline does not identify the furnishing entity, so the consumer cannot direct a dispute or validation demand to anyone.",
			Evidence:    []string{"furnisher"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the bureau disclose the data furnisher.",
		},
		{
			ID: "FD8", Name: "Derogatory account never updated since opening",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityLow,
			SuccessProbability: 40, WillfulnessScore: 25,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "A derogatory account reports no last-reported date at all, meaning the furnisher has never updated the item since first furnishing it.",
			Evidence:     []string{"accountStatus", "lastReportedDate"},
			Citations:    []string{"15 U.S.C. § 1681s-2(a)(2)"},
			Remediation:  "Demand a current update or deletion.",
			RelatedRules: []string{"FD1"},
		},
		{
			ID: "FD9", Name: "Credit limit withheld on a revolving account",
			Category: domain.CategoryFurnisherDuty, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 45,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A revolving account reports a balance with no credit limit, inflating apparent utilization and depressing the score computed from it.",
			Evidence:    []string{"accountType", "creditLimit", "currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(1)"},
			Remediation: "Demand the credit limit be furnished.",
		},

		// ── Collection practices ───────────────────────────────────────
		{
			ID: "CP1", Name: "Collection on time-barred debt",
			Category: domain.CategoryCollection, Severity: domain.SeverityHigh,
			SuccessProbability: 72, WillfulnessScore: 65,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The DOFD places the debt past the default limitations period while active collection reporting continues without a time-barred disclosure.",
			Evidence:     []string{"dofd", "accountStatus"},
			Citations:    []string{"15 U.S.C. § 1692e(2)", "15 U.S.C. § 1692f"},
			Remediation:  "Assert the limitations defense in writing; demand collection cease.",
			RelatedRules: []string{"ST1"},
		},
		{
			ID: "CP2", Name: "Unauthorized interest accrual",
			Category: domain.CategoryCollection, Severity: domain.SeverityHigh,
			SuccessProbability: 65, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The implied growth rate on the collected balance exceeds what the underlying contract or state law could authorize.",
			Evidence:     []string{"currentBalance", "originalAmount"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand an itemization and the contractual basis for all accruals.",
			RelatedRules: []string{"BF4"},
		},
		{
			ID: "CP3", Name: "Collection balance padding",
			Category: domain.CategoryCollection, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "A collection account's balance exceeds the original amount. Collectors may generally add only contractually or statutorily authorized amounts; unexplained growth indicates fee padding.",
			Evidence:    []string{"currentBalance", "originalAmount"},
			Citations:   []string{"15 U.S.C. § 1692f(1)"},
			Remediation: "Demand the authority for each added charge.",
		},
		{
			ID: "CP4", Name: "Debt parking",
			Category: domain.CategoryCollection, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 60,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The collection first surfaced on the report years after the delinquency with recent reporting activity, consistent with parking the debt to be discovered at loan time rather than noticed to the consumer.",
			Evidence:    []string{"dateOpened", "dofd", "lastReportedDate"},
			Citations:   []string{"15 U.S.C. § 1692e", "15 U.S.C. § 1692g(a)"},
			Remediation: "Demand proof that validation notice was ever sent.",
		},
		{
			ID: "CP5", Name: "Duplicate collection tradelines",
			Category: domain.CategoryCollection, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Historical snapshots show the same original creditor's debt reported by a different collector, indicating the obligation appears more than once on the file.",
			Evidence:    []string{"originalCreditor", "furnisher"},
			Citations:   []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1692e(2)"},
			Remediation: "Dispute the duplicate and demand a single accurate tradeline.",
		},
		{
			ID: "CP6", Name: "Litigation threat in remarks",
			Category: domain.CategoryCollection, Severity: domain.SeverityLow,
			SuccessProbability: 40, WillfulnessScore: 45,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The remarks carry legal-action language on a debt that is time-barred or unvalidated, a threat that cannot lawfully be carried out.",
			Evidence:    []string{"remarks", "dofd"},
			Citations:   []string{"15 U.S.C. § 1692e(5)"},
			Remediation: "Preserve the remark text; it evidences an empty threat.",
		},
		{
			ID: "CP7", Name: "Accrual continuing past the limitations period",
			Category: domain.CategoryCollection, Severity: domain.SeverityMedium,
			SuccessProbability: 58, WillfulnessScore: 55,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The balance exceeds the original amount on a debt already past the default limitations period, so the collector kept accruing charges it could never sue to recover.",
			Evidence:     []string{"dofd", "currentBalance", "originalAmount"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand removal of all post-limitations accrual.",
			RelatedRules: []string{"CP1", "CP2"},
		},
		{
			ID: "CP8", Name: "Suspiciously round collection balance",
			Category: domain.CategoryCollection, Severity: domain.SeverityLow,
			SuccessProbability: 30, WillfulnessScore: 25,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The collection balance is an even multiple of a thousand dollars with no original amount furnished, consistent with an estimated figure rather than an accounting.",
			Evidence:    []string{"currentBalance", "originalAmount"},
			Citations:   []string{"15 U.S.C. § 1692e(2)"},
			Remediation: "Demand an itemized accounting of the balance.",
		},

		// ── Status inconsistency ───────────────────────────────────────
		{
			ID: "SI1", Name: "Open status with charge-off date",
			Category: domain.CategoryStatus, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The status reads open or current while a charge-off date is reported; the two states are mutually exclusive.",
			Evidence:    []string{"accountStatus", "chargeOffDate"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the internally contradictory status.",
		},
		{
			ID: "SI2", Name: "Charge-off status without charge-off date",
			Category: domain.CategoryStatus, Severity: domain.SeverityMedium,
			SuccessProbability: 58, WillfulnessScore: 35,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The account is reported charged off but no charge-off date is furnished, leaving the event unanchored in time.",
			Evidence:    []string{"accountStatus", "chargeOffDate"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the charge-off date be furnished.",
		},
		{
			ID: "SI3", Name: "Closed account reporting new activity",
			Category: domain.CategoryStatus, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 45,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A closed account shows payment or reporting activity after its closure, which a closed account cannot generate.",
			Evidence:    []string{"accountStatus", "lastPaymentDate", "lastReportedDate"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the post-closure activity.",
		},
		{
			ID: "SI4", Name: "Collection reported as current",
			Category: domain.CategoryStatus, Severity: domain.SeverityHigh,
			SuccessProbability: 62, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "A collection account reports a current or pays-as-agreed status; a debt in collection is by definition not current, and the combination manufactures an open delinquency.",
			Evidence:    []string{"accountType", "accountStatus"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the contradictory status pairing.",
		},
		{
			ID: "SI5", Name: "Remarks contradict reported status",
			Category: domain.CategoryStatus, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 35,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The remarks describe a charge-off or collection while the status field reports the account in good standing.",
			Evidence:    []string{"accountStatus", "remarks"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the inconsistency between remarks and status.",
		},
		{
			ID: "SI6", Name: "Disputed remark without dispute status",
			Category: domain.CategoryStatus, Severity: domain.SeverityLow,
			SuccessProbability: 40, WillfulnessScore: 30,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The remarks reference a dispute but the account status does not reflect one, understating the contested nature of the debt.",
			Evidence:    []string{"accountStatus", "remarks"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)(3)"},
			Remediation: "Demand the dispute status be reflected.",
		},
		{
			ID: "SI7", Name: "Open date missing",
			Category: domain.CategoryStatus, Severity: domain.SeverityLow,
			SuccessProbability: 35, WillfulnessScore: 20,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "No open date is reported, removing the baseline against which every other date on the tradeline is tested.",
			Evidence:    []string{"dateOpened"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the open date be furnished.",
		},
		{
			ID: "SI8", Name: "Account status missing",
			Category: domain.CategoryStatus, Severity: domain.SeverityLow,
			SuccessProbability: 35, WillfulnessScore: 20,
			Statutory:   domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:   "The tradeline reports a balance with no account status at all, leaving the account's standing unknowable to anyone reading the report.",
			Evidence:    []string{"accountStatus"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand the account status be furnished.",
		},

		// ── Cross-bureau (fire only with >= 2 snapshots) ───────────────
		{
			ID: "XB1", Name: "DOFD differs across bureaus",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityCritical,
			SuccessProbability: 88, WillfulnessScore: 75,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The bureaus report different DOFDs for the same debt. At most one can be correct, and the later one extends the reporting window unlawfully.",
			Evidence:     []string{"dofd"},
			Citations:    []string{"15 U.S.C. § 1681e(b)", "15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute at every bureau citing the contradiction.",
			RelatedRules: []string{"RA5", "ZD3"},
		},
		{
			ID: "XB2", Name: "Material balance spread across bureaus",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityHigh,
			SuccessProbability: 70, WillfulnessScore: 50,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The reported balances differ by more than the materiality threshold, so at least one bureau carries an inaccurate amount.",
			Evidence:    []string{"currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the balance at each bureau with the competing figures.",
		},
		{
			ID: "XB3", Name: "Status differs across bureaus",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityMedium,
			SuccessProbability: 60, WillfulnessScore: 40,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "The same debt carries different statuses at different bureaus; a single account has one status at a time.",
			Evidence:    []string{"accountStatus"},
			Citations:   []string{"15 U.S.C. § 1681e(b)"},
			Remediation: "Dispute the inconsistent statuses.",
		},
		{
			ID: "XB4", Name: "Selective reporting across bureaus",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 45,
			Statutory:   domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:   "Key fields appear at some bureaus and not others for the same debt, indicating the furnisher reports selectively rather than completely.",
			Evidence:    []string{"dofd", "currentBalance"},
			Citations:   []string{"15 U.S.C. § 1681s-2(a)"},
			Remediation: "Demand complete and consistent furnishing at all bureaus.",
		},
		{
			ID: "XB5", Name: "Removal dates differ materially across bureaus",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityHigh,
			SuccessProbability: 72, WillfulnessScore: 65,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "The estimated removal dates differ by more than 60 days, meaning the bureaus computed the window from different DOFDs.",
			Evidence:     []string{"estimatedRemovalDate"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute with the earliest supported removal date.",
			RelatedRules: []string{"XB1", "RA4"},
		},

		// ── Zombie debt ────────────────────────────────────────────────
		{
			ID: "ZD1", Name: "Zombie debt resurrection",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityCritical,
			SuccessProbability: 85, WillfulnessScore: 85,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "A debt past its reporting window shows fresh activity. Expired debt reappearing with new dates is the defining zombie-debt pattern.",
			Evidence:     []string{"dofd", "lastReportedDate"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1692e"},
			Remediation:  "Demand deletion and preserve both the age and the activity evidence.",
			RelatedRules: []string{"RA3", "RA8", "CT6"},
		},
		{
			ID: "ZD2", Name: "Expired debt growing",
			Category: domain.CategoryChainOfTitle, Severity: domain.SeverityHigh,
			SuccessProbability: 75, WillfulnessScore: 75,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "A debt past the reporting window is not merely still reported but reports a balance above its original amount, compounding obsolete reporting with unauthorized accrual.",
			Evidence:     []string{"dofd", "currentBalance", "originalAmount"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)", "15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand deletion and an accounting of post-expiration accrual.",
			RelatedRules: []string{"ZD1", "BF2"},
		},
		{
			ID: "ZD3", Name: "Debt expired under one bureau's dates",
			Category: domain.CategoryCrossBureau, Severity: domain.SeverityHigh,
			SuccessProbability: 78, WillfulnessScore: 70,
			Statutory:    domain.MoneyRange{Min: 100, Max: 1000},
			Rationale:    "Under at least one bureau's reported DOFD the debt is already past the reporting window while other bureaus' dates keep it alive; the earliest DOFD controls.",
			Evidence:     []string{"dofd"},
			Citations:    []string{"15 U.S.C. § 1681c(a)(4)"},
			Remediation:  "Dispute at every bureau citing the earliest reported DOFD.",
			RelatedRules: []string{"XB1", "ZD1"},
		},

		// ── State law (fire only with state rules enabled) ─────────────
		{
			ID: "ST1", Name: "Collection beyond state limitations period",
			Category: domain.CategoryStateLaw, Severity: domain.SeverityHigh,
			SuccessProbability: 68, WillfulnessScore: 60,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The DOFD places the debt beyond the state's limitations period for consumer debt while collection reporting continues.",
			Evidence:     []string{"dofd", "state"},
			Citations:    []string{"15 U.S.C. § 1692e(2)"},
			Remediation:  "Assert the state limitations defense in writing.",
			RelatedRules: []string{"CP1"},
		},
		{
			ID: "ST2", Name: "Implied rate exceeds state usury cap",
			Category: domain.CategoryStateLaw, Severity: domain.SeverityMedium,
			SuccessProbability: 55, WillfulnessScore: 50,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The balance growth implies an annual rate above the state's interest cap for consumer debt.",
			Evidence:     []string{"currentBalance", "originalAmount", "state"},
			Citations:    []string{"15 U.S.C. § 1692f(1)"},
			Remediation:  "Demand recalculation at the lawful rate.",
			RelatedRules: []string{"BF4"},
		},
		{
			ID: "ST3", Name: "Debt buyer collecting in a licensing state",
			Category: domain.CategoryStateLaw, Severity: domain.SeverityMedium,
			SuccessProbability: 50, WillfulnessScore: 45,
			Statutory:    domain.MoneyRange{Min: 0, Max: 1000},
			Rationale:    "The consumer's state requires debt buyers to hold a collection license; an unlicensed buyer's activity there is independently actionable and licensure is worth verifying.",
			Evidence:     []string{"furnisher", "state"},
			Citations:    []string{"15 U.S.C. § 1692e"},
			Remediation:  "Verify the buyer's license with the state regulator.",
			RelatedRules: []string{"CT3"},
		},
	}
}
