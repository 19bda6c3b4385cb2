package domain

import "sort"

// Signal is a discrete boolean condition token derived from input data.
// Signals are the matching unit for behavioral patterns: each pattern
// definition names required and optional signals, and the extractor
// recomputes the full set fresh on every call.
type Signal string

// Timeline / re-aging signals
const (
	SignalDOFDBeforeOpened   Signal = "DOFD_BEFORE_OPENED"
	SignalDOFDAfterChargeOff Signal = "DOFD_AFTER_CHARGEOFF"
	SignalDOFDMismatch       Signal = "DOFD_MISMATCH"
	SignalBeyond7Years       Signal = "BEYOND_7_YEARS"
	SignalRemovalDateDrift   Signal = "REMOVAL_DATE_DRIFT"
	SignalDOFDMissing        Signal = "DOFD_MISSING"
	SignalIdenticalDates     Signal = "IDENTICAL_CRITICAL_DATES"
	SignalRecentActivity     Signal = "RECENT_ACTIVITY_OLD_DEBT"
)

// Balance signals
const (
	SignalBalanceGrowth150  Signal = "BALANCE_GROWTH_150"
	SignalBalanceGrowth200  Signal = "BALANCE_GROWTH_200"
	SignalPaidWithBalance   Signal = "PAID_WITH_BALANCE"
	SignalSoldWithBalance   Signal = "SOLD_WITH_BALANCE"
	SignalBalanceNoOriginal Signal = "BALANCE_NO_ORIGINAL"
	SignalExcessiveInterest Signal = "EXCESSIVE_INTEREST"
)

// Category signals derived from status / account-type / party text
const (
	SignalMedicalDebt      Signal = "MEDICAL_DEBT"
	SignalStudentLoan      Signal = "STUDENT_LOAN"
	SignalCollectionStatus Signal = "COLLECTION_STATUS"
	SignalDebtSold         Signal = "DEBT_SOLD"
	SignalDebtBuyer        Signal = "DEBT_BUYER_FURNISHER"
	SignalNoOriginalCred   Signal = "NO_ORIGINAL_CREDITOR"
	SignalChargedOff       Signal = "CHARGED_OFF"
)

// Chain-of-title / zombie-debt signals
const (
	SignalZombieDebt         Signal = "ZOMBIE_DEBT"
	SignalCollectionLateOpen Signal = "COLLECTION_OPENED_LATE"
	SignalSOLExpired         Signal = "SOL_EXPIRED"
)

// Historical signals (require >= 2 historical snapshots)
const (
	SignalDOFDChanged    Signal = "DOFD_CHANGED"
	SignalBalanceChanged Signal = "BALANCE_INCREASED"
	SignalStatusChanged  Signal = "STATUS_CHANGED"
	SignalRemovalPushed  Signal = "REMOVAL_DATE_PUSHED"
)

// Cross-bureau signals (require >= 2 bureau snapshots)
const (
	SignalXBDOFDMismatch    Signal = "XB_DOFD_MISMATCH"
	SignalXBBalanceSpread   Signal = "XB_BALANCE_SPREAD"
	SignalXBStatusMismatch  Signal = "XB_STATUS_MISMATCH"
	SignalXBSelectiveReport Signal = "XB_SELECTIVE_REPORTING"
)

// Dispute-history signals
const (
	SignalDisputeIgnored30   Signal = "DISPUTE_IGNORED_30_DAYS"
	SignalDisputeIgnored45   Signal = "DISPUTE_IGNORED_45_DAYS"
	SignalDisputeRubberStamp Signal = "DISPUTE_VERIFIED_NO_CHANGE"
	SignalRepeatDisputes     Signal = "REPEAT_DISPUTES"
)

// Rule-feedback signals: raised when specific rule flags have already
// fired, because some patterns are defined over rule outcomes rather than
// raw fields.
const (
	SignalReAgingFlagged      Signal = "REAGING_RULE_FIRED"
	SignalVerificationFailure Signal = "VERIFICATION_RULE_FIRED"
	SignalStaleReporting      Signal = "STALE_REPORTING"
)

// SignalSet is the derived set of condition tokens for one analysis call.
// Purely derived, never stored.
type SignalSet map[Signal]struct{}

// NewSignalSet builds a set from tokens.
func NewSignalSet(signals ...Signal) SignalSet {
	s := make(SignalSet, len(signals))
	for _, sig := range signals {
		s[sig] = struct{}{}
	}
	return s
}

// Add inserts a signal.
func (s SignalSet) Add(sig Signal) { s[sig] = struct{}{} }

// Has reports membership.
func (s SignalSet) Has(sig Signal) bool {
	_, ok := s[sig]
	return ok
}

// Sorted returns the signals in lexical order, for deterministic output.
func (s SignalSet) Sorted() []Signal {
	out := make([]Signal, 0, len(s))
	for sig := range s {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
