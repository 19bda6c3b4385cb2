// Package signals derives discrete condition tokens from a normalized
// tradeline, optionally combined with historical snapshots, cross-bureau
// snapshots, dispute history, and already-fired rule flags.
//
// Every signal computation is independent: one failing check never blocks
// the others, and missing or malformed data suppresses a signal rather
// than raising an error.
package signals

import (
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/fields"
)

// ReportingWindow returns the statutory removal deadline for a DOFD:
// seven years plus the 180-day grace period.
func ReportingWindow(dofd time.Time) time.Time {
	return dofd.AddDate(7, 0, 0).AddDate(0, 0, 180)
}

// Materiality threshold for cross-bureau balance spread, in dollars.
const balanceSpreadThreshold = 100.0

// KnownDebtBuyers is the fixed list of furnisher name fragments that
// identify large portfolio debt buyers.
var KnownDebtBuyers = []string{
	"midland", "portfolio recovery", "lvnv", "cavalry", "encore",
	"cach", "jefferson capital", "unifin", "crown asset", "velocity",
	"second round", "absolute resolutions",
}

// Options carries the auxiliary inputs for extraction.
type Options struct {
	Historical []domain.Tradeline
	Bureaus    []domain.BureauSnapshot
	Disputes   []domain.DisputeRecord

	// Flags feeds rule outcomes back into the signal set: some patterns
	// are defined over rule ids rather than raw fields.
	Flags []domain.RuleFlag

	// Now anchors "today" for the 7-year and staleness checks.
	// Zero means time.Now().UTC(); tests inject a fixed value.
	Now time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now().UTC()
	}
	return o.Now
}

type env struct {
	f   domain.Tradeline
	opt Options
	now time.Time

	opened, dofd, chargeOff, lastPayment, lastReported, removal time.Time
	hasOpened, hasDOFD, hasChargeOff, hasLastPayment            bool
	hasLastReported, hasRemoval                                 bool

	balance, original   float64
	hasBalance, hasOrig bool
}

// Extract computes the full signal set for one tradeline. Recomputed fresh
// on every call; the result is purely derived and never stored.
func Extract(f domain.Tradeline, opt Options) domain.SignalSet {
	e := &env{f: f, opt: opt, now: opt.now()}
	e.opened, e.hasOpened = fields.ParseDate(f.DateOpened)
	e.dofd, e.hasDOFD = fields.ParseDate(f.DOFD)
	e.chargeOff, e.hasChargeOff = fields.ParseDate(f.ChargeOffDate)
	e.lastPayment, e.hasLastPayment = fields.ParseDate(f.LastPaymentDate)
	e.lastReported, e.hasLastReported = fields.ParseDate(f.LastReportedDate)
	e.removal, e.hasRemoval = fields.ParseDate(f.EstimatedRemovalDate)
	e.balance, e.hasBalance = fields.ParseAmount(f.CurrentBalance)
	e.original, e.hasOrig = fields.ParseAmount(f.OriginalAmount)

	set := domain.NewSignalSet()
	for _, check := range checks {
		runCheck(check, e, set)
	}
	return set
}

// runCheck isolates a single signal computation so a panic in one check
// cannot suppress the rest of the set.
func runCheck(check func(*env, domain.SignalSet), e *env, set domain.SignalSet) {
	defer func() {
		_ = recover()
	}()
	check(e, set)
}

var checks = []func(*env, domain.SignalSet){
	timelineSignals,
	balanceSignals,
	categorySignals,
	chainSignals,
	historicalSignals,
	crossBureauSignals,
	disputeSignals,
	ruleFeedbackSignals,
}

func timelineSignals(e *env, set domain.SignalSet) {
	if e.hasDOFD && e.hasOpened && e.dofd.Before(e.opened) {
		set.Add(domain.SignalDOFDBeforeOpened)
	}
	if e.hasDOFD && e.hasChargeOff && e.dofd.After(e.chargeOff) {
		set.Add(domain.SignalDOFDAfterChargeOff)
	}
	if !e.hasDOFD && fields.ContainsAny(e.f.AccountStatus+" "+e.f.AccountType, "collection", "charge") {
		set.Add(domain.SignalDOFDMissing)
	}
	if e.hasDOFD && ReportingWindow(e.dofd).Before(e.now) {
		set.Add(domain.SignalBeyond7Years)
	}
	if e.hasDOFD && e.hasRemoval {
		drift := e.removal.Sub(ReportingWindow(e.dofd))
		if drift > 30*24*time.Hour {
			set.Add(domain.SignalRemovalDateDrift)
		}
	}
	if identicalCriticalDates(e) {
		set.Add(domain.SignalIdenticalDates)
	}
	if e.hasDOFD && fields.YearsBetween(e.dofd, e.now) > 6 {
		recent := e.now.AddDate(0, -6, 0)
		if (e.hasLastPayment && e.lastPayment.After(recent)) ||
			(e.hasLastReported && e.lastReported.After(recent)) {
			set.Add(domain.SignalRecentActivity)
		}
	}
}

func identicalCriticalDates(e *env) bool {
	dates := make([]time.Time, 0, 3)
	if e.hasOpened {
		dates = append(dates, e.opened)
	}
	if e.hasDOFD {
		dates = append(dates, e.dofd)
	}
	if e.hasChargeOff {
		dates = append(dates, e.chargeOff)
	}
	if len(dates) < 3 {
		return false
	}
	return dates[0].Equal(dates[1]) && dates[1].Equal(dates[2])
}

func balanceSignals(e *env, set domain.SignalSet) {
	if e.hasBalance && e.hasOrig && e.original > 0 {
		ratio := e.balance / e.original
		if ratio > 1.5 {
			set.Add(domain.SignalBalanceGrowth150)
		}
		if ratio > 2.0 {
			set.Add(domain.SignalBalanceGrowth200)
		}
		// implied annual rate over the account's life; skip when the
		// elapsed-years denominator would be zero
		if anchor, ok := e.growthAnchor(); ok {
			years := fields.YearsBetween(anchor, e.now)
			if years > 0.5 {
				impliedRate := (ratio - 1) / years
				if impliedRate > 0.25 {
					set.Add(domain.SignalExcessiveInterest)
				}
			}
		}
	}
	if e.hasBalance && e.balance > 0 {
		if fields.ContainsAny(e.f.AccountStatus, "paid", "settled") {
			set.Add(domain.SignalPaidWithBalance)
		}
		if fields.ContainsAny(e.f.AccountStatus+" "+e.f.Remarks, "sold", "transferred") {
			set.Add(domain.SignalSoldWithBalance)
		}
		if !e.hasOrig && fields.ContainsAny(e.f.AccountType+" "+e.f.AccountStatus, "collection") {
			set.Add(domain.SignalBalanceNoOriginal)
		}
	}
}

// growthAnchor picks the start date for interest-rate inference.
func (e *env) growthAnchor() (time.Time, bool) {
	if e.hasChargeOff {
		return e.chargeOff, true
	}
	if e.hasDOFD {
		return e.dofd, true
	}
	if e.hasOpened {
		return e.opened, true
	}
	return time.Time{}, false
}

func categorySignals(e *env, set domain.SignalSet) {
	blob := e.f.AccountType + " " + e.f.OriginalCreditor + " " + e.f.Furnisher + " " + e.f.Remarks
	if fields.ContainsAny(blob, "medical", "hospital", "clinic", "physician") {
		set.Add(domain.SignalMedicalDebt)
	}
	if fields.ContainsAny(blob, "student", "education", "sallie", "navient", "nelnet") {
		set.Add(domain.SignalStudentLoan)
	}
	if fields.ContainsAny(e.f.AccountType+" "+e.f.AccountStatus, "collection") {
		set.Add(domain.SignalCollectionStatus)
	}
	if fields.ContainsAny(e.f.AccountStatus+" "+e.f.Remarks, "sold", "transferred") {
		set.Add(domain.SignalDebtSold)
	}
	if fields.ContainsAny(e.f.Furnisher, KnownDebtBuyers...) {
		set.Add(domain.SignalDebtBuyer)
	}
	if set.Has(domain.SignalCollectionStatus) && e.f.OriginalCreditor == "" {
		set.Add(domain.SignalNoOriginalCred)
	}
	if fields.ContainsAny(e.f.AccountStatus+" "+e.f.Remarks, "charge") {
		set.Add(domain.SignalChargedOff)
	}
}

func chainSignals(e *env, set domain.SignalSet) {
	collection := fields.ContainsAny(e.f.AccountType+" "+e.f.AccountStatus, "collection")
	if collection && e.hasDOFD && e.hasOpened {
		if fields.YearsBetween(e.dofd, e.opened) > 3 {
			set.Add(domain.SignalCollectionLateOpen)
		}
	}
	if collection && e.hasDOFD && ReportingWindow(e.dofd).Before(e.now) {
		set.Add(domain.SignalZombieDebt)
	}
	// conservative default limitations period; state tables refine this
	// in the rule catalog
	if collection && e.hasDOFD && e.hasBalance && e.balance > 0 &&
		fields.YearsBetween(e.dofd, e.now) > 6 {
		set.Add(domain.SignalSOLExpired)
	}
}

func historicalSignals(e *env, set domain.SignalSet) {
	if len(e.opt.Historical) == 0 {
		return
	}
	for _, h := range e.opt.Historical {
		if h.DOFD != "" && e.f.DOFD != "" && h.DOFD != e.f.DOFD {
			set.Add(domain.SignalDOFDChanged)
			set.Add(domain.SignalDOFDMismatch)
		}
		if hb, ok := fields.ParseAmount(h.CurrentBalance); ok && e.hasBalance && e.balance > hb {
			set.Add(domain.SignalBalanceChanged)
		}
		if h.AccountStatus != "" && e.f.AccountStatus != "" && h.AccountStatus != e.f.AccountStatus {
			set.Add(domain.SignalStatusChanged)
		}
		if hr, ok := fields.ParseDate(h.EstimatedRemovalDate); ok && e.hasRemoval && e.removal.After(hr) {
			set.Add(domain.SignalRemovalPushed)
		}
	}
}

func crossBureauSignals(e *env, set domain.SignalSet) {
	if len(e.opt.Bureaus) < 2 {
		return
	}
	dofds := make(map[string]struct{})
	var minBal, maxBal float64
	balSeen := 0
	statuses := make(map[string]struct{})
	missingDOFD, haveDOFD := false, false
	for _, b := range e.opt.Bureaus {
		if b.Fields.DOFD != "" {
			dofds[b.Fields.DOFD] = struct{}{}
			haveDOFD = true
		} else {
			missingDOFD = true
		}
		if v, ok := fields.ParseAmount(b.Fields.CurrentBalance); ok {
			if balSeen == 0 || v < minBal {
				minBal = v
			}
			if balSeen == 0 || v > maxBal {
				maxBal = v
			}
			balSeen++
		}
		if b.Fields.AccountStatus != "" {
			statuses[b.Fields.AccountStatus] = struct{}{}
		}
	}
	if len(dofds) > 1 {
		set.Add(domain.SignalXBDOFDMismatch)
		set.Add(domain.SignalDOFDMismatch)
	}
	if balSeen >= 2 && maxBal-minBal > balanceSpreadThreshold {
		set.Add(domain.SignalXBBalanceSpread)
	}
	if len(statuses) > 1 {
		set.Add(domain.SignalXBStatusMismatch)
	}
	if haveDOFD && missingDOFD {
		set.Add(domain.SignalXBSelectiveReport)
	}
}

func disputeSignals(e *env, set domain.SignalSet) {
	if len(e.opt.Disputes) == 0 {
		return
	}
	if len(e.opt.Disputes) >= 3 {
		set.Add(domain.SignalRepeatDisputes)
	}
	for _, d := range e.opt.Disputes {
		filed, ok := fields.ParseDate(d.Date)
		if !ok {
			continue
		}
		if d.ResponseDate == "" && d.Result == "" {
			age := e.now.Sub(filed)
			if age > 30*24*time.Hour {
				set.Add(domain.SignalDisputeIgnored30)
			}
			if age > 45*24*time.Hour {
				set.Add(domain.SignalDisputeIgnored45)
			}
		}
		if d.Result == "verified" && len(e.opt.Flags) > 0 {
			set.Add(domain.SignalDisputeRubberStamp)
		}
	}
}

// reAgingRuleIDs are rule ids whose firing implies the re-aging signal.
var reAgingRuleIDs = map[string]struct{}{
	"RA1": {}, "RA2": {}, "RA3": {}, "RA4": {}, "RA5": {},
}

func ruleFeedbackSignals(e *env, set domain.SignalSet) {
	for _, fl := range e.opt.Flags {
		if _, ok := reAgingRuleIDs[fl.RuleID]; ok {
			set.Add(domain.SignalReAgingFlagged)
		}
		if fl.Category == domain.CategoryVerification {
			set.Add(domain.SignalVerificationFailure)
		}
		if fl.RuleID == "FD1" {
			set.Add(domain.SignalStaleReporting)
		}
	}
}
