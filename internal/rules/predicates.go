package rules

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/fields"
	"github.com/opensource-credit/harrier/internal/signals"
)

// predicates maps rule id to the condition that fires it. Every predicate
// returns nil on missing or unparseable inputs: absent data suppresses a
// finding, it never produces one.
var predicates = map[string]predicate{

	// ── Timeline / re-aging ────────────────────────────────────────────

	"RA1": func(c *evalCtx) *match {
		if !c.hasOpened || !c.hasDOFD || !c.dofd.Before(c.opened) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("DOFD %s predates the account open date %s", c.raw.DOFD, c.raw.DateOpened),
			evidence:    c.evidence("dateOpened", "dofd"),
			confidence:  98,
		}
	},

	"RA2": func(c *evalCtx) *match {
		if !c.hasDOFD || !c.hasCO || !c.dofd.After(c.chargeOff) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("DOFD %s falls after the charge-off date %s", c.raw.DOFD, c.raw.ChargeOffDate),
			evidence:    c.evidence("dofd", "chargeOffDate"),
			confidence:  98,
		}
	},

	"RA3": func(c *evalCtx) *match {
		if !c.beyondWindow() {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("item remains on file %d days past the reporting deadline of %s",
				days(c.now.Sub(c.windowEnd())), c.windowEnd().Format("2006-01-02")),
			evidence:   c.evidence("dofd"),
			confidence: 95,
		}
	},

	"RA4": func(c *evalCtx) *match {
		if !c.hasDOFD || !c.hasRemoval {
			return nil
		}
		drift := days(c.removal.Sub(c.windowEnd()))
		if drift <= 30 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("estimated removal date extends %d days past the statutory window", drift),
			evidence:    c.evidence("dofd", "estimatedRemovalDate"),
			confidence:  95,
		}
	},

	"RA5": func(c *evalCtx) *match {
		if !c.hasDOFD {
			return nil
		}
		for _, h := range c.opt.Historical {
			prev, ok := fields.ParseDate(h.DOFD)
			if ok && !prev.Equal(c.dofd) {
				return &match{
					explanation: fmt.Sprintf("DOFD moved from %s to %s between reports", h.DOFD, c.raw.DOFD),
					evidence:    map[string]string{"dofd": c.raw.DOFD, "priorDofd": h.DOFD},
					confidence:  92,
					custody:     true,
				}
			}
		}
		return nil
	},

	"RA6": func(c *evalCtx) *match {
		if c.hasDOFD || !c.isDerogatory() {
			return nil
		}
		return &match{
			explanation: "derogatory account reports no usable date of first delinquency",
			evidence:    c.evidence("accountType", "accountStatus", "dofd"),
			confidence:  90,
		}
	},

	"RA7": func(c *evalCtx) *match {
		if !c.hasOpened || !c.hasDOFD || !c.hasCO {
			return nil
		}
		if !c.opened.Equal(c.dofd) || !c.dofd.Equal(c.chargeOff) {
			return nil
		}
		return &match{
			explanation: "open date, DOFD, and charge-off date are identical",
			evidence:    c.evidence("dateOpened", "dofd", "chargeOffDate"),
			confidence:  85,
		}
	},

	"RA8": func(c *evalCtx) *match {
		if !c.hasDOFD || c.ageYears() <= 6 {
			return nil
		}
		recent := (c.hasLastPay && days(c.now.Sub(c.lastPayment)) <= 183) ||
			(c.hasLastRep && days(c.now.Sub(c.lastReported)) <= 183)
		if !recent {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("activity within six months on a debt %.1f years past first delinquency", c.ageYears()),
			evidence:    c.evidence("dofd", "lastPaymentDate", "lastReportedDate"),
			confidence:  80,
		}
	},

	"RA9": func(c *evalCtx) *match {
		if !c.hasOpened || !c.hasCO || !c.chargeOff.Before(c.opened) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("charge-off date %s predates the open date %s", c.raw.ChargeOffDate, c.raw.DateOpened),
			evidence:    c.evidence("dateOpened", "chargeOffDate"),
			confidence:  98,
		}
	},

	// ── Balance forensics ──────────────────────────────────────────────

	"BF1": func(c *evalCtx) *match {
		if !statusSatisfied(c.status) || !c.hasBalance || c.balance <= 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("status %q with a reported balance of %s", c.status, money(c.balance)),
			evidence:    c.evidence("accountStatus", "currentBalance"),
			confidence:  95,
		}
	},

	"BF2": func(c *evalCtx) *match {
		r, ok := balanceRatio(c)
		if !ok || r <= 2.0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("balance %s is %.1fx the original amount %s", money(c.balance), r, money(c.original)),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  92,
		}
	},

	"BF3": func(c *evalCtx) *match {
		r, ok := balanceRatio(c)
		if !ok || r <= 1.5 || r > 2.0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("balance %s is %.2fx the original amount %s", money(c.balance), r, money(c.original)),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  88,
		}
	},

	"BF4": func(c *evalCtx) *match {
		rate, ok := impliedAnnualRate(c)
		if !ok || rate <= defaultRateCap {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("balance growth implies roughly %.0f%% annual interest", rate*100),
			evidence:    c.evidence("currentBalance", "originalAmount", "chargeOffDate", "dofd"),
			confidence:  85,
		}
	},

	"BF5": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status+" "+c.remarks, "sold", "transferred") {
			return nil
		}
		if !c.hasBalance || c.balance <= 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("sold or transferred account still reports a balance of %s", money(c.balance)),
			evidence:    c.evidence("accountStatus", "remarks", "currentBalance"),
			confidence:  90,
		}
	},

	"BF6": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasBalance || c.balance <= 0 || c.hasOriginal {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection reports a balance of %s with no original amount", money(c.balance)),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  88,
		}
	},

	"BF7": func(c *evalCtx) *match {
		if !c.hasLimit || c.limit <= 0 || !c.hasBalance || c.balance <= c.limit*1.5 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("balance %s exceeds the credit limit %s by more than half", money(c.balance), money(c.limit)),
			evidence:    c.evidence("currentBalance", "creditLimit"),
			confidence:  85,
		}
	},

	"BF8": func(c *evalCtx) *match {
		if !c.hasCO || !c.hasBalance {
			return nil
		}
		for _, h := range c.opt.Historical {
			prev, ok := fields.ParseAmount(h.CurrentBalance)
			if ok && prev > 0 && c.balance > prev {
				return &match{
					explanation: fmt.Sprintf("balance grew from %s to %s after charge-off", money(prev), money(c.balance)),
					evidence:    map[string]string{"currentBalance": c.raw.CurrentBalance, "priorBalance": h.CurrentBalance, "chargeOffDate": c.raw.ChargeOffDate},
					confidence:  80,
				}
			}
		}
		return nil
	},

	"BF9": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status, "late", "past due") || !c.hasBalance || c.balance != 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("status %q with a zero balance", c.status),
			evidence:    c.evidence("accountStatus", "currentBalance"),
			confidence:  75,
		}
	},

	// ── Medical debt ───────────────────────────────────────────────────

	"MD1": func(c *evalCtx) *match {
		if !c.isMedical() || !c.isCollection() || !c.hasBalance || c.balance <= 0 || c.balance >= 500 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("medical collection of %s falls under the $500 reporting exclusion", money(c.balance)),
			evidence:    c.evidence("accountType", "currentBalance"),
			confidence:  92,
		}
	},

	"MD2": func(c *evalCtx) *match {
		if !c.isMedical() || !c.isCollection() || !c.hasDOFD || c.ageYears() >= 1 {
			return nil
		}
		return &match{
			explanation: "medical collection reported inside the one-year insurance-resolution period",
			evidence:    c.evidence("accountType", "dofd"),
			confidence:  88,
		}
	},

	"MD3": func(c *evalCtx) *match {
		if !c.isMedical() || !c.isCollection() || !statusSatisfied(c.status) {
			return nil
		}
		return &match{
			explanation: "paid medical collection remains on the report instead of being deleted",
			evidence:    c.evidence("accountType", "accountStatus"),
			confidence:  92,
		}
	},

	"MD4": func(c *evalCtx) *match {
		if !c.isMedical() || !c.isCollection() || fields.ContainsAny(c.remarks, "insurance") {
			return nil
		}
		return &match{
			explanation: "medical collection carries no insurance billing or resolution notation",
			evidence:    c.evidence("accountType", "remarks"),
			confidence:  70,
		}
	},

	"MD5": func(c *evalCtx) *match {
		if !c.isMedical() || !isDebtBuyer(c.raw.Furnisher) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("medical debt held by portfolio debt buyer %q", c.raw.Furnisher),
			evidence:    c.evidence("accountType", "furnisher"),
			confidence:  80,
			custody:     true,
		}
	},

	"MD6": func(c *evalCtx) *match {
		if !c.isMedical() || !c.isCollection() {
			return nil
		}
		if !fields.ContainsAny(c.remarks, "insurance pending", "pending insurance", "claim pending") {
			return nil
		}
		return &match{
			explanation: "medical collection reported while the insurance claim is still pending",
			evidence:    c.evidence("accountType", "remarks"),
			confidence:  82,
		}
	},

	// ── Student loans ──────────────────────────────────────────────────

	"SL1": func(c *evalCtx) *match {
		if !c.isStudentLoan() || !fields.ContainsAny(c.remarks, "forbearance") {
			return nil
		}
		if !fields.ContainsAny(c.status, "late", "delinquent", "past due") {
			return nil
		}
		return &match{
			explanation: "loan reported delinquent during an administrative forbearance",
			evidence:    c.evidence("accountType", "accountStatus", "remarks"),
			confidence:  85,
		}
	},

	"SL2": func(c *evalCtx) *match {
		if !c.isStudentLoan() || !fields.ContainsAny(c.remarks, "rehabilitat") {
			return nil
		}
		if !fields.ContainsAny(c.status, "default") {
			return nil
		}
		return &match{
			explanation: "rehabilitated loan still reported in default",
			evidence:    c.evidence("accountType", "accountStatus", "remarks"),
			confidence:  88,
		}
	},

	"SL3": func(c *evalCtx) *match {
		if !c.isStudentLoan() || !c.hasCO || !fields.ContainsAny(c.remarks, "deferment", "deferred") {
			return nil
		}
		return &match{
			explanation: "loan charged off while the remarks place it in deferment",
			evidence:    c.evidence("accountType", "chargeOffDate", "remarks"),
			confidence:  80,
		}
	},

	"SL4": func(c *evalCtx) *match {
		if !c.isStudentLoan() || c.raw.OriginalCreditor != "" {
			return nil
		}
		if !fields.ContainsAny(c.acctType+" "+c.status, "default", "collection") {
			return nil
		}
		return &match{
			explanation: "defaulted student loan reported with no guarantor or original servicer identified",
			evidence:    c.evidence("accountType", "accountStatus", "originalCreditor"),
			confidence:  70,
			custody:     true,
		}
	},

	"SL5": func(c *evalCtx) *match {
		if !c.isStudentLoan() || !fields.ContainsAny(c.remarks, "discharged", "forgiven", "forgiveness") {
			return nil
		}
		if !c.hasBalance || c.balance <= 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("discharged loan still reports a balance of %s", money(c.balance)),
			evidence:    c.evidence("accountType", "remarks", "currentBalance"),
			confidence:  85,
		}
	},

	// ── Chain of title ─────────────────────────────────────────────────

	"CT1": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasOpened || !c.hasDOFD {
			return nil
		}
		if !c.opened.After(c.dofd.AddDate(3, 0, 0)) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection opened %.1f years after the first delinquency", fields.YearsBetween(c.dofd, c.opened)),
			evidence:    c.evidence("dateOpened", "dofd"),
			confidence:  85,
			custody:     true,
		}
	},

	"CT2": func(c *evalCtx) *match {
		if !c.isCollection() || c.raw.OriginalCreditor != "" {
			return nil
		}
		return &match{
			explanation: "collection tradeline does not identify the original creditor",
			evidence:    c.evidence("accountType", "originalCreditor"),
			confidence:  90,
			custody:     true,
		}
	},

	"CT3": func(c *evalCtx) *match {
		if !isDebtBuyer(c.raw.Furnisher) {
			return nil
		}
		if fields.ContainsAny(c.remarks, "assigned", "assignment", "purchased from") {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("portfolio debt buyer %q reports with no assignment documentation noted", c.raw.Furnisher),
			evidence:    c.evidence("furnisher", "remarks"),
			confidence:  75,
			custody:     true,
		}
	},

	"CT4": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.remarks, "dispute") || !fields.ContainsAny(c.remarks, "sold", "transferred") {
			return nil
		}
		return &match{
			explanation: "remarks show the debt was sold or transferred while under dispute",
			evidence:    c.evidence("remarks"),
			confidence:  75,
			custody:     true,
		}
	},

	"CT5": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status+" "+c.remarks, "sold", "transferred") {
			return nil
		}
		if !c.hasBalance || c.balance <= 0 {
			return nil
		}
		if c.raw.Furnisher == "" || c.raw.OriginalCreditor == "" ||
			!strings.EqualFold(strings.TrimSpace(c.raw.Furnisher), strings.TrimSpace(c.raw.OriginalCreditor)) {
			return nil
		}
		return &match{
			explanation: "original creditor still reports the balance on an account marked sold",
			evidence:    c.evidence("furnisher", "originalCreditor", "currentBalance"),
			confidence:  72,
			custody:     true,
		}
	},

	"CT6": func(c *evalCtx) *match {
		if !isDebtBuyer(c.raw.Furnisher) || !c.beyondWindow() {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("debt buyer %q reports a debt past the statutory reporting window", c.raw.Furnisher),
			evidence:    c.evidence("furnisher", "dofd"),
			confidence:  92,
			custody:     true,
		}
	},

	// ── Verification procedure ─────────────────────────────────────────

	"VP1": func(c *evalCtx) *match {
		return overdueDispute(c, 30, 45, 90)
	},

	"VP2": func(c *evalCtx) *match {
		return overdueDispute(c, 45, 1<<30, 92)
	},

	"VP3": func(c *evalCtx) *match {
		if !disputeVerified(c.opt.Disputes) {
			return nil
		}
		impossible := (c.hasOpened && c.hasDOFD && c.dofd.Before(c.opened)) ||
			(c.hasDOFD && c.hasCO && c.dofd.After(c.chargeOff))
		if !impossible {
			return nil
		}
		return &match{
			explanation: "dispute returned verified while chronologically impossible dates remain",
			evidence:    c.evidence("dateOpened", "dofd", "chargeOffDate"),
			confidence:  95,
		}
	},

	"VP4": func(c *evalCtx) *match {
		verified := 0
		for _, d := range c.opt.Disputes {
			if fields.ContainsAny(d.Result, "verified") {
				verified++
			}
		}
		if verified < 3 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("%d disputes each verified with no change to the tradeline", verified),
			evidence:    map[string]string{"verifiedDisputes": fmt.Sprintf("%d", verified)},
			confidence:  85,
		}
	},

	"VP5": func(c *evalCtx) *match {
		if len(c.opt.Disputes) == 0 || fields.ContainsAny(c.status+" "+c.remarks, "dispute") {
			return nil
		}
		return &match{
			explanation: "dispute on file but the tradeline carries no disputed-by-consumer notation",
			evidence:    map[string]string{"disputes": fmt.Sprintf("%d", len(c.opt.Disputes)), "remarks": c.remarks},
			confidence:  75,
		}
	},

	"VP6": func(c *evalCtx) *match {
		if c.raw.Empty() || len(c.opt.Historical) < 2 {
			return nil
		}
		seenData := false
		for _, h := range c.opt.Historical {
			if !h.Empty() {
				seenData = true
			} else if seenData {
				return &match{
					explanation: "tradeline was deleted in a prior report and later reinserted",
					evidence:    c.evidence("accountStatus"),
					confidence:  90,
					custody:     true,
				}
			}
		}
		return nil
	},

	"VP7": func(c *evalCtx) *match {
		for _, d := range c.opt.Disputes {
			if strings.EqualFold(strings.TrimSpace(d.Result), "verified") {
				return &match{
					explanation: "dispute verified with no method of verification recorded",
					evidence:    map[string]string{"disputeDate": d.Date, "result": d.Result},
					confidence:  60,
				}
			}
		}
		return nil
	},

	"VP8": func(c *evalCtx) *match {
		for _, d := range c.opt.Disputes {
			filed, ok := fields.ParseDate(d.Date)
			if !ok {
				continue
			}
			if resp, ok := fields.ParseDate(d.ResponseDate); ok && resp.Before(filed) {
				return &match{
					explanation: fmt.Sprintf("dispute filed %s carries a response dated %s", d.Date, d.ResponseDate),
					evidence:    map[string]string{"disputeDate": d.Date, "responseDate": d.ResponseDate},
					confidence:  90,
				}
			}
		}
		return nil
	},

	// ── Furnisher duties ───────────────────────────────────────────────

	"FD1": func(c *evalCtx) *match {
		if !c.hasLastRep {
			return nil
		}
		stale := days(c.now.Sub(c.lastReported))
		if stale <= 90 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("tradeline last updated %d days ago", stale),
			evidence:    c.evidence("lastReportedDate"),
			confidence:  85,
		}
	},

	"FD2": func(c *evalCtx) *match {
		if !c.isCollection() || c.hasDOFD {
			return nil
		}
		return &match{
			explanation: "collection furnished without a date of first delinquency",
			evidence:    c.evidence("accountType", "dofd"),
			confidence:  90,
		}
	},

	"FD3": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status+" "+c.remarks, "sold", "transferred") {
			return nil
		}
		if c.raw.Furnisher == "" || c.raw.OriginalCreditor == "" ||
			!strings.EqualFold(strings.TrimSpace(c.raw.Furnisher), strings.TrimSpace(c.raw.OriginalCreditor)) {
			return nil
		}
		return &match{
			explanation: "account marked sold but the original creditor still appears as the furnisher",
			evidence:    c.evidence("remarks", "furnisher", "originalCreditor"),
			confidence:  70,
		}
	},

	"FD4": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.remarks, "identity theft", "fraud") {
			return nil
		}
		if !c.isDerogatory() && (!c.hasBalance || c.balance <= 0) {
			return nil
		}
		return &match{
			explanation: "account continues reporting as collectible despite a fraud notation",
			evidence:    c.evidence("remarks", "accountStatus", "currentBalance"),
			confidence:  88,
		}
	},

	"FD5": func(c *evalCtx) *match {
		if !c.hasRemoval || !c.hasLastRep || !c.lastReported.After(c.removal) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("reported on %s, after the estimated removal date %s", c.raw.LastReportedDate, c.raw.EstimatedRemovalDate),
			evidence:    c.evidence("estimatedRemovalDate", "lastReportedDate"),
			confidence:  90,
		}
	},

	"FD6": func(c *evalCtx) *match {
		if !c.isCollection() || c.hasLastPay || !c.hasBalance || c.balance <= 0 {
			return nil
		}
		return &match{
			explanation: "active collection reports no last payment date",
			evidence:    c.evidence("accountType", "lastPaymentDate"),
			confidence:  65,
		}
	},

	"FD7": func(c *evalCtx) *match {
		if c.raw.Furnisher != "" {
			return nil
		}
		return &match{
			explanation: "tradeline does not identify the furnishing entity",
			evidence:    c.evidence("furnisher"),
			confidence:  80,
		}
	},

	"FD8": func(c *evalCtx) *match {
		if !c.isDerogatory() || c.hasLastRep || !c.hasOpened {
			return nil
		}
		return &match{
			explanation: "derogatory account has never reported an update since opening",
			evidence:    c.evidence("accountStatus", "lastReportedDate"),
			confidence:  60,
		}
	},

	"FD9": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.acctType, "revolving", "credit card") || c.hasLimit {
			return nil
		}
		if !c.hasBalance || c.balance <= 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("revolving account reports a balance of %s with no credit limit", money(c.balance)),
			evidence:    c.evidence("accountType", "creditLimit", "currentBalance"),
			confidence:  80,
		}
	},

	// ── Collection practices ───────────────────────────────────────────

	"CP1": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasDOFD || c.ageYears() <= float64(defaultSOLYears) {
			return nil
		}
		if !c.hasBalance || c.balance <= 0 || fields.ContainsAny(c.remarks, "time-barred", "time barred") {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("active collection on a debt %.1f years past first delinquency with no time-barred disclosure", c.ageYears()),
			evidence:    c.evidence("dofd", "accountStatus", "currentBalance"),
			confidence:  78,
		}
	},

	"CP2": func(c *evalCtx) *match {
		if !c.isCollection() {
			return nil
		}
		rate, ok := impliedAnnualRate(c)
		if !ok || rate <= defaultRateCap {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection balance growth implies roughly %.0f%% annual accrual", rate*100),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  80,
		}
	},

	"CP3": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasBalance || !c.hasOriginal || c.original <= 0 {
			return nil
		}
		if c.balance <= c.original || fields.ContainsAny(c.remarks, "interest") {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection balance %s exceeds the original amount %s with no accrual explained", money(c.balance), money(c.original)),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  70,
		}
	},

	"CP4": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasOpened || !c.hasDOFD || !c.hasLastRep {
			return nil
		}
		if !c.opened.After(c.dofd.AddDate(2, 0, 0)) || days(c.now.Sub(c.lastReported)) > 183 {
			return nil
		}
		return &match{
			explanation: "collection surfaced years after the delinquency with only recent reporting activity",
			evidence:    c.evidence("dateOpened", "dofd", "lastReportedDate"),
			confidence:  72,
		}
	},

	"CP5": func(c *evalCtx) *match {
		if c.raw.OriginalCreditor == "" || c.raw.Furnisher == "" {
			return nil
		}
		for _, h := range c.opt.Historical {
			if h.Furnisher == "" || h.OriginalCreditor == "" {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(h.OriginalCreditor), strings.TrimSpace(c.raw.OriginalCreditor)) &&
				!strings.EqualFold(strings.TrimSpace(h.Furnisher), strings.TrimSpace(c.raw.Furnisher)) {
				return &match{
					explanation: fmt.Sprintf("the same %s debt appears under collectors %q and %q", c.raw.OriginalCreditor, h.Furnisher, c.raw.Furnisher),
					evidence:    map[string]string{"originalCreditor": c.raw.OriginalCreditor, "furnisher": c.raw.Furnisher, "priorFurnisher": h.Furnisher},
					confidence:  75,
					custody:     true,
				}
			}
		}
		return nil
	},

	"CP6": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.remarks, "legal action", "attorney", "lawsuit", "litigation") {
			return nil
		}
		if !c.hasDOFD || c.ageYears() <= float64(defaultSOLYears) {
			return nil
		}
		return &match{
			explanation: "litigation threat noted on a debt past the default limitations period",
			evidence:    c.evidence("remarks", "dofd"),
			confidence:  65,
		}
	},

	"CP7": func(c *evalCtx) *match {
		if !c.isCollection() || !c.hasDOFD || c.ageYears() <= float64(defaultSOLYears) {
			return nil
		}
		if !c.hasBalance || !c.hasOriginal || c.original <= 0 || c.balance <= c.original {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("balance %s exceeds the original amount %s on a time-barred debt", money(c.balance), money(c.original)),
			evidence:    c.evidence("dofd", "currentBalance", "originalAmount"),
			confidence:  75,
		}
	},

	"CP8": func(c *evalCtx) *match {
		if !c.isCollection() || c.hasOriginal || !c.hasBalance || c.balance < 1000 {
			return nil
		}
		if c.balance != float64(int(c.balance)) || int(c.balance)%1000 != 0 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection balance of %s is an even thousand with no original amount furnished", money(c.balance)),
			evidence:    c.evidence("currentBalance", "originalAmount"),
			confidence:  40,
		}
	},

	// ── Status inconsistency ───────────────────────────────────────────

	"SI1": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status, "open", "current") || !c.hasCO {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("status %q alongside a charge-off date of %s", c.status, c.raw.ChargeOffDate),
			evidence:    c.evidence("accountStatus", "chargeOffDate"),
			confidence:  88,
		}
	},

	"SI2": func(c *evalCtx) *match {
		if c.hasCO || !fields.ContainsAny(c.status, "charge off", "charged off", "chargeoff", "charge-off") {
			return nil
		}
		return &match{
			explanation: "charged-off status with no charge-off date furnished",
			evidence:    c.evidence("accountStatus", "chargeOffDate"),
			confidence:  85,
		}
	},

	"SI3": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.status, "closed") || !c.hasLastPay || days(c.now.Sub(c.lastPayment)) > 183 {
			return nil
		}
		return &match{
			explanation: "closed account shows payment activity within the last six months",
			evidence:    c.evidence("accountStatus", "lastPaymentDate"),
			confidence:  70,
		}
	},

	"SI4": func(c *evalCtx) *match {
		if !c.isCollection() || !fields.ContainsAny(c.status, "current", "pays as agreed", "paid as agreed") {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("collection account reports status %q", c.status),
			evidence:    c.evidence("accountType", "accountStatus"),
			confidence:  85,
		}
	},

	"SI5": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.remarks, "charge off", "charged off", "collection") {
			return nil
		}
		if !fields.ContainsAny(c.status, "current", "good standing", "pays as agreed") {
			return nil
		}
		return &match{
			explanation: "remarks describe a derogatory account while the status shows good standing",
			evidence:    c.evidence("accountStatus", "remarks"),
			confidence:  75,
		}
	},

	"SI6": func(c *evalCtx) *match {
		if !fields.ContainsAny(c.remarks, "dispute") || fields.ContainsAny(c.status, "dispute") {
			return nil
		}
		return &match{
			explanation: "remarks reference a dispute the status does not reflect",
			evidence:    c.evidence("accountStatus", "remarks"),
			confidence:  60,
		}
	},

	"SI7": func(c *evalCtx) *match {
		if c.hasOpened {
			return nil
		}
		return &match{
			explanation: "no usable account open date reported",
			evidence:    c.evidence("dateOpened"),
			confidence:  70,
		}
	},

	"SI8": func(c *evalCtx) *match {
		if c.status != "" || c.acctType == "" || !c.hasBalance {
			return nil
		}
		return &match{
			explanation: "tradeline reports a balance with no account status",
			evidence:    c.evidence("accountStatus"),
			confidence:  70,
		}
	},

	// ── Cross-bureau ───────────────────────────────────────────────────

	"XB1": func(c *evalCtx) *match {
		vals := bureauDates(c.opt.Bureaus, "dofd")
		if len(c.opt.Bureaus) < 2 || len(distinctDates(vals)) < 2 {
			return nil
		}
		return &match{
			explanation: "bureaus report different dates of first delinquency for the same debt",
			evidence:    bureauRaw(c.opt.Bureaus, "dofd"),
			confidence:  95,
			crossBureau: true,
		}
	},

	"XB2": func(c *evalCtx) *match {
		if len(c.opt.Bureaus) < 2 {
			return nil
		}
		lo, hi, n := bureauAmountSpread(c.opt.Bureaus, "currentBalance")
		if n < 2 || hi-lo <= 100 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("reported balances spread from %s to %s across bureaus", money(lo), money(hi)),
			evidence:    bureauRaw(c.opt.Bureaus, "currentBalance"),
			confidence:  90,
			crossBureau: true,
		}
	},

	"XB3": func(c *evalCtx) *match {
		if len(c.opt.Bureaus) < 2 {
			return nil
		}
		seen := map[string]bool{}
		for _, b := range c.opt.Bureaus {
			if v := strings.ToLower(strings.TrimSpace(b.Fields.AccountStatus)); v != "" {
				seen[v] = true
			}
		}
		if len(seen) < 2 {
			return nil
		}
		return &match{
			explanation: "bureaus report conflicting account statuses",
			evidence:    bureauRaw(c.opt.Bureaus, "accountStatus"),
			confidence:  80,
			crossBureau: true,
		}
	},

	"XB4": func(c *evalCtx) *match {
		if len(c.opt.Bureaus) < 2 {
			return nil
		}
		have, miss := 0, 0
		for _, b := range c.opt.Bureaus {
			if strings.TrimSpace(b.Fields.DOFD) != "" {
				have++
			} else {
				miss++
			}
		}
		if have == 0 || miss == 0 {
			return nil
		}
		return &match{
			explanation: "the DOFD is furnished to some bureaus and withheld from others",
			evidence:    bureauRaw(c.opt.Bureaus, "dofd"),
			confidence:  75,
			crossBureau: true,
		}
	},

	"XB5": func(c *evalCtx) *match {
		if len(c.opt.Bureaus) < 2 {
			return nil
		}
		dates := distinctDates(bureauDates(c.opt.Bureaus, "estimatedRemovalDate"))
		if len(dates) < 2 {
			return nil
		}
		lo, hi := dates[0], dates[len(dates)-1]
		if days(hi.Sub(lo)) <= 60 {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("estimated removal dates differ by %d days across bureaus", days(hi.Sub(lo))),
			evidence:    bureauRaw(c.opt.Bureaus, "estimatedRemovalDate"),
			confidence:  85,
			crossBureau: true,
		}
	},

	// ── Zombie debt ────────────────────────────────────────────────────

	"ZD1": func(c *evalCtx) *match {
		if !c.beyondWindow() {
			return nil
		}
		recent := (c.hasLastPay && days(c.now.Sub(c.lastPayment)) <= 183) ||
			(c.hasLastRep && days(c.now.Sub(c.lastReported)) <= 183)
		if !recent {
			return nil
		}
		return &match{
			explanation: "expired debt shows activity within the last six months",
			evidence:    c.evidence("dofd", "lastPaymentDate", "lastReportedDate"),
			confidence:  92,
			custody:     true,
		}
	},

	"ZD2": func(c *evalCtx) *match {
		if !c.beyondWindow() || !c.hasBalance || !c.hasOriginal || c.original <= 0 || c.balance <= c.original {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("expired debt reports a balance of %s against an original amount of %s", money(c.balance), money(c.original)),
			evidence:    c.evidence("dofd", "currentBalance", "originalAmount"),
			confidence:  88,
		}
	},

	"ZD3": func(c *evalCtx) *match {
		if len(c.opt.Bureaus) < 2 {
			return nil
		}
		dates := distinctDates(bureauDates(c.opt.Bureaus, "dofd"))
		if len(dates) < 2 {
			return nil
		}
		earliest, latest := dates[0], dates[len(dates)-1]
		expired := c.now.After(earliest.AddDate(7, 0, 0).AddDate(0, 0, 180))
		alive := !c.now.After(latest.AddDate(7, 0, 0).AddDate(0, 0, 180))
		if !expired || !alive {
			return nil
		}
		return &match{
			explanation: "the debt is past the reporting window under the earliest bureau's DOFD",
			evidence:    bureauRaw(c.opt.Bureaus, "dofd"),
			confidence:  88,
			crossBureau: true,
		}
	},

	// ── State law ──────────────────────────────────────────────────────

	"ST1": func(c *evalCtx) *match {
		st := stateCode(c)
		if st == "" || !c.isCollection() || !c.hasDOFD || !c.hasBalance || c.balance <= 0 {
			return nil
		}
		limit := solYears(st)
		if c.ageYears() <= float64(limit) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("debt is %.1f years past first delinquency, beyond %s's %d-year limitations period", c.ageYears(), st, limit),
			evidence:    c.evidence("dofd", "state", "currentBalance"),
			confidence:  80,
		}
	},

	"ST2": func(c *evalCtx) *match {
		st := stateCode(c)
		if st == "" {
			return nil
		}
		rate, ok := impliedAnnualRate(c)
		if !ok || rate <= rateCap(st) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("implied annual rate of %.0f%% exceeds %s's %.0f%% cap", rate*100, st, rateCap(st)*100),
			evidence:    c.evidence("currentBalance", "originalAmount", "state"),
			confidence:  75,
		}
	},

	"ST3": func(c *evalCtx) *match {
		st := stateCode(c)
		if st == "" || !debtBuyerLicenseStates[st] {
			return nil
		}
		if !c.isCollection() || !isDebtBuyer(c.raw.Furnisher) {
			return nil
		}
		return &match{
			explanation: fmt.Sprintf("debt buyer %q collecting in %s, which licenses debt buyers", c.raw.Furnisher, st),
			evidence:    c.evidence("furnisher", "state"),
			confidence:  70,
			custody:     true,
		}
	},
}

// ── Shared predicate helpers ───────────────────────────────────────────

func statusSatisfied(status string) bool {
	return fields.ContainsAny(status, "paid", "settled")
}

func isDebtBuyer(furnisher string) bool {
	if furnisher == "" {
		return false
	}
	return fields.ContainsAny(furnisher, signals.KnownDebtBuyers...)
}

func balanceRatio(c *evalCtx) (float64, bool) {
	if !c.hasBalance || !c.hasOriginal || c.original <= 0 {
		return 0, false
	}
	return c.balance / c.original, true
}

// impliedAnnualRate estimates simple annual growth from the original amount
// to the balance over the account's life, anchored on the charge-off date,
// then the DOFD, then the open date. Periods under six months are too short
// to annualize.
func impliedAnnualRate(c *evalCtx) (float64, bool) {
	r, ok := balanceRatio(c)
	if !ok || r <= 1 {
		return 0, false
	}
	var anchor time.Time
	switch {
	case c.hasCO:
		anchor = c.chargeOff
	case c.hasDOFD:
		anchor = c.dofd
	case c.hasOpened:
		anchor = c.opened
	default:
		return 0, false
	}
	years := fields.YearsBetween(anchor, c.now)
	if years < 0.5 {
		return 0, false
	}
	return (r - 1) / years, true
}

func stateCode(c *evalCtx) string {
	if !c.opt.StateRules {
		return ""
	}
	st := strings.ToUpper(strings.TrimSpace(c.opt.State))
	if st == "" {
		st = strings.ToUpper(strings.TrimSpace(c.raw.State))
	}
	if len(st) != 2 {
		return ""
	}
	return st
}

// overdueDispute fires when any dispute has gone unanswered, or was answered,
// beyond minDays but not beyond maxDays (which routes 30-45 day lapses to one
// rule and 45+ lapses to another).
func overdueDispute(c *evalCtx, minDays, maxDays, conf int) *match {
	for _, d := range c.opt.Disputes {
		filed, ok := fields.ParseDate(d.Date)
		if !ok {
			continue
		}
		var elapsed int
		if resp, ok := fields.ParseDate(d.ResponseDate); ok {
			elapsed = days(resp.Sub(filed))
		} else if strings.TrimSpace(d.ResponseDate) == "" {
			elapsed = days(c.now.Sub(filed))
		} else {
			continue
		}
		if elapsed > minDays && elapsed <= maxDays {
			return &match{
				explanation: fmt.Sprintf("dispute filed %s went %d days without resolution", d.Date, elapsed),
				evidence:    map[string]string{"disputeDate": d.Date, "responseDate": d.ResponseDate, "elapsedDays": fmt.Sprintf("%d", elapsed)},
				confidence:  conf,
			}
		}
	}
	return nil
}

func disputeVerified(ds []domain.DisputeRecord) bool {
	for _, d := range ds {
		if fields.ContainsAny(d.Result, "verified") {
			return true
		}
	}
	return false
}

func bureauRaw(bs []domain.BureauSnapshot, key string) map[string]string {
	out := make(map[string]string, len(bs))
	for _, b := range bs {
		if v := strings.TrimSpace(b.Fields.FieldMap()[key]); v != "" {
			out[b.Bureau] = v
		}
	}
	return out
}

func bureauDates(bs []domain.BureauSnapshot, key string) []time.Time {
	var out []time.Time
	for _, b := range bs {
		if t, ok := fields.ParseDate(b.Fields.FieldMap()[key]); ok {
			out = append(out, t)
		}
	}
	return out
}

// distinctDates returns the unique dates sorted ascending.
func distinctDates(ts []time.Time) []time.Time {
	var out []time.Time
	for _, t := range ts {
		dup := false
		for _, u := range out {
			if t.Equal(u) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func bureauAmountSpread(bs []domain.BureauSnapshot, key string) (lo, hi float64, n int) {
	for _, b := range bs {
		v, ok := fields.ParseAmount(b.Fields.FieldMap()[key])
		if !ok {
			continue
		}
		if n == 0 || v < lo {
			lo = v
		}
		if n == 0 || v > hi {
			hi = v
		}
		n++
	}
	return lo, hi, n
}
