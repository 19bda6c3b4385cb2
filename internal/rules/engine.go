// Package rules evaluates the violation rule catalog against tradeline data.
package rules

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/fields"
)

// Options carries the evaluation context beyond the tradeline itself.
// Cross-bureau rules fire only when at least two bureau snapshots are
// present; state-law rules fire only when StateRules is set and a usable
// state code is supplied.
type Options struct {
	Historical []domain.Tradeline
	Bureaus    []domain.BureauSnapshot
	Disputes   []domain.DisputeRecord
	StateRules bool
	State      string

	// Now anchors all date arithmetic. Zero means time.Now().UTC.
	Now time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now().UTC()
	}
	return o.Now
}

// match is a predicate's positive finding.
type match struct {
	explanation string
	evidence    map[string]string
	confidence  int
	crossBureau bool
	custody     bool
}

type predicate func(*evalCtx) *match

// Evaluator runs the rule catalog. Definitions can be swapped at runtime
// with Reload; evaluation takes a read lock so reloads never tear a pass.
type Evaluator struct {
	mu    sync.RWMutex
	defs  map[string]domain.RuleDefinition
	order []string
}

// NewEvaluator returns an evaluator loaded with the given definitions.
// Definitions without a registered predicate are retained for catalog
// queries but never fire.
func NewEvaluator(defs []domain.RuleDefinition) *Evaluator {
	e := &Evaluator{}
	e.Reload(defs)
	return e
}

// Reload replaces the loaded catalog.
func (e *Evaluator) Reload(defs []domain.RuleDefinition) {
	m := make(map[string]domain.RuleDefinition, len(defs))
	order := make([]string, 0, len(defs))
	for _, d := range defs {
		if _, dup := m[d.ID]; !dup {
			order = append(order, d.ID)
		}
		m[d.ID] = d
	}
	e.mu.Lock()
	e.defs = m
	e.order = order
	e.mu.Unlock()
}

// Count returns the number of loaded definitions.
func (e *Evaluator) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.defs)
}

// Definition returns a single rule definition by id.
func (e *Evaluator) Definition(id string) (domain.RuleDefinition, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	d, ok := e.defs[id]
	return d, ok
}

// Definitions returns all loaded definitions in catalog order.
func (e *Evaluator) Definitions() []domain.RuleDefinition {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.RuleDefinition, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.defs[id])
	}
	return out
}

// Evaluate runs every loaded rule against the tradeline. A panicking
// predicate suppresses only its own rule. Flags come back ordered by
// severity, then forensic confidence, then id.
func (e *Evaluator) Evaluate(f domain.Tradeline, opt Options) []domain.RuleFlag {
	// An entirely empty tradeline with nothing to compare against is
	// "nothing found", not a field-by-field absence to flag. Bureau,
	// historical, and dispute data still evaluate on their own.
	if f.Empty() && len(opt.Bureaus) == 0 && len(opt.Historical) == 0 && len(opt.Disputes) == 0 {
		return nil
	}
	ctx := newEvalCtx(f, opt)

	e.mu.RLock()
	order := e.order
	defs := e.defs
	e.mu.RUnlock()

	var flags []domain.RuleFlag
	for _, id := range order {
		def := defs[id]
		pred, ok := predicates[id]
		if !ok {
			continue
		}
		if m := runPredicate(pred, ctx); m != nil {
			flags = append(flags, newFlag(def, m))
		}
	}

	SortFlags(flags)
	return flags
}

// SortFlags orders flags by severity, then forensic confidence, then rule
// id. Callers merging flag slices from multiple engines re-sort with this
// to keep the combined order stable.
func SortFlags(flags []domain.RuleFlag) {
	sort.SliceStable(flags, func(i, j int) bool {
		ri, rj := domain.SeverityRank(flags[i].Severity), domain.SeverityRank(flags[j].Severity)
		if ri != rj {
			return ri > rj
		}
		if flags[i].ForensicConfidence != flags[j].ForensicConfidence {
			return flags[i].ForensicConfidence > flags[j].ForensicConfidence
		}
		return flags[i].RuleID < flags[j].RuleID
	})
}

// runPredicate isolates a single rule: a panic inside a predicate drops
// that rule's finding and nothing else.
func runPredicate(p predicate, ctx *evalCtx) (m *match) {
	defer func() {
		if recover() != nil {
			m = nil
		}
	}()
	return p(ctx)
}

func newFlag(def domain.RuleDefinition, m *match) domain.RuleFlag {
	conf := m.confidence
	if conf == 0 {
		conf = 90
	}
	return domain.RuleFlag{
		RuleID:              def.ID,
		Name:                def.Name,
		Category:            def.Category,
		Severity:            def.Severity,
		SuccessProbability:  def.SuccessProbability,
		WillfulnessScore:    def.WillfulnessScore,
		Statutory:           def.Statutory,
		Rationale:           def.Rationale,
		Citations:           def.Citations,
		Remediation:         def.Remediation,
		RelatedRules:        def.RelatedRules,
		Explanation:         m.explanation,
		EvidenceValues:      m.evidence,
		ForensicConfidence:  conf,
		CrossBureau:         m.crossBureau,
		ChainOfCustodyIssue: m.custody,
	}
}

// evalCtx is the parsed view of one tradeline plus its evaluation context.
// Predicates only read it.
type evalCtx struct {
	raw domain.Tradeline
	opt Options
	now time.Time

	opened, dofd, chargeOff   time.Time
	lastPayment, lastReported time.Time
	removal                   time.Time
	hasOpened, hasDOFD, hasCO bool
	hasLastPay, hasLastRep    bool
	hasRemoval                bool

	balance, original, limit float64
	hasBalance, hasOriginal  bool
	hasLimit                 bool

	status, acctType, remarks string
	descriptive               string
}

func newEvalCtx(f domain.Tradeline, opt Options) *evalCtx {
	c := &evalCtx{raw: f, opt: opt, now: opt.now()}
	c.opened, c.hasOpened = fields.ParseDate(f.DateOpened)
	c.dofd, c.hasDOFD = fields.ParseDate(f.DOFD)
	c.chargeOff, c.hasCO = fields.ParseDate(f.ChargeOffDate)
	c.lastPayment, c.hasLastPay = fields.ParseDate(f.LastPaymentDate)
	c.lastReported, c.hasLastRep = fields.ParseDate(f.LastReportedDate)
	c.removal, c.hasRemoval = fields.ParseDate(f.EstimatedRemovalDate)
	c.balance, c.hasBalance = fields.ParseAmount(f.CurrentBalance)
	c.original, c.hasOriginal = fields.ParseAmount(f.OriginalAmount)
	c.limit, c.hasLimit = fields.ParseAmount(f.CreditLimit)
	c.status = f.AccountStatus
	c.acctType = f.AccountType
	c.remarks = f.Remarks
	c.descriptive = f.AccountType + " " + f.AccountStatus + " " + f.Remarks
	return c
}

func (c *evalCtx) isCollection() bool {
	return fields.ContainsAny(c.acctType+" "+c.status, "collection")
}

func (c *evalCtx) isDerogatory() bool {
	return c.isCollection() ||
		fields.ContainsAny(c.descriptive, "charge off", "charged off", "chargeoff", "charge-off")
}

func (c *evalCtx) isMedical() bool {
	return fields.ContainsAny(c.descriptive+" "+c.raw.OriginalCreditor, "medical", "hospital", "clinic", "physician", "health")
}

func (c *evalCtx) isStudentLoan() bool {
	return fields.ContainsAny(c.descriptive+" "+c.raw.OriginalCreditor, "student loan", "student ln", "education", "sallie mae", "navient", "dept of ed", "dept of education")
}

func (c *evalCtx) windowEnd() time.Time {
	return c.dofd.AddDate(7, 0, 0).AddDate(0, 0, 180)
}

func (c *evalCtx) beyondWindow() bool {
	return c.hasDOFD && c.now.After(c.windowEnd())
}

func (c *evalCtx) ageYears() float64 {
	return fields.YearsBetween(c.dofd, c.now)
}

func (c *evalCtx) evidence(keys ...string) map[string]string {
	fm := c.raw.FieldMap()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = fm[k]
	}
	return out
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

func days(d time.Duration) int { return int(d.Hours() / 24) }
