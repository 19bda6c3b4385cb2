package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/opensource-credit/harrier/internal/domain"
)

// CustomEngine compiles and evaluates operator-defined CEL rules against
// tradeline data. Expressions must evaluate to a boolean; true fires the
// rule. Programs are compiled at load time, so evaluation is allocation
// of an activation map plus a program call.
type CustomEngine struct {
	mu       sync.RWMutex
	env      *cel.Env
	compiled map[string]*CompiledCustomRule
}

// CompiledCustomRule holds a pre-compiled CEL program with its config.
type CompiledCustomRule struct {
	Config  *domain.CustomRuleConfig
	Program cel.Program
}

// NewCustomEngine creates the engine with the tradeline variable set.
func NewCustomEngine() (*CustomEngine, error) {
	env, err := cel.NewEnv(
		cel.Variable("tl", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("balance", cel.DoubleType),
		cel.Variable("original_amount", cel.DoubleType),
		cel.Variable("credit_limit", cel.DoubleType),
		cel.Variable("age_years", cel.DoubleType),
		cel.Variable("account_type", cel.StringType),
		cel.Variable("account_status", cel.StringType),
		cel.Variable("remarks", cel.StringType),
		cel.Variable("furnisher", cel.StringType),
		cel.Variable("original_creditor", cel.StringType),
		cel.Variable("state", cel.StringType),
		cel.Variable("signals", cel.ListType(cel.StringType)),
		cel.Variable("dispute_count", cel.IntType),
		cel.Variable("bureau_count", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &CustomEngine{
		env:      env,
		compiled: make(map[string]*CompiledCustomRule),
	}, nil
}

// Validate compiles a rule without loading it.
func (e *CustomEngine) Validate(cfg *domain.CustomRuleConfig) error {
	if cfg == nil {
		return fmt.Errorf("rule config is required")
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, err := e.compile(cfg)
	return err
}

// Load compiles and loads a rule into the engine.
func (e *CustomEngine) Load(cfg *domain.CustomRuleConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	compiled, err := e.compile(cfg)
	if err != nil {
		return err
	}
	e.compiled[cfg.ID] = compiled
	return nil
}

// LoadAll compiles and loads every enabled rule.
func (e *CustomEngine) LoadAll(cfgs []*domain.CustomRuleConfig) error {
	for _, cfg := range cfgs {
		if cfg.Enabled {
			if err := e.Load(cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove unloads a rule by id.
func (e *CustomEngine) Remove(id string) {
	e.mu.Lock()
	delete(e.compiled, id)
	e.mu.Unlock()
}

// Count returns the number of loaded rules.
func (e *CustomEngine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.compiled)
}

func (e *CustomEngine) compile(cfg *domain.CustomRuleConfig) (*CompiledCustomRule, error) {
	if cfg.Expression == "" {
		return nil, fmt.Errorf("rule %s: expression is required", cfg.ID)
	}
	ast, issues := e.env.Compile(cfg.Expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("rule %s: compile failed: %w", cfg.ID, issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("rule %s: program construction failed: %w", cfg.ID, err)
	}
	return &CompiledCustomRule{Config: cfg, Program: prg}, nil
}

// Evaluate runs all loaded custom rules against a tradeline. An expression
// that errors at runtime suppresses only its own rule.
func (e *CustomEngine) Evaluate(f domain.Tradeline, sigs domain.SignalSet, opt Options) []domain.RuleFlag {
	e.mu.RLock()
	rules := make([]*CompiledCustomRule, 0, len(e.compiled))
	for _, r := range e.compiled {
		rules = append(rules, r)
	}
	e.mu.RUnlock()

	if len(rules) == 0 {
		return nil
	}

	c := newEvalCtx(f, opt)
	sigNames := make([]string, 0, len(sigs))
	for _, s := range sigs.Sorted() {
		sigNames = append(sigNames, string(s))
	}

	activation := map[string]any{
		"tl":                f.FieldMap(),
		"balance":           c.balance,
		"original_amount":   c.original,
		"credit_limit":      c.limit,
		"age_years":         c.ageYears(),
		"account_type":      f.AccountType,
		"account_status":    f.AccountStatus,
		"remarks":           f.Remarks,
		"furnisher":         f.Furnisher,
		"original_creditor": f.OriginalCreditor,
		"state":             f.State,
		"signals":           sigNames,
		"dispute_count":     len(opt.Disputes),
		"bureau_count":      len(opt.Bureaus),
	}

	var flags []domain.RuleFlag
	for _, r := range rules {
		out, _, err := r.Program.Eval(activation)
		if err != nil || !toBool(out) {
			continue
		}
		cfg := r.Config
		flags = append(flags, domain.RuleFlag{
			RuleID:             cfg.ID,
			Name:               cfg.Name,
			Category:           domain.CategoryCustom,
			Severity:           cfg.Severity,
			WillfulnessScore:   cfg.WillfulnessScore,
			Statutory:          cfg.Statutory,
			Rationale:          cfg.Description,
			Citations:          []string{cfg.Citation},
			Remediation:        cfg.Remediation,
			Explanation:        fmt.Sprintf("custom rule expression matched: %s", cfg.Expression),
			EvidenceValues:     f.FieldMap(),
			ForensicConfidence: 70,
		})
	}
	return flags
}

func toBool(val ref.Val) bool {
	if b, ok := val.(types.Bool); ok {
		return bool(b)
	}
	return false
}
