package rule

import (
	"errors"
	"fmt"
)

// Errors raised at registration time.
var (
	ErrInvalidRule     = errors.New("invalid rule")
	ErrNoRuleArguments = errors.New("no rule arguments")
)

// Filter is consulted with the complete candidate text before a rule's matcher
// is tried. If it returns false, the rule does not take part in the match.
type Filter func(candidate string) bool

// Rule is a matching rule. Rules are created by a Table and must not be modified
// afterwards.
type Rule struct {
	matcher Matcher
	typ     string
	filter  Filter
	index   int // registration order
}

// Type returns the token type label of a rule.
func (r *Rule) Type() string {
	return r.typ
}

// Matcher returns the text matcher of a rule.
func (r *Rule) Matcher() Matcher {
	return r.matcher
}

// Index returns the position of r in its table, starting at 0.
func (r *Rule) Index() int {
	return r.index
}

// accepts returns false if r has a filter rejecting candidate.
func (r *Rule) accepts(candidate string) bool {
	return r.filter == nil || r.filter(candidate)
}

func (r *Rule) String() string {
	return fmt.Sprintf("rule #%d[%s]", r.index, r.typ)
}

// Table is an append-only sequence of rules.
// The zero value is an empty table ready to use.
type Table struct {
	rules []*Rule
}

// NewTable creates an empty rule table.
func NewTable() *Table {
	return &Table{}
}

// Register appends a rule to the table. Type labels need not be unique.
// Calling Register with neither matcher nor type label fails with
// ErrNoRuleArguments. A nil matcher or an empty type label alone make Register
// fail with an error wrapping ErrInvalidRule.
func (t *Table) Register(m Matcher, typ string, filter Filter) (*Rule, error) {
	if m == nil && typ == "" {
		return nil, fmt.Errorf("%w: neither pattern nor type label given", ErrNoRuleArguments)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: rule %q has no pattern", ErrInvalidRule, typ)
	}
	if typ == "" {
		return nil, fmt.Errorf("%w: rule has empty type label", ErrInvalidRule)
	}
	r := &Rule{
		matcher: m,
		typ:     typ,
		filter:  filter,
		index:   len(t.rules),
	}
	t.rules = append(t.rules, r)
	tracer().Debugf("registered %s", r)
	return r, nil
}

// RegisterBuiltin appends one of the built-in rules, identified by name
// (see Builtin).
func (t *Table) RegisterBuiltin(name string, filter Filter) (*Rule, error) {
	m, typ, err := Builtin(name)
	if err != nil {
		return nil, err
	}
	return t.Register(m, typ, filter)
}

// Len returns the number of rules in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Rule returns the i-th registered rule.
func (t *Table) Rule(i int) *Rule {
	return t.rules[i]
}

// Each calls f for every rule in registration order, until f returns false.
func (t *Table) Each(f func(r *Rule) bool) {
	if t == nil {
		return
	}
	for _, r := range t.rules {
		if !f(r) {
			return
		}
	}
}
