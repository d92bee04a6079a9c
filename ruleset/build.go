package ruleset

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/chunklex/rule"
	"github.com/npillmayer/chunklex/rule/lexmach"
	"github.com/npillmayer/chunklex/tokenizer"
)

// Build creates a tokenizer from a description. Options given by the description
// are applied first, so opts may override them.
func (d *Description) Build(opts ...tokenizer.Option) (*tokenizer.Tokenizer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	policy, _ := d.deadEndPolicy()
	all := []tokenizer.Option{tokenizer.StepSize(d.Step), tokenizer.OnDeadEnd(policy)}
	if d.Split != "" {
		sep, err := tokenizer.SplitOn(d.Split)
		if err != nil {
			return nil, err
		}
		all = append(all, tokenizer.Split(sep))
	}
	t := tokenizer.New(append(all, opts...)...)
	for i, r := range d.Rules {
		if err := r.addTo(t); err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i+1, err)
		}
	}
	t.Ignore(d.Ignore...)
	tracer().Debugf("built tokenizer with %d rules, ignoring %v", t.Rules().Len(), t.Ignored())
	return t, nil
}

func (r Rule) addTo(t *tokenizer.Tokenizer) error {
	filter, err := r.filter()
	if err != nil {
		return err
	}
	if r.Builtin != "" {
		m, typ, err := rule.Builtin(r.Builtin)
		if err != nil {
			return err
		}
		if r.Type != "" {
			typ = r.Type
		}
		return t.AddRule(m, typ, filter)
	}
	m, err := r.matcher()
	if err != nil {
		return err
	}
	return t.AddRule(m, r.Type, filter)
}

func (r Rule) matcher() (rule.Matcher, error) {
	switch {
	case r.Literal != "":
		return rule.Literal(r.Literal), nil
	case len(r.Literals) > 0:
		return lexmach.Literals(r.Literals...)
	}
	switch r.Mode {
	case "whole":
		return rule.Whole(r.Pattern)
	case "dfa":
		return lexmach.New(r.Pattern)
	}
	return rule.Prefix(r.Pattern)
}

func (r Rule) filter() (rule.Filter, error) {
	if r.Reject == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`^(?:` + r.Reject + `)`)
	if err != nil {
		return nil, fmt.Errorf("cannot compile reject pattern %q: %w", r.Reject, err)
	}
	return func(candidate string) bool {
		return !re.MatchString(candidate)
	}, nil
}
