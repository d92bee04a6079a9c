package rule

import (
	"fmt"
	"sort"
)

// Names of the built-in rules. Each built-in rule produces tokens with the
// type label equal to its name.
const (
	Whitespace = "whitespace"
	Word       = "word"
	Number     = "number"
)

var builtins = map[string]Matcher{
	Whitespace: MustPrefix(`\s+`),
	Word:       MustPrefix(`\w+`),
	Number:     MustPrefix(`\d+(\.\d+)?`),
}

// Builtin returns the matcher and type label of a built-in rule.
// An empty name yields ErrNoRuleArguments, an unknown one ErrInvalidRule.
func Builtin(name string) (Matcher, string, error) {
	if name == "" {
		return nil, "", fmt.Errorf("%w: neither pattern nor built-in rule name given", ErrNoRuleArguments)
	}
	m, ok := builtins[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown built-in rule %q", ErrInvalidRule, name)
	}
	return m, name, nil
}

// Builtins lists the names of the built-in rules.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
