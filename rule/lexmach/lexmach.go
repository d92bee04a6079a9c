package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/chunklex/rule"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'chunklex.rule'.
func tracer() tracing.Trace {
	return tracing.Select("chunklex.rule")
}

// DFA is a matcher running a lexmachine DFA.
type DFA struct {
	lexer *lexmachine.Lexer
	exprs []string
}

var _ rule.Matcher = (*DFA)(nil)

// New compiles one or more patterns into a DFA matcher. The matcher accepts the
// longest prefix matched by any of the patterns.
//
// New will return an error if compiling the DFA failed.
func New(exprs ...string) (*DFA, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("%w: DFA matcher needs at least one pattern", rule.ErrNoRuleArguments)
	}
	dfa := &DFA{
		lexer: lexmachine.NewLexer(),
		exprs: exprs,
	}
	for _, expr := range exprs {
		dfa.lexer.Add([]byte(expr), accept)
	}
	if err := dfa.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, fmt.Errorf("cannot compile DFA for %v: %w", exprs, err)
	}
	return dfa, nil
}

// Literals creates a DFA matcher for a set of fixed strings, e.g. keywords or
// operators. Punctuation is escaped, so literals may contain regular expression
// operators.
func Literals(literals ...string) (*DFA, error) {
	exprs := make([]string, 0, len(literals))
	for _, lit := range literals {
		if lit == "" {
			return nil, fmt.Errorf("%w: empty literal", rule.ErrInvalidRule)
		}
		exprs = append(exprs, escape(lit))
	}
	return New(exprs...)
}

// Match is part of the rule.Matcher interface.
func (dfa *DFA) Match(s string) int {
	if s == "" {
		return -1
	}
	scanner, err := dfa.lexer.Scanner([]byte(s))
	if err != nil {
		return -1
	}
	tok, err, eof := scanner.Next()
	if err != nil {
		if _, is := err.(*machines.UnconsumedInput); !is {
			tracer().Errorf("DFA error: %v", err)
		}
		return -1
	}
	if eof || tok == nil {
		return -1
	}
	token := tok.(*lexmachine.Token)
	if token.TC != 0 {
		return -1
	}
	return len(token.Lexeme)
}

func (dfa *DFA) String() string {
	return "dfa" + fmt.Sprint(dfa.exprs)
}

// accept is the lexmachine action for every pattern: wrap the match into a token.
func accept(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(0, string(m.Bytes), m), nil
}

// escape quotes every rune of lit which is neither a letter nor a digit.
func escape(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
