package rule

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegisterInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	if _, err := table.Register(nil, "", nil); !errors.Is(err, ErrNoRuleArguments) {
		t.Errorf("expected call without arguments to be rejected with ErrNoRuleArguments, have %v", err)
	}
	if _, err := table.Register(nil, "number", nil); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected nil matcher to be rejected with ErrInvalidRule, have %v", err)
	}
	if _, err := table.Register(MustPrefix(`\d+`), "", nil); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected empty type to be rejected with ErrInvalidRule, have %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected table to stay empty, has %d rules", table.Len())
	}
}

func TestRegisterBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	for _, name := range Builtins() {
		r, err := table.RegisterBuiltin(name, nil)
		if err != nil {
			t.Fatal(err)
		}
		if r.Type() != name {
			t.Errorf("expected built-in rule %q to have type %q, has %q", name, name, r.Type())
		}
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 built-in rules, have %d", table.Len())
	}
	if _, err := table.RegisterBuiltin("", nil); !errors.Is(err, ErrNoRuleArguments) {
		t.Errorf("expected ErrNoRuleArguments, have %v", err)
	}
	if _, err := table.RegisterBuiltin("float", nil); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule for unknown built-in, have %v", err)
	}
}

func TestDuplicateTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	table.Register(Literal("a"), "letter", nil)
	table.Register(Literal("b"), "letter", nil)
	if table.Len() != 2 {
		t.Errorf("expected duplicate type labels to be legal")
	}
	if table.Rule(1).Index() != 1 {
		t.Errorf("expected second rule to have index 1, has %d", table.Rule(1).Index())
	}
}

func TestMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	number, maybe := MustPrefix(`\d+`), MustPrefix(`\d+\.`)
	for i, order := range [][]Matcher{{number, maybe}, {maybe, number}} {
		table := NewTable()
		table.Register(order[0], typeOf(order[0], number), nil)
		table.Register(order[1], typeOf(order[1], number), nil)
		m, ok := table.LongestMatch("123.x")
		if !ok {
			t.Fatalf("order %d: expected a match", i)
		}
		if m.Rule.Type() != "maybe-float" || m.Length != 4 || m.All {
			t.Errorf("order %d: expected maybe-float/4, have %s/%d", i, m.Rule.Type(), m.Length)
		}
	}
}

func typeOf(m, number Matcher) string {
	if m == number {
		return "number"
	}
	return "maybe-float"
}

func TestTieGoesToFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	table.Register(MustPrefix(`[a-z]+`), "ident", nil)
	table.Register(Literal("if"), "keyword", nil)
	m, ok := table.LongestMatch("if x")
	if !ok || m.Rule.Type() != "ident" {
		t.Errorf("expected first registered rule to win a tie, have %v", m.Rule)
	}
	table = NewTable()
	table.Register(Literal("if"), "keyword", nil)
	table.Register(MustPrefix(`[a-z]+`), "ident", nil)
	m, _ = table.LongestMatch("if x")
	if m.Rule.Type() != "keyword" {
		t.Errorf("expected keyword, have %s", m.Rule.Type())
	}
	m, _ = table.LongestMatch("iffy")
	if m.Rule.Type() != "ident" || !m.All {
		t.Errorf("expected ident consuming everything, have %s/%v", m.Rule.Type(), m.All)
	}
}

func TestFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	noIdent := func(candidate string) bool {
		return !strings.ContainsAny(candidate, "abcdefghijklmnopqrstuvwxyz")
	}
	table.Register(MustPrefix(`\d+`), "number", noIdent)
	table.Register(MustPrefix(`\w+`), "word", nil)
	if m, _ := table.LongestMatch("12"); m.Rule.Type() != "number" {
		t.Errorf("expected number, have %s", m.Rule.Type())
	}
	if m, _ := table.LongestMatch("12ab"); m.Rule.Type() != "word" {
		t.Errorf("expected filter to disable number rule, have %s", m.Rule.Type())
	}
}

func TestNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	if _, ok := table.LongestMatch("Hello World!"); ok {
		t.Errorf("empty table must not match anything")
	}
	table.Register(MustPrefix(`x*`), "empty", nil)
	if _, ok := table.LongestMatch("abc"); ok {
		t.Errorf("empty matches must not count")
	}
	if _, ok := table.LongestMatch(""); ok {
		t.Errorf("empty candidate must not match")
	}
}

func TestWholeNotMonotonic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	// matches length 3 and 7, but nothing in between
	m := MustWhole(`abc|abcdefg`)
	for i, test := range []struct {
		input string
		l     int
	}{
		{input: "abcdefgh", l: 7},
		{input: "abcdef", l: 3},
		{input: "abcd", l: 3},
		{input: "ab", l: -1},
	} {
		if l := m.Match(test.input); l != test.l {
			t.Errorf("test %d: expected match length %d for %q, have %d", i, test.l, test.input, l)
		}
	}
}

func TestWholeRuneBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	m := MustWhole(`"[^"]*"?`)
	input := `"안녕" and more`
	if l := m.Match(input); l != len(`"안녕"`) {
		t.Errorf("expected quoted string to match, have length %d", l)
	}
}

func TestMatchers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	for i, test := range []struct {
		m     Matcher
		input string
		l     int
	}{
		{m: MustPrefix(`\d+(\.\d+)?`), input: "34.5 x", l: 4},
		{m: MustPrefix(`a|ab`), input: "abc", l: 2}, // leftmost-longest
		{m: MustPrefix(`\d+`), input: "x1", l: -1},
		{m: Literal(","), input: ",1", l: 1},
		{m: Literal(""), input: "x", l: -1},
		{m: MatcherFunc(func(s string) int { return len(s) }), input: "all", l: 3},
		{m: Regexp(regexp.MustCompile(`\d+`)), input: "12a", l: 2},
		{m: Regexp(regexp.MustCompile(`\d+`)), input: "a12", l: -1}, // not at start
	} {
		if l := test.m.Match(test.input); l != test.l {
			t.Errorf("test %d: expected match length %d, have %d", i, test.l, l)
		}
	}
	if _, err := Prefix(`(`); err == nil {
		t.Errorf("expected malformed pattern to fail")
	}
}

func TestEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.rule")
	defer teardown()
	//
	table := NewTable()
	for _, name := range []string{Whitespace, Word, Number} {
		if _, err := table.RegisterBuiltin(name, nil); err != nil {
			t.Fatal(err)
		}
	}
	var types []string
	table.Each(func(r *Rule) bool {
		types = append(types, r.Type())
		return r.Index() < 1
	})
	if strings.Join(types, ",") != "whitespace,word" {
		t.Errorf("expected iteration to stop after second rule, have %v", types)
	}
	var empty *Table
	empty.Each(func(r *Rule) bool {
		t.Errorf("expected no rules in nil table")
		return true
	})
}
