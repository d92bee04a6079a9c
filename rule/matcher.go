package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matcher is a text predicate anchored at the start of its argument.
// Match returns the length in bytes of the matching prefix of s, or a negative
// value if no prefix of s matches. An empty match is treated as no match by the
// rule table.
type Matcher interface {
	Match(s string) int
}

// MatcherFunc lets ordinary functions act as matchers.
type MatcherFunc func(s string) int

// Match calls f(s).
func (f MatcherFunc) Match(s string) int {
	return f(s)
}

// --- Regular expressions ---------------------------------------------------

type prefixMatcher struct {
	re *regexp.Regexp
}

// Prefix creates a matcher for the longest prefix of a candidate matching a
// regular expression (syntax of package regexp). The expression is implicitly
// anchored at the start of the candidate.
func Prefix(expr string) (Matcher, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("cannot compile prefix pattern %q: %w", expr, err)
	}
	re.Longest()
	return prefixMatcher{re: re}, nil
}

// MustPrefix is like Prefix, but panics if expr cannot be compiled.
func MustPrefix(expr string) Matcher {
	m, err := Prefix(expr)
	if err != nil {
		panic(err)
	}
	return m
}

func (pm prefixMatcher) Match(s string) int {
	loc := pm.re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[1]
}

func (pm prefixMatcher) String() string {
	return pm.re.String()
}

type regexpMatcher struct {
	re *regexp.Regexp
}

// Regexp wraps a compiled regular expression as a matcher. Only occurrences
// starting at the first byte of a candidate count as matches. re is used as is;
// clients wanting leftmost-longest semantics should call re.Longest() themselves.
func Regexp(re *regexp.Regexp) Matcher {
	return regexpMatcher{re: re}
}

func (rm regexpMatcher) Match(s string) int {
	loc := rm.re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return loc[1]
}

func (rm regexpMatcher) String() string {
	return rm.re.String()
}

type wholeMatcher struct {
	re *regexp.Regexp
}

// Whole creates a matcher for patterns which have to match a prefix of a candidate
// in its entirety, i.e. the expression is anchored at both ends of the prefix.
// This is the way to use patterns like `"([^"]|\\")*"`, where a longer prefix may
// match although a shorter one does not.
//
// Whole tests every prefix of a candidate, from the longest down to the shortest,
// stopping at rune boundaries only. Pattern matching over growing prefixes is not
// monotonic in general, so no prefix length can be skipped. Matching costs are
// therefore quadratic in the length of a candidate.
func Whole(expr string) (Matcher, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("cannot compile pattern %q: %w", expr, err)
	}
	return wholeMatcher{re: re}, nil
}

// MustWhole is like Whole, but panics if expr cannot be compiled.
func MustWhole(expr string) Matcher {
	m, err := Whole(expr)
	if err != nil {
		panic(err)
	}
	return m
}

func (wm wholeMatcher) Match(s string) int {
	for l := len(s); l > 0; l-- {
		if l < len(s) && !utf8.RuneStart(s[l]) {
			continue
		}
		if wm.re.MatchString(s[:l]) {
			return l
		}
	}
	return -1
}

func (wm wholeMatcher) String() string {
	return wm.re.String()
}

// --- Literals --------------------------------------------------------------

type literalMatcher string

// Literal creates a matcher for a fixed string.
func Literal(lit string) Matcher {
	return literalMatcher(lit)
}

func (lm literalMatcher) Match(s string) int {
	if lm == "" || !strings.HasPrefix(s, string(lm)) {
		return -1
	}
	return len(lm)
}

func (lm literalMatcher) String() string {
	return fmt.Sprintf("%q", string(lm))
}
