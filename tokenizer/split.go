package tokenizer

import (
	"fmt"
	"regexp"
)

// Separator finds record separators in split mode.
//
// Locate returns the position of the first separator occurrence in s, as
// byte offsets [start, end). If s contains no separator, Locate returns -1, -1.
// Occurrences of width 0 are not treated as separators.
//
// A separator cut in two by a chunk boundary is recognized as long as its
// first part is not consumed by a token: unmatched text at the end of an open
// segment is held back until more input arrives. Rules matching a proper
// prefix of a separator (e.g. a rule for "-" with separator "--") defeat
// this, and tokenizing then depends on chunking.
type Separator interface {
	Locate(s string) (start, end int)
}

type regexpSeparator struct {
	re *regexp.Regexp
}

// SplitOn creates a separator from a regular expression. Occurrences are
// determined leftmost-longest, thus `\n+` will treat a run of newlines as a
// single separator. Patterns matching the empty string are rejected.
func SplitOn(expr string) (Separator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("cannot compile separator pattern %q: %w", expr, err)
	}
	if re.MatchString("") {
		return nil, fmt.Errorf("separator pattern %q matches the empty string", expr)
	}
	re.Longest()
	return regexpSeparator{re: re}, nil
}

// SplitRegexp uses a compiled regular expression as a separator. re is used
// as is.
func SplitRegexp(re *regexp.Regexp) Separator {
	return regexpSeparator{re: re}
}

var lineBreaks = regexp.MustCompile(`(\r\n|\r|\n)+`)

func init() {
	lineBreaks.Longest()
}

// Lines returns a separator for runs of line breaks (LF, CR or CRLF).
func Lines() Separator {
	return regexpSeparator{re: lineBreaks}
}

func (rs regexpSeparator) Locate(s string) (int, int) {
	loc := rs.re.FindStringIndex(s)
	if loc == nil {
		return -1, -1
	}
	return loc[0], loc[1]
}

func (rs regexpSeparator) String() string {
	return rs.re.String()
}

// splitter cuts pending text into segments.
type splitter struct {
	sep Separator
}

// leading returns the length of a separator occurrence at the very start of s,
// or 0.
func (sp splitter) leading(s string) int {
	start, end := sp.sep.Locate(s)
	if start != 0 || end <= start {
		return 0
	}
	return end
}

// cut returns the offset of the first separator occurrence in s, or -1 if there
// is none. The text up to the offset forms a terminated segment.
func (sp splitter) cut(s string) int {
	start, end := sp.sep.Locate(s)
	if start < 0 || end <= start {
		return -1
	}
	return start
}
