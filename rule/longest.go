package rule

// Match is the result of a successful lookup.
type Match struct {
	Rule   *Rule
	Length int  // length of the match in bytes
	All    bool // match consumes the complete candidate
}

// LongestMatch finds the rule matching the longest prefix of candidate.
//
// Every rule is tried, in registration order. Rules with a filter rejecting the
// candidate are skipped. A rule wins if its match is strictly longer than the
// best match so far, thus from a group of rules with equally long matches the
// one registered first wins. Empty matches do not count.
//
// If a rule consumes the complete candidate, no other rule can do better and the
// search stops.
func (t *Table) LongestMatch(candidate string) (Match, bool) {
	var best Match
	if t == nil || candidate == "" {
		return best, false
	}
	for _, r := range t.rules {
		if !r.accepts(candidate) {
			continue
		}
		l := r.matcher.Match(candidate)
		if l > len(candidate) {
			l = len(candidate)
		}
		if l <= best.Length {
			continue
		}
		best.Rule, best.Length = r, l
		if l == len(candidate) {
			best.All = true
			break
		}
	}
	if best.Rule == nil {
		tracer().Debugf("no rule matches %q", abbrev(candidate))
		return best, false
	}
	tracer().Debugf("%s matches %d of %d bytes", best.Rule, best.Length, len(candidate))
	return best, true
}

func abbrev(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
