package tokenizer

import (
	"github.com/npillmayer/chunklex"
)

// SplitType is the type label of separator entries recorded by a Collector.
const SplitType = "split"

// Collector is a Listener which records everything it receives, in order.
// Separators are recorded as pseudo-tokens of type SplitType.
type Collector struct {
	Events []chunklex.Token
	Ended  bool // Done has been called
}

var _ Listener = (*Collector)(nil)

func (c *Collector) Token(tok chunklex.Token) {
	c.Events = append(c.Events, tok)
}

func (c *Collector) Split(sep string, at chunklex.Span) {
	c.Events = append(c.Events, chunklex.MakeToken(sep, SplitType, at))
}

func (c *Collector) Done() {
	c.Ended = true
}

// Tokens returns the recorded tokens, without separators.
func (c *Collector) Tokens() []chunklex.Token {
	var toks []chunklex.Token
	for _, e := range c.Events {
		if e.Type() != SplitType {
			toks = append(toks, e)
		}
	}
	return toks
}

// Splits returns the recorded separators.
func (c *Collector) Splits() []string {
	var seps []string
	for _, e := range c.Events {
		if e.Type() == SplitType {
			seps = append(seps, e.Content())
		}
	}
	return seps
}

// Segments groups the recorded tokens by the separators between them.
// Empty segments are omitted.
func (c *Collector) Segments() [][]chunklex.Token {
	var segs [][]chunklex.Token
	var cur []chunklex.Token
	for _, e := range c.Events {
		if e.Type() == SplitType {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, e)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// SpanOf returns the span covering all of toks, e.g. a segment. For no
// tokens it returns the null span.
func SpanOf(toks []chunklex.Token) chunklex.Span {
	var span chunklex.Span
	for _, tok := range toks {
		span = span.Extend(tok.Span())
	}
	return span
}

// Reset clears c.
func (c *Collector) Reset() {
	c.Events = nil
	c.Ended = false
}
