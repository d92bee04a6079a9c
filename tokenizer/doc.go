/*
Package tokenizer implements an incremental, rule-driven tokenizer.

Clients push chunks of text into a Tokenizer. Chunks need not be aligned to
token boundaries: text which has been matched completely, but might still
grow with the next chunk, is held back as carry-over and re-scanned together
with the next chunk. At the end of the stream, the carry-over is finalized.
Tokenizing a stream chunk by chunk therefore yields the same tokens as
tokenizing all of it at once.

	c := &tokenizer.Collector{}
	t := tokenizer.New(tokenizer.Notify(c))
	t.AddBuiltin(rule.Word)
	t.AddBuiltin(rule.Whitespace)
	t.Ignore(rule.Whitespace)
	t.Push("Hell")
	t.End("o World")
	// c.Tokens() = [ Hello World ]

Every token is the longest prefix of the pending text matched by a rule of the
tokenizer (see package rule). If no rule matches, the tokenizer has reached a
dead end and reports an UnmatchedInputError. Whether a dead end stops the
tokenizer or scanning resumes is configured with OnDeadEnd.

Split Mode

With a separator configured, input is cut into segments before matching, e.g. into
lines. Separators are reported to the listener with Split, not as tokens, and
rules never match across a separator. Unmatched text at the end of an open
segment is held back until the segment is complete, as it may be the start of
a separator split by a chunk boundary.

A Tokenizer is not safe for concurrent use. It does not start goroutines and
does no I/O, except for ReadFrom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chunklex.tokenizer'.
func tracer() tracing.Trace {
	return tracing.Select("chunklex.tokenizer")
}
