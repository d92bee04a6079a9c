/*
Package rule holds the matching rules of a tokenizer.

A rule pairs a text matcher with a token type label and an optional filter.
Rules are registered with a Table, which keeps them in registration order.
The table answers one question: which rule matches the longest prefix of a
candidate text ("maximal munch"). Ties are resolved in favour of the rule
registered first.

Matchers are anchored at the start of the candidate text. Package rule provides
matchers based on regular expressions and literals; sub-package lexmach provides
DFA-based matchers generated by lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chunklex.rule'.
func tracer() tracing.Trace {
	return tracing.Select("chunklex.rule")
}
