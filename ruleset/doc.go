/*
Package ruleset reads rule-set descriptions and builds tokenizers from them.

A rule-set description lists the rules of a tokenizer, in order, together with
ignored token types and the tokenizer options. Descriptions are stored as YAML
or TOML files:

	step: 0
	split: '\n+'
	ignore: [whitespace, comma]
	rules:
	  - builtin: whitespace
	  - type: number
	    pattern: '\d+(\.\d+)?'
	  - type: maybe-float
	    pattern: '\d+\.'
	  - type: comma
	    literal: ","
	  - type: keyword
	    literals: [if, then, else]
	  - type: ident
	    pattern: '[a-zA-Z_][a-zA-Z0-9_]*'
	    mode: dfa

Patterns are interpreted according to their mode: "prefix" (the default) and
"whole" use package regexp (see rule.Prefix and rule.Whole), "dfa" uses
lexmachine (see package lexmach). A rule may carry a "reject" pattern; the rule
is skipped for candidate texts starting with a match of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruleset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chunklex.ruleset'.
func tracer() tracing.Trace {
	return tracing.Select("chunklex.ruleset")
}
