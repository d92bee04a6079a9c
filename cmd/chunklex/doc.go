/*
Command chunklex runs an incremental tokenizer over a file, standard input
or interactive input, printing tokens as they are finalized.

	chunklex [-rules rules.yaml] [-input file] [-chunk n] [-tree] [-repl] [-trace level] [text ...]

Without -rules, the built-in rules (whitespace, number, word) are used and
whitespace is ignored. Input is read from the file given by -input, from the
arguments or else from standard input, and pushed in chunks of n bytes. With
-repl, every line entered is pushed as a chunk; <ctrl>D ends the stream.
With -tree, tokens are collected and printed as a tree of segments at the end
of the stream.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chunklex.cli'
func tracer() tracing.Trace {
	return tracing.Select("chunklex.cli")
}
