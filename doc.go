/*
Package chunklex is a toolbox for incremental, rule-driven tokenization.

Input arrives in chunks of arbitrary size, not aligned to token boundaries.
Every token is the longest prefix of pending input matched by one of a list of
user supplied rules. Tokenizing a stream in chunks yields the same tokens as
tokenizing the whole input at once. Package structure is as follows:

■ rule: Package rule holds text matchers, rules and the rule table, together with
the longest-match lookup.

■ tokenizer: Package tokenizer implements the streaming engine: carry-over
buffering across chunk boundaries, optional splitting into line- or record-segments,
and the ignore filter.

■ ruleset: Package ruleset reads rule-set descriptions from YAML or TOML files and
builds configured tokenizers from them.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunklex
