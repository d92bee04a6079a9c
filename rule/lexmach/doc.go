/*
Package lexmach provides text matchers backed by the lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Every matcher compiles its pattern into a DFA once. Matching then runs the DFA from
the start of a candidate text and reports the longest prefix accepted.
Patterns use lexmachine's regular expression syntax, which is not identical to
that of package regexp. Please refer to the lexmachine documentation.

	dfa, err := lexmach.New(`[a-zA-Z_][a-zA-Z0-9_]*`)
	if err != nil {
		// pattern did not compile
	}
	table.Register(dfa, "ident", nil)

Sets of keywords or operators are best expressed as literal sets:

	ops, err := lexmach.Literals("<", "<=", "<<", "=")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
