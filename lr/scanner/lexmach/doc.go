/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of lrkit.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The simplest way to get a scanner is to derive it from a grammar. Every
terminal will match its own name, unless a regular expression is given for it.

	LM, err := lexmach.ForGrammar(g, map[string]string{
		"id": `[a-z][a-z0-9]*`,
	})

Clients who need more control may set up lexmachine themselves, by providing
literals, keywords and an init function for further regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token for a terminal
	}
	LM, err := NewLMAdapter(init, literals, keywords)

Either way, a scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.Terminal() != scanner.EOF {
			…
		}
	}

Please refer to package lr1 on how to plug in a scanner.Tokenizer.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
