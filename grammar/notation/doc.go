/*
Package notation reads grammars from a textual notation.

A grammar is a sequence of terminal declarations and rules:

	# expression grammar
	%terminals id ;
	E -> T '-' E | T ;
	T -> F '*' T | F ;
	F -> id ;

Identifiers listed in a %terminals declaration are terminals. Quoted literals
('-' or "-") are terminals as well and need not be declared. Every other
identifier has to appear on the left hand side of a rule. The LHS of the
first rule is the start symbol. Alternatives are separated by '|', and an
empty alternative stands for an epsilon production:

	B -> b | ;

Rules may use '::=' instead of '->'. Comments start with '#' and extend to
the end of the line.

Productions are numbered in order of appearance, alternatives from left to
right.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.notation'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.notation")
}
