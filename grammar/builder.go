package grammar

// Builder is a helper type to construct grammars rule by rule.
// Create one with NewBuilder:
//
//    b := grammar.NewBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").T("b").End()         // A  ->  b
//    b.LHS("A").Epsilon()            // A  ->
//    g, err := b.Grammar()
//
// Every symbol added with T becomes a terminal of the grammar.
type Builder struct {
	name      string
	prods     []Production
	terminals []Symbol
}

// NewBuilder creates a builder for a grammar with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// RuleBuilder builds the right hand side of a single production.
// It is created by calling Builder.LHS.
type RuleBuilder struct {
	b   *Builder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a new production with left hand side N.
func (b *Builder) LHS(N string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: Symbol(N)}
}

// Terminals declares additional terminals, not necessarily used in any production.
func (b *Builder) Terminals(names ...string) *Builder {
	for _, t := range names {
		b.terminals = append(b.terminals, Symbol(t))
	}
	return b
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Symbol(name))
	return rb
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Symbol(name))
	rb.b.terminals = append(rb.b.terminals, Symbol(name))
	return rb
}

// End completes the production and returns its index.
func (rb *RuleBuilder) End() int {
	rb.b.prods = append(rb.b.prods, Production{LHS: rb.lhs, RHS: rb.rhs})
	return len(rb.b.prods) - 1
}

// Epsilon completes the production with an empty RHS and returns its index.
// Symbols appended before are discarded.
func (rb *RuleBuilder) Epsilon() int {
	rb.rhs = nil
	return rb.End()
}

// Grammar creates the grammar from all productions added so far.
func (b *Builder) Grammar() (*Grammar, error) {
	return New(b.name, b.prods, b.terminals)
}
