package lr1

import (
	"fmt"

	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr"
)

// Derivation replays the reduce steps of a trace as a rightmost derivation.
// It returns the sentential forms, starting with the start symbol of g and
// ending with the terminals consumed by the parse.
//
// Reduce steps are applied in reverse order, each one rewriting the rightmost
// non-terminal of the current form. An error is returned if a reduced
// production does not match the rightmost non-terminal, or if non-terminals
// are left over.
func Derivation(g *grammar.Grammar, steps []Step) ([][]grammar.Symbol, error) {
	form := []grammar.Symbol{g.Start()}
	forms := [][]grammar.Symbol{form}
	for k := len(steps) - 1; k >= 0; k-- {
		step := steps[k]
		if step.Action.Kind() != lr.ReduceAction {
			continue
		}
		rule := step.Production
		if rule == nil {
			rule = g.Production(step.Action.Production())
		}
		at := rightmostNonTerminal(g, form)
		if at < 0 {
			return forms, fmt.Errorf("step %d: reduce %v on a form without non-terminals", k, rule)
		}
		if form[at] != rule.LHS {
			return forms, fmt.Errorf("step %d: reduce %v does not match rightmost non-terminal %s",
				k, rule, form[at])
		}
		next := make([]grammar.Symbol, 0, len(form)-1+len(rule.RHS))
		next = append(next, form[:at]...)
		next = append(next, rule.RHS...)
		next = append(next, form[at+1:]...)
		form = next
		forms = append(forms, form)
	}
	if at := rightmostNonTerminal(g, form); at >= 0 {
		return forms, fmt.Errorf("derivation incomplete, non-terminal %s left", form[at])
	}
	return forms, nil
}

func rightmostNonTerminal(g *grammar.Grammar, form []grammar.Symbol) int {
	for i := len(form) - 1; i >= 0; i-- {
		if g.IsNonTerminal(form[i]) {
			return i
		}
	}
	return -1
}
