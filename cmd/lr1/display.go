package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
)

func printGrammar(g *grammar.Grammar) {
	pterm.DefaultSection.Println("Grammar " + g.Name)
	data := pterm.TableData{{"#", "Production"}}
	for _, p := range g.Productions() {
		data = append(data, []string{fmt.Sprintf("%d", p.Index), p.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printStates(A *lr.Automaton) {
	g := A.Grammar()
	pterm.DefaultSection.Println(fmt.Sprintf("Canonical collection: %d states", len(A.States())))
	for _, s := range A.States() {
		ll := pterm.LeveledList{{Level: 0, Text: fmt.Sprintf("state %d", s.ID)}}
		for _, i := range s.Items.Items() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: i.Format(g)})
		}
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	}
}

func printActionTable(A *lr.Automaton) {
	T := A.ActionTable()
	pterm.DefaultSection.Println(fmt.Sprintf("ACTION table: %d entries", T.Size()))
	header := []string{"state"}
	for _, a := range T.Terminals() {
		header = append(header, string(a))
	}
	data := pterm.TableData{header}
	for _, s := range A.States() {
		row := []string{fmt.Sprintf("%d", s.ID)}
		for _, a := range T.Terminals() {
			var cell []string
			for _, action := range T.Actions(s.ID, a) {
				cell = append(cell, action.String())
			}
			row = append(row, strings.Join(cell, "/"))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printGotoTable(A *lr.Automaton) {
	T := A.GotoTable()
	pterm.DefaultSection.Println(fmt.Sprintf("GOTO table: %d entries", T.Size()))
	header := []string{"state"}
	for _, N := range T.NonTerminals() {
		header = append(header, string(N))
	}
	data := pterm.TableData{header}
	for _, s := range A.States() {
		row := []string{fmt.Sprintf("%d", s.ID)}
		for _, N := range T.NonTerminals() {
			if target, ok := T.Target(s.ID, N); ok {
				row = append(row, fmt.Sprintf("%d", target))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printConflicts(A *lr.Automaton) {
	if !A.HasConflicts() {
		return
	}
	pterm.Warning.Println(fmt.Sprintf("grammar is not LR(1), %d conflicts; parser will use the first action",
		len(A.Conflicts())))
	for _, c := range A.Conflicts() {
		pterm.Warning.Println(c.String())
	}
}

func printTrace(steps []lr1.Step) {
	data := pterm.TableData{{"#", "stack", "lookahead", "action", "production"}}
	for k, step := range steps {
		stack := make([]string, len(step.Stack))
		for i, id := range step.Stack {
			stack[i] = fmt.Sprintf("%d", id)
		}
		prod := ""
		if step.Production != nil {
			prod = step.Production.String()
		}
		data = append(data, []string{
			fmt.Sprintf("%d", k),
			strings.Join(stack, " "),
			string(step.Lookahead),
			step.Action.String(),
			prod,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printDerivation(g *grammar.Grammar, steps []lr1.Step) {
	forms, err := lr1.Derivation(g, steps)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	var b strings.Builder
	for k, form := range forms {
		if k > 0 {
			b.WriteString("\n  ⟹ ")
		} else {
			b.WriteString("    ")
		}
		b.WriteString(joinForm(form))
	}
	pterm.Info.Println("rightmost derivation:\n" + b.String())
	ll := parseTree(steps).leveled(pterm.LeveledList{}, 0)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func joinForm(form []grammar.Symbol) string {
	if len(form) == 0 {
		return "ε"
	}
	s := make([]string, len(form))
	for k, A := range form {
		s[k] = string(A)
	}
	return strings.Join(s, " ")
}
