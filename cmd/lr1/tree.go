package main

import (
	"github.com/pterm/pterm"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
)

// node is a node of a parse tree, labeled with a grammar symbol.
type node struct {
	label    string
	children []*node
}

// parseTree re-plays the steps of a parse to create a parse tree.
// Shifts push leaves, reduces combine the topmost |RHS| nodes.
// For a trace which has not been accepted, the topmost node is returned.
func parseTree(steps []lr1.Step) *node {
	var stack []*node
	for _, step := range steps {
		switch step.Action.Kind() {
		case lr.ShiftAction:
			stack = append(stack, &node{label: string(step.Lookahead)})
		case lr.ReduceAction:
			rule := step.Production
			n := &node{label: string(rule.LHS)}
			if rule.IsEpsilon() {
				n.children = []*node{{label: "ε"}}
			} else {
				at := len(stack) - len(rule.RHS)
				n.children = append(n.children, stack[at:]...)
				stack = stack[:at]
			}
			stack = append(stack, n)
		}
	}
	if len(stack) == 0 {
		return &node{label: "ε"}
	}
	return stack[len(stack)-1]
}

func (n *node) leveled(ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.label})
	for _, ch := range n.children {
		ll = ch.leveled(ll, level+1)
	}
	return ll
}
