package lr

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/lrkit/grammar"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(c.g, s.Items))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escapeDot(string(e.Label)))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *State) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(g *grammar.Grammar, S *ItemSet) string {
	var b strings.Builder
	for k, i := range S.Items() {
		if k > 0 {
			b.WriteString("\\l")
		}
		b.WriteString(escapeDot(i.Format(g)))
	}
	b.WriteString("\\l")
	return b.String()
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// ===========================================================================

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(A *Automaton, w io.Writer) error {
	cols := A.gotos.NonTerminals()
	return parserTableAsHTML(A, "GOTO", cols, A.gotos.Size(), func(s int, X grammar.Symbol) string {
		if target, ok := A.gotos.Target(s, X); ok {
			return fmt.Sprintf("%d", target)
		}
		return ""
	}, w)
}

// ActionTableAsHTML exports the LR(1) ACTION-table in HTML-format.
// Conflicting actions are separated by slashes.
func ActionTableAsHTML(A *Automaton, w io.Writer) error {
	cols := A.actions.Terminals()
	return parserTableAsHTML(A, "ACTION", cols, A.actions.Size(), func(s int, X grammar.Symbol) string {
		actions := A.actions.Actions(s, X)
		strs := make([]string, len(actions))
		for k, a := range actions {
			strs[k] = a.String()
		}
		return strings.Join(strs, "/")
	}, w)
}

func parserTableAsHTML(A *Automaton, tname string, cols []grammar.Symbol, size int,
	cell func(int, grammar.Symbol) string, w io.Writer) error {
	//
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	fmt.Fprintf(bw, "%s table of size = %d<p>", tname, size)
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, X := range cols {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(string(X)))
	}
	bw.WriteString("</tr>\n")
	for _, state := range A.cfsm.States() {
		fmt.Fprintf(bw, "<tr><td>state %d</td>\n", state.ID)
		for _, X := range cols {
			td := cell(state.ID, X)
			if td == "" {
				td = "&nbsp;"
			}
			fmt.Fprintf(bw, "<td>%s</td>\n", td)
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}
