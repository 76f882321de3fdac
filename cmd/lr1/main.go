package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/grammar/notation"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
)

// We provide a simple expression grammar as a default.
//
//  E ➞ T - E  |  T
//  T ➞ F * T  |  F
//  F ➞ id
//
const exprGrammar = `
%terminals id ;
E -> T '-' E | T ;
T -> F '*' T | F ;
F -> id ;
`

// traceKeys are the tracers of lrkit, which will be set to the user supplied level.
var traceKeys = []string{"lrkit.cli", "lrkit.grammar", "lrkit.notation", "lrkit.lr", "lrkit.scanner"}

// patterns collects -pattern flags of the form terminal=regex.
type patterns map[string]string

func (p patterns) String() string {
	var s []string
	for t, re := range p {
		s = append(s, t+"="+re)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func (p patterns) Set(v string) error {
	kv := strings.SplitN(v, "=", 2)
	if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
		return fmt.Errorf("pattern must be of form terminal=regex, is %q", v)
	}
	p[kv[0]] = kv[1]
	return nil
}

// main() builds the parser tables and starts an interactive CLI, where users
// may enter lines of input to parse. Every parse displays the trace of the
// LR(1) automaton.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file")
	lookahead := flag.String("lookahead", "first", "Lookahead rule [first|adjacent]")
	dotfile := flag.String("dot", "", "Export CFSM to Graphviz Dot file")
	htmlprefix := flag.String("html", "", "Export parser tables to HTML files with prefix")
	quiet := flag.Bool("quiet", false, "Do not print states and tables")
	pats := patterns{}
	flag.Var(pats, "pattern", "Regular expression for a terminal, terminal=regex")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo)       // will set the correct level later
	pterm.Info.Println("Welcome to LR(1)") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and parser tables
	g, err := loadGrammar(*gfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	rule, err := lr.ParseLookaheadRule(*lookahead)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	setTraceLevel(tracing.TraceLevelFromString(*tlevel)) // now set the user supplied level
	g.Dump()                                             // only visible in debug mode
	A, err := lr.Build(g, lr.WithLookahead(rule))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	lexer, err := lexmach.ForGrammar(g, pats)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if !*quiet {
		printGrammar(g)
		printStates(A)
		printActionTable(A)
		printGotoTable(A)
	}
	printConflicts(A)
	if err = export(A, *dotfile, *htmlprefix); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		A:      A,
		parser: lr1.NewParser(A),
		lexer:  lexer,
	}
	//
	// one-shot parse of command line arguments
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := intp.Eval(input); err != nil {
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("lr1> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func loadGrammar(filename string) (*grammar.Grammar, error) {
	if filename == "" {
		return notation.ParseString("Expr", exprGrammar)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open grammar file: %w", err)
	}
	defer f.Close()
	return notation.Parse(filename, f)
}

func export(A *lr.Automaton, dotfile, htmlprefix string) error {
	if dotfile != "" {
		if err := writeFile(dotfile, A.CFSM().ToGraphViz); err != nil {
			return err
		}
		pterm.Success.Println("CFSM written to " + dotfile)
	}
	if htmlprefix != "" {
		err := writeFile(htmlprefix+"-action.html", func(w io.Writer) error {
			return lr.ActionTableAsHTML(A, w)
		})
		if err != nil {
			return err
		}
		err = writeFile(htmlprefix+"-goto.html", func(w io.Writer) error {
			return lr.GotoTableAsHTML(A, w)
		})
		if err != nil {
			return err
		}
		pterm.Success.Println("parser tables written to " + htmlprefix + "-*.html")
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", name, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	return f.Close()
}

// Intp is our interpreter object
type Intp struct {
	A      *lr.Automaton
	parser *lr1.Parser
	lexer  *lexmach.LMAdapter
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval tokenizes and parses a line of input and prints the outcome.
func (intp *Intp) Eval(line string) error {
	scan, err := intp.lexer.Scanner(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	result := intp.parser.ParseTokens(scan)
	if scanErr != nil {
		pterm.Error.Println("cannot tokenize input: " + scanErr.Error())
		return scanErr
	}
	printTrace(result.Trace())
	switch r := result.(type) {
	case *lr1.Accepted:
		pterm.Success.Println("input accepted")
		printDerivation(intp.A.Grammar(), r.Steps)
	case *lr1.Failed:
		pterm.Error.Println(r.Err.Error())
		return r.Err
	}
	return nil
}
