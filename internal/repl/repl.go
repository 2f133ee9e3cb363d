/*
File    : jaolang/internal/repl/repl.go
Adapted : from go-mix/repl/repl.go. The teacher's Repl struct holds a
          banner/version/prompt bundle and a Start/executeWithRecovery
          pair: readline for line editing and history, fatih/color for
          banner and result/error coloring, panic recovery per input
          line so one bad line never kills the session. JaoLang's
          grammar requires a whole `<< ... >>` block rather than bare
          expressions, so each REPL line is wrapped in `<<` `>>` before
          parsing; a single persistent Evaluator/global scope is reused
          across lines, matching the teacher's "evaluator survives the
          whole session" design, except a JaoLang program has no
          top-level expression result to echo back (spec.md's
          evaluation contract only yields values to statements that
          consume them), so there is no yellow "result" line — only
          whatever mostra_ae/Println wrote, or a red error. A ':ast'
          meta-command dumps the parsed tree of a line via
          internal/ast's Dump/Visitor instead of running it.
*/

// Package repl implements JaoLang's interactive shell.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/eval"
	"github.com/akashmaji946/jaolang/internal/lexer"
	"github.com/akashmaji946/jaolang/internal/parser"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl bundles the cosmetic details of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner/version/author/separator/prompt.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "Version: %s | Author: %s\n", r.Version, r.Author)
	cyanColor.Fprintln(w, "Type a JaoLang statement (it will be wrapped in << >> for you)")
	cyanColor.Fprintln(w, "Type ':ast <statement>' to dump its parsed tree instead of running it")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until the user exits or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New()
	ev.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)
		if rest, ok := strings.CutPrefix(line, ":ast "); ok {
			r.dumpAST(writer, rest)
			continue
		}
		r.executeWithRecovery(writer, line, ev)
	}
}

// dumpAST parses line (wrapped in the same `<< >>` the evaluator uses)
// and prints its tree via ast.Dump instead of running it, giving the
// REPL the debugging/introspection entry point DESIGN.md's internal/ast
// ledger describes.
func (r *Repl) dumpAST(writer io.Writer, line string) {
	wrapped := "<< " + line + " >>"
	lx := lexer.New(wrapped)
	p := parser.New(lx)
	program, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	cyanColor.Fprint(writer, ast.Dump(program))
}

// executeWithRecovery parses and evaluates one REPL line, catching any
// interpreter panic so a bad line doesn't kill the session (the
// teacher's defer/recover pattern around per-line evaluation).
func (r *Repl) executeWithRecovery(writer io.Writer, line string, ev *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", recovered)
		}
	}()

	wrapped := "<< " + line + " >>"
	lx := lexer.New(wrapped)
	p := parser.New(lx)
	program, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if err := ev.Run(program); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
