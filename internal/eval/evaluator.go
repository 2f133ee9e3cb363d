/*
File    : jaolang/internal/eval/evaluator.go
Adapted : from go-mix/eval/evaluator.go. The teacher's Evaluator holds a
          mutable Scp swapped in and out around calls, a Builtins
          table, a Writer/Reader pair, and a CreateError helper that
          reads position off the parser's lexer. JaoLang keeps the
          Writer/Reader shape (so tests can redirect stdout/stdin) but
          passes the active scope explicitly to every eval call instead
          of swapping a mutable Scp around calls, and drops Builtins
          (JaoLang has exactly one built-in, Println, handled inline)
          and Types (no structs), and returns errors through Go's
          (value, error) idiom instead of a sentinel Error object,
          per spec.md §9's "tagged variant" guidance.
*/

// Package eval walks a JaoLang AST and executes it: statements mutate
// scope and may yield a propagating return-signal; expressions yield a
// (values.Value, values.Type) pair, matching spec.md §4.3's contract.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/funcreg"
	"github.com/akashmaji946/jaolang/internal/scope"
	"github.com/akashmaji946/jaolang/internal/values"
)

// signal is the return-signal described in spec.md's GLOSSARY: a
// (value, type) pair a statement yields upward until it reaches the
// call that must receive it. A nil *signal means "no return happened".
type signal struct {
	value values.Value
	typ   values.Type
}

// Evaluator holds the interpreter's run-time state: the global scope,
// the function registry, and the I/O streams Print/Println/Scan use.
type Evaluator struct {
	Global *scope.Scope
	Funcs  *funcreg.Registry
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator wired to os.Stdout/os.Stdin. Use SetWriter
// and SetReader to redirect either for testing.
func New() *Evaluator {
	return &Evaluator{
		Global: scope.New(nil),
		Funcs:  funcreg.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects Print/Println output.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects Scan's input source.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Run executes a parsed program. Function declarations are registered
// in a pass over the root block's direct statements before any
// statement executes, then the root block runs top to bottom in the
// global scope (spec.md §4.3: "create no new table for the program
// root"). A FuncDecl encountered during the run itself is a no-op,
// since it was already registered.
func (e *Evaluator) Run(program *ast.Block) error {
	for _, stmt := range program.Statements {
		if fd, ok := stmt.(*ast.FuncDecl); ok {
			if err := e.registerFunc(fd); err != nil {
				return err
			}
		}
	}
	_, err := e.evalStatements(program.Statements, e.Global)
	return err
}

func (e *Evaluator) registerFunc(fd *ast.FuncDecl) error {
	fn := &funcreg.Func{
		Name:    fd.Name,
		Params:  fd.Params,
		RetType: fd.RetType,
		Body:    fd.Body,
	}
	if !e.Funcs.Declare(fn) {
		line, col := fd.Pos()
		return nameErrorRedeclared(line, col, fd.Name)
	}
	return nil
}
