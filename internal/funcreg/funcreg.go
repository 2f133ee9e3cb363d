/*
File    : jaolang/internal/funcreg/funcreg.go
Adapted : from go-mix/function/function.go. The teacher's Function
          struct carries a captured Scp scope for closures; JaoLang
          disallows closures over non-local scope (spec.md Non-goals)
          and resolves every call's parent scope to the single global
          scope (spec.md §9's Open-Question resolution), so there is
          nothing to capture. What remains is kept as a *registry*
          rather than a scope-chain entry: spec.md §9's Design Notes
          recommend a function table separate from the variable scope
          chain, since JaoLang has no first-class function values.
*/

// Package funcreg holds JaoLang's function declarations in a flat,
// name-keyed table, looked up by call expressions at evaluation time.
package funcreg

import (
	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/token"
)

// Func is one declared function: its parameter list, declared return
// type (the zero value for a void function), and body.
type Func struct {
	Name    string
	Params  []ast.Param
	RetType token.Kind
	Body    *ast.Block
}

// Registry maps function names to their declarations. Functions are
// registered once per program run; redeclaration is rejected the same
// way variable redeclaration in a single scope is (spec.md §3).
type Registry struct {
	funcs map[string]*Func
}

// New creates an empty function registry.
func New() *Registry {
	return &Registry{funcs: make(map[string]*Func)}
}

// Declare adds fn to the registry. It returns false if a function with
// that name is already registered.
func (r *Registry) Declare(fn *Func) bool {
	if _, exists := r.funcs[fn.Name]; exists {
		return false
	}
	r.funcs[fn.Name] = fn
	return true
}

// Lookup returns the function registered under name, if any.
func (r *Registry) Lookup(name string) (*Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}
