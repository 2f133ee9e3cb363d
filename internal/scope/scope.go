/*
File    : jaolang/internal/scope/scope.go
Adapted : from go-mix/scope/scope.go. The teacher's Scope carries four
          parallel maps (Variables, Consts, LetVars, LetTypes) plus a
          Copy method for closure capture. JaoLang has no const, no
          let-vs-var distinction, and no closures (spec.md Non-goals),
          so this keeps only the Variables chain, folds the teacher's
          LetTypes idea into a single DeclType per binding (spec.md
          §3's "declared type never changes" invariant), and drops
          Copy entirely.
*/

// Package scope implements JaoLang's lexically-scoped symbol tables: a
// chain of variable bindings, one table per block, each remembering the
// declared type of every name it holds.
package scope

import "github.com/akashmaji946/jaolang/internal/values"

// binding pairs a value with the type it was declared with. The type
// never changes across reassignment (spec.md §3); only Value does.
type binding struct {
	declType values.Type
	value    values.Value
}

// Scope is one lexical scope in the chain. A nil Parent marks the global
// (root) scope.
type Scope struct {
	vars   map[string]*binding
	Parent *Scope
}

// New creates a scope chained to parent. Pass nil to create the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]*binding), Parent: parent}
}

// Lookup searches this scope and its ancestors for name, returning its
// current value and declared type.
func (s *Scope) Lookup(name string) (values.Value, values.Type, bool) {
	if b, ok := s.vars[name]; ok {
		return b.value, b.declType, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, "", false
}

// Declare binds name to value in this scope only, recording declType as
// its permanent type. It returns false if name is already declared in
// this exact scope (redeclaration in the same scope is an error per
// spec.md §3; shadowing an outer scope's name is fine and not checked
// here).
func (s *Scope) Declare(name string, declType values.Type, value values.Value) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = &binding{declType: declType, value: value}
	return true
}

// Assign updates name's value in whichever scope it was declared in. It
// returns the name's declared type and false if name is not declared
// anywhere in the chain.
func (s *Scope) Assign(name string, value values.Value) (values.Type, bool) {
	if b, ok := s.vars[name]; ok {
		b.value = value
		return b.declType, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return "", false
}
