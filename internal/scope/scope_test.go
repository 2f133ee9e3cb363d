/*
File    : jaolang/internal/scope/scope_test.go
Adapted : from go-mix/lexer/lexer_test.go's testify-assert style,
          applied to the scope chain's declare/lookup/assign contract.
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/jaolang/internal/values"
)

func TestScope_DeclareAndLookup(t *testing.T) {
	s := New(nil)
	ok := s.Declare("x", values.IntType, values.NewInt(10))
	assert.True(t, ok)

	v, typ, found := s.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, values.IntType, typ)
	assert.Equal(t, int64(10), v.(*values.Int).Value)
}

func TestScope_RedeclarationInSameScopeFails(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Declare("x", values.IntType, values.NewInt(1)))
	assert.False(t, s.Declare("x", values.IntType, values.NewInt(2)))
}

func TestScope_ShadowingInChildScopeSucceeds(t *testing.T) {
	parent := New(nil)
	assert.True(t, parent.Declare("x", values.IntType, values.NewInt(1)))

	child := New(parent)
	assert.True(t, child.Declare("x", values.StringType, values.NewStr("shadowed")))

	v, typ, _ := child.Lookup("x")
	assert.Equal(t, values.StringType, typ)
	assert.Equal(t, "shadowed", v.(*values.Str).Value)

	pv, ptyp, _ := parent.Lookup("x")
	assert.Equal(t, values.IntType, ptyp)
	assert.Equal(t, int64(1), pv.(*values.Int).Value)
}

func TestScope_LookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Declare("g", values.BoolType, values.NewBool(true))
	child := New(parent)

	v, typ, found := child.Lookup("g")
	assert.True(t, found)
	assert.Equal(t, values.BoolType, typ)
	assert.True(t, v.(*values.Bool).Value)
}

func TestScope_LookupMissingFails(t *testing.T) {
	s := New(nil)
	_, _, found := s.Lookup("nope")
	assert.False(t, found)
}

func TestScope_AssignUpdatesDeclaringScope(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", values.IntType, values.NewInt(1))
	child := New(parent)

	declType, ok := child.Assign("x", values.NewInt(99))
	assert.True(t, ok)
	assert.Equal(t, values.IntType, declType)

	v, _, _ := parent.Lookup("x")
	assert.Equal(t, int64(99), v.(*values.Int).Value)
}

func TestScope_AssignUndeclaredFails(t *testing.T) {
	s := New(nil)
	_, ok := s.Assign("nope", values.NewInt(1))
	assert.False(t, ok)
}

func TestScope_DeclaredTypeNeverChanges(t *testing.T) {
	// Property: a successful Assign never alters the declared type that
	// Declare recorded, regardless of what value is stored later.
	s := New(nil)
	s.Declare("x", values.IntType, values.NewInt(0))
	for i := int64(0); i < 5; i++ {
		declType, ok := s.Assign("x", values.NewInt(i))
		assert.True(t, ok)
		assert.Equal(t, values.IntType, declType)
	}
}
