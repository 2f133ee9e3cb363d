/*
File    : jaolang/internal/values/values_test.go
Adapted : from go-mix/lexer/lexer_test.go's testify-assert style.
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt_ToStr(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).ToStr())
	assert.Equal(t, "-7", NewInt(-7).ToStr())
	assert.Equal(t, "0", NewInt(0).ToStr())
}

func TestStr_ToStr(t *testing.T) {
	assert.Equal(t, "hello", NewStr("hello").ToStr())
	assert.Equal(t, "", NewStr("").ToStr())
}

func TestBool_ToStr(t *testing.T) {
	assert.Equal(t, "true", NewBool(true).ToStr())
	assert.Equal(t, "false", NewBool(false).ToStr())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, IntType, NewInt(1).Kind())
	assert.Equal(t, StringType, NewStr("a").Kind())
	assert.Equal(t, BoolType, NewBool(true).Kind())
}
