/*
File    : jaolang/internal/eval/eval_test.go
Adapted : from go-mix/eval/enum_evaluator_test.go's parse-then-evaluate
          shape, redirected through SetWriter/SetReader the way the
          teacher's tests redirect through SetWriter for capture.
          Covers the six end-to-end example programs spec.md §8 names
          verbatim, plus the function-call and error-kind rules.
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jaolang/internal/jaoerr"
	"github.com/akashmaji946/jaolang/internal/lexer"
	"github.com/akashmaji946/jaolang/internal/parser"
)

// run parses and evaluates src, returning whatever it printed and any
// error raised by the pipeline.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.New(src)
	p := parser.New(lx)
	program, err := p.ParseProgram()
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)
	ev.SetReader(strings.NewReader(""))
	runErr := ev.Run(program)
	return buf.String(), runErr
}

func TestEval_ArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `<< mostra_ae(2 + 3 * 4) >>`)
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestEval_VariablesAssignmentIfElse(t *testing.T) {
	src := `<< inteirao x vira 5
	          se_liga_jao x > 3 << mostra_ae(eh_tudo) >>
	          se_nao_jao      << mostra_ae(eh_nada) >> >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEval_ForLoopSumming(t *testing.T) {
	src := `<< inteirao i vira 1
	          inteirao s vira 0
	          vai_rodando_ae i < 6 << s vira s + i
	                                  i vira i + 1 >>
	          mostra_ae(s) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestEval_RepeatUntil(t *testing.T) {
	src := `<< inteirao n vira 0
	          repete_ate_jao << n vira n + 1 >> quando n < 3
	          mostra_ae(n) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEval_StringConcatMixedTypes(t *testing.T) {
	src := `<< falae s vira "n="
	          inteirao n vira 7
	          mostra_ae(s + n) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "n=7\n", out)
}

func TestEval_TypeErrorOnMixedArith(t *testing.T) {
	src := `<< inteirao x vira 1 falae s vira "a" mostra_ae(x + s - 1) >>`
	_, err := run(t, src)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Type, jerr.Category)
}

func TestEval_DivisionByZeroIsArithError(t *testing.T) {
	_, err := run(t, `<< mostra_ae(1 / 0) >>`)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Arith, jerr.Category)
}

func TestEval_FloorDivision(t *testing.T) {
	out, err := run(t, `<< mostra_ae(-7 / 2) >>`)
	require.NoError(t, err)
	assert.Equal(t, "-4\n", out)
}

func TestEval_UndeclaredNameIsNameError(t *testing.T) {
	_, err := run(t, `<< mostra_ae(naoexiste) >>`)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Name, jerr.Category)
}

func TestEval_RedeclarationIsNameError(t *testing.T) {
	_, err := run(t, `<< inteirao x vira 1 inteirao x vira 2 >>`)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Name, jerr.Category)
}

func TestEval_CallingNonFunctionIsKindError(t *testing.T) {
	_, err := run(t, `<< inteirao x vira 1 x() >>`)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Kind, jerr.Category)
}

func TestEval_UserDefinedFunctionCall(t *testing.T) {
	src := `<< manda_bala soma(inteirao a, inteirao b) inteirao << devolve_ai a + b >>
	          mostra_ae(soma(2, 3)) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEval_VoidFunctionCannotReturnValue(t *testing.T) {
	src := `<< manda_bala f() << devolve_ai 1 >>
	          f() >>`
	_, err := run(t, src)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Type, jerr.Category)
}

func TestEval_NonVoidFunctionMustReturn(t *testing.T) {
	src := `<< manda_bala f() inteirao << mostra_ae(1) >>
	          mostra_ae(f()) >>`
	_, err := run(t, src)
	require.Error(t, err)
	jerr, ok := err.(*jaoerr.Error)
	require.True(t, ok)
	assert.Equal(t, jaoerr.Type, jerr.Category)
}

func TestEval_ForPropagatesReturnThroughFunctionBody(t *testing.T) {
	// spec.md §9: unlike the original source, For must propagate a
	// return-signal from its body up through the enclosing function call.
	src := `<< manda_bala firstOver(inteirao limit) inteirao <<
	            inteirao i vira 0
	            vai_rodando_ae eh_tudo <<
	               i vira i + 1
	               se_liga_jao i > limit << devolve_ai i >>
	            >>
	         >>
	         mostra_ae(firstOver(3)) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestEval_BuiltinPrintlnRendersEachArgOnOwnLine(t *testing.T) {
	out, err := run(t, `<< Println(1, eh_tudo, "x") >>`)
	require.NoError(t, err)
	assert.Equal(t, "1\ntrue\nx\n", out)
}

func TestEval_LogicalOperatorsAreEager(t *testing.T) {
	out, err := run(t, `<< mostra_ae(eh_tudo && eh_nada) mostra_ae(eh_nada || eh_tudo) >>`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out)

	// Both operands of && and || are always evaluated: the right-hand
	// call prints even when the left operand already decides the result.
	src := `<< manda_bala marca() verdade_ou_farsa << mostra_ae("rhs") devolve_ai eh_tudo >>
	          mostra_ae(eh_nada && marca())
	          mostra_ae(eh_tudo || marca()) >>`
	out, err = run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "rhs\nfalse\nrhs\ntrue\n", out)
}

func TestEval_BlockIntroducesFreshScope(t *testing.T) {
	src := `<< inteirao x vira 1
	          << inteirao x vira 2
	             mostra_ae(x) >>
	          mostra_ae(x) >>`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}
