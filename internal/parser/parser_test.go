/*
File    : jaolang/internal/parser/parser_test.go
Adapted : from go-mix/parser/parser_test.go's testify-assert style,
          checking shape of the parsed tree rather than round-tripping
          to source text.
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/lexer"
	"github.com/akashmaji946/jaolang/internal/token"
)

func parseProgram(t *testing.T, src string) *ast.Block {
	t.Helper()
	lx := lexer.New(src)
	p := New(lx)
	block, err := p.ParseProgram()
	require.NoError(t, err)
	require.NotNil(t, block)
	return block
}

func TestParser_ArithmeticPrint(t *testing.T) {
	block := parseProgram(t, `<< mostra_ae(2 + 3 * 4) >>`)
	require.Len(t, block.Statements, 1)
	printStmt, ok := block.Statements[0].(*ast.Print)
	require.True(t, ok)
	binOp, ok := printStmt.Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, binOp.Op)
	_, leftIsInt := binOp.Left.(*ast.IntLit)
	assert.True(t, leftIsInt)
	rightMul, ok := binOp.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.MULT, rightMul.Op)
}

func TestParser_VarDeclWithInit(t *testing.T) {
	block := parseProgram(t, `<< inteirao x vira 5 >>`)
	decl, ok := block.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, token.INT_TY, decl.DeclType)
	require.NotNil(t, decl.Init)
}

func TestParser_VarDeclWithoutInit(t *testing.T) {
	block := parseProgram(t, `<< falae s >>`)
	decl, ok := block.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Nil(t, decl.Init)
}

func TestParser_IfElse(t *testing.T) {
	block := parseProgram(t, `<< se_liga_jao eh_tudo << mostra_ae(1) >> se_nao_jao << mostra_ae(2) >> >>`)
	ifStmt, ok := block.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Then)
	require.NotNil(t, ifStmt.Else)
}

func TestParser_ForLoop(t *testing.T) {
	block := parseProgram(t, `<< vai_rodando_ae eh_tudo << mostra_ae(1) >> >>`)
	_, ok := block.Statements[0].(*ast.For)
	require.True(t, ok)
}

func TestParser_RepeatUntil(t *testing.T) {
	block := parseProgram(t, `<< repete_ate_jao << mostra_ae(1) >> quando eh_nada >>`)
	rep, ok := block.Statements[0].(*ast.Repeat)
	require.True(t, ok)
	require.NotNil(t, rep.Cond)
}

func TestParser_RepeatMissingQuandoIsParseError(t *testing.T) {
	lx := lexer.New(`<< repete_ate_jao << mostra_ae(1) >> >>`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParser_AssignAndCall(t *testing.T) {
	block := parseProgram(t, `<< x vira 1 soma(1, 2) >>`)
	_, ok := block.Statements[0].(*ast.Assign)
	require.True(t, ok)
	exprStmt, ok := block.Statements[1].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Equal(t, "soma", exprStmt.Call.Name)
	assert.Len(t, exprStmt.Call.Args, 2)
}

func TestParser_FuncDecl(t *testing.T) {
	block := parseProgram(t, `<< manda_bala soma(inteirao a, inteirao b) inteirao << devolve_ai a + b >> >>`)
	fn, ok := block.Statements[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "soma", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, token.INT_TY, fn.RetType)
	assert.False(t, fn.IsVoid())
}

func TestParser_FuncDeclVoid(t *testing.T) {
	block := parseProgram(t, `<< manda_bala grita() << mostra_ae(1) >> >>`)
	fn, ok := block.Statements[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.True(t, fn.IsVoid())
}

func TestParser_FuncDeclNestedIsParseError(t *testing.T) {
	lx := lexer.New(`<< se_liga_jao eh_tudo << manda_bala f() << mostra_ae(1) >> >> >>`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParser_ReturnAtTopLevelIsParseError(t *testing.T) {
	lx := lexer.New(`<< devolve_ai 1 >>`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParser_ReturnInsideIfOutsideFunctionIsParseError(t *testing.T) {
	lx := lexer.New(`<< se_liga_jao eh_tudo << devolve_ai 1 >> >>`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParser_ReturnInsideNestedBlockInsideFunctionIsAllowed(t *testing.T) {
	block := parseProgram(t, `<< manda_bala f() inteirao << se_liga_jao eh_tudo << devolve_ai 1 >> >> >>`)
	fn, ok := block.Statements[0].(*ast.FuncDecl)
	require.True(t, ok)
	ifStmt, ok := fn.Body.Statements[0].(*ast.If)
	require.True(t, ok)
	_, ok = ifStmt.Then.Statements[0].(*ast.Return)
	assert.True(t, ok)
}

func TestParser_UnaryPrecedence(t *testing.T) {
	block := parseProgram(t, `<< mostra_ae(--5) >>`)
	printStmt := block.Statements[0].(*ast.Print)
	outer, ok := printStmt.Expr.(*ast.UnOp)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, outer.Op)
	_, ok = outer.X.(*ast.UnOp)
	require.True(t, ok)
}

func TestParser_ScanAndParens(t *testing.T) {
	block := parseProgram(t, `<< inteirao x vira (escuta_ae_jao() + 1) >> `)
	decl := block.Statements[0].(*ast.VarDecl)
	binOp, ok := decl.Init.(*ast.BinOp)
	require.True(t, ok)
	_, ok = binOp.Left.(*ast.Scan)
	assert.True(t, ok)
}

func TestParser_MissingClosingBlockIsParseError(t *testing.T) {
	lx := lexer.New(`<< mostra_ae(1)`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParser_GarbageAfterProgramEndIsParseError(t *testing.T) {
	lx := lexer.New(`<< mostra_ae(1) >> garbage`)
	p := New(lx)
	_, err := p.ParseProgram()
	require.Error(t, err)
}
