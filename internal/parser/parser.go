/*
File    : jaolang/internal/parser/parser.go
Adapted : from go-mix/parser/parser.go. The teacher runs a Pratt
          (precedence-climbing) expression parser with an error-
          collecting driver that keeps going after a fault; spec.md
          §4.2 names a literal precedence-stratified grammar
          (bexpr > bterm > relexpr > expr > term > factor > unary >
          primary) and requires the first structural fault to abort
          parsing immediately, so this is a direct recursive-descent
          parser, one production per grammar rule, first-error-abort.
          The teacher's habit of naming one parseX method per grammar
          rule and reporting "[line:col] message" diagnostics is kept.
*/

// Package parser turns a JaoLang token stream into an *ast.Block, the
// program's root node, following spec.md §4.2's grammar exactly (plus
// the funcDecl/returnStmt productions documented in SPEC_FULL.md).
package parser

import (
	"strconv"

	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/jaoerr"
	"github.com/akashmaji946/jaolang/internal/lexer"
	"github.com/akashmaji946/jaolang/internal/token"
)

// Parser is a recursive-descent parser over a lexer's token stream.
type Parser struct {
	lx *lexer.Lexer
}

// New creates a Parser reading from lx.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// ParseProgram parses the whole token stream as `program := block`,
// requiring EOF immediately after the root block (spec.md §4.2).
func (p *Parser) ParseProgram() (*ast.Block, error) {
	if err := p.lx.Err(); err != nil {
		return nil, err
	}
	block, err := p.parseBlock(true, false)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		t := p.cur()
		return nil, jaoerr.NewParse(t.Line, t.Column, "unexpected token %q after program end", t.Literal)
	}
	return block, nil
}

func (p *Parser) cur() token.Token {
	return p.lx.Current()
}

// advance moves the lookahead forward and surfaces any lexical error
// raised while scanning the next token.
func (p *Parser) advance() error {
	p.lx.Advance()
	return p.lx.Err()
}

// expect requires the current token to have kind, consumes it, and
// returns the consumed token. Otherwise it raises a ParseError naming
// what was expected.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	t := p.cur()
	if t.Kind != kind {
		return t, jaoerr.NewParse(t.Line, t.Column, "expected %s, got %q", what, t.Literal)
	}
	if err := p.advance(); err != nil {
		return t, err
	}
	return t, nil
}

// parseBlock parses `'<<' statement* '>>'`. atTop is true only for the
// program root, where a top-level funcDecl is permitted; nested blocks
// reject funcDecl with a ParseError (SPEC_FULL.md's ambient grammar
// extension: function declarations are top-level only). inFunc is true
// for the body of a funcDecl and every block nested inside it, so a
// `devolve_ai` reachable from that block is legal; it is threaded the
// same way atTop is.
func (p *Parser) parseBlock(atTop, inFunc bool) (*ast.Block, error) {
	open, err := p.expect(token.LBLOCK, "'<<'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur().Kind != token.RBLOCK {
		if p.cur().Kind == token.EOF {
			t := p.cur()
			return nil, jaoerr.NewParse(t.Line, t.Column, "expected '>>', got EOF")
		}
		stmt, err := p.parseStatement(atTop, inFunc)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBLOCK, "'>>'"); err != nil {
		return nil, err
	}
	return &ast.Block{Position: ast.At(open.Line, open.Column), Statements: stmts}, nil
}

func (p *Parser) parseStatement(atTop, inFunc bool) (ast.Stmt, error) {
	t := p.cur()
	switch t.Kind {
	case token.INT_TY, token.STRING_TY, token.BOOL_TY:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIfStmt(inFunc)
	case token.FOR:
		return p.parseForStmt(inFunc)
	case token.REPEAT:
		return p.parseRepeatStmt(inFunc)
	case token.PRINT:
		return p.parsePrintStmt()
	case token.FUNC:
		if !atTop {
			return nil, jaoerr.NewParse(t.Line, t.Column, "function declarations are only allowed at the top level")
		}
		return p.parseFuncDecl()
	case token.RETURN:
		if !inFunc {
			return nil, jaoerr.NewParse(t.Line, t.Column, "'devolve_ai' is only allowed inside a function body")
		}
		return p.parseReturnStmt()
	case token.LBLOCK:
		return p.parseBlock(false, inFunc)
	case token.IDEN:
		return p.parseAssignOrCall()
	default:
		return nil, jaoerr.NewParse(t.Line, t.Column, "unexpected token %q at start of statement", t.Literal)
	}
}

// parseVarDecl parses `type IDEN ( 'vira' bexpr )?`.
func (p *Parser) parseVarDecl() (ast.Stmt, error) {
	typeTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDEN, "identifier after type")
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{
		Position: ast.At(typeTok.Line, typeTok.Column),
		Name:     nameTok.Literal,
		DeclType: typeTok.Kind,
	}
	if p.cur().Kind == token.ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseBExpr()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	return decl, nil
}

// parseIfStmt parses `'se_liga_jao' bexpr block ( 'se_nao_jao' block )?`.
// inFunc is carried through from the enclosing statement so a
// `devolve_ai` inside either branch is accepted only when the whole
// if-statement is itself nested inside a function body.
func (p *Parser) parseIfStmt(inFunc bool) (ast.Stmt, error) {
	ifTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock(false, inFunc)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Position: ast.At(ifTok.Line, ifTok.Column), Cond: cond, Then: thenBlock}
	if p.cur().Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock(false, inFunc)
		if err != nil {
			return nil, err
		}
		node.Else = elseBlock
	}
	return node, nil
}

// parseForStmt parses `'vai_rodando_ae' bexpr block`. inFunc is carried
// through the same way parseIfStmt does.
func (p *Parser) parseForStmt(inFunc bool) (ast.Stmt, error) {
	forTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(false, inFunc)
	if err != nil {
		return nil, err
	}
	return &ast.For{Position: ast.At(forTok.Line, forTok.Column), Cond: cond, Body: body}, nil
}

// parseRepeatStmt parses `'repete_ate_jao' block 'quando' bexpr`. inFunc
// is carried through the same way parseIfStmt does.
func (p *Parser) parseRepeatStmt(inFunc bool) (ast.Stmt, error) {
	repTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(false, inFunc)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHEN, "'quando'"); err != nil {
		return nil, err
	}
	cond, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Repeat{Position: ast.At(repTok.Line, repTok.Column), Body: body, Cond: cond}, nil
}

// parsePrintStmt parses `'mostra_ae' '(' bexpr ')'`.
func (p *Parser) parsePrintStmt() (ast.Stmt, error) {
	printTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAR, "'('"); err != nil {
		return nil, err
	}
	expr, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAR, "')'"); err != nil {
		return nil, err
	}
	return &ast.Print{Position: ast.At(printTok.Line, printTok.Column), Expr: expr}, nil
}

// parseFuncDecl parses `'manda_bala' IDEN '(' params? ')' retType? block`
// (SPEC_FULL.md's ambient grammar extension).
func (p *Parser) parseFuncDecl() (ast.Stmt, error) {
	funcTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDEN, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAR, "'(' after function name"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur().Kind != token.RPAR {
		pTypeTok := p.cur()
		if !isTypeKind(pTypeTok.Kind) {
			return nil, jaoerr.NewParse(pTypeTok.Line, pTypeTok.Column, "expected parameter type, got %q", pTypeTok.Literal)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		pNameTok, err := p.expect(token.IDEN, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: pNameTok.Literal, Type: pTypeTok.Kind})
		if p.cur().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.cur().Kind != token.RPAR {
			t := p.cur()
			return nil, jaoerr.NewParse(t.Line, t.Column, "expected ',' or ')' in parameter list, got %q", t.Literal)
		}
	}
	if _, err := p.expect(token.RPAR, "')'"); err != nil {
		return nil, err
	}
	var retType token.Kind
	if isTypeKind(p.cur().Kind) {
		retType = p.cur().Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock(false, true)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		Position: ast.At(funcTok.Line, funcTok.Column),
		Name:     nameTok.Literal,
		Params:   params,
		RetType:  retType,
		Body:     body,
	}, nil
}

// parseReturnStmt parses `'devolve_ai' bexpr`.
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	retTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Position: ast.At(retTok.Line, retTok.Column), Expr: expr}, nil
}

// parseAssignOrCall parses `IDEN ( 'vira' bexpr | '(' args? ')' )`.
func (p *Parser) parseAssignOrCall() (ast.Stmt, error) {
	nameTok := p.cur()
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.cur().Kind {
	case token.ASSIGN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseBExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Position: ast.At(nameTok.Line, nameTok.Column), Name: nameTok.Literal, Expr: expr}, nil
	case token.LPAR:
		call, err := p.parseCallArgs(nameTok)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Position: ast.At(nameTok.Line, nameTok.Column), Call: call}, nil
	default:
		t := p.cur()
		return nil, jaoerr.NewParse(t.Line, t.Column, "expected 'vira' or '(' after identifier, got %q", t.Literal)
	}
}

// parseCallArgs parses `'(' args? ')'` given the already-consumed callee
// name token; shared by statement-position calls and primary-position
// calls.
func (p *Parser) parseCallArgs(nameTok token.Token) (*ast.Call, error) {
	if _, err := p.expect(token.LPAR, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur().Kind != token.RPAR {
		arg, err := p.parseBExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.cur().Kind != token.RPAR {
			t := p.cur()
			return nil, jaoerr.NewParse(t.Line, t.Column, "expected ',' or ')' in argument list, got %q", t.Literal)
		}
	}
	if _, err := p.expect(token.RPAR, "')'"); err != nil {
		return nil, err
	}
	return &ast.Call{Position: ast.At(nameTok.Line, nameTok.Column), Name: nameTok.Literal, Args: args}, nil
}

func isTypeKind(k token.Kind) bool {
	return k == token.INT_TY || k == token.STRING_TY || k == token.BOOL_TY
}

// ---- expression grammar: bexpr > bterm > relexpr > expr > term > factor > unary > primary ----

// parseBExpr parses `bterm ( '||' bterm )*`.
func (p *Parser) parseBExpr() (ast.Expr, error) {
	left, err := p.parseBTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OR {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Position: ast.At(opTok.Line, opTok.Column), Op: token.OR, Left: left, Right: right}
	}
	return left, nil
}

// parseBTerm parses `relexpr ( '&&' relexpr )*`.
func (p *Parser) parseBTerm() (ast.Expr, error) {
	left, err := p.parseRelExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.AND {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Position: ast.At(opTok.Line, opTok.Column), Op: token.AND, Left: left, Right: right}
	}
	return left, nil
}

// parseRelExpr parses `expr ( ('<'|'>'|'==') expr )*`.
func (p *Parser) parseRelExpr() (ast.Expr, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.LT || p.cur().Kind == token.GT || p.cur().Kind == token.EQ {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Position: ast.At(opTok.Line, opTok.Column), Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

// parseExpr parses `term ( ('+'|'-') term )*`.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Position: ast.At(opTok.Line, opTok.Column), Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm parses `factor ( ('*'|'/') factor )*`.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.MULT || p.cur().Kind == token.DIV {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Position: ast.At(opTok.Line, opTok.Column), Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor parses `unary* primary`: zero or more prefix unary
// operators applied outermost-first around a single primary.
func (p *Parser) parseFactor() (ast.Expr, error) {
	if p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS || p.cur().Kind == token.NOT {
		opTok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnOp{Position: ast.At(opTok.Line, opTok.Column), Op: opTok.Kind, X: inner}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses:
// `INT | STRING | 'eh_tudo' | 'eh_nada' | '(' bexpr ')' | 'escuta_ae_jao' '(' ')' | IDEN ( '(' args? ')' )?`.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.cur()
	switch t.Kind {
	case token.INT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(t.Literal, 10, 64)
		if err != nil {
			return nil, jaoerr.NewParse(t.Line, t.Column, "malformed integer literal %q", t.Literal)
		}
		return &ast.IntLit{Position: ast.At(t.Line, t.Column), Value: v}, nil
	case token.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLit{Position: ast.At(t.Line, t.Column), Value: t.Literal}, nil
	case token.TRUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Position: ast.At(t.Line, t.Column), Value: true}, nil
	case token.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Position: ast.At(t.Line, t.Column), Value: false}, nil
	case token.LPAR:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseBExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAR, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case token.SCAN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAR, "'(' after 'escuta_ae_jao'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAR, "')'"); err != nil {
			return nil, err
		}
		return &ast.Scan{Position: ast.At(t.Line, t.Column)}, nil
	case token.IDEN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur().Kind == token.LPAR {
			return p.parseCallArgs(t)
		}
		return &ast.Ident{Position: ast.At(t.Line, t.Column), Name: t.Literal}, nil
	default:
		return nil, jaoerr.NewParse(t.Line, t.Column, "unexpected token %q in expression", t.Literal)
	}
}
