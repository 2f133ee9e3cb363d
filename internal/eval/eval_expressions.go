/*
File    : jaolang/internal/eval/eval_expressions.go
Adapted : from go-mix/eval/eval_expressions.go. The teacher's
          evalBinaryExpression / evalPrefixExpression pair dispatches
          on a GoMixType string and builds result objects by hand for
          each operator; the same operator-table shape is kept here,
          narrowed to spec.md §4.3's exact operand/result rules (e.g.
          `+` is the only operator with a string-coercion rule, `&&`
          and `||` are evaluated eagerly on both sides with no
          short-circuit, contradicting the Python original this was
          distilled from — see DESIGN.md's Open Questions).
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/jaolang/internal/ast"
	"github.com/akashmaji946/jaolang/internal/funcreg"
	"github.com/akashmaji946/jaolang/internal/jaoerr"
	"github.com/akashmaji946/jaolang/internal/scope"
	"github.com/akashmaji946/jaolang/internal/token"
	"github.com/akashmaji946/jaolang/internal/values"
)

func tokenTypeToValueType(k token.Kind) values.Type {
	switch k {
	case token.INT_TY:
		return values.IntType
	case token.STRING_TY:
		return values.StringType
	case token.BOOL_TY:
		return values.BoolType
	}
	return ""
}

// evalExpr evaluates expr in sc, yielding its (value, type) pair.
func (e *Evaluator) evalExpr(expr ast.Expr, sc *scope.Scope) (values.Value, values.Type, error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return values.NewInt(n.Value), values.IntType, nil
	case *ast.StringLit:
		return values.NewStr(n.Value), values.StringType, nil
	case *ast.BoolLit:
		return values.NewBool(n.Value), values.BoolType, nil
	case *ast.Ident:
		v, t, ok := sc.Lookup(n.Name)
		if !ok {
			line, col := n.Pos()
			return nil, "", jaoerr.NewName(line, col, "undeclared name %q", n.Name)
		}
		return v, t, nil
	case *ast.Scan:
		return e.readScanLine()
	case *ast.UnOp:
		return e.evalUnOp(n, sc)
	case *ast.BinOp:
		return e.evalBinOp(n, sc)
	case *ast.Call:
		v, t, err := e.evalCall(n, sc)
		if err != nil {
			return nil, "", err
		}
		if t == "" {
			line, col := n.Pos()
			return nil, "", jaoerr.NewType(line, col, "function %q is void and cannot be used in an expression", n.Name)
		}
		return v, t, nil
	default:
		line, col := expr.Pos()
		return nil, "", jaoerr.NewParse(line, col, "unhandled expression node %T", expr)
	}
}

func (e *Evaluator) evalUnOp(n *ast.UnOp, sc *scope.Scope) (values.Value, values.Type, error) {
	v, t, err := e.evalExpr(n.X, sc)
	if err != nil {
		return nil, "", err
	}
	line, col := n.Pos()
	switch n.Op {
	case token.MINUS:
		if t != values.IntType {
			return nil, "", jaoerr.NewType(line, col, "unary '-' requires int, got %s", t)
		}
		return values.NewInt(-v.(*values.Int).Value), values.IntType, nil
	case token.PLUS:
		if t != values.IntType {
			// Pass through unchanged on non-int operands (spec.md §4.3).
			return v, t, nil
		}
		return v, t, nil
	case token.NOT:
		if t != values.BoolType {
			return nil, "", jaoerr.NewType(line, col, "unary '!' requires bool, got %s", t)
		}
		return values.NewBool(!v.(*values.Bool).Value), values.BoolType, nil
	}
	return nil, "", jaoerr.NewParse(line, col, "unhandled unary operator %s", n.Op)
}

// evalBinOp evaluates both operands unconditionally (left before
// right) before combining them, including for && and || — spec.md §4.3
// and §5 both require eager evaluation with no short-circuit.
func (e *Evaluator) evalBinOp(n *ast.BinOp, sc *scope.Scope) (values.Value, values.Type, error) {
	lv, lt, err := e.evalExpr(n.Left, sc)
	if err != nil {
		return nil, "", err
	}
	rv, rt, err := e.evalExpr(n.Right, sc)
	if err != nil {
		return nil, "", err
	}
	line, col := n.Pos()

	switch n.Op {
	case token.PLUS:
		if lt == values.StringType || rt == values.StringType {
			return values.NewStr(lv.ToStr() + rv.ToStr()), values.StringType, nil
		}
		if lt == values.IntType && rt == values.IntType {
			return values.NewInt(lv.(*values.Int).Value + rv.(*values.Int).Value), values.IntType, nil
		}
		return nil, "", jaoerr.NewType(line, col, "'+' requires int,int or a string operand, got %s,%s", lt, rt)
	case token.MINUS, token.MULT, token.DIV:
		if lt != values.IntType || rt != values.IntType {
			return nil, "", jaoerr.NewType(line, col, "%q requires int,int, got %s,%s", n.Op, lt, rt)
		}
		a, b := lv.(*values.Int).Value, rv.(*values.Int).Value
		switch n.Op {
		case token.MINUS:
			return values.NewInt(a - b), values.IntType, nil
		case token.MULT:
			return values.NewInt(a * b), values.IntType, nil
		case token.DIV:
			if b == 0 {
				return nil, "", jaoerr.NewArith(line, col, "division by zero")
			}
			return values.NewInt(floorDiv(a, b)), values.IntType, nil
		}
	case token.LT, token.GT:
		if lt == values.IntType && rt == values.IntType {
			a, b := lv.(*values.Int).Value, rv.(*values.Int).Value
			if n.Op == token.LT {
				return values.NewBool(a < b), values.BoolType, nil
			}
			return values.NewBool(a > b), values.BoolType, nil
		}
		if lt == values.StringType && rt == values.StringType {
			a, b := lv.(*values.Str).Value, rv.(*values.Str).Value
			if n.Op == token.LT {
				return values.NewBool(strings.Compare(a, b) < 0), values.BoolType, nil
			}
			return values.NewBool(strings.Compare(a, b) > 0), values.BoolType, nil
		}
		return nil, "", jaoerr.NewType(line, col, "%q requires int,int or string,string, got %s,%s", n.Op, lt, rt)
	case token.EQ:
		if lt != rt {
			return nil, "", jaoerr.NewType(line, col, "'==' requires both sides to be the same type, got %s,%s", lt, rt)
		}
		return values.NewBool(valuesEqual(lv, rv, lt)), values.BoolType, nil
	case token.AND, token.OR:
		if lt != values.BoolType || rt != values.BoolType {
			return nil, "", jaoerr.NewType(line, col, "%q requires bool,bool, got %s,%s", n.Op, lt, rt)
		}
		a, b := lv.(*values.Bool).Value, rv.(*values.Bool).Value
		if n.Op == token.AND {
			return values.NewBool(a && b), values.BoolType, nil
		}
		return values.NewBool(a || b), values.BoolType, nil
	}
	return nil, "", jaoerr.NewParse(line, col, "unhandled binary operator %s", n.Op)
}

func valuesEqual(a, b values.Value, t values.Type) bool {
	switch t {
	case values.IntType:
		return a.(*values.Int).Value == b.(*values.Int).Value
	case values.StringType:
		return a.(*values.Str).Value == b.(*values.Str).Value
	case values.BoolType:
		return a.(*values.Bool).Value == b.(*values.Bool).Value
	}
	return false
}

// floorDiv implements integer division rounding toward negative
// infinity (spec.md §4.3's "floor semantics" division rule), as
// opposed to Go's native truncation-toward-zero "/".
func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// evalCall evaluates a function call: the built-in Println, or a
// user-defined function looked up in the registry. A void call yields a
// nil value and an empty type.
func (e *Evaluator) evalCall(call *ast.Call, sc *scope.Scope) (values.Value, values.Type, error) {
	if call.Name == "Println" {
		return e.evalPrintln(call, sc)
	}

	fn, ok := e.Funcs.Lookup(call.Name)
	if !ok {
		line, col := call.Pos()
		if _, _, found := sc.Lookup(call.Name); found {
			return nil, "", jaoerr.NewKind(line, col, "%q is not a function", call.Name)
		}
		return nil, "", jaoerr.NewName(line, col, "undeclared name %q", call.Name)
	}

	if len(call.Args) != len(fn.Params) {
		line, col := call.Pos()
		return nil, "", jaoerr.NewType(line, col, "%q expects %d argument(s), got %d", call.Name, len(fn.Params), len(call.Args))
	}

	callScope := scope.New(e.Global)
	for i, param := range fn.Params {
		argVal, argType, err := e.evalExpr(call.Args[i], sc)
		if err != nil {
			return nil, "", err
		}
		wantType := tokenTypeToValueType(param.Type)
		if argType != wantType {
			line, col := call.Args[i].Pos()
			return nil, "", jaoerr.NewType(line, col, "%q argument %d: expected %s, got %s", call.Name, i+1, wantType, argType)
		}
		callScope.Declare(param.Name, wantType, argVal)
	}

	return e.runFuncBody(fn, callScope, call)
}

func (e *Evaluator) runFuncBody(fn *funcreg.Func, callScope *scope.Scope, call *ast.Call) (values.Value, values.Type, error) {
	sig, err := e.evalStatements(fn.Body.Statements, callScope)
	if err != nil {
		return nil, "", err
	}
	wantRet := tokenTypeToValueType(fn.RetType)
	line, col := call.Pos()
	if sig != nil {
		if wantRet == "" {
			return nil, "", jaoerr.NewType(line, col, "%q is void and cannot return a value", call.Name)
		}
		if sig.typ != wantRet {
			return nil, "", jaoerr.NewType(line, col, "%q must return %s, got %s", call.Name, wantRet, sig.typ)
		}
		return sig.value, sig.typ, nil
	}
	if wantRet != "" {
		return nil, "", jaoerr.NewType(line, col, "%q must return %s", call.Name, wantRet)
	}
	return nil, "", nil
}

// evalPrintln implements the built-in: each argument is rendered on
// its own line, booleans as lowercase true/false (spec.md §4.3).
func (e *Evaluator) evalPrintln(call *ast.Call, sc *scope.Scope) (values.Value, values.Type, error) {
	for _, arg := range call.Args {
		v, _, err := e.evalExpr(arg, sc)
		if err != nil {
			return nil, "", err
		}
		_, werr := e.Writer.Write([]byte(v.ToStr() + "\n"))
		if werr != nil {
			return nil, "", werr
		}
	}
	return nil, "", nil
}
