/*
File    : jaolang/internal/ast/print.go
Adapted : from go-mix/print_visitor.go (PrintingVisitor): an indenting
          Visitor implementation that writes one line per node into a
          bytes.Buffer, indenting child nodes by a fixed amount. Kept
          as a debug tool over the AST's own Visitor interface rather
          than folded into the evaluator, which dispatches by type
          switch instead (see eval's evalStatement/evalExpr). Reached from
          internal/repl's ':ast' meta-command.
*/
package ast

import (
	"bytes"
	"fmt"
)

const dumpIndentSize = 2

// printer implements Visitor, writing an indented trace of the tree
// into buf. Use Dump for the common case of rendering a whole program.
type printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *printer) writeln(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteByte('\n')
}

func (p *printer) inBlock(fn func()) {
	p.indent += dumpIndentSize
	fn()
	p.indent -= dumpIndentSize
}

// Dump renders node and its children as an indented debug trace,
// matching the shape of the teacher's PrintingVisitor output.
func Dump(node Node) string {
	p := &printer{}
	node.Accept(p)
	return p.buf.String()
}

func (p *printer) VisitBlock(n *Block) {
	p.writeln("Block")
	p.inBlock(func() {
		for _, stmt := range n.Statements {
			stmt.Accept(p)
		}
	})
}

func (p *printer) VisitVarDecl(n *VarDecl) {
	p.writeln("VarDecl %s : %s", n.Name, n.DeclType)
	if n.Init != nil {
		p.inBlock(func() { n.Init.Accept(p) })
	}
}

func (p *printer) VisitAssign(n *Assign) {
	p.writeln("Assign %s", n.Name)
	p.inBlock(func() { n.Expr.Accept(p) })
}

func (p *printer) VisitIf(n *If) {
	p.writeln("If")
	p.inBlock(func() {
		n.Cond.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *printer) VisitFor(n *For) {
	p.writeln("For")
	p.inBlock(func() {
		n.Cond.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *printer) VisitRepeat(n *Repeat) {
	p.writeln("Repeat")
	p.inBlock(func() {
		n.Body.Accept(p)
		n.Cond.Accept(p)
	})
}

func (p *printer) VisitPrint(n *Print) {
	p.writeln("Print")
	p.inBlock(func() { n.Expr.Accept(p) })
}

func (p *printer) VisitFuncDecl(n *FuncDecl) {
	p.writeln("FuncDecl %s (%d params) -> %s", n.Name, len(n.Params), n.RetType)
	p.inBlock(func() { n.Body.Accept(p) })
}

func (p *printer) VisitExprStmt(n *ExprStmt) {
	p.writeln("ExprStmt")
	p.inBlock(func() { n.Call.Accept(p) })
}

func (p *printer) VisitIntLit(n *IntLit)       { p.writeln("IntLit %d", n.Value) }
func (p *printer) VisitStringLit(n *StringLit) { p.writeln("StringLit %q", n.Value) }
func (p *printer) VisitBoolLit(n *BoolLit)     { p.writeln("BoolLit %t", n.Value) }
func (p *printer) VisitIdent(n *Ident)         { p.writeln("Ident %s", n.Name) }
func (p *printer) VisitScan(n *Scan)           { p.writeln("Scan") }

func (p *printer) VisitUnOp(n *UnOp) {
	p.writeln("UnOp %s", n.Op)
	p.inBlock(func() { n.X.Accept(p) })
}

func (p *printer) VisitBinOp(n *BinOp) {
	p.writeln("BinOp %s", n.Op)
	p.inBlock(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *printer) VisitCall(n *Call) {
	p.writeln("Call %s (%d args)", n.Name, len(n.Args))
	p.inBlock(func() {
		for _, arg := range n.Args {
			arg.Accept(p)
		}
	})
}

func (p *printer) VisitReturn(n *Return) {
	p.writeln("Return")
	p.inBlock(func() { n.Expr.Accept(p) })
}
