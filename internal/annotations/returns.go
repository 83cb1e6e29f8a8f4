package annotations

import (
	"github.com/abramin/annolint/internal/pyast"
)

// returnStatementVisitor collects the values of every return statement in a
// body. The traversal descends into control-flow constructs but stops at
// nested function definitions, whose returns belong to an inner scope.
type returnStatementVisitor struct {
	returns []pyast.Expr // nil entries are bare returns
}

func (v *returnStatementVisitor) visitStmts(stmts []pyast.Stmt) {
	for _, stmt := range stmts {
		v.visitStmt(stmt)
	}
}

func (v *returnStatementVisitor) visitStmt(stmt pyast.Stmt) {
	switch s := stmt.(type) {
	case *pyast.FunctionDef:
		// No recurse.
	case *pyast.Return:
		v.returns = append(v.returns, s.Value)
	case *pyast.ClassDef:
		v.visitStmts(s.Body)
	case *pyast.If:
		v.visitStmts(s.Body)
		v.visitStmts(s.Orelse)
	case *pyast.For:
		v.visitStmts(s.Body)
		v.visitStmts(s.Orelse)
	case *pyast.While:
		v.visitStmts(s.Body)
		v.visitStmts(s.Orelse)
	case *pyast.With:
		v.visitStmts(s.Body)
	case *pyast.Try:
		v.visitStmts(s.Body)
		for _, h := range s.Handlers {
			v.visitStmts(h.Body)
		}
		v.visitStmts(s.Orelse)
		v.visitStmts(s.FinalBody)
	case *pyast.Match:
		for _, c := range s.Cases {
			v.visitStmts(c.Body)
		}
	}
}

// isNoneReturning reports whether every return in the body is valueless or
// the None literal. A body with no returns qualifies.
func isNoneReturning(body []pyast.Stmt) bool {
	var visitor returnStatementVisitor
	visitor.visitStmts(body)
	for _, value := range visitor.returns {
		if value == nil {
			continue
		}
		if constant, ok := value.(*pyast.Constant); ok && constant.IsNone() {
			continue
		}
		return false
	}
	return true
}
