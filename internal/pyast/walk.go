package pyast

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node. If f returns false the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch x := n.(type) {
	case *Module:
		inspectStmts(x.Body, f)
	case *FunctionDef:
		inspectArguments(&x.Args, f)
		inspectExprs(x.DecoratorList, f)
		inspectExpr(x.Returns, f)
		inspectStmts(x.Body, f)
	case *ClassDef:
		inspectExprs(x.Bases, f)
		for _, kw := range x.Keywords {
			inspectExpr(kw.Value, f)
		}
		inspectExprs(x.DecoratorList, f)
		inspectStmts(x.Body, f)
	case *Return:
		inspectExpr(x.Value, f)
	case *If:
		inspectExpr(x.Test, f)
		inspectStmts(x.Body, f)
		inspectStmts(x.Orelse, f)
	case *For:
		inspectExpr(x.Target, f)
		inspectExpr(x.Iter, f)
		inspectStmts(x.Body, f)
		inspectStmts(x.Orelse, f)
	case *While:
		inspectExpr(x.Test, f)
		inspectStmts(x.Body, f)
		inspectStmts(x.Orelse, f)
	case *With:
		for _, item := range x.Items {
			inspectExpr(item.ContextExpr, f)
			inspectExpr(item.OptionalVars, f)
		}
		inspectStmts(x.Body, f)
	case *Try:
		inspectStmts(x.Body, f)
		for _, h := range x.Handlers {
			inspectExpr(h.Type, f)
			inspectStmts(h.Body, f)
		}
		inspectStmts(x.Orelse, f)
		inspectStmts(x.FinalBody, f)
	case *Match:
		inspectExpr(x.Subject, f)
		for _, c := range x.Cases {
			inspectExpr(c.Guard, f)
			inspectStmts(c.Body, f)
		}
	case *Assign:
		inspectExprs(x.Targets, f)
		inspectExpr(x.Value, f)
	case *AnnAssign:
		inspectExpr(x.Target, f)
		inspectExpr(x.Annotation, f)
		inspectExpr(x.Value, f)
	case *AugAssign:
		inspectExpr(x.Target, f)
		inspectExpr(x.Value, f)
	case *ExprStmt:
		inspectExpr(x.Value, f)
	case *Raise:
		inspectExpr(x.Exc, f)
		inspectExpr(x.Cause, f)
	case *Assert:
		inspectExpr(x.Test, f)
		inspectExpr(x.Msg, f)
	case *Delete:
		inspectExprs(x.Targets, f)
	case *Attribute:
		inspectExpr(x.Value, f)
	case *Subscript:
		inspectExpr(x.Value, f)
		inspectExpr(x.Slice, f)
	case *Call:
		inspectExpr(x.Func, f)
		inspectExprs(x.Args, f)
		for _, kw := range x.Keywords {
			inspectExpr(kw.Value, f)
		}
	case *Tuple:
		inspectExprs(x.Elts, f)
	case *List:
		inspectExprs(x.Elts, f)
	case *BinOp:
		inspectExpr(x.Left, f)
		inspectExpr(x.Right, f)
	case *UnaryOp:
		inspectExpr(x.Operand, f)
	case *BoolOp:
		inspectExprs(x.Values, f)
	case *Compare:
		inspectExpr(x.Left, f)
		inspectExprs(x.Comparators, f)
	case *Lambda:
		inspectArguments(&x.Args, f)
		inspectExpr(x.Body, f)
	case *IfExp:
		inspectExpr(x.Test, f)
		inspectExpr(x.Body, f)
		inspectExpr(x.Orelse, f)
	case *Starred:
		inspectExpr(x.Value, f)
	case *Await:
		inspectExpr(x.Value, f)
	case *Yield:
		inspectExpr(x.Value, f)
	case *YieldFrom:
		inspectExpr(x.Value, f)
	case *Slice:
		inspectExpr(x.Lower, f)
		inspectExpr(x.Upper, f)
		inspectExpr(x.Step, f)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}

func inspectExprs(exprs []Expr, f func(Node) bool) {
	for _, e := range exprs {
		inspectExpr(e, f)
	}
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectArguments(args *Arguments, f func(Node) bool) {
	all := make([]*Arg, 0, len(args.PosOnlyArgs)+len(args.Args)+len(args.KwOnlyArgs)+2)
	all = append(all, args.PosOnlyArgs...)
	all = append(all, args.Args...)
	all = append(all, args.KwOnlyArgs...)
	if args.VarArg != nil {
		all = append(all, args.VarArg)
	}
	if args.KwArg != nil {
		all = append(all, args.KwArg)
	}
	for _, arg := range all {
		inspectExpr(arg.Annotation, f)
	}
	inspectExprs(args.Defaults, f)
	inspectExprs(args.KwDefaults, f)
}
