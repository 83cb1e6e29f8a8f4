package pyast

import (
	"encoding/json"
	"fmt"
)

// The exporter serializes every node as an object with a "kind" tag plus the
// node's fields. All child-node fields are captured as raw JSON first and
// decoded per kind, since several field names (value, body, args, names)
// hold different shapes on different kinds.

type rawNode struct {
	Kind string `json:"kind"`
	Pos

	Name     string `json:"name"`
	ID       string `json:"id"`
	Attr     string `json:"attr"`
	Op       string `json:"op"`
	Module   string `json:"module"`
	Level    int    `json:"level"`
	Async    bool   `json:"async"`
	Ellipsis bool   `json:"ellipsis"`

	Value         json.RawMessage   `json:"value"`
	Body          json.RawMessage   `json:"body"`
	Orelse        json.RawMessage   `json:"orelse"`
	FinalBody     []json.RawMessage `json:"finalbody"`
	Handlers      []json.RawMessage `json:"handlers"`
	Cases         []json.RawMessage `json:"cases"`
	Test          json.RawMessage   `json:"test"`
	Target        json.RawMessage   `json:"target"`
	Targets       []json.RawMessage `json:"targets"`
	Iter          json.RawMessage   `json:"iter"`
	Items         []json.RawMessage `json:"items"`
	Names         json.RawMessage   `json:"names"`
	Args          json.RawMessage   `json:"args"`
	Keywords      []json.RawMessage `json:"keywords"`
	DecoratorList []json.RawMessage `json:"decorator_list"`
	Returns       json.RawMessage   `json:"returns"`
	Annotation    json.RawMessage   `json:"annotation"`
	Func          json.RawMessage   `json:"func"`
	Elts          []json.RawMessage `json:"elts"`
	Bases         []json.RawMessage `json:"bases"`
	Left          json.RawMessage   `json:"left"`
	Right         json.RawMessage   `json:"right"`
	Operand       json.RawMessage   `json:"operand"`
	Values        []json.RawMessage `json:"values"`
	Ops           []string          `json:"ops"`
	Comparators   []json.RawMessage `json:"comparators"`
	Lower         json.RawMessage   `json:"lower"`
	Upper         json.RawMessage   `json:"upper"`
	Step          json.RawMessage   `json:"step"`
	Slice         json.RawMessage   `json:"slice"`
	Subject       json.RawMessage   `json:"subject"`
	Guard         json.RawMessage   `json:"guard"`
	Exc           json.RawMessage   `json:"exc"`
	Cause         json.RawMessage   `json:"cause"`
	Msg           json.RawMessage   `json:"msg"`
	Type          json.RawMessage   `json:"type"`
	ContextExpr   json.RawMessage   `json:"context_expr"`
	OptionalVars  json.RawMessage   `json:"optional_vars"`
}

// DecodeModule decodes a full AST dump.
func DecodeModule(data []byte) (*Module, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding module: %w", err)
	}
	if raw.Kind != "Module" {
		return nil, fmt.Errorf("expected Module at top level, got %q", raw.Kind)
	}
	body, err := decodeStmtList(raw.Body)
	if err != nil {
		return nil, err
	}
	return &Module{Pos: raw.Pos, Body: body}, nil
}

func decodeStmtList(data json.RawMessage) ([]Stmt, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decoding statement list: %w", err)
	}
	return decodeStmts(raws)
}

func decodeStmts(raws []json.RawMessage) ([]Stmt, error) {
	stmts := make([]Stmt, 0, len(raws))
	for _, r := range raws {
		stmt, err := decodeStmt(r)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeStmt(data json.RawMessage) (Stmt, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding statement: %w", err)
	}
	switch raw.Kind {
	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeArguments(raw.Args)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		decorators, err := decodeExprs(raw.DecoratorList)
		if err != nil {
			return nil, err
		}
		returns, err := decodeOptExpr(raw.Returns)
		if err != nil {
			return nil, err
		}
		return &FunctionDef{
			Pos:           raw.Pos,
			Name:          raw.Name,
			Args:          args,
			Body:          body,
			DecoratorList: decorators,
			Returns:       returns,
			Async:         raw.Kind == "AsyncFunctionDef" || raw.Async,
		}, nil
	case "ClassDef":
		bases, err := decodeExprs(raw.Bases)
		if err != nil {
			return nil, err
		}
		keywords, err := decodeKeywords(raw.Keywords)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		decorators, err := decodeExprs(raw.DecoratorList)
		if err != nil {
			return nil, err
		}
		return &ClassDef{Pos: raw.Pos, Name: raw.Name, Bases: bases, Keywords: keywords, Body: body, DecoratorList: decorators}, nil
	case "Return":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Return{Pos: raw.Pos, Value: value}, nil
	case "If":
		test, err := decodeOptExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(raw.Orelse)
		if err != nil {
			return nil, err
		}
		return &If{Pos: raw.Pos, Test: test, Body: body, Orelse: orelse}, nil
	case "For", "AsyncFor":
		target, err := decodeOptExpr(raw.Target)
		if err != nil {
			return nil, err
		}
		iter, err := decodeOptExpr(raw.Iter)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(raw.Orelse)
		if err != nil {
			return nil, err
		}
		return &For{Pos: raw.Pos, Target: target, Iter: iter, Body: body, Orelse: orelse, Async: raw.Kind == "AsyncFor" || raw.Async}, nil
	case "While":
		test, err := decodeOptExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(raw.Orelse)
		if err != nil {
			return nil, err
		}
		return &While{Pos: raw.Pos, Test: test, Body: body, Orelse: orelse}, nil
	case "With", "AsyncWith":
		items, err := decodeWithItems(raw.Items)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		return &With{Pos: raw.Pos, Items: items, Body: body, Async: raw.Kind == "AsyncWith" || raw.Async}, nil
	case "Try", "TryStar":
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		handlers, err := decodeHandlers(raw.Handlers)
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmtList(raw.Orelse)
		if err != nil {
			return nil, err
		}
		finalBody, err := decodeStmts(raw.FinalBody)
		if err != nil {
			return nil, err
		}
		return &Try{Pos: raw.Pos, Body: body, Handlers: handlers, Orelse: orelse, FinalBody: finalBody}, nil
	case "Match":
		subject, err := decodeOptExpr(raw.Subject)
		if err != nil {
			return nil, err
		}
		cases, err := decodeMatchCases(raw.Cases)
		if err != nil {
			return nil, err
		}
		return &Match{Pos: raw.Pos, Subject: subject, Cases: cases}, nil
	case "Import":
		names, err := decodeAliases(raw.Names)
		if err != nil {
			return nil, err
		}
		return &Import{Pos: raw.Pos, Names: names}, nil
	case "ImportFrom":
		names, err := decodeAliases(raw.Names)
		if err != nil {
			return nil, err
		}
		return &ImportFrom{Pos: raw.Pos, Module: raw.Module, Names: names, Level: raw.Level}, nil
	case "Assign":
		targets, err := decodeExprs(raw.Targets)
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Assign{Pos: raw.Pos, Targets: targets, Value: value}, nil
	case "AnnAssign":
		target, err := decodeOptExpr(raw.Target)
		if err != nil {
			return nil, err
		}
		annotation, err := decodeOptExpr(raw.Annotation)
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &AnnAssign{Pos: raw.Pos, Target: target, Annotation: annotation, Value: value}, nil
	case "AugAssign":
		target, err := decodeOptExpr(raw.Target)
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &AugAssign{Pos: raw.Pos, Target: target, Op: raw.Op, Value: value}, nil
	case "Expr":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Pos: raw.Pos, Value: value}, nil
	case "Raise":
		exc, err := decodeOptExpr(raw.Exc)
		if err != nil {
			return nil, err
		}
		cause, err := decodeOptExpr(raw.Cause)
		if err != nil {
			return nil, err
		}
		return &Raise{Pos: raw.Pos, Exc: exc, Cause: cause}, nil
	case "Assert":
		test, err := decodeOptExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		msg, err := decodeOptExpr(raw.Msg)
		if err != nil {
			return nil, err
		}
		return &Assert{Pos: raw.Pos, Test: test, Msg: msg}, nil
	case "Delete":
		targets, err := decodeExprs(raw.Targets)
		if err != nil {
			return nil, err
		}
		return &Delete{Pos: raw.Pos, Targets: targets}, nil
	case "Global":
		names, err := decodeNameList(raw.Names)
		if err != nil {
			return nil, err
		}
		return &Global{Pos: raw.Pos, Names: names}, nil
	case "Nonlocal":
		names, err := decodeNameList(raw.Names)
		if err != nil {
			return nil, err
		}
		return &Nonlocal{Pos: raw.Pos, Names: names}, nil
	case "Pass":
		return &Pass{Pos: raw.Pos}, nil
	case "Break":
		return &Break{Pos: raw.Pos}, nil
	case "Continue":
		return &Continue{Pos: raw.Pos}, nil
	default:
		return nil, fmt.Errorf("unsupported statement kind %q at %d:%d", raw.Kind, raw.Location.Row, raw.Location.Col)
	}
}

func decodeOptExpr(data json.RawMessage) (Expr, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	return decodeExpr(data)
}

func decodeExprs(raws []json.RawMessage) ([]Expr, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	exprs := make([]Expr, 0, len(raws))
	for _, r := range raws {
		expr, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeExpr(data json.RawMessage) (Expr, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding expression: %w", err)
	}
	switch raw.Kind {
	case "Name":
		return &Name{Pos: raw.Pos, ID: raw.ID}, nil
	case "Attribute":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Attribute{Pos: raw.Pos, Value: value, Attr: raw.Attr}, nil
	case "Constant":
		var value any
		if len(raw.Value) > 0 {
			if err := json.Unmarshal(raw.Value, &value); err != nil {
				return nil, fmt.Errorf("decoding constant: %w", err)
			}
		}
		return &Constant{Pos: raw.Pos, Value: value, Ellipsis: raw.Ellipsis}, nil
	case "Subscript":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		slice, err := decodeOptExpr(raw.Slice)
		if err != nil {
			return nil, err
		}
		return &Subscript{Pos: raw.Pos, Value: value, Slice: slice}, nil
	case "Call":
		fn, err := decodeOptExpr(raw.Func)
		if err != nil {
			return nil, err
		}
		var args []Expr
		if len(raw.Args) > 0 {
			var raws []json.RawMessage
			if err := json.Unmarshal(raw.Args, &raws); err != nil {
				return nil, fmt.Errorf("decoding call arguments: %w", err)
			}
			if args, err = decodeExprs(raws); err != nil {
				return nil, err
			}
		}
		keywords, err := decodeKeywords(raw.Keywords)
		if err != nil {
			return nil, err
		}
		return &Call{Pos: raw.Pos, Func: fn, Args: args, Keywords: keywords}, nil
	case "Tuple":
		elts, err := decodeExprs(raw.Elts)
		if err != nil {
			return nil, err
		}
		return &Tuple{Pos: raw.Pos, Elts: elts}, nil
	case "List":
		elts, err := decodeExprs(raw.Elts)
		if err != nil {
			return nil, err
		}
		return &List{Pos: raw.Pos, Elts: elts}, nil
	case "BinOp":
		left, err := decodeOptExpr(raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeOptExpr(raw.Right)
		if err != nil {
			return nil, err
		}
		return &BinOp{Pos: raw.Pos, Left: left, Op: raw.Op, Right: right}, nil
	case "UnaryOp":
		operand, err := decodeOptExpr(raw.Operand)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Pos: raw.Pos, Op: raw.Op, Operand: operand}, nil
	case "BoolOp":
		values, err := decodeExprs(raw.Values)
		if err != nil {
			return nil, err
		}
		return &BoolOp{Pos: raw.Pos, Op: raw.Op, Values: values}, nil
	case "Compare":
		left, err := decodeOptExpr(raw.Left)
		if err != nil {
			return nil, err
		}
		comparators, err := decodeExprs(raw.Comparators)
		if err != nil {
			return nil, err
		}
		return &Compare{Pos: raw.Pos, Left: left, Ops: raw.Ops, Comparators: comparators}, nil
	case "Lambda":
		args, err := decodeArguments(raw.Args)
		if err != nil {
			return nil, err
		}
		body, err := decodeOptExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{Pos: raw.Pos, Args: args, Body: body}, nil
	case "IfExp":
		test, err := decodeOptExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeOptExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		orelse, err := decodeOptExpr(raw.Orelse)
		if err != nil {
			return nil, err
		}
		return &IfExp{Pos: raw.Pos, Test: test, Body: body, Orelse: orelse}, nil
	case "Starred":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Starred{Pos: raw.Pos, Value: value}, nil
	case "Await":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Await{Pos: raw.Pos, Value: value}, nil
	case "Yield":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Yield{Pos: raw.Pos, Value: value}, nil
	case "YieldFrom":
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &YieldFrom{Pos: raw.Pos, Value: value}, nil
	case "Slice":
		lower, err := decodeOptExpr(raw.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := decodeOptExpr(raw.Upper)
		if err != nil {
			return nil, err
		}
		step, err := decodeOptExpr(raw.Step)
		if err != nil {
			return nil, err
		}
		return &Slice{Pos: raw.Pos, Lower: lower, Upper: upper, Step: step}, nil
	default:
		// Comprehensions, f-strings and the rest decode opaquely; no rule
		// looks inside them.
		return &Opaque{Pos: raw.Pos, Kind: raw.Kind}, nil
	}
}

func decodeArguments(data json.RawMessage) (Arguments, error) {
	var args Arguments
	if len(data) == 0 || string(data) == "null" {
		return args, nil
	}
	var raw struct {
		PosOnlyArgs []json.RawMessage `json:"posonlyargs"`
		Args        []json.RawMessage `json:"args"`
		VarArg      json.RawMessage   `json:"vararg"`
		KwOnlyArgs  []json.RawMessage `json:"kwonlyargs"`
		KwArg       json.RawMessage   `json:"kwarg"`
		Defaults    []json.RawMessage `json:"defaults"`
		KwDefaults  []json.RawMessage `json:"kw_defaults"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return args, fmt.Errorf("decoding arguments: %w", err)
	}
	var err error
	if args.PosOnlyArgs, err = decodeArgs(raw.PosOnlyArgs); err != nil {
		return args, err
	}
	if args.Args, err = decodeArgs(raw.Args); err != nil {
		return args, err
	}
	if args.VarArg, err = decodeOptArg(raw.VarArg); err != nil {
		return args, err
	}
	if args.KwOnlyArgs, err = decodeArgs(raw.KwOnlyArgs); err != nil {
		return args, err
	}
	if args.KwArg, err = decodeOptArg(raw.KwArg); err != nil {
		return args, err
	}
	if args.Defaults, err = decodeExprs(raw.Defaults); err != nil {
		return args, err
	}
	if args.KwDefaults, err = decodeExprs(raw.KwDefaults); err != nil {
		return args, err
	}
	return args, nil
}

func decodeArgs(raws []json.RawMessage) ([]*Arg, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	args := make([]*Arg, 0, len(raws))
	for _, r := range raws {
		arg, err := decodeOptArg(r)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func decodeOptArg(data json.RawMessage) (*Arg, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var raw struct {
		Pos
		Name       string          `json:"name"`
		Annotation json.RawMessage `json:"annotation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding parameter: %w", err)
	}
	annotation, err := decodeOptExpr(raw.Annotation)
	if err != nil {
		return nil, err
	}
	return &Arg{Pos: raw.Pos, Name: raw.Name, Annotation: annotation}, nil
}

func decodeKeywords(raws []json.RawMessage) ([]Keyword, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	keywords := make([]Keyword, 0, len(raws))
	for _, r := range raws {
		var raw struct {
			Arg   string          `json:"arg"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(r, &raw); err != nil {
			return nil, fmt.Errorf("decoding keyword: %w", err)
		}
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, Keyword{Arg: raw.Arg, Value: value})
	}
	return keywords, nil
}

func decodeWithItems(raws []json.RawMessage) ([]WithItem, error) {
	items := make([]WithItem, 0, len(raws))
	for _, r := range raws {
		var raw struct {
			ContextExpr  json.RawMessage `json:"context_expr"`
			OptionalVars json.RawMessage `json:"optional_vars"`
		}
		if err := json.Unmarshal(r, &raw); err != nil {
			return nil, fmt.Errorf("decoding with item: %w", err)
		}
		contextExpr, err := decodeOptExpr(raw.ContextExpr)
		if err != nil {
			return nil, err
		}
		optionalVars, err := decodeOptExpr(raw.OptionalVars)
		if err != nil {
			return nil, err
		}
		items = append(items, WithItem{ContextExpr: contextExpr, OptionalVars: optionalVars})
	}
	return items, nil
}

func decodeHandlers(raws []json.RawMessage) ([]*ExceptHandler, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	handlers := make([]*ExceptHandler, 0, len(raws))
	for _, r := range raws {
		var raw rawNode
		if err := json.Unmarshal(r, &raw); err != nil {
			return nil, fmt.Errorf("decoding except handler: %w", err)
		}
		typ, err := decodeOptExpr(raw.Type)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, &ExceptHandler{Pos: raw.Pos, Type: typ, Name: raw.Name, Body: body})
	}
	return handlers, nil
}

func decodeMatchCases(raws []json.RawMessage) ([]*MatchCase, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	cases := make([]*MatchCase, 0, len(raws))
	for _, r := range raws {
		var raw struct {
			Guard json.RawMessage `json:"guard"`
			Body  json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(r, &raw); err != nil {
			return nil, fmt.Errorf("decoding match case: %w", err)
		}
		guard, err := decodeOptExpr(raw.Guard)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		cases = append(cases, &MatchCase{Guard: guard, Body: body})
	}
	return cases, nil
}

func decodeAliases(data json.RawMessage) ([]Alias, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var aliases []Alias
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("decoding import names: %w", err)
	}
	return aliases, nil
}

func decodeNameList(data json.RawMessage) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decoding name list: %w", err)
	}
	return names, nil
}
