// Package pyast defines the Python AST model consumed by the linter.
//
// The linter does not parse Python source itself; it consumes AST dumps
// produced by the companion exporter script, serialized as kind-tagged JSON
// (see json.go). Node shapes mirror CPython's ast module, narrowed to what
// the rule engines inspect. Nodes are never mutated after decoding.
package pyast

// Location is a position in a source file. Rows are 1-based, columns are
// 0-based, matching CPython's lineno/col_offset convention.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Range is a half-open source span from Start to End.
type Range struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// Pos carries the source span common to every node. It is embedded by all
// node types.
type Pos struct {
	Location    Location `json:"location"`
	EndLocation Location `json:"end_location"`
}

// Start returns the node's start location.
func (p Pos) Start() Location { return p.Location }

// End returns the node's end location.
func (p Pos) End() Location { return p.EndLocation }

// Node is implemented by all AST nodes.
type Node interface {
	Start() Location
	End() Location
}

// NodeRange returns the source range covered by a node.
func NodeRange(n Node) Range {
	return Range{Start: n.Start(), End: n.End()}
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Module is the root of a file's AST.
type Module struct {
	Pos
	Body []Stmt `json:"body"`
}

// Arg is a single formal parameter, optionally annotated.
type Arg struct {
	Pos
	Name       string `json:"name"`
	Annotation Expr   `json:"annotation"`
}

// Arguments is the full parameter list of a function-like node.
type Arguments struct {
	PosOnlyArgs []*Arg `json:"posonlyargs"`
	Args        []*Arg `json:"args"`
	VarArg      *Arg   `json:"vararg"`
	KwOnlyArgs  []*Arg `json:"kwonlyargs"`
	KwArg       *Arg   `json:"kwarg"`
	Defaults    []Expr `json:"defaults"`
	KwDefaults  []Expr `json:"kw_defaults"`
}

// Alias is one name in an import statement.
type Alias struct {
	Name   string `json:"name"`
	AsName string `json:"asname"`
}

// WithItem is a single context manager of a with statement.
type WithItem struct {
	ContextExpr  Expr `json:"context_expr"`
	OptionalVars Expr `json:"optional_vars"`
}

// ExceptHandler is one except clause of a try statement.
type ExceptHandler struct {
	Pos
	Type Expr   `json:"type"`
	Name string `json:"name"`
	Body []Stmt `json:"body"`
}

// MatchCase is one case arm of a match statement. Patterns are not modeled;
// no rule inspects them.
type MatchCase struct {
	Guard Expr   `json:"guard"`
	Body  []Stmt `json:"body"`
}

// Keyword is a keyword argument in a call.
type Keyword struct {
	Arg   string `json:"arg"`
	Value Expr   `json:"value"`
}

// Statements.

// FunctionDef is a def or async def statement.
type FunctionDef struct {
	Pos
	Name          string    `json:"name"`
	Args          Arguments `json:"args"`
	Body          []Stmt    `json:"body"`
	DecoratorList []Expr    `json:"decorator_list"`
	Returns       Expr      `json:"returns"`
	Async         bool      `json:"async"`
}

// ClassDef is a class statement.
type ClassDef struct {
	Pos
	Name          string    `json:"name"`
	Bases         []Expr    `json:"bases"`
	Keywords      []Keyword `json:"keywords"`
	Body          []Stmt    `json:"body"`
	DecoratorList []Expr    `json:"decorator_list"`
}

// Return is a return statement; Value is nil for a bare return.
type Return struct {
	Pos
	Value Expr `json:"value"`
}

// If is an if statement; elif chains arrive as nested Ifs in Orelse.
type If struct {
	Pos
	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// For is a for or async for loop.
type For struct {
	Pos
	Target Expr   `json:"target"`
	Iter   Expr   `json:"iter"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
	Async  bool   `json:"async"`
}

// While is a while loop.
type While struct {
	Pos
	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// With is a with or async with statement.
type With struct {
	Pos
	Items []WithItem `json:"items"`
	Body  []Stmt     `json:"body"`
	Async bool       `json:"async"`
}

// Try is a try statement; except* groups decode to the same shape.
type Try struct {
	Pos
	Body      []Stmt           `json:"body"`
	Handlers  []*ExceptHandler `json:"handlers"`
	Orelse    []Stmt           `json:"orelse"`
	FinalBody []Stmt           `json:"finalbody"`
}

// Match is a match statement.
type Match struct {
	Pos
	Subject Expr         `json:"subject"`
	Cases   []*MatchCase `json:"cases"`
}

// Import is an import statement.
type Import struct {
	Pos
	Names []Alias `json:"names"`
}

// ImportFrom is a from-import statement. Level counts leading dots of a
// relative import.
type ImportFrom struct {
	Pos
	Module string  `json:"module"`
	Names  []Alias `json:"names"`
	Level  int     `json:"level"`
}

// Assign is an assignment statement.
type Assign struct {
	Pos
	Targets []Expr `json:"targets"`
	Value   Expr   `json:"value"`
}

// AnnAssign is an annotated assignment statement.
type AnnAssign struct {
	Pos
	Target     Expr `json:"target"`
	Annotation Expr `json:"annotation"`
	Value      Expr `json:"value"`
}

// AugAssign is an augmented assignment statement.
type AugAssign struct {
	Pos
	Target Expr   `json:"target"`
	Op     string `json:"op"`
	Value  Expr   `json:"value"`
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Pos
	Value Expr `json:"value"`
}

// Raise is a raise statement.
type Raise struct {
	Pos
	Exc   Expr `json:"exc"`
	Cause Expr `json:"cause"`
}

// Assert is an assert statement.
type Assert struct {
	Pos
	Test Expr `json:"test"`
	Msg  Expr `json:"msg"`
}

// Delete is a del statement.
type Delete struct {
	Pos
	Targets []Expr `json:"targets"`
}

// Global is a global declaration.
type Global struct {
	Pos
	Names []string `json:"names"`
}

// Nonlocal is a nonlocal declaration.
type Nonlocal struct {
	Pos
	Names []string `json:"names"`
}

// Pass is a pass statement.
type Pass struct{ Pos }

// Break is a break statement.
type Break struct{ Pos }

// Continue is a continue statement.
type Continue struct{ Pos }

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*If) stmtNode()          {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*With) stmtNode()        {}
func (*Try) stmtNode()         {}
func (*Match) stmtNode()       {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*Assign) stmtNode()      {}
func (*AnnAssign) stmtNode()   {}
func (*AugAssign) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*Raise) stmtNode()       {}
func (*Assert) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Global) stmtNode()      {}
func (*Nonlocal) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}

// Expressions.

// Name is an identifier reference.
type Name struct {
	Pos
	ID string `json:"id"`
}

// Attribute is a dotted access, Value.Attr.
type Attribute struct {
	Pos
	Value Expr   `json:"value"`
	Attr  string `json:"attr"`
}

// Constant is a literal. Value is nil for None, bool, float64, or string
// depending on the literal; Ellipsis marks the ... literal.
type Constant struct {
	Pos
	Value    any  `json:"value"`
	Ellipsis bool `json:"ellipsis"`
}

// IsNone reports whether the constant is the None literal.
func (c *Constant) IsNone() bool { return c.Value == nil && !c.Ellipsis }

// Subscript is an indexing expression, Value[Slice].
type Subscript struct {
	Pos
	Value Expr `json:"value"`
	Slice Expr `json:"slice"`
}

// Call is a call expression.
type Call struct {
	Pos
	Func     Expr      `json:"func"`
	Args     []Expr    `json:"args"`
	Keywords []Keyword `json:"keywords"`
}

// Tuple is a tuple display.
type Tuple struct {
	Pos
	Elts []Expr `json:"elts"`
}

// List is a list display.
type List struct {
	Pos
	Elts []Expr `json:"elts"`
}

// BinOp is a binary operation; annotations like "int | None" arrive here.
type BinOp struct {
	Pos
	Left  Expr   `json:"left"`
	Op    string `json:"op"`
	Right Expr   `json:"right"`
}

// UnaryOp is a unary operation.
type UnaryOp struct {
	Pos
	Op      string `json:"op"`
	Operand Expr   `json:"operand"`
}

// BoolOp is an and/or chain.
type BoolOp struct {
	Pos
	Op     string `json:"op"`
	Values []Expr `json:"values"`
}

// Compare is a comparison chain.
type Compare struct {
	Pos
	Left        Expr     `json:"left"`
	Ops         []string `json:"ops"`
	Comparators []Expr   `json:"comparators"`
}

// Lambda is a lambda expression. Its body is an expression, so it can never
// contain return statements.
type Lambda struct {
	Pos
	Args Arguments `json:"args"`
	Body Expr      `json:"body"`
}

// IfExp is a conditional expression.
type IfExp struct {
	Pos
	Test   Expr `json:"test"`
	Body   Expr `json:"body"`
	Orelse Expr `json:"orelse"`
}

// Starred is a *expr unpacking.
type Starred struct {
	Pos
	Value Expr `json:"value"`
}

// Await is an await expression.
type Await struct {
	Pos
	Value Expr `json:"value"`
}

// Yield is a yield expression; Value may be nil.
type Yield struct {
	Pos
	Value Expr `json:"value"`
}

// YieldFrom is a yield-from expression.
type YieldFrom struct {
	Pos
	Value Expr `json:"value"`
}

// Slice is an a:b:c slice inside a subscript.
type Slice struct {
	Pos
	Lower Expr `json:"lower"`
	Upper Expr `json:"upper"`
	Step  Expr `json:"step"`
}

// Opaque stands in for expression kinds the model does not distinguish
// (comprehensions, f-strings, walrus, ...). Only the span and the original
// kind tag are kept; no rule inspects inside these.
type Opaque struct {
	Pos
	Kind string `json:"kind"`
}

func (*Name) exprNode()      {}
func (*Attribute) exprNode() {}
func (*Constant) exprNode()  {}
func (*Subscript) exprNode() {}
func (*Call) exprNode()      {}
func (*Tuple) exprNode()     {}
func (*List) exprNode()      {}
func (*BinOp) exprNode()     {}
func (*UnaryOp) exprNode()   {}
func (*BoolOp) exprNode()    {}
func (*Compare) exprNode()   {}
func (*Lambda) exprNode()    {}
func (*IfExp) exprNode()     {}
func (*Starred) exprNode()   {}
func (*Await) exprNode()     {}
func (*Yield) exprNode()     {}
func (*YieldFrom) exprNode() {}
func (*Slice) exprNode()     {}
func (*Opaque) exprNode()    {}
