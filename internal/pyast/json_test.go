package pyast

import (
	"strings"
	"testing"
)

// moduleDump mirrors the exporter's output for:
//
//	from typing import Optional
//
//	def fetch(url, timeout: int = 5) -> Optional[str]:
//	    if not url:
//	        return None
//	    return get(url)
const moduleDump = `{
  "kind": "Module",
  "body": [
    {
      "kind": "ImportFrom",
      "location": {"row": 1, "col": 0},
      "end_location": {"row": 1, "col": 27},
      "module": "typing",
      "names": [{"name": "Optional", "asname": ""}],
      "level": 0
    },
    {
      "kind": "FunctionDef",
      "location": {"row": 3, "col": 0},
      "end_location": {"row": 6, "col": 19},
      "name": "fetch",
      "args": {
        "args": [
          {"name": "url", "annotation": null},
          {"name": "timeout", "annotation": {"kind": "Name", "id": "int"}}
        ],
        "defaults": [{"kind": "Constant", "value": 5}]
      },
      "returns": {
        "kind": "Subscript",
        "value": {"kind": "Name", "id": "Optional"},
        "slice": {"kind": "Name", "id": "str"}
      },
      "body": [
        {
          "kind": "If",
          "test": {"kind": "UnaryOp", "op": "Not", "operand": {"kind": "Name", "id": "url"}},
          "body": [{"kind": "Return", "value": {"kind": "Constant", "value": null}}]
        },
        {
          "kind": "Return",
          "value": {
            "kind": "Call",
            "func": {"kind": "Name", "id": "get"},
            "args": [{"kind": "Name", "id": "url"}]
          }
        }
      ]
    }
  ]
}`

func TestDecodeModule(t *testing.T) {
	m, err := DecodeModule([]byte(moduleDump))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if len(m.Body) != 2 {
		t.Fatalf("got %d top-level statements, want 2", len(m.Body))
	}

	imp, ok := m.Body[0].(*ImportFrom)
	if !ok {
		t.Fatalf("body[0] is %T, want *ImportFrom", m.Body[0])
	}
	if imp.Module != "typing" || len(imp.Names) != 1 || imp.Names[0].Name != "Optional" {
		t.Errorf("import decoded as %+v", imp)
	}

	fn, ok := m.Body[1].(*FunctionDef)
	if !ok {
		t.Fatalf("body[1] is %T, want *FunctionDef", m.Body[1])
	}
	if fn.Name != "fetch" {
		t.Errorf("function name = %q, want %q", fn.Name, "fetch")
	}
	if fn.Start() != (Location{Row: 3, Col: 0}) {
		t.Errorf("function start = %+v", fn.Start())
	}
	if len(fn.Args.Args) != 2 {
		t.Fatalf("got %d parameters, want 2", len(fn.Args.Args))
	}
	if fn.Args.Args[0].Annotation != nil {
		t.Error("url unexpectedly annotated")
	}
	ann, ok := fn.Args.Args[1].Annotation.(*Name)
	if !ok || ann.ID != "int" {
		t.Errorf("timeout annotation = %#v, want Name int", fn.Args.Args[1].Annotation)
	}

	sub, ok := fn.Returns.(*Subscript)
	if !ok {
		t.Fatalf("return annotation is %T, want *Subscript", fn.Returns)
	}
	if v, ok := sub.Value.(*Name); !ok || v.ID != "Optional" {
		t.Errorf("subscript value = %#v", sub.Value)
	}

	ifStmt, ok := fn.Body[0].(*If)
	if !ok {
		t.Fatalf("fn.Body[0] is %T, want *If", fn.Body[0])
	}
	ret, ok := ifStmt.Body[0].(*Return)
	if !ok {
		t.Fatalf("if body is %T, want *Return", ifStmt.Body[0])
	}
	c, ok := ret.Value.(*Constant)
	if !ok || !c.IsNone() {
		t.Errorf("early return value = %#v, want None constant", ret.Value)
	}

	tail, ok := fn.Body[1].(*Return)
	if !ok {
		t.Fatalf("fn.Body[1] is %T, want *Return", fn.Body[1])
	}
	if _, ok := tail.Value.(*Call); !ok {
		t.Errorf("final return value = %#v, want *Call", tail.Value)
	}
}

func TestDecodeModuleAsyncVariants(t *testing.T) {
	dump := `{
	  "kind": "Module",
	  "body": [
	    {"kind": "AsyncFunctionDef", "name": "poll", "body": [{"kind": "Pass"}]}
	  ]
	}`
	m, err := DecodeModule([]byte(dump))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	fn, ok := m.Body[0].(*FunctionDef)
	if !ok {
		t.Fatalf("body[0] is %T, want *FunctionDef", m.Body[0])
	}
	if !fn.Async {
		t.Error("async flag not set")
	}
}

func TestDecodeModuleOpaqueExpression(t *testing.T) {
	dump := `{
	  "kind": "Module",
	  "body": [
	    {"kind": "Expr", "value": {"kind": "ListComp"}}
	  ]
	}`
	m, err := DecodeModule([]byte(dump))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	stmt := m.Body[0].(*ExprStmt)
	op, ok := stmt.Value.(*Opaque)
	if !ok {
		t.Fatalf("value is %T, want *Opaque", stmt.Value)
	}
	if op.Kind != "ListComp" {
		t.Errorf("opaque kind = %q, want %q", op.Kind, "ListComp")
	}
}

func TestDecodeModuleErrors(t *testing.T) {
	tests := []struct {
		desc string
		dump string
		want string
	}{
		{"not json", `{`, "decoding module"},
		{"wrong root", `{"kind": "Expression"}`, "expected Module"},
		{
			"unknown statement",
			`{"kind": "Module", "body": [{"kind": "Teleport", "location": {"row": 7, "col": 2}}]}`,
			`unsupported statement kind "Teleport" at 7:2`,
		},
	}

	for _, tt := range tests {
		_, err := DecodeModule([]byte(tt.dump))
		if err == nil {
			t.Errorf("%s: no error", tt.desc)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.desc, err, tt.want)
		}
	}
}
