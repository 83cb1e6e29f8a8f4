// Package checks defines the check-code registry, diagnostic kinds, and the
// prefix selectors used to enable or disable codes.
package checks

import (
	"fmt"

	"github.com/abramin/annolint/internal/pyast"
)

// Code identifies a single check.
type Code string

const (
	// pycodestyle
	E501 Code = "E501"
	W292 Code = "W292"
	W605 Code = "W605"
	// annotations
	ANN001 Code = "ANN001"
	ANN002 Code = "ANN002"
	ANN003 Code = "ANN003"
	ANN101 Code = "ANN101"
	ANN102 Code = "ANN102"
	ANN201 Code = "ANN201"
	ANN202 Code = "ANN202"
	ANN204 Code = "ANN204"
	ANN205 Code = "ANN205"
	ANN206 Code = "ANN206"
	ANN401 Code = "ANN401"
	// modernize
	U001 Code = "U001"
	U002 Code = "U002"
)

// AllCodes is the full code universe, in report order.
var AllCodes = []Code{
	E501,
	W292,
	W605,
	ANN001,
	ANN002,
	ANN003,
	ANN101,
	ANN102,
	ANN201,
	ANN202,
	ANN204,
	ANN205,
	ANN206,
	ANN401,
	U001,
	U002,
}

// Summaries maps each code to a one-line description for the codes command.
var Summaries = map[Code]string{
	E501:   "Line too long",
	W292:   "No newline at end of file",
	W605:   "Invalid escape sequence",
	ANN001: "Missing type annotation for function argument",
	ANN002: "Missing type annotation for *args",
	ANN003: "Missing type annotation for **kwargs",
	ANN101: "Missing type annotation for self in method",
	ANN102: "Missing type annotation for cls in classmethod",
	ANN201: "Missing return type annotation for public function",
	ANN202: "Missing return type annotation for private function",
	ANN204: "Missing return type annotation for special method",
	ANN205: "Missing return type annotation for staticmethod",
	ANN206: "Missing return type annotation for classmethod",
	ANN401: "Dynamically typed expressions (typing.Any) are disallowed",
	U001:   "Unnecessary object inheritance",
	U002:   "Unnecessary os.path.abspath(__file__) call",
}

// Kind is a diagnostic kind: a code plus its message parameters.
type Kind interface {
	Code() Code
	Body() string
}

// Check is a single diagnostic, optionally carrying an automatic fix.
type Check struct {
	Kind  Kind
	Range pyast.Range
	Fix   *Fix
}

// New constructs a diagnostic for a kind at a source range.
func New(kind Kind, r pyast.Range) *Check {
	return &Check{Kind: kind, Range: r}
}

// Amend attaches a fix to the diagnostic.
func (c *Check) Amend(fix Fix) {
	c.Fix = &fix
}

// Fix is a replacement patch: Content substitutes the source between Start
// and End.
type Fix struct {
	Content string         `json:"content"`
	Start   pyast.Location `json:"start"`
	End     pyast.Location `json:"end"`
}

// Replacement builds a fix replacing [start, end) with content.
func Replacement(content string, start, end pyast.Location) Fix {
	return Fix{Content: content, Start: start, End: end}
}

// MissingTypeFunctionArgument is ANN001.
type MissingTypeFunctionArgument struct{ Name string }

// MissingTypeArgs is ANN002.
type MissingTypeArgs struct{ Name string }

// MissingTypeKwargs is ANN003.
type MissingTypeKwargs struct{ Name string }

// MissingTypeSelf is ANN101.
type MissingTypeSelf struct{ Name string }

// MissingTypeCls is ANN102.
type MissingTypeCls struct{ Name string }

// MissingReturnTypePublicFunction is ANN201.
type MissingReturnTypePublicFunction struct{ Name string }

// MissingReturnTypePrivateFunction is ANN202.
type MissingReturnTypePrivateFunction struct{ Name string }

// MissingReturnTypeMagicMethod is ANN204.
type MissingReturnTypeMagicMethod struct{ Name string }

// MissingReturnTypeStaticMethod is ANN205.
type MissingReturnTypeStaticMethod struct{ Name string }

// MissingReturnTypeClassMethod is ANN206.
type MissingReturnTypeClassMethod struct{ Name string }

// DynamicallyTypedExpression is ANN401.
type DynamicallyTypedExpression struct{ Name string }

// UnnecessaryAbspath is U002.
type UnnecessaryAbspath struct{}

func (MissingTypeFunctionArgument) Code() Code      { return ANN001 }
func (MissingTypeArgs) Code() Code                  { return ANN002 }
func (MissingTypeKwargs) Code() Code                { return ANN003 }
func (MissingTypeSelf) Code() Code                  { return ANN101 }
func (MissingTypeCls) Code() Code                   { return ANN102 }
func (MissingReturnTypePublicFunction) Code() Code  { return ANN201 }
func (MissingReturnTypePrivateFunction) Code() Code { return ANN202 }
func (MissingReturnTypeMagicMethod) Code() Code     { return ANN204 }
func (MissingReturnTypeStaticMethod) Code() Code    { return ANN205 }
func (MissingReturnTypeClassMethod) Code() Code     { return ANN206 }
func (DynamicallyTypedExpression) Code() Code       { return ANN401 }
func (UnnecessaryAbspath) Code() Code               { return U002 }

func (k MissingTypeFunctionArgument) Body() string {
	return fmt.Sprintf("Missing type annotation for function argument `%s`", k.Name)
}

func (k MissingTypeArgs) Body() string {
	return fmt.Sprintf("Missing type annotation for `*%s`", k.Name)
}

func (k MissingTypeKwargs) Body() string {
	return fmt.Sprintf("Missing type annotation for `**%s`", k.Name)
}

func (k MissingTypeSelf) Body() string {
	return fmt.Sprintf("Missing type annotation for `%s` in method", k.Name)
}

func (k MissingTypeCls) Body() string {
	return fmt.Sprintf("Missing type annotation for `%s` in classmethod", k.Name)
}

func (k MissingReturnTypePublicFunction) Body() string {
	return fmt.Sprintf("Missing return type annotation for public function `%s`", k.Name)
}

func (k MissingReturnTypePrivateFunction) Body() string {
	return fmt.Sprintf("Missing return type annotation for private function `%s`", k.Name)
}

func (k MissingReturnTypeMagicMethod) Body() string {
	return fmt.Sprintf("Missing return type annotation for special method `%s`", k.Name)
}

func (k MissingReturnTypeStaticMethod) Body() string {
	return fmt.Sprintf("Missing return type annotation for staticmethod `%s`", k.Name)
}

func (k MissingReturnTypeClassMethod) Body() string {
	return fmt.Sprintf("Missing return type annotation for classmethod `%s`", k.Name)
}

func (k DynamicallyTypedExpression) Body() string {
	return fmt.Sprintf("Dynamically typed expressions (typing.Any) are disallowed in `%s`", k.Name)
}

func (UnnecessaryAbspath) Body() string {
	return "abspath(__file__) is unnecessary in Python 3.9 and later"
}
