package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/syssam/structarith/schema/field"
)

// =============================================================================
// Helper functions
// =============================================================================

// classify parses a field type expression. Scalars are identifiers or a
// selector naming the runtime Uint128; arrays need a positive integer
// literal length. A non-zero kind is returned when the expression is
// rejected. Array element validity is left to the caller, since the
// reserved field accepts any element type.
func classify(expr string) (field.TypeInfo, ErrorKind, string) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return field.TypeInfo{}, UnsupportedType, fmt.Sprintf("cannot parse type %q", expr)
	}
	switch x := x.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		s := types.ExprString(x)
		t := field.ParseType(s)
		if !t.Valid() {
			return field.TypeInfo{}, UnsupportedType, fmt.Sprintf("type %q is not an unsigned integer of 8 to 128 bits", s)
		}
		return field.TypeInfo{Type: t}, 0, ""
	case *ast.ArrayType:
		if x.Len == nil {
			return field.TypeInfo{}, UnsupportedType, fmt.Sprintf("slice type %q is not fixed-length", expr)
		}
		lit, ok := x.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return field.TypeInfo{}, InvalidArrayLength, fmt.Sprintf("length %s is not an integer literal", types.ExprString(x.Len))
		}
		n, err := strconv.ParseInt(lit.Value, 0, 32)
		if err != nil || n <= 0 {
			return field.TypeInfo{}, InvalidArrayLength, fmt.Sprintf("length %s is not a positive integer", lit.Value)
		}
		elem := types.ExprString(x.Elt)
		info := field.TypeInfo{Type: field.ParseType(elem), Len: int(n), Ident: elem}
		if !info.Type.Valid() {
			return info, UnsupportedType, fmt.Sprintf("array element type %q is not an unsigned integer", elem)
		}
		return info, 0, ""
	default:
		return field.TypeInfo{}, UnsupportedType, fmt.Sprintf("type %q is not a scalar or a fixed-length array", expr)
	}
}

// methodFor returns the operation whose generated method has the given name.
func methodFor(name string) (Operation, bool) {
	for op, m := range methodNames {
		if m == name {
			return op, true
		}
	}
	return 0, false
}

// ValidRecordName will determine if a name is going to conflict with any
// pre-defined names or contains unsafe characters.
func ValidRecordName(name string) error {
	if name == "" {
		return errors.New("record name cannot be empty")
	}
	// Record names end up in file names.
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("record name %q contains path characters", name)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("record name %q is not a valid Go identifier", name)
	}
	if !token.IsExported(name) {
		return fmt.Errorf("record name %q must be exported", name)
	}
	return nil
}
