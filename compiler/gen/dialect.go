package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/structarith/schema/field"
)

// RecordGenerator generates the code of a single record.
// It is called once per record of the graph, possibly concurrently.
type RecordGenerator interface {
	// Name returns the synthesizer name (e.g., "arith").
	Name() string
	// GenRecord generates the record file (<record>_arith.go).
	GenRecord(r *Record) *jen.File
}

// GeneratorHelper provides helper methods for synthesizer implementations.
// JenniferGenerator implements this interface, allowing synthesizer packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// GoType returns the Jennifer code for a field's Go type.
	GoType(f *Field) jen.Code

	// ElemType returns the Jennifer code for a field's element type. It is
	// the field type itself for scalars.
	ElemType(f *Field) jen.Code

	// ScalarType returns the Jennifer code for a scalar type.
	ScalarType(t field.Type) jen.Code

	// RuntimePkg returns the import path for the runtime helpers package.
	RuntimePkg() string

	// Graph returns the record graph.
	Graph() *Graph

	// OperationEnabled reports if the given operation is generated.
	OperationEnabled(op Operation) bool
}
