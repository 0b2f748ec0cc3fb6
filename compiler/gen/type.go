package gen

import (
	"fmt"
	"go/token"
	"path/filepath"

	"github.com/go-openapi/inflect"

	"github.com/syssam/structarith/compiler/load"
	"github.com/syssam/structarith/schema/field"
)

// The following types and their exported methods used by the codegen
// to generate the assets.
type (
	// Record is a validated value record. It holds everything the
	// synthesizer needs to emit the record operations.
	Record struct {
		*Config
		raw *load.Record
		// Name holds the Go type name of the record.
		Name string
		// Primary is the type of the first field, and the type of every
		// scalar factor passed to the record operations.
		Primary field.Type
		// Fields are the arithmetic fields in declaration order.
		Fields []*Field
		// Reserved is the trailing padding field, if any.
		Reserved *Field
		// Declared reports if the struct already exists in Go source.
		Declared bool
	}

	// Field is a single record field.
	Field struct {
		// Name is the schema name of the field.
		Name string
		// GoName is the name of the struct field.
		GoName string
		// Kind tells scalars and arrays apart.
		Kind FieldKind
		// Type is the scalar type, or the element type of an array.
		Type field.Type
		// Len is the array length.
		Len int
		// Ident is the raw element type of the reserved field.
		Ident string
		// Reserved is set on the trailing padding field only.
		Reserved bool
		// Comment is emitted on the struct field.
		Comment string
	}

	// FieldKind is the shape of a field.
	FieldKind uint8
)

// List of field kinds.
const (
	KindScalar FieldKind = iota + 1
	KindArray
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// NewRecord validates the raw record and creates a new record from it.
// Failures are reported as *SchemaError.
func NewRecord(c *Config, raw *load.Record) (*Record, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if raw == nil {
		return nil, NewSchemaError("", "", EmptyRecord, "nil record")
	}
	r := &Record{
		Config:   c,
		raw:      raw,
		Name:     raw.Name,
		Declared: raw.Declared,
	}
	if err := ValidRecordName(r.Name); err != nil {
		return nil, r.errorf("", InvalidName, "%v", err)
	}
	if len(raw.Fields) == 0 {
		return nil, r.errorf("", EmptyRecord, "record has no fields")
	}
	for i, f := range raw.Fields {
		if f.Name == field.ReservedName && i != len(raw.Fields)-1 {
			return nil, r.errorf(f.Name, MisplacedReserved, "must be the last field, found at position %d of %d", i+1, len(raw.Fields))
		}
	}
	var (
		names   = make(map[string]struct{}, len(raw.Fields))
		goNames = make(map[string]string, len(raw.Fields))
	)
	for _, f := range raw.Fields {
		if _, ok := names[f.Name]; ok {
			return nil, r.errorf(f.Name, DuplicateField, "field declared more than once")
		}
		names[f.Name] = struct{}{}
		tf, err := r.newField(f)
		if err != nil {
			return nil, err
		}
		if prev, ok := goNames[tf.GoName]; ok {
			return nil, r.errorf(f.Name, DuplicateField, "Go name %s is also used by field %s", tf.GoName, prev)
		}
		goNames[tf.GoName] = f.Name
		if tf.Reserved {
			r.Reserved = tf
			continue
		}
		r.Fields = append(r.Fields, tf)
	}
	if len(r.Fields) == 0 {
		return nil, r.errorf("", EmptyRecord, "record has only the reserved field")
	}
	first := r.Fields[0]
	if first.Kind != KindScalar {
		return nil, r.errorf(first.Name, PrimaryTypeNotScalar, "first field type %s is an array", first.TypeString())
	}
	r.Primary = first.Type
	if err := r.checkConversions(); err != nil {
		return nil, err
	}
	return r, nil
}

// newField classifies the raw field type and creates a new field.
func (r *Record) newField(f *load.Field) (*Field, error) {
	if f.Name != field.ReservedName && (!token.IsIdentifier(f.Name) || f.Name == "_") {
		return nil, r.errorf(f.Name, InvalidName, "field name is not a valid Go identifier")
	}
	info, kind, msg := classify(f.Type)
	reserved := f.Name == field.ReservedName
	switch {
	case reserved && kind == InvalidArrayLength:
		return nil, r.errorf(f.Name, kind, "%s", msg)
	case reserved && !info.Array():
		return nil, r.errorf(f.Name, ReservedNotArray, "type %q is not a fixed-length array", f.Type)
	case !reserved && kind != 0:
		return nil, r.errorf(f.Name, kind, "%s", msg)
	}
	tf := &Field{
		Name:     f.Name,
		GoName:   r.goName(f.Name),
		Kind:     KindScalar,
		Type:     info.Type,
		Len:      info.Len,
		Reserved: reserved,
		Comment:  f.Comment,
	}
	if info.Array() {
		tf.Kind = KindArray
	}
	if reserved {
		tf.Ident = info.Ident
		return tf, nil
	}
	if !token.IsExported(tf.GoName) && !r.Declared {
		return nil, r.errorf(f.Name, InvalidName, "cannot derive an exported Go name, got %q", tf.GoName)
	}
	if op, ok := methodFor(tf.GoName); ok && r.OperationEnabled(op) {
		return nil, r.errorf(f.Name, InvalidName, "Go name %s collides with the generated %s method", tf.GoName, op.Method())
	}
	return tf, nil
}

// checkConversions verifies that every scalar factor converts losslessly
// into the element type of every field, and that the fraction constants
// fit the primary type.
func (r *Record) checkConversions() error {
	ops := r.EnabledOperations()
	if !ops.Any(FactorOperations) {
		return nil
	}
	for _, f := range r.Fields {
		if f.Type.Bits() < r.Primary.Bits() {
			return r.errorf(f.Name, LossyConversion, "primary type %s does not fit element type %s", r.Primary, f.Type)
		}
	}
	if ops.Any(OpMulBps|OpMulPercent) && r.Primary.Bits() < 16 {
		return r.errorf(r.Fields[0].Name, LossyConversion, "primary type %s cannot hold uint16 factors or the 10000 denominator", r.Primary)
	}
	return nil
}

func (r *Record) goName(name string) string {
	if r.Declared || name == field.ReservedName {
		return name
	}
	return inflect.Camelize(name)
}

func (r *Record) errorf(fieldName string, kind ErrorKind, format string, args ...any) *SchemaError {
	err := NewSchemaError(r.Name, fieldName, kind, fmt.Sprintf(format, args...))
	if r.raw != nil && r.raw.Pos != "" {
		err.Message += " (" + r.raw.Pos + ")"
	}
	return err
}

// =============================================================================
// Record methods
// =============================================================================

// AllFields returns the record fields including the reserved field, in
// struct layout order.
func (r *Record) AllFields() []*Field {
	if r.Reserved == nil {
		return r.Fields
	}
	all := make([]*Field, 0, len(r.Fields)+1)
	return append(append(all, r.Fields...), r.Reserved)
}

// Receiver returns the receiver name of the generated methods.
func (r *Record) Receiver() string { return "r" }

// Constructor returns the name of the generated constructor.
func (r *Record) Constructor() string { return "New" + r.Name }

// Label returns the snake_case name of the record.
func (r *Record) Label() string { return inflect.Underscore(r.Name) }

// FileName returns the name of the generated file.
func (r *Record) FileName() string { return r.Label() + load.GeneratedSuffix }

// OutputDir returns the directory the record file is written to. Records
// declared in Go source are always generated next to their declaration.
func (r *Record) OutputDir() string {
	switch {
	case r.Declared && r.raw.Dir != "":
		return r.raw.Dir
	case r.Target != "":
		return r.Target
	case r.raw.Dir != "":
		return r.raw.Dir
	default:
		return "."
	}
}

// OutputPath returns the path of the generated file.
func (r *Record) OutputPath() string {
	return filepath.Join(r.OutputDir(), r.FileName())
}

// PackageName returns the package clause of the generated file.
func (r *Record) PackageName() string {
	switch {
	case r.Declared && r.raw.Package != "":
		return r.raw.Package
	case r.Package != "":
		return r.Package
	case r.raw.Package != "":
		return r.raw.Package
	default:
		return filepath.Base(r.OutputDir())
	}
}

// Pos returns the position of the record in its schema.
func (r *Record) Pos() string {
	if r.raw == nil {
		return ""
	}
	return r.raw.Pos
}

// Raw returns the record as loaded.
func (r *Record) Raw() *load.Record { return r.raw }

// HasArrays reports if any arithmetic field is an array.
func (r *Record) HasArrays() bool {
	for _, f := range r.Fields {
		if f.IsArray() {
			return true
		}
	}
	return false
}

// =============================================================================
// Field methods
// =============================================================================

// IsArray reports if the field is a fixed-length array.
func (f *Field) IsArray() bool { return f.Kind == KindArray }

// TypeString returns the Go-like type of the field, e.g. "[2]uint64".
func (f *Field) TypeString() string {
	return field.TypeInfo{Type: f.Type, Len: f.Len, Ident: f.Ident}.String()
}
