package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a record definition error.
	ErrInvalidSchema = errors.New("structarith: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("structarith: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("structarith: code generation failed")
)

// ErrorKind classifies a SchemaError.
type ErrorKind uint8

// List of schema error kinds.
const (
	// EmptyRecord: no fields, or only the reserved field.
	EmptyRecord ErrorKind = iota + 1
	// MisplacedReserved: the reserved field is not the last field.
	MisplacedReserved
	// ReservedNotArray: the reserved field is not a fixed-length array.
	ReservedNotArray
	// PrimaryTypeNotScalar: the first field is an array.
	PrimaryTypeNotScalar
	// LossyConversion: the primary type does not fit some field element
	// type, or a fraction constant does not fit the primary type.
	LossyConversion
	// UnsupportedType: a type that is not an unsigned integer of 8 to 128
	// bits or a fixed-length array of one.
	UnsupportedType
	// InvalidArrayLength: an array length that is not a positive literal.
	InvalidArrayLength
	// DuplicateField: two fields share a name.
	DuplicateField
	// InvalidName: a record or field name that is not a Go identifier, or
	// that collides with a generated identifier.
	InvalidName
	// DuplicateRecord: two records with the same name share an output
	// directory.
	DuplicateRecord
)

var kindNames = map[ErrorKind]string{
	EmptyRecord:          "empty record",
	MisplacedReserved:    "misplaced reserved field",
	ReservedNotArray:     "reserved field is not an array",
	PrimaryTypeNotScalar: "primary type is not a scalar",
	LossyConversion:      "lossy conversion",
	UnsupportedType:      "unsupported type",
	InvalidArrayLength:   "invalid array length",
	DuplicateField:       "duplicate field",
	InvalidName:          "invalid name",
	DuplicateRecord:      "duplicate record",
}

// String returns the description of the kind.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SchemaError represents a record definition error.
type SchemaError struct {
	Record  string // Record type name
	Field   string // Field name (if applicable)
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("structarith: schema error")
	if e.Record != "" {
		b.WriteString(" on record ")
		b.WriteString(e.Record)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Kind != 0 {
		b.WriteString(": ")
		b.WriteString(e.Kind.String())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(record, field string, kind ErrorKind, message string) *SchemaError {
	return &SchemaError{
		Record:  record,
		Field:   field,
		Kind:    kind,
		Message: message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("structarith: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("structarith: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("structarith: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// SchemaErrorKind returns the kind of the first SchemaError in err's tree,
// or zero if there is none.
func SchemaErrorKind(err error) ErrorKind {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Kind
	}
	return 0
}
