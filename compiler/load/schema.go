package load

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syssam/structarith/schema/field"
)

// Record represents a value record that was loaded from a schema file, an
// annotated Go struct, or the field DSL. Its fields are raw and unvalidated;
// compiler/gen turns them into a checked record.
type Record struct {
	Name    string `json:"name,omitempty" yaml:"name"`
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Declared reports if the Go struct already exists in source, in which
	// case only its methods are generated.
	Declared bool     `json:"declared,omitempty" yaml:"-"`
	Dir      string   `json:"-" yaml:"-"`
	Pos      string   `json:"-" yaml:"-"`
	Fields   []*Field `json:"fields,omitempty" yaml:"fields"`
}

// Field represents a single raw field declaration.
type Field struct {
	Name string `json:"name,omitempty" yaml:"name"`
	// Type is a Go-like type expression, e.g. "uint64", "u128" or "[2]uint64".
	Type    string `json:"type,omitempty" yaml:"type"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewField creates a loaded field from field descriptor.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
	}
	return &Field{
		Name:    fd.Name,
		Type:    fd.Info.String(),
		Comment: fd.Comment,
	}, nil
}

// NewRecord creates a loaded record from field builders, in declaration order.
func NewRecord(name string, fields ...field.Builder) (*Record, error) {
	if name == "" {
		return nil, errors.New("load: record name is required")
	}
	r := &Record{Name: name}
	for _, b := range fields {
		fd, err := safeDescriptor(b)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
		f, err := NewField(fd)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

// MustNewRecord is like NewRecord but panics on error.
func MustNewRecord(name string, fields ...field.Builder) *Record {
	r, err := NewRecord(name, fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalRecord encodes the record into a JSON that can be decoded by
// UnmarshalRecord.
func MarshalRecord(r *Record) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalRecord decodes the given buffer to a loaded record.
func UnmarshalRecord(buf []byte) (*Record, error) {
	r := &Record{}
	if err := json.Unmarshal(buf, r); err != nil {
		return nil, err
	}
	if r.Name == "" {
		return nil, errors.New("load: record name is required")
	}
	return r, nil
}

// FieldNames returns the names of the record fields in declaration order.
func (r *Record) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// safeDescriptor recovers from a builder that panics.
func safeDescriptor(b field.Builder) (d *field.Descriptor, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Descriptor panics: %v", b, v)
		}
	}()
	if b == nil {
		return nil, errors.New("nil field builder")
	}
	return b.Descriptor(), nil
}
