package field

import (
	"errors"
	"fmt"
)

// ReservedName is the name of the padding field that may close a record.
const ReservedName = "_reserved"

// Builder is implemented by all field builders.
type Builder interface {
	Descriptor() *Descriptor
}

// A Descriptor for field configuration.
type Descriptor struct {
	Name    string   // field name.
	Info    TypeInfo // field type.
	Comment string   // field comment.
	Err     error    // first build error, if any.
}

// Uint8 returns a new field builder for a uint8 field.
func Uint8(name string) *scalarBuilder { return scalar(name, TypeUint8) }

// Uint16 returns a new field builder for a uint16 field.
func Uint16(name string) *scalarBuilder { return scalar(name, TypeUint16) }

// Uint32 returns a new field builder for a uint32 field.
func Uint32(name string) *scalarBuilder { return scalar(name, TypeUint32) }

// Uint64 returns a new field builder for a uint64 field.
func Uint64(name string) *scalarBuilder { return scalar(name, TypeUint64) }

// Uint128 returns a new field builder for a 128-bit field backed by
// structarith.Uint128.
func Uint128(name string) *scalarBuilder { return scalar(name, TypeUint128) }

// Scalar returns a new field builder for a scalar of type t.
func Scalar(name string, t Type) *scalarBuilder {
	b := scalar(name, t)
	if !t.Valid() {
		b.desc.Err = fmt.Errorf("field %q: invalid type %v", name, t)
	}
	return b
}

func scalar(name string, t Type) *scalarBuilder {
	return &scalarBuilder{&Descriptor{Name: name, Info: TypeInfo{Type: t}}}
}

// Array returns a new field builder for a fixed-length array of n elements.
//
//	field.Array("tk2", field.TypeUint128, 3)
func Array(name string, elem Type, n int) *arrayBuilder {
	d := &Descriptor{Name: name, Info: TypeInfo{Type: elem, Len: n}}
	switch {
	case !elem.Valid():
		d.Err = fmt.Errorf("field %q: invalid element type %v", name, elem)
	case n <= 0:
		d.Err = fmt.Errorf("field %q: array length must be positive, got %d", name, n)
	}
	return &arrayBuilder{d}
}

// Reserved returns a builder for the trailing padding region of n bytes.
// It must be the last field of a record.
func Reserved(n int) *arrayBuilder {
	b := Array(ReservedName, TypeUint8, n)
	b.desc.Info.Ident = "byte"
	return b
}

// scalarBuilder is the builder for scalar fields.
type scalarBuilder struct {
	desc *Descriptor
}

// Comment sets the comment of the field.
func (b *scalarBuilder) Comment(c string) *scalarBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Builder interface by returning its descriptor.
func (b *scalarBuilder) Descriptor() *Descriptor {
	if b.desc.Err == nil && b.desc.Name == "" {
		b.desc.Err = errors.New("field: missing name")
	}
	return b.desc
}

// arrayBuilder is the builder for fixed-length array fields.
type arrayBuilder struct {
	desc *Descriptor
}

// Comment sets the comment of the field.
func (b *arrayBuilder) Comment(c string) *arrayBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Builder interface by returning its descriptor.
func (b *arrayBuilder) Descriptor() *Descriptor {
	if b.desc.Err == nil && b.desc.Name == "" {
		b.desc.Err = errors.New("field: missing name")
	}
	return b.desc
}
