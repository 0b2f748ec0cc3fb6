package mixin

import (
	"github.com/syssam/structarith/schema/field"
)

// Mixin is a reusable group of record fields.
type Mixin interface {
	Fields() []field.Builder
}

// Schema is the default implementation for the Mixin interface.
// It should be embedded in all custom mixin definitions.
type Schema struct{}

// Fields returns the fields of the mixin.
// Override this method to add custom fields.
func (Schema) Fields() []field.Builder { return nil }

var _ Mixin = (*Schema)(nil)

// Balances adds one scalar field per token, in the given order. The type
// defaults to uint64.
//
//	mixin.Balances{Tokens: []string{"sol", "eth", "btc"}}
type Balances struct {
	Schema
	Tokens []string
	Type   field.Type
}

// Fields returns the balance fields.
func (b Balances) Fields() []field.Builder {
	t := b.Type
	if t == field.TypeInvalid {
		t = field.TypeUint64
	}
	fields := make([]field.Builder, 0, len(b.Tokens))
	for _, name := range b.Tokens {
		fields = append(fields, field.Scalar(name, t))
	}
	return fields
}

// Padding adds a reserved region of Size bytes. It is placed last
// regardless of where the mixin appears.
type Padding struct {
	Schema
	Size int
}

// Fields returns the reserved field.
func (p Padding) Fields() []field.Builder {
	return []field.Builder{field.Reserved(p.Size)}
}

// Fields returns the fields of the mixins, in order, followed by the given
// fields. Reserved fields are moved to the end so that a padding mixin can
// be listed anywhere.
func Fields(mixins []Mixin, fields ...field.Builder) []field.Builder {
	var all, reserved []field.Builder
	add := func(b field.Builder) {
		if b == nil {
			all = append(all, b)
			return
		}
		if d := b.Descriptor(); d != nil && d.Name == field.ReservedName {
			reserved = append(reserved, b)
			return
		}
		all = append(all, b)
	}
	for _, m := range mixins {
		for _, b := range m.Fields() {
			add(b)
		}
	}
	for _, b := range fields {
		add(b)
	}
	return append(all, reserved...)
}
