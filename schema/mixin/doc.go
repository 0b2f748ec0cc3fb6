// Package mixin provides reusable groups of record fields for records
// declared with the field DSL.
//
// A mixin is a set of fields shared by several records. To create a custom
// mixin, embed Schema and override Fields:
//
//	type Majors struct {
//	    mixin.Schema
//	}
//
//	func (Majors) Fields() []field.Builder {
//	    return []field.Builder{
//	        field.Uint64("sol"),
//	        field.Uint64("eth"),
//	        field.Uint64("btc"),
//	    }
//	}
//
// Using mixins:
//
//	r, err := load.NewRecord("Vault", mixin.Fields(
//	    []mixin.Mixin{Majors{}, mixin.Padding{Size: 128}},
//	    field.Array("tk1", field.TypeUint64, 2),
//	)...)
package mixin
