package arith

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/structarith/compiler/gen"
)

// genStruct generates the record struct. The reserved field closes it.
func genStruct(h gen.GeneratorHelper, f *jen.File, r *gen.Record) {
	f.Line()
	f.Commentf("%s is a value record with checked arithmetic.", r.Name)
	f.Type().Id(r.Name).StructFunc(func(grp *jen.Group) {
		for _, fd := range r.AllFields() {
			if fd.Comment != "" {
				grp.Comment(fd.Comment)
			}
			grp.Id(fd.GoName).Add(h.GoType(fd))
		}
	})
}

// genNew generates the constructor. It takes one parameter per arithmetic
// field and always zeroes the reserved field.
func genNew(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string) {
	f.Line()
	f.Commentf("%s returns a new %s holding the given values.", r.Constructor(), r.Name)
	if r.Reserved != nil {
		f.Comment("The reserved region is zeroed.")
	}
	f.Func().Id(r.Constructor()).ParamsFunc(func(grp *jen.Group) {
		for _, fd := range r.Fields {
			grp.Id(locals[fd]).Add(h.GoType(fd))
		}
	}).Op("*").Id(r.Name).Block(
		jen.Return(jen.Op("&").Id(r.Name).Add(fieldValues(func(grp *jen.Group) {
			for _, fd := range r.Fields {
				grp.Id(fd.GoName).Op(":").Id(locals[fd])
			}
			if res := r.Reserved; res != nil {
				grp.Id(res.GoName).Op(":").Add(h.GoType(res)).Values()
			}
		}))),
	)
}

// fieldValues returns a composite literal with one keyed element per line,
// in the order they are added.
func fieldValues(f func(*jen.Group)) *jen.Statement {
	return jen.CustomFunc(jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}, f)
}

// genIsZero generates IsZero. The reserved field is never inspected.
func genIsZero(h gen.GeneratorHelper, f *jen.File, r *gen.Record) {
	f.Line()
	f.Commentf("IsZero reports whether every value of the %s is zero.", r.Name)
	f.Func().Params(receiver(r)).Id(gen.OpIsZero.Method()).Params().Bool().BlockFunc(func(grp *jen.Group) {
		for _, fd := range r.Fields {
			if !fd.IsArray() {
				grp.If(nonZero(fd, elem(r.Receiver(), fd))).Block(jen.Return(jen.False()))
				continue
			}
			grp.For(jen.Id("i").Op(":=").Range().Id(r.Receiver()).Dot(fd.GoName)).Block(
				jen.If(nonZero(fd, elem(r.Receiver(), fd))).Block(jen.Return(jen.False())),
			)
		}
		grp.Return(jen.True())
	})
}

// nonZero returns the condition testing a single value against zero.
func nonZero(fd *gen.Field, x *jen.Statement) jen.Code {
	if fd.Type.Native() {
		return x.Op("!=").Lit(0)
	}
	return jen.Op("!").Add(x).Dot("IsZero").Call()
}
