package arith

import (
	"fmt"
	"go/token"
	"go/types"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/schema/field"
)

// bodyIdent holds the identifiers the generated bodies use besides the
// field locals.
var bodyIdent = map[string]struct{}{
	"r":           {},
	"other":       {},
	"err":         {},
	"i":           {},
	"factor":      {},
	"numerator":   {},
	"denominator": {},
	"structarith": {},
}

// localNames returns the local variable (and constructor parameter) name of
// each arithmetic field. Names never shadow the body identifiers, Go keywords
// or predeclared identifiers, and are unique within the record.
func localNames(r *gen.Record) map[*gen.Field]string {
	var (
		names = make(map[*gen.Field]string, len(r.Fields))
		used  = make(map[string]struct{}, len(r.Fields))
	)
	for i, fd := range r.Fields {
		name := inflect.CamelizeDownFirst(fd.GoName)
		if _, ok := bodyIdent[name]; ok || token.IsKeyword(name) || types.Universe.Lookup(name) != nil {
			name = "_" + name
		}
		if !token.IsIdentifier(name) || name == "_" {
			name = fmt.Sprintf("f%d", i)
		}
		for base, n := name, 1; ; n++ {
			if _, ok := used[name]; !ok {
				break
			}
			name = fmt.Sprintf("%s%d", base, n)
		}
		used[name] = struct{}{}
		names[fd] = name
	}
	return names
}

// receiver returns the method receiver of the record.
func receiver(r *gen.Record) jen.Code {
	return jen.Id(r.Receiver()).Op("*").Id(r.Name)
}

// elem returns the value of the field in x, indexed by i for arrays.
func elem(x string, fd *gen.Field) *jen.Statement {
	s := jen.Id(x).Dot(fd.GoName)
	if fd.IsArray() {
		s = s.Index(jen.Id("i"))
	}
	return s
}

// checked returns a call of the runtime helper for the field element type,
// e.g. structarith.AddUint64(args...).
func checked(h gen.GeneratorHelper, name string, fd *gen.Field, args ...jen.Code) *jen.Statement {
	return jen.Qual(h.RuntimePkg(), name+fd.Type.Title()).Call(args...)
}

// convert converts x from one scalar type to another, wider or equal one.
func convert(h gen.GeneratorHelper, from, to field.Type, x jen.Code) jen.Code {
	switch {
	case from == to:
		return x
	case to == field.TypeUint128:
		if from != field.TypeUint64 {
			x = jen.Uint64().Call(x)
		}
		return jen.Qual(h.RuntimePkg(), "Uint128From64").Call(x)
	default:
		return jen.Id(to.String()).Call(x)
	}
}

// constant returns the integer constant n typed for t.
func constant(h gen.GeneratorHelper, t field.Type, n int) jen.Code {
	if t.Native() {
		return jen.Lit(n)
	}
	return jen.Qual(h.RuntimePkg(), "Uint128From64").Call(jen.Lit(n))
}

// step describes how one element of the result is computed: the runtime
// helper applied to the receiver element and the operands.
type step struct {
	op       gen.Operation
	helper   string
	operands func(fd *gen.Field) []jen.Code
}

func (s step) call(h gen.GeneratorHelper, r *gen.Record, fd *gen.Field) *jen.Statement {
	args := append([]jen.Code{elem(r.Receiver(), fd)}, s.operands(fd)...)
	return checked(h, s.helper, fd, args...)
}

// opError wraps err into the runtime OpError of the operation.
func opError(h gen.GeneratorHelper, op gen.Operation, fd *gen.Field, index jen.Code) jen.Code {
	return jen.Qual(h.RuntimePkg(), "NewOpError").Call(jen.Lit(op.Name()), jen.Lit(fd.Name), index, jen.Id("err"))
}

// compute emits the statements computing the field into its local. Arrays
// are computed into a fresh array in ascending index order. fail wraps the
// error into the return statement of the enclosing function.
func compute(h gen.GeneratorHelper, grp *jen.Group, r *gen.Record, s step, fd *gen.Field, local string, fail func(jen.Code) jen.Code) {
	if !fd.IsArray() {
		grp.List(jen.Id(local), jen.Id("err")).Op(":=").Add(s.call(h, r, fd))
		grp.If(jen.Id("err").Op("!=").Nil()).Block(
			fail(opError(h, s.op, fd, jen.Lit(-1))),
		)
		return
	}
	grp.Var().Id(local).Add(h.GoType(fd))
	grp.For(jen.Id("i").Op(":=").Range().Id(local)).Block(
		jen.If(
			jen.List(jen.Id(local).Index(jen.Id("i")), jen.Id("err")).Op("=").Add(s.call(h, r, fd)),
			jen.Id("err").Op("!=").Nil(),
		).Block(
			fail(opError(h, s.op, fd, jen.Id("i"))),
		),
	)
}

// genValueOp generates a method returning a new record built from the
// per-field results.
func genValueOp(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string, s step, params ...jen.Code) {
	f.Func().Params(receiver(r)).Id(s.op.Method()).Params(params...).Params(jen.Op("*").Id(r.Name), jen.Error()).BlockFunc(func(grp *jen.Group) {
		fail := func(err jen.Code) jen.Code { return jen.Return(jen.Nil(), err) }
		args := make([]jen.Code, 0, len(r.Fields))
		for _, fd := range r.Fields {
			compute(h, grp, r, s, fd, locals[fd], fail)
			args = append(args, jen.Id(locals[fd]))
		}
		grp.Return(jen.Id(r.Constructor()).Call(args...), jen.Nil())
	})
}
