package arith

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/structarith/compiler/gen"
)

var binaryDoc = map[gen.Operation]struct{ verb, failure string }{
	gen.OpAdd:       {"sum", "overflows"},
	gen.OpSub:       {"difference", "underflows"},
	gen.OpMul:       {"product", "overflows"},
	gen.OpDiv:       {"floored quotient", "of other is zero"},
	gen.OpAddAssign: {"sum", "overflows"},
	gen.OpSubAssign: {"difference", "underflows"},
}

// binaryStep combines each element of the receiver with the same element
// of other.
func binaryStep(op gen.Operation, helper string) step {
	return step{
		op:     op,
		helper: helper,
		operands: func(fd *gen.Field) []jen.Code {
			return []jen.Code{elem("other", fd)}
		},
	}
}

// genBinary generates Add, Sub, Mul or Div.
func genBinary(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string, op gen.Operation) {
	doc := binaryDoc[op]
	f.Line()
	f.Commentf("%s returns the elementwise %s of r and other.", op.Method(), doc.verb)
	f.Commentf("It fails if any field %s.", doc.failure)
	genValueOp(h, f, r, locals, binaryStep(op, op.Method()), jen.Id("other").Op("*").Id(r.Name))
}

// genAssign generates AddAssign or SubAssign. Fields are stored as soon as
// they are computed, so a failure leaves the fields before the failing one
// updated. The failing field itself is left untouched.
func genAssign(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string, op gen.Operation) {
	helper := "Add"
	if op == gen.OpSubAssign {
		helper = "Sub"
	}
	doc := binaryDoc[op]
	s := binaryStep(op, helper)
	f.Line()
	f.Commentf("%s stores the elementwise %s of r and other in r.", op.Method(), doc.verb)
	f.Commentf("It fails if any field %s, in which case the fields", doc.failure)
	f.Comment("preceding the failing one are already updated.")
	f.Func().Params(receiver(r)).Id(op.Method()).Params(jen.Id("other").Op("*").Id(r.Name)).Error().BlockFunc(func(grp *jen.Group) {
		fail := func(err jen.Code) jen.Code { return jen.Return(err) }
		for _, fd := range r.Fields {
			compute(h, grp, r, s, fd, locals[fd], fail)
			grp.Id(r.Receiver()).Dot(fd.GoName).Op("=").Id(locals[fd])
		}
		grp.Return(jen.Nil())
	})
}
