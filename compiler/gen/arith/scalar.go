package arith

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/schema/field"
)

// genScalar generates MulScalar or DivScalar. The factor has the primary
// type and is converted to each element type.
func genScalar(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string, op gen.Operation) {
	helper, verb, failure := "Mul", "multiplied", "any field overflows"
	if op == gen.OpDivScalar {
		helper, verb, failure = "Div", "divided", "factor is zero"
	}
	s := step{
		op:     op,
		helper: helper,
		operands: func(fd *gen.Field) []jen.Code {
			return []jen.Code{convert(h, r.Primary, fd.Type, jen.Id("factor"))}
		},
	}
	f.Line()
	f.Commentf("%s returns r with every value %s by factor.", op.Method(), verb)
	f.Commentf("It fails if %s.", failure)
	genValueOp(h, f, r, locals, s, jen.Id("factor").Add(h.ScalarType(r.Primary)))
}

// genFraction generates MulFraction. Each value is multiplied at twice its
// width, so the product cannot overflow, then divided and truncated back to
// the field width.
func genFraction(h gen.GeneratorHelper, f *jen.File, r *gen.Record, locals map[*gen.Field]string) {
	s := step{
		op:     gen.OpMulFraction,
		helper: "MulDiv",
		operands: func(fd *gen.Field) []jen.Code {
			return []jen.Code{
				convert(h, r.Primary, fd.Type, jen.Id("numerator")),
				convert(h, r.Primary, fd.Type, jen.Id("denominator")),
			}
		},
	}
	f.Line()
	f.Comment("MulFraction returns r with every value v replaced by v*numerator/denominator.")
	f.Comment("The product is computed at twice the field width and the quotient is")
	f.Comment("truncated to the field width. It fails if denominator is zero.")
	genValueOp(h, f, r, locals, s,
		jen.List(jen.Id("numerator"), jen.Id("denominator")).Add(h.ScalarType(r.Primary)),
	)
}

// genFractionOf generates MulBps or MulPercent on top of MulFraction.
func genFractionOf(h gen.GeneratorHelper, f *jen.File, r *gen.Record, op gen.Operation, denominator int, unit string) {
	f.Line()
	f.Commentf("%s returns r scaled by factor %s.", op.Method(), unit)
	f.Func().Params(receiver(r)).Id(op.Method()).Params(jen.Id("factor").Uint16()).Params(jen.Op("*").Id(r.Name), jen.Error()).Block(
		jen.Return(jen.Id(r.Receiver()).Dot(gen.OpMulFraction.Method()).Call(
			convert(h, field.TypeUint16, r.Primary, jen.Id("factor")),
			constant(h, r.Primary, denominator),
		)),
	)
}
