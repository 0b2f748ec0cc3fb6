package gen

import (
	"fmt"
	"math/bits"
	"strings"
)

// Operation is a set of generated record operations.
type Operation uint16

// List of operations. Each one maps to a single generated function or method.
const (
	// OpNew generates the New<Record> constructor.
	OpNew Operation = 1 << iota
	// OpIsZero generates IsZero.
	OpIsZero
	// OpAdd generates Add.
	OpAdd
	// OpSub generates Sub.
	OpSub
	// OpMul generates Mul.
	OpMul
	// OpDiv generates Div.
	OpDiv
	// OpAddAssign generates AddAssign.
	OpAddAssign
	// OpSubAssign generates SubAssign.
	OpSubAssign
	// OpMulScalar generates MulScalar.
	OpMulScalar
	// OpDivScalar generates DivScalar.
	OpDivScalar
	// OpMulFraction generates MulFraction.
	OpMulFraction
	// OpMulBps generates MulBps, scaling by basis points (1/10000).
	OpMulBps
	// OpMulPercent generates MulPercent, scaling by percent (1/100).
	OpMulPercent

	endOps
	// AllOperations enables every operation.
	AllOperations = endOps - 1
	// FactorOperations take a scalar of the record primary type.
	FactorOperations = OpMulScalar | OpDivScalar | OpMulFraction | OpMulBps | OpMulPercent
)

var opNames = map[Operation]string{
	OpNew:         "new",
	OpIsZero:      "is_zero",
	OpAdd:         "add",
	OpSub:         "sub",
	OpMul:         "mul",
	OpDiv:         "div",
	OpAddAssign:   "add_assign",
	OpSubAssign:   "sub_assign",
	OpMulScalar:   "mul_scalar",
	OpDivScalar:   "div_scalar",
	OpMulFraction: "mul_fraction",
	OpMulBps:      "mul_bps",
	OpMulPercent:  "mul_percent",
}

// methodNames holds the Go identifier each operation generates.
var methodNames = map[Operation]string{
	OpIsZero:      "IsZero",
	OpAdd:         "Add",
	OpSub:         "Sub",
	OpMul:         "Mul",
	OpDiv:         "Div",
	OpAddAssign:   "AddAssign",
	OpSubAssign:   "SubAssign",
	OpMulScalar:   "MulScalar",
	OpDivScalar:   "DivScalar",
	OpMulFraction: "MulFraction",
	OpMulBps:      "MulBps",
	OpMulPercent:  "MulPercent",
}

// Has reports whether every operation in o is enabled.
func (ops Operation) Has(o Operation) bool {
	return o != 0 && ops&o == o
}

// Any reports whether some operation of o is enabled.
func (ops Operation) Any(o Operation) bool {
	return ops&o != 0
}

// Name returns the schema name of a single operation, e.g. "mul_bps".
func (ops Operation) Name() string {
	if n, ok := opNames[ops]; ok {
		return n
	}
	return fmt.Sprintf("Operation(%#x)", uint16(ops))
}

// Method returns the generated method name of a single operation. It is
// empty for OpNew, which generates a function.
func (ops Operation) Method() string {
	return methodNames[ops]
}

// List returns the single operations of the set in declaration order.
func (ops Operation) List() []Operation {
	list := make([]Operation, 0, bits.OnesCount16(uint16(ops)))
	for o := OpNew; o < endOps; o <<= 1 {
		if ops&o != 0 {
			list = append(list, o)
		}
	}
	return list
}

// String returns the comma separated names of the set.
func (ops Operation) String() string {
	list := ops.List()
	names := make([]string, len(list))
	for i, o := range list {
		names[i] = o.Name()
	}
	return strings.Join(names, ",")
}

// Normalize returns the set with its implied operations added. The
// constructor is always generated, and basis points and percent scaling
// are built on MulFraction.
func (ops Operation) Normalize() Operation {
	ops |= OpNew
	if ops.Any(OpMulBps | OpMulPercent) {
		ops |= OpMulFraction
	}
	return ops & AllOperations
}

// ParseOperations parses operation names. Each argument may hold several
// comma separated names, and "all" selects every operation.
func ParseOperations(names ...string) (Operation, error) {
	var ops Operation
	for _, arg := range names {
		for _, name := range strings.Split(arg, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if name == "all" {
				ops |= AllOperations
				continue
			}
			op, ok := lookupOp(name)
			if !ok {
				return 0, NewConfigError("Operations", name, "unknown operation")
			}
			ops |= op
		}
	}
	if ops == 0 {
		return 0, NewConfigError("Operations", nil, "no operations selected")
	}
	return ops.Normalize(), nil
}

func lookupOp(name string) (Operation, bool) {
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}
