package field

import (
	"fmt"
	"strings"
)

// A Type represents an unsigned integer field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeUint128
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeUint128: "uint128",
}

// aliases maps every accepted spelling to its type. Keys are compared after
// trimming whitespace.
var aliases = map[string]Type{
	"uint8":               TypeUint8,
	"byte":                TypeUint8,
	"u8":                  TypeUint8,
	"uint16":              TypeUint16,
	"u16":                 TypeUint16,
	"uint32":              TypeUint32,
	"u32":                 TypeUint32,
	"uint64":              TypeUint64,
	"u64":                 TypeUint64,
	"uint128":             TypeUint128,
	"u128":                TypeUint128,
	"Uint128":             TypeUint128,
	"structarith.Uint128": TypeUint128,
}

// ParseType returns the type spelled by s. It returns TypeInvalid for
// anything that is not an unsigned scalar this package supports.
func ParseType(s string) Type {
	return aliases[strings.TrimSpace(s)]
}

// String returns the canonical schema spelling of t.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a known scalar type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Bits returns the width of t in bits, or 0 for an invalid type.
func (t Type) Bits() int {
	if !t.Valid() {
		return 0
	}
	return 8 << (t - TypeUint8)
}

// Native reports whether t is a Go builtin integer. Only TypeUint128 is
// backed by the runtime package.
func (t Type) Native() bool {
	return t.Valid() && t != TypeUint128
}

// Title returns the suffix used by the runtime helper functions, e.g.
// "Uint64" for AddUint64.
func (t Type) Title() string {
	if !t.Valid() {
		return ""
	}
	return "U" + t.String()[1:]
}

// TypeInfo holds the type of a field: a scalar, or an array of Len scalars.
type TypeInfo struct {
	Type Type
	// Len is the array length; zero for scalars.
	Len int
	// Ident is the raw element type expression for fields whose element is
	// not arithmetic (the reserved region).
	Ident string
}

// Array reports whether the type is a fixed-length array.
func (t TypeInfo) Array() bool { return t.Len > 0 }

// String returns the Go-like type expression, e.g. "[2]uint64".
func (t TypeInfo) String() string {
	elem := t.Ident
	if elem == "" {
		elem = t.Type.String()
	}
	if t.Array() {
		return fmt.Sprintf("[%d]%s", t.Len, elem)
	}
	return elem
}
