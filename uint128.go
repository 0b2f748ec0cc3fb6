package structarith

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer used for u128 record fields.
// The zero value is 0.
type Uint128 struct {
	Hi, Lo uint64
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// NewUint128 returns the Uint128 hi<<64 | lo.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// Uint128From64 widens v losslessly.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBig returns the low 128 bits of b. The second result reports
// whether b was in range (non-negative and below 2^128).
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	ok := b.Sign() >= 0 && b.BitLen() <= 128
	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(b, 64), mask64).Uint64()
	return Uint128{Hi: hi, Lo: lo}, ok
}

// ParseUint128 parses a base-10 (or 0x-prefixed) unsigned integer.
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint128{}, fmt.Errorf("structarith: invalid uint128 %q", s)
	}
	u, ok := Uint128FromBig(b)
	if !ok {
		return Uint128{}, fmt.Errorf("structarith: uint128 %q out of range", s)
	}
	return u, nil
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi, u.Hi == v.Hi && u.Lo < v.Lo:
		return -1
	case u == v:
		return 0
	default:
		return 1
	}
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the base-10 representation of u.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprint(u.Lo)
	}
	return u.Big().String()
}

// Add returns u+v, or ErrOverflow on carry out of the high word.
func (u Uint128) Add(v Uint128) (Uint128, error) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	if carry != 0 {
		return Uint128{}, ErrOverflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Sub returns u-v, or ErrUnderflow if v is greater than u.
func (u Uint128) Sub(v Uint128) (Uint128, error) {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, borrow := bits.Sub64(u.Hi, v.Hi, borrow)
	if borrow != 0 {
		return Uint128{}, ErrUnderflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Mul returns u*v, or ErrOverflow if the product needs more than 128 bits.
func (u Uint128) Mul(v Uint128) (Uint128, error) {
	if u.Hi != 0 && v.Hi != 0 {
		return Uint128{}, ErrOverflow
	}
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	c1h, c1l := bits.Mul64(u.Hi, v.Lo)
	c2h, c2l := bits.Mul64(u.Lo, v.Hi)
	if c1h != 0 || c2h != 0 {
		return Uint128{}, ErrOverflow
	}
	var carry uint64
	hi, carry = bits.Add64(hi, c1l, 0)
	if carry != 0 {
		return Uint128{}, ErrOverflow
	}
	hi, carry = bits.Add64(hi, c2l, 0)
	if carry != 0 {
		return Uint128{}, ErrOverflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Div returns the floor of u/v, or ErrDivisionByZero if v is zero.
func (u Uint128) Div(v Uint128) (Uint128, error) {
	if v.IsZero() {
		return Uint128{}, ErrDivisionByZero
	}
	if u.Hi == 0 && v.Hi == 0 {
		return Uint128{Lo: u.Lo / v.Lo}, nil
	}
	q, _ := Uint128FromBig(new(big.Int).Quo(u.Big(), v.Big()))
	return q, nil
}

// AddUint128 is the function form of Uint128.Add used by generated code.
func AddUint128(a, b Uint128) (Uint128, error) { return a.Add(b) }

// SubUint128 is the function form of Uint128.Sub used by generated code.
func SubUint128(a, b Uint128) (Uint128, error) { return a.Sub(b) }

// MulUint128 is the function form of Uint128.Mul used by generated code.
func MulUint128(a, b Uint128) (Uint128, error) { return a.Mul(b) }

// DivUint128 is the function form of Uint128.Div used by generated code.
func DivUint128(a, b Uint128) (Uint128, error) { return a.Div(b) }

// MulDivUint128 returns v*num/den computed at 256-bit precision, narrowed
// back to 128 bits by discarding high bits. ErrDivisionByZero is returned
// if den is zero.
func MulDivUint128(v, num, den Uint128) (Uint128, error) {
	if den.IsZero() {
		return Uint128{}, ErrDivisionByZero
	}
	p := new(big.Int).Mul(v.Big(), num.Big())
	q, _ := Uint128FromBig(p.Quo(p, den.Big()))
	return q, nil
}
