package mixed

import "github.com/syssam/structarith"

//structarith:derive
type Amount struct {
	Base, Quote structarith.Uint128
	Fees        [2]uint32
}
