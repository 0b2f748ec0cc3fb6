// Package field provides fluent builders for declaring value record fields
// without a schema file.
//
// Field names are schema identifiers (snake_case). The generator derives the
// exported Go name from them:
//
//	field.Uint64("sol")                      // Go: Sol
//	field.Array("tk1", field.TypeUint64, 2)  // Go: Tk1 [2]uint64
//
// # Field Types
//
// Every arithmetic field is an unsigned integer of 8, 16, 32, 64 or 128 bits,
// or a fixed-length array of one:
//
//	field.Uint8("flags")
//	field.Uint16("fee")
//	field.Uint32("epoch")
//	field.Uint64("lamports")
//	field.Uint128("liquidity")  // structarith.Uint128
//
// # Reserved Space
//
// A record may end with a padding region that never takes part in
// arithmetic. It is always zeroed by the generated constructor:
//
//	field.Reserved(128)  // _reserved [128]byte
//
// Builders convert to [Descriptor] values, which compiler/load turns into raw
// records for the generator.
package field
