// Package arith synthesizes the checked arithmetic API of value records.
//
// It implements gen.RecordGenerator. For a record
//
//	records:
//	  - name: Vault
//	    fields:
//	      - {name: sol, type: u64}
//	      - {name: tk1, type: "[2]uint64"}
//	      - {name: _reserved, type: "[64]byte"}
//
// it emits vault_arith.go holding the Vault struct (unless the struct is
// declared in Go source), the NewVault constructor, IsZero, and the
// elementwise operations:
//
//	func (r *Vault) Add(other *Vault) (*Vault, error)
//	func (r *Vault) AddAssign(other *Vault) error
//	func (r *Vault) MulScalar(factor uint64) (*Vault, error)
//	func (r *Vault) MulFraction(numerator, denominator uint64) (*Vault, error)
//	func (r *Vault) MulBps(factor uint16) (*Vault, error)
//
// Generated operations never panic. Every failure is a *structarith.OpError
// naming the operation, field and array index, and wraps one of
// structarith.ErrOverflow, ErrUnderflow or ErrDivisionByZero. The reserved
// field takes no part in arithmetic and is zero in every returned record.
//
// Usage:
//
//	import (
//	    "github.com/syssam/structarith/compiler/gen"
//	    "github.com/syssam/structarith/compiler/gen/arith"
//	)
//
//	graph, err := gen.NewGraph(config, records...)
//	if err != nil {
//	    return err
//	}
//	err = arith.Generate(graph)
package arith
