// Package gen provides code generation for value records.
//
// A value record is a named, ordered set of fixed-width unsigned integer
// fields and fixed-length arrays of them. This package validates loaded
// records and drives the synthesis of their checked arithmetic API.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema (YAML, JSON, annotated Go struct, field DSL)
//	        ↓
//	   load.Record (raw field list)
//	        ↓
//	   NewRecord (classification and validation)
//	        ↓
//	   Graph (validated records)
//	        ↓
//	   RecordGenerator (arith synthesizer)
//	        ↓
//	   <record>_arith.go
//
// # Key Types
//
//   - Graph: Holds all Record definitions
//   - Record: A validated record with its primary type
//   - Field: A scalar or array field with its element type
//   - Operation: The set of generated operations
//   - Config: Global configuration for code generation
//
// # Error Handling
//
// Records that violate the layout rules fail with a *SchemaError whose Kind
// names the rule:
//
//	graph, err := gen.NewGraph(config, records...)
//	if err != nil {
//	    if gen.SchemaErrorKind(err) == gen.MisplacedReserved {
//	        // _reserved must close the record
//	    }
//	    return err
//	}
//
// All schema errors match ErrInvalidSchema with errors.Is. Configuration
// and output failures are reported as *ConfigError and *GenerationError.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./vault"),
//	    gen.WithOperations(gen.OpAdd, gen.OpSub, gen.OpMulBps),
//	    gen.WithWorkers(4),
//	)
//
// # Usage
//
// The recommended way to generate code is through the arith package:
//
//	import "github.com/syssam/structarith/compiler/gen/arith"
//
//	err := arith.Generate(graph)
package gen
