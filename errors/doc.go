// Package errors provides structured error types for board code generation.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the source position of the offending board node, the
// backend that reported it, a path into the board and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAllocate, errors.KindConfiguration).
//		Backend("sdk").
//		At("board.toml", 42).
//		Path("adder0", "in1").
//		Detail("too many host-write streams").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.StreamsExhausted(errors.Master, 16)
//	err := errors.MissingPort("adder0", "adder", "sum")
//
// Three kinds drive generation behavior:
//
//   - KindConfiguration: the board asks for something the target cannot provide
//     (unknown GPIO device, bidirectional GPIO, stream exhaustion).
//   - KindStructural: the board is internally inconsistent (binding to a port
//     that does not exist on the instance's core).
//   - KindInvariant: a condition that cannot happen for a validated board. These
//     abort the current backend run; see IsFatal.
//
// Configuration and structural errors are accumulated in a Collection so that a
// single run reports every defect it finds.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
