// Package backend is the traversal engine shared by all generation
// backends.
//
// A backend implements Visitor: one method per board node variant. Walk
// drives a Visitor over a board in the fixed order
//
//	medium -> GPIOs -> scheduler -> cores -> instances -> Finish
//
// and performs every identifier allocation itself, handing the assigned ids
// to the visitor. All backends therefore number streams and GPIO devices
// identically for the same board. Variants a backend does not care about
// are implemented as no-ops; the compiler rejects a backend that forgets
// one.
//
// # Errors
//
// Recoverable problems (unknown devices, exhausted streams, bindings to
// missing ports) go to Context.Errors; the offending node is skipped and the
// walk continues so one run reports everything. A Visitor method returns an
// error only to abort the run. Run turns either outcome into a failed run
// without a Result.
//
// # Class scopes
//
// Host-facing backends build one class per instance with a CPU connection.
// The class under construction lives on the Context scope stack:
//
//	func (v *visitor) EnterInstance(ctx *backend.Context, inst backend.Instance) error {
//	    ctx.Push(backend.NewClassScope(ir.NewClass(inst.Name, doc)))
//	    return nil
//	}
package backend
