// Package scheduler synthesizes the runtime scheduler of the embedded server
// and provides an executable model of it.
//
// Generate returns the schedule procedure. User-defined scheduler code is
// emitted verbatim with medium_read, axi_write and axi_read declared as
// external entry points. Otherwise the default loop is synthesized: each
// iteration drains the medium into the software input queues, moves as many
// values as the hardware accepts from every host-write stream and reads up
// to the queue capacity (or the outstanding poll credit) from every
// host-read stream, flushing what it read back to the medium. Loops over an
// empty stream category are left out.
//
// Machine executes the same loop against Go implementations of the hardware
// and the medium:
//
//	m := scheduler.NewMachine(cfg, hw, medium)
//	stats := m.Step()          // one loop iteration
//	err := m.Run(ctx)          // until ctx is done
//
// A Machine is driven by exactly one goroutine; its queues are not locked.
package scheduler
