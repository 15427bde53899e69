// Package resource assigns the identifiers a generated board uses to address
// its streams and GPIO devices.
//
// A Counters value is scoped to one backend run. It holds six monotonically
// non-decreasing counters: host-facing input and output ports, GPI and GPO
// devices, and master (host-write) and slave (host-read) streams.
//
// # Streams
//
// Every CPU connection allocates streams from the direction of the bound
// port:
//
//	In   -> one master stream
//	Out  -> one slave stream
//	Dual -> one master and one slave stream
//
// Each allocation takes the next value of its counter. A category holds at
// most StreamLimit streams; past that AllocateStreams returns a
// configuration error for the missing stream and leaves the counter alone,
// so the ids already handed out stay contiguous:
//
//	counters := resource.New()
//	s, err := counters.AllocateStreams("adder0.in1", board.Dual)
//	// s.Master == 0, s.Slave == 0
//
// # GPIO
//
// GPIO devices consume the next gpi id for inputs and the next gpo id for
// outputs, in declaration order.
//
// # Observers
//
// Register observers to trace allocation:
//
//	counters.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    log.Printf("%s %s -> %d", e.Category, e.Owner, e.ID)
//	}))
package resource
