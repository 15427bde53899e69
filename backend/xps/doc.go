// Package xps generates the hardware project of a board for Xilinx XPS.
//
// A run produces:
//
//	<dir>/system.mhs      the block descriptor of the whole system
//	<dir>/data/system.ucf pin constraints of the GPIO devices
//
// and a deploy manifest copying the peripheral cores (user cores, queues
// and resizers) from the template directory into <dir>/pcores.
//
// Every host stream is a chain between the MicroBlaze and the core port:
//
//	MicroBlaze M<i>_AXIS -> m<i>_queue -> m<i>_mux -> core   (host-write)
//	core -> s<i>_mux -> s<i>_queue -> MicroBlaze S<i>_AXIS   (host-read)
//
// where the queue exists for a positive hardware queue depth and the
// resizer for a port width other than 32 bits. Core links become a single
// net named after the sending port.
//
// Instance blocks are buffered until the traversal finishes, because a
// link declared by one instance also wires its peer.
package xps
