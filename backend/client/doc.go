// Package client generates the host-side API of a board.
//
// The backend emits two IR modules:
//
//	<dir>/src/constants     DEBUG, QUEUE_SIZE_HW, QUEUE_SIZE_SW,
//	                        IN_PORT_COUNT, OUT_PORT_COUNT, GPI_COUNT, GPO_COUNT
//	<dir>/src/api/components medium interface, one attribute per GPIO device,
//	                        one class and one attribute per host-facing instance
//
// Instances without a CPU connection, inter-core links and the scheduler are
// invisible to the host and produce nothing.
package client
