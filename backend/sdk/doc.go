// Package sdk generates the embedded server sources of a board for the
// Xilinx SDK.
//
// Output of one run:
//
//	<dir>/src/constants          DEBUG, loopy_print, MAX_OUT_SW_QUEUE_SIZE,
//	                             PROTO_VERSION, medium constants,
//	                             IN_STREAM_COUNT, OUT_STREAM_COUNT,
//	                             gpi_count, gpo_count
//	<dir>/src/components/components
//	                             GPIO ids and interrupt handlers,
//	                             init_components, reset_components,
//	                             axi_write, axi_read
//	<dir>/src/scheduler          the schedule procedure
//	<dir>/system.mss             board support package descriptor
//
// plus a deploy manifest copying the GPIO driver and the medium driver from
// the template directory.
//
// Bidirectional GPIO devices cannot be driven by the server and abort the
// run. Devices missing from the catalog are reported and skipped.
package sdk
