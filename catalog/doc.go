// Package catalog is the static lookup table of hardware IP metadata used
// by the server and hardware backends: GPIO devices of the supported
// Virtex-6 evaluation board and the version strings of every driver and
// core the generated projects reference.
//
// The catalog is read-only. Devices are keyed by the name used in board
// descriptions:
//
//	dev, ok := catalog.Lookup("buttons")
//	if !ok {
//	    // unknown device: a configuration error for the caller
//	}
//	block := dev.Block()
package catalog
