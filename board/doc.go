// Package board defines the elaborated board description consumed by the
// code generation backends.
//
// A Board is produced by an external front end that has already resolved
// imports and rejected duplicate or invalid options. Every node category with
// more than one shape (medium, binding, option, medium option, code block) is a
// closed sum type: an interface with an unexported marker method, implemented
// only by the variants declared in this package.
//
// # Interchange format
//
// Load reads an already-elaborated board from TOML:
//
//	debug   = true
//	swqueue = 1024
//
//	[medium]
//	kind = "ethernet"
//	mac  = "00:0a:35:00:01:22"
//	ip   = "192.168.1.10"
//
//	[[gpio]]
//	name      = "buttons"
//	direction = "in"
//
//	[[core]]
//	name = "adder"
//	[[core.port]]
//	name      = "in1"
//	direction = "in"
//
//	[[instance]]
//	name = "adder0"
//	core = "adder"
//	[[instance.bind]]
//	port = "in1"
//	cpu  = true
//	poll = 4
//
// Load is not a parser for the board description language; it only maps
// table entries onto the types of this package.
//
// The Board is read-only for the whole of a generation run.
package board
