// Package boardgen generates the software and hardware sources of an
// FPGA board built around a MicroBlaze processor and user cores connected by
// AXI streams.
//
// A board description lists the communication medium, the GPIO devices,
// the user cores with their ports and the core instances with their
// bindings. Each binding either connects an instance port to the processor
// or links it to a port of another instance. Backends walk the description
// and emit a language neutral IR for the host API and the server firmware,
// plus the MHS/MSS/UCF descriptors of the hardware project.
//
// # Architecture Overview
//
//	boardgen/
//	├── board/           Board description types and the TOML loader
//	├── ir/              Append-only IR handed to the target renderers
//	├── mhs/             MHS/MSS descriptor blocks and writer
//	├── catalog/         GPIO device catalog and platform constants
//	├── resource/        Stream and GPIO id allocation
//	├── scheduler/       Server scheduler synthesis
//	├── backend/         Visitor, traversal and run context
//	│   ├── client/      Host API
//	│   ├── sdk/         Server firmware and system.mss
//	│   └── xps/         Hardware project: system.mhs, system.ucf, pcores
//	├── generator/       Concurrent backend runs and output publication
//	├── config/          Viper-backed settings
//	├── errors/          Structured error types
//	└── cmd/boardgen/    Command line interface
//
// # Quick Start
//
// Load a board and write every backend's output:
//
//	b, err := board.Load("board.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := generator.Generate(ctx, b,
//	    client.New(client.Options{}),
//	    sdk.New(sdk.Options{}),
//	    xps.New(xps.Options{}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := generator.Write("out", results); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Backends collect recoverable problems and keep going; an invariant
// violation aborts the run. A run that collected anything publishes
// nothing and returns every problem at once; errors.Flatten lists them.
//
// # Stream Numbering
//
// Host-write (master) and host-read (slave) streams are numbered
// independently from zero in traversal order, so a bidirectional port
// takes one id of each kind. Every backend numbers its own run in the same
// order, so stream ids agree across the host API, the firmware and the
// hardware FSL links.
package boardgen
