package scheduler

import (
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/ir"
)

// Params are the allocator totals the default loop depends on.
type Params struct {
	InStreams  int // host-write streams
	OutStreams int // host-read streams
}

var (
	includes = []ir.Include{ir.Quote("constants.h"), ir.Quote("queueUntyped.h"), ir.Quote("io.h")}
	externs  = []string{
		"void medium_read()",
		"int axi_write ( int val, int target )",
		"int axi_read ( int *val, int target )",
	}
)

// Generate returns the schedule procedure for code.
func Generate(code board.Code, p Params) (ir.Procedure, error) {
	switch code := code.(type) {
	case *board.DefaultCode:
		return ir.NewProcedure(ir.Void, "schedule", ir.Doc(
			"Starts the scheduling loop.",
			"The scheduling loop performs the following actions in each iteration:",
			" - read and process messages from the medium",
			" - write values from Microblaze input queue to hardware input queue for each input stream",
			" - write values from hardware output queue to the medium (caches several values before sending)",
		)).AddCode(defaultLoop(p)), nil
	case *board.UserCode:
		body := ir.NewCode(code.Lines...).Needs(includes...).Declares(externs...)
		return ir.NewProcedure(ir.Void, "schedule", ir.Doc(
			"Starts the user-defined scheduling loop.",
		)).AddCode(body), nil
	}
	return ir.Procedure{}, errors.Invariant(errors.PhaseSchedule, "unknown scheduler code %T", code)
}

// Module returns the scheduler module holding the schedule procedure.
func Module(dir string, code board.Code, p Params) (ir.Module, error) {
	proc, err := Generate(code, p)
	if err != nil {
		return ir.Module{}, err
	}
	doc := ir.Doc(
		"A primitive scheduler.",
		"Reads values from the medium, shifts values between Microblaze and VHDL components,",
		"and writes results back to the medium.",
	)
	if _, ok := code.(*board.UserCode); ok {
		doc = ir.Doc("User-defined scheduler.")
	}
	return ir.NewModule("scheduler", dir, doc).AddProcedure(proc), nil
}

func defaultLoop(p Params) ir.Code {
	c := ir.NewCode(
		"unsigned int pid;",
		"unsigned int i;",
		"",
		"while(1) {",
		"    // receive a package from the interface (or all?)",
		"    // esp stores data packages in sw queue",
		"    medium_read();",
	)
	if p.InStreams > 0 {
		c = c.Append(ir.NewCode(
			"    ",
			"    // write data from sw queue to hw queue (if possible)",
			"    for(pid = 0; pid < IN_STREAM_COUNT; pid++) {",
			"        for(i = 0; i < inQueue[pid]->cap; i++) {",
			"            // go to next port if the sw queue is empty",
			"            if(inQueue[pid]->size == 0) break;",
			"            ",
			"            // try to write, skip if the hw queue is full",
			"            if(axi_write(peek(inQueue[pid]), pid)) {",
			"                #if DEBUG",
			`                  loopy_print("\nfailed to write to AXI stream");`,
			"                #endif /* DEBUG */",
			"                break;",
			"            }",
			"            ",
			"            // remove the read value from the queue",
			"            take(inQueue[pid]);",
			"            ",
			"            // if the queue was full beforehand, poll",
			"            if(inQueue[pid]->size == inQueue[pid]->cap - 1) send_poll(pid);",
			"        }",
			"    }",
		))
	}
	if p.OutStreams > 0 {
		c = c.Append(ir.NewCode(
			"    ",
			"    // read data from hw queue (if available) and cache in sw queue",
			"    // flush sw queue, if it's full or the hw queue is empty",
			"    for(pid = 0; pid < OUT_STREAM_COUNT; pid++) {",
			"        for(i = 0; i < outQueueCap[pid] && ((!isPolling[pid]) || pollCount[pid] > 0); i++) {",
			"            // try to read, break if if fails",
			"            if(axi_read(&outQueue[outQueueSize], pid)) break;",
			"            ",
			"            // otherwise increment the queue size counter",
			"            outQueueSize++;",
			"            ",
			"            // decrement the poll counter (if the port was polling)",
			"            if(isPolling[pid]) pollCount[pid]--;",
			"        }",
			"        // flush sw queue",
			"        flush_queue(pid);",
			"        outQueueSize = 0;",
			"    }",
		))
	}
	return c.Append(ir.NewCode("}")).Needs(includes...).Declares(externs...)
}
