package sdk

import (
	"fmt"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/ir"
)

var (
	fslHeader   = ir.Quote("fsl.h")
	constHeader = ir.Quote("../constants.h")
	ioHeader    = ir.Quote("../io.h")
)

func axiWriteProcedure() ir.Procedure {
	p := ir.NewProcedure(ir.Named("int"), "axi_write", ir.Doc(
		"Write a value to an AXI stream.",
	).WithTags(
		ir.Param("val", "Value to be written to the stream."),
		ir.Param("target", "Target stream identifier."),
	)).
		AddParam(ir.Parameter{Type: ir.Named("int"), Name: "val"}).
		AddParam(ir.Parameter{Type: ir.Named("int"), Name: "target"})
	p.Modifiers = []ir.Modifier{ir.Private}
	return p.AddCode(ir.NewCode(
		"// YES, this is ridiculous... THANKS FOR NOTHING, XILINX!",
		`if(DEBUG) xil_printf("\nwriting to in-going port %d (value: %d) ...", target, val);`,
		"switch(target) {",
	).Needs(fslHeader, constHeader))
}

func axiReadProcedure() ir.Procedure {
	p := ir.NewProcedure(ir.Named("int"), "axi_read", ir.Doc(
		"Read a value from an AXI stream.",
	).WithTags(
		ir.Param("val", "Pointer to the memory area, where the read value will be stored."),
		ir.Param("target", "Target stream identifier."),
	)).
		AddParam(ir.Parameter{Type: ir.PointerTo("int"), Name: "val"}).
		AddParam(ir.Parameter{Type: ir.Named("int"), Name: "target"})
	p.Modifiers = []ir.Modifier{ir.Private}
	return p.AddCode(ir.NewCode(
		"// YES, this is ridiculous... THANKS FOR NOTHING, XILINX!",
		`if(DEBUG) xil_printf("\nreading from out-going port %d ...", target);`,
		"switch(target) {",
	).Needs(fslHeader, constHeader))
}

var axiWriteTail = []string{
	`default: xil_printf("ERROR: unknown axi stream port %d", target);`,
	"}",
	"// should be call by value --> reuse the memory address...",
	"int rslt = 1;",
	"fsl_isinvalid(rslt);",
	`if(DEBUG) xil_printf(" (invalid: %d)", rslt);`,
	"return rslt;",
}

var axiReadTail = []string{
	`default: xil_printf("ERROR: unknown axi stream port %d", target);`,
	"}",
	"// should be call by value --> reuse the memory address...",
	`if(DEBUG) xil_printf("\n %d", *val);`,
	"int rslt = 1;",
	"fsl_isinvalid(rslt);",
	`if(DEBUG) xil_printf(" (invalid: %d)", rslt);`,
	"return rslt;",
}

func (v *visitor) CPUAxis(_ *backend.Context, axis backend.Axis) error {
	s := axis.Streams
	set := axis.Settings

	if s.HasMaster {
		v.axiWrite = v.axiWrite.AddLines(
			fmt.Sprintf("case %2d: putfslx(val, %2d, FSL_NONBLOCKING); break;", s.Master, s.Master))
		v.init = v.init.AddCode(ir.NewCode(
			fmt.Sprintf("inQueue[%d] = createQueue(%d);", s.Master, set.SWQueue32()),
		).Needs(ioHeader))
	}
	if s.HasSlave {
		polling := 0
		if set.Polling {
			polling = 1
		}
		v.axiRead = v.axiRead.AddLines(
			fmt.Sprintf("case %2d: getfslx(*val, %2d, FSL_NONBLOCKING); break;", s.Slave, s.Slave))
		v.init = v.init.AddCode(ir.NewCode(
			fmt.Sprintf("outQueueCap[%d] = %d;", s.Slave, set.SWQueue32()),
			fmt.Sprintf("isPolling[%d] = %d;", s.Slave, polling),
			fmt.Sprintf("pollCount[%d] = %d;", s.Slave, set.PollCount32()),
		).Needs(ioHeader))
	}

	if s.HasMaster {
		v.streamDrivers(fmt.Sprintf("m%d", s.Master), set)
	}
	if s.HasSlave {
		v.streamDrivers(fmt.Sprintf("s%d", s.Slave), set)
	}
	return nil
}

// streamDrivers registers the queue and width adapter of one stream with the
// board support package.
func (v *visitor) streamDrivers(group string, set board.PortSettings) {
	if set.HWQueue > 0 {
		v.mss = v.mss.AddBlock(driver("generic", catalog.QueueDriver, group+"_queue"))
	}
	if set.BitWidth != board.DefaultBitWidth {
		v.mss = v.mss.AddBlock(driver("generic", catalog.ResizerDriver, group+"_mux"))
	}
}
