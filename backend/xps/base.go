package xps

import (
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/mhs"
)

func ident(s string) mhs.Value { return mhs.Ident(s) }

func window(instance string) []mhs.Attribute {
	return addressRange(instance, "C_BASEADDR", "C_HIGHADDR")
}

func addressRange(instance, baseKey, highKey string) []mhs.Attribute {
	base, high, _ := catalog.Window(instance)
	return []mhs.Attribute{
		mhs.Param(baseKey, mhs.MemAddr(base)),
		mhs.Param(highKey, mhs.MemAddr(high)),
	}
}

func peripheral(kind, instance, version string, attrs ...mhs.Attribute) mhs.Block {
	return mhs.NewBlock(kind,
		mhs.Param("INSTANCE", ident(instance)),
		mhs.Param("HW_VER", ident(version)),
	).Add(attrs...)
}

func externalPort(name, dir string, attrs ...func(mhs.Attribute) mhs.Attribute) mhs.Attribute {
	a := mhs.PortOf(name, ident(name)).With("DIR", ident(dir))
	for _, f := range attrs {
		a = f(a)
	}
	return a
}

func vec(hi int) func(mhs.Attribute) mhs.Attribute {
	return func(a mhs.Attribute) mhs.Attribute {
		return a.With("VEC", mhs.Range{Hi: hi, Lo: 0})
	}
}

func sigis(kind string) func(mhs.Attribute) mhs.Attribute {
	return func(a mhs.Attribute) mhs.Attribute {
		return a.With("SIGIS", ident(kind))
	}
}

// baseSystem returns the descriptor every project starts from: clocking,
// local memory, debug module, timer, DDR and the console UART.
func baseSystem() mhs.File {
	return mhs.File{}.
		AddAttribute(mhs.Param("VERSION", ident(catalog.MHSVersion))).
		AddAttribute(externalPort(catalog.ResetPort, "I", sigis("RST"))).
		AddAttribute(externalPort(catalog.ClockPort, "I", sigis("CLK"))).
		AddAttribute(externalPort(catalog.UartInstance+"_sin", "I")).
		AddAttribute(externalPort(catalog.UartInstance+"_sout", "O")).
		AddBlock(
			peripheral("lmb_bram_if_cntlr", catalog.DataBRAMCtrl, catalog.LMBBRAMCtrlCore,
				append(window(catalog.DataBRAMCtrl),
					mhs.Bus("SLMB", ident(catalog.DataLMB)),
					mhs.Bus("BRAM_PORT", ident("microblaze_0_bram_block_portA")))...),
			peripheral("lmb_bram_if_cntlr", catalog.InstrBRAMCtrl, catalog.LMBBRAMCtrlCore,
				append(window(catalog.InstrBRAMCtrl),
					mhs.Bus("SLMB", ident(catalog.InstrLMB)),
					mhs.Bus("BRAM_PORT", ident("microblaze_0_bram_block_portB")))...),
			peripheral("mdm", catalog.DebugInstance, catalog.MDMCore,
				append(window(catalog.DebugInstance),
					mhs.Param("C_INTERCONNECT", mhs.Number(2)),
					mhs.Bus("S_AXI", ident(catalog.LiteBus)),
					mhs.Bus("MBDEBUG_0", ident(catalog.DebugBus)),
					mhs.PortOf("S_AXI_ACLK", ident(catalog.ClockNet)))...),
			peripheral("axi_timer", catalog.TimerInstance, catalog.TimerCore,
				append(window(catalog.TimerInstance),
					mhs.Param("C_COUNT_WIDTH", mhs.Number(32)),
					mhs.Bus("S_AXI", ident(catalog.LiteBus)),
					mhs.PortOf("S_AXI_ACLK", ident(catalog.ClockNet)),
					mhs.PortOf("Interrupt", ident(catalog.TimerInstance+"_Interrupt")))...),
			peripheral("axi_v6_ddrx", catalog.DDRPhyInstance, catalog.DDRCore,
				append(addressRange(catalog.DDRPhyInstance, "C_S_AXI_BASEADDR", "C_S_AXI_HIGHADDR"),
					mhs.Bus("S_AXI", ident("axi4_0")),
					mhs.PortOf("ui_clk", ident(catalog.ClockNet)))...),
			peripheral("axi_uartlite", catalog.UartInstance, catalog.UartliteCore,
				append(window(catalog.UartInstance),
					mhs.Param("C_BAUDRATE", mhs.Number(9600)),
					mhs.Bus("S_AXI", ident(catalog.LiteBus)),
					mhs.PortOf("S_AXI_ACLK", ident(catalog.ClockNet)),
					mhs.PortOf("RX", ident(catalog.UartInstance+"_sin")),
					mhs.PortOf("TX", ident(catalog.UartInstance+"_sout")))...),
		)
}

// microBlaze returns the processor block; stream interfaces are added as
// they are allocated.
func microBlaze() mhs.Block {
	return peripheral("microblaze", catalog.ProcessorName, catalog.MicroBlazeCore,
		mhs.Param("C_INTERCONNECT", mhs.Number(2)),
		mhs.Param("C_USE_BARREL", mhs.Number(1)),
		mhs.Param("C_USE_EXTENDED_FSL_INSTR", mhs.Number(1)),
		mhs.Param("C_DEBUG_ENABLED", mhs.Number(1)),
		mhs.Bus("DLMB", ident(catalog.DataLMB)),
		mhs.Bus("ILMB", ident(catalog.InstrLMB)),
		mhs.Bus("M_AXI_DP", ident(catalog.LiteBus)),
		mhs.Bus("DEBUG", ident(catalog.DebugBus)),
		mhs.Bus("INTERRUPT", ident(catalog.InterruptBus)),
		mhs.PortOf("MB_RESET", ident(catalog.ResetNet)),
		mhs.PortOf("CLK", ident(catalog.ClockNet)),
	)
}
