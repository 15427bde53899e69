package catalog

// Board support (MSS) versions.
const (
	MSSVersion      = "2.2.0"
	OSVersion       = "3.08.a"
	CPUDriver       = "1.14.a"
	BRAMDriver      = "3.01.a"
	IntcDriver      = "2.05.a"
	TimerDriver     = "2.04.a"
	DDRDriver       = "2.00.a"
	UartliteDriver  = "2.00.a"
	EmacliteDriver  = "3.03.a"
	GPIODriver      = "3.00.a"
	GenericDriver   = "1.00.a"
	LwIPLibrary     = "lwip140"
	LwIPLibraryVer  = "1.03.a"
	QueueDriver     = GenericDriver
	ResizerDriver   = GenericDriver
	DefaultOSName   = "standalone"
	ProcessorName   = "microblaze_0"
	StdioInstance   = "rs232_uart_1"
	DebugInstance   = "debug_module"
	IntcInstance    = "microblaze_0_intc"
	TimerInstance   = "axi_timer_0"
	DDRInstance     = "ddr3_sdram"
	EthernetLiteHW  = "ethernet_lite"
	DataBRAMCtrl    = "microblaze_0_d_bram_ctrl"
	InstrBRAMCtrl   = "microblaze_0_i_bram_ctrl"
	ProtocolVersion = "1"
)

// Hardware project (MHS) versions.
const (
	MHSVersion       = "2.1.0"
	MicroBlazeCore   = "8.40.a"
	IntcCore         = "1.03.a"
	LMBBRAMCtrlCore  = "3.10.c"
	MDMCore          = "2.10.a"
	TimerCore        = "1.03.a"
	DDRCore          = "1.06.a"
	UartliteCore     = "1.02.a"
	EthernetLiteCore = "1.01.b"
	GPIOCore         = "1.01.b"
	QueueCore        = "1.00.a"
	ResizerCore      = "1.00.a"
	ClockNet         = "clk_100_0000MHzMMCM0"
	ResetNet         = "proc_sys_reset_0_Peripheral_aresetn"
	LiteBus          = "axi4lite_0"
)
