package catalog

import "strings"

// Fixed hardware instances of the Virtex-6 base system.
const (
	EthernetLiteInstance = "Ethernet_Lite"
	UartInstance         = "RS232_Uart_1"
	DDRPhyInstance       = "DDR3_SDRAM"
	DataLMB              = "microblaze_0_dlmb"
	InstrLMB             = "microblaze_0_ilmb"
	DebugBus             = "microblaze_0_debug"
	InterruptBus         = "microblaze_0_interrupt"
	ClockPort            = "CLK"
	ResetPort            = "RESET"
	UserCoreVersion      = "1.00.a"
)

// Address windows of the memory-mapped peripherals.
var addresses = map[string][2]string{
	DataBRAMCtrl:         {"0x00000000", "0x0000ffff"},
	InstrBRAMCtrl:        {"0x00000000", "0x0000ffff"},
	DebugInstance:        {"0x41400000", "0x4140ffff"},
	IntcInstance:         {"0x41200000", "0x4120ffff"},
	TimerInstance:        {"0x41c00000", "0x41c0ffff"},
	UartInstance:         {"0x40600000", "0x4060ffff"},
	EthernetLiteInstance: {"0x40e00000", "0x40e0ffff"},
	DDRPhyInstance:       {"0xc0000000", "0xc7ffffff"},
}

// Window returns the base and high address of a fixed instance.
func Window(instance string) (base, high string, ok bool) {
	w, ok := addresses[instance]
	return w[0], w[1], ok
}

// PcoreDir is the XPS directory name of a peripheral core, such as
// queue_v1_00_a.
func PcoreDir(core, version string) string {
	return core + "_v" + strings.ReplaceAll(version, ".", "_")
}
