package catalog

import (
	"fmt"
	"slices"

	"github.com/wippyai/boardgen/mhs"
)

// Device describes one GPIO peripheral of the board.
type Device struct {
	Name        string // identifier used in board descriptions
	Instance    string // MHS instance name
	HWInstance  string // MSS hardware instance
	DeviceID    string // xparameters.h device id macro
	IntrChannel string // interrupt controller channel macro, empty without interrupt
	BaseAddr    string
	HighAddr    string
	IOStandard  string
	Pins        []string
	Width       int
	Input       bool
}

var devices = map[string]Device{
	"leds": {
		Name:       "leds",
		Instance:   "LEDs_8Bits",
		HWInstance: "leds_8bits",
		DeviceID:   "XPAR_LEDS_8BITS_DEVICE_ID",
		BaseAddr:   "0x40020000",
		HighAddr:   "0x4002ffff",
		IOStandard: "LVCMOS25",
		Pins:       []string{"AC22", "AC24", "AE22", "AE23", "AB23", "AG23", "AE24", "AD24"},
		Width:      8,
	},
	"switches": {
		Name:        "switches",
		Instance:    "DIP_Switches_8Bits",
		HWInstance:  "dip_switches_8bits",
		DeviceID:    "XPAR_DIP_SWITCHES_8BITS_DEVICE_ID",
		IntrChannel: "XPAR_MICROBLAZE_0_INTC_DIP_SWITCHES_8BITS_IP2INTC_IRPT_INTR",
		BaseAddr:    "0x40040000",
		HighAddr:    "0x4004ffff",
		IOStandard:  "LVCMOS15",
		Pins:        []string{"D22", "C22", "L21", "L20", "C18", "B18", "K22", "K21"},
		Width:       8,
		Input:       true,
	},
	"buttons": {
		Name:        "buttons",
		Instance:    "Push_Buttons_5Bits",
		HWInstance:  "push_buttons_5bits",
		DeviceID:    "XPAR_PUSH_BUTTONS_5BITS_DEVICE_ID",
		IntrChannel: "XPAR_MICROBLAZE_0_INTC_PUSH_BUTTONS_5BITS_IP2INTC_IRPT_INTR",
		BaseAddr:    "0x40000000",
		HighAddr:    "0x4000ffff",
		IOStandard:  "LVCMOS15",
		Pins:        []string{"G26", "A19", "G17", "A18", "H17"},
		Width:       5,
		Input:       true,
	},
}

// Lookup returns the device registered under name.
func Lookup(name string) (Device, bool) {
	d, ok := devices[name]
	return d, ok
}

// Names returns the registered device names in sorted order.
func Names() []string {
	names := make([]string, 0, len(devices))
	for n := range devices {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// HasInterrupt reports whether the device raises interrupts.
func (d Device) HasInterrupt() bool { return d.IntrChannel != "" }

// Net is the external net the device pins connect to.
func (d Device) Net() string {
	if d.Input {
		return d.Instance + "_TRI_I"
	}
	return d.Instance + "_TRI_O"
}

// IntcPort is the net carrying the device's interrupt.
func (d Device) IntcPort() string { return d.Instance + "_IP2INTC_Irpt" }

// ExternalPort returns the project-level port line of the device.
func (d Device) ExternalPort() mhs.Attribute {
	dir := "O"
	if d.Input {
		dir = "I"
	}
	return mhs.PortOf(d.Net(), mhs.Ident(d.Net())).
		With("DIR", mhs.Ident(dir)).
		With("VEC", mhs.Range{Hi: d.Width - 1, Lo: 0})
}

// Block returns the axi_gpio block instantiating the device.
func (d Device) Block() mhs.Block {
	allInputs, intr := 0, 0
	if d.Input {
		allInputs = 1
	}
	if d.HasInterrupt() {
		intr = 1
	}
	b := mhs.NewBlock("axi_gpio",
		mhs.Param("INSTANCE", mhs.Ident(d.Instance)),
		mhs.Param("HW_VER", mhs.Ident(GPIOCore)),
		mhs.Param("C_GPIO_WIDTH", mhs.Number(d.Width)),
		mhs.Param("C_ALL_INPUTS", mhs.Number(allInputs)),
		mhs.Param("C_INTERRUPT_PRESENT", mhs.Number(intr)),
		mhs.Param("C_IS_DUAL", mhs.Number(0)),
		mhs.Param("C_BASEADDR", mhs.MemAddr(d.BaseAddr)),
		mhs.Param("C_HIGHADDR", mhs.MemAddr(d.HighAddr)),
		mhs.Bus("S_AXI", mhs.Ident(LiteBus)),
		mhs.PortOf("S_AXI_ACLK", mhs.Ident(ClockNet)),
	)
	if d.Input {
		b = b.Add(mhs.PortOf("GPIO_IO_I", mhs.Ident(d.Net())))
	} else {
		b = b.Add(mhs.PortOf("GPIO_IO_O", mhs.Ident(d.Net())))
	}
	if d.HasInterrupt() {
		b = b.Add(mhs.PortOf("IP2INTC_Irpt", mhs.Ident(d.IntcPort())))
	}
	return b
}

// UCF returns the pin constraints of the device.
func (d Device) UCF() []string {
	lines := make([]string, len(d.Pins))
	for i, pin := range d.Pins {
		lines[i] = fmt.Sprintf("NET %s[%d] LOC = %q  |  IOSTANDARD = %q;", d.Net(), i, pin, d.IOStandard)
	}
	return lines
}
