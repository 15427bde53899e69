package board

// Medium is the transport between host software and the board.
// Implemented by *NoMedium, *UART, *Ethernet, *EthernetLite and *PCIe.
type Medium interface {
	MediumName() string
	isMedium()
}

// NoMedium is a board without a host connection.
type NoMedium struct{}

// UART connects the host over a serial line.
type UART struct {
	Pos Pos
}

// Ethernet connects the host over a full Ethernet MAC.
type Ethernet struct {
	Options []MediumOption
	Pos     Pos
}

// EthernetLite connects the host over the lightweight Ethernet MAC.
type EthernetLite struct {
	Options []MediumOption
	Pos     Pos
}

// PCIe connects the host over PCI Express.
type PCIe struct {
	Pos Pos
}

func (*NoMedium) MediumName() string     { return "none" }
func (*UART) MediumName() string         { return "uart" }
func (*Ethernet) MediumName() string     { return "ethernet" }
func (*EthernetLite) MediumName() string { return "ethernet_lite" }
func (*PCIe) MediumName() string         { return "pcie" }

func (*NoMedium) isMedium()     {}
func (*UART) isMedium()         {}
func (*Ethernet) isMedium()     {}
func (*EthernetLite) isMedium() {}
func (*PCIe) isMedium()         {}

// MediumOption configures an Ethernet medium.
// Implemented by *MAC, *IP, *Mask, *Gateway and *PortID.
type MediumOption interface {
	isMediumOption()
}

// MAC is the board's MAC address, colon separated.
type MAC struct{ Addr string }

// IP is the board's IPv4 address.
type IP struct{ Addr string }

// Mask is the network mask.
type Mask struct{ Addr string }

// Gateway is the default gateway.
type Gateway struct{ Addr string }

// PortID is the TCP port the board listens on.
type PortID struct{ Port int }

func (*MAC) isMediumOption()     {}
func (*IP) isMediumOption()      {}
func (*Mask) isMediumOption()    {}
func (*Gateway) isMediumOption() {}
func (*PortID) isMediumOption()  {}

// Option is a board-wide or per-port option.
// Implemented by *HWQueue, *SWQueue, *Debug, *BitWidth and *Poll.
type Option interface {
	isOption()
}

// HWQueue sets the depth of hardware queues.
type HWQueue struct{ Size int }

// SWQueue sets the capacity of software queues.
type SWQueue struct{ Size int }

// Debug enables diagnostic output in generated code.
type Debug struct{}

// BitWidth sets the data width of a port in bits.
type BitWidth struct{ Bits int }

// Poll switches a host-read port to polling mode with an initial credit.
type Poll struct{ Count int }

func (*HWQueue) isOption()  {}
func (*SWQueue) isOption()  {}
func (*Debug) isOption()    {}
func (*BitWidth) isOption() {}
func (*Poll) isOption()     {}

// Code is either the generator's default behavior or verbatim user code.
// Implemented by *DefaultCode and *UserCode.
type Code interface {
	isCode()
}

// DefaultCode selects the synthesized default.
type DefaultCode struct{}

// UserCode carries raw target-language lines supplied by the user.
type UserCode struct {
	Lines []string
}

func (*DefaultCode) isCode() {}
func (*UserCode) isCode()    {}

// Binding attaches an instance port either to the CPU or to another instance.
// Implemented by *CPUAxis and *CoreLink.
type Binding interface {
	PortName() string
	Position() Pos
	isBinding()
}

// CPUAxis exposes an instance port directly to host software.
type CPUAxis struct {
	Port    string
	Options []Option
	Pos     Pos
}

// CoreLink wires an instance port to a port of another instance.
type CoreLink struct {
	Port     string
	Peer     string
	PeerPort string
	Pos      Pos
}

func (b *CPUAxis) PortName() string  { return b.Port }
func (b *CoreLink) PortName() string { return b.Port }
func (b *CPUAxis) Position() Pos     { return b.Pos }
func (b *CoreLink) Position() Pos    { return b.Pos }
func (*CPUAxis) isBinding()          {}
func (*CoreLink) isBinding()         {}
