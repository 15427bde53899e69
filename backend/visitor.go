package backend

import (
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/resource"
)

// Instance is an instance together with its resolved core.
type Instance struct {
	*board.Instance
	Core *board.Core
	// Host is set when at least one binding is a CPU connection.
	Host bool
}

// Axis is a CPU connection with its resolved port and allocated streams.
type Axis struct {
	Binding  *board.CPUAxis
	Port     *board.Port
	Instance *board.Instance
	Streams  resource.Streams
	Settings board.PortSettings
}

// Link is an inter-core binding with both ends resolved.
type Link struct {
	Binding  *board.CoreLink
	Port     *board.Port
	Instance *board.Instance
	Peer     *board.Instance
	PeerPort *board.Port
}

// Visitor handles every node variant of a board.
// A non-nil error aborts the run.
type Visitor interface {
	Begin(ctx *Context) error

	NoMedium(ctx *Context) error
	UART(ctx *Context, m *board.UART) error
	Ethernet(ctx *Context, m *board.Ethernet) error
	EthernetLite(ctx *Context, m *board.EthernetLite) error
	PCIe(ctx *Context, m *board.PCIe) error

	GPI(ctx *Context, g *board.GPIO, id resource.ID) error
	GPO(ctx *Context, g *board.GPIO, id resource.ID) error
	DualGPIO(ctx *Context, g *board.GPIO, ids resource.GPIO) error

	DefaultScheduler(ctx *Context, s *board.Scheduler) error
	UserScheduler(ctx *Context, s *board.Scheduler, code *board.UserCode) error

	Core(ctx *Context, c *board.Core) error

	EnterInstance(ctx *Context, inst Instance) error
	CPUAxis(ctx *Context, axis Axis) error
	CoreLink(ctx *Context, link Link) error
	LeaveInstance(ctx *Context, inst Instance) error

	Finish(ctx *Context) error
}

// Backend creates a fresh Visitor for every run.
type Backend interface {
	Name() string
	NewVisitor() Visitor
}

// Nop implements every Visitor method as a no-op.
type Nop struct{}

func (Nop) Begin(*Context) error                                            { return nil }
func (Nop) NoMedium(*Context) error                                         { return nil }
func (Nop) UART(*Context, *board.UART) error                                { return nil }
func (Nop) Ethernet(*Context, *board.Ethernet) error                        { return nil }
func (Nop) EthernetLite(*Context, *board.EthernetLite) error                { return nil }
func (Nop) PCIe(*Context, *board.PCIe) error                                { return nil }
func (Nop) GPI(*Context, *board.GPIO, resource.ID) error                    { return nil }
func (Nop) GPO(*Context, *board.GPIO, resource.ID) error                    { return nil }
func (Nop) DualGPIO(*Context, *board.GPIO, resource.GPIO) error             { return nil }
func (Nop) DefaultScheduler(*Context, *board.Scheduler) error               { return nil }
func (Nop) UserScheduler(*Context, *board.Scheduler, *board.UserCode) error { return nil }
func (Nop) Core(*Context, *board.Core) error                                { return nil }
func (Nop) EnterInstance(*Context, Instance) error                          { return nil }
func (Nop) CPUAxis(*Context, Axis) error                                    { return nil }
func (Nop) CoreLink(*Context, Link) error                                   { return nil }
func (Nop) LeaveInstance(*Context, Instance) error                          { return nil }
func (Nop) Finish(*Context) error                                           { return nil }
