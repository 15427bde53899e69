package client

import (
	"fmt"
	"path"
	"strconv"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/resource"
)

// Name identifies the backend in diagnostics and configuration.
const Name = "client"

// Defaults for an Ethernet medium that omits its address.
const (
	DefaultIP   = "192.168.1.10"
	DefaultPort = 8844
)

// Options configure the client backend.
type Options struct {
	// Dir is the root of the generated client tree.
	Dir string
}

// Backend generates the host API.
type Backend struct {
	opts Options
}

// New returns a client backend.
func New(opts Options) *Backend {
	if opts.Dir == "" {
		opts.Dir = "client"
	}
	return &Backend{opts: opts}
}

func (b *Backend) Name() string { return Name }

func (b *Backend) NewVisitor() backend.Visitor {
	src := path.Join(b.opts.Dir, "src")
	return &visitor{
		consts: ir.NewModule("constants", src,
			ir.Doc("Defines several constants used by the client.")),
		comps: ir.NewModule("components", path.Join(src, "api"),
			ir.Doc("Describes user-defined IPCores and instantiates all cores present within this driver.")),
	}
}

type visitor struct {
	consts ir.Module
	comps  ir.Module
}

var (
	gpioHeader      = ir.Quote("gpio.h")
	interfaceHeader = ir.Quote("interface.h")
	componentHeader = ir.Quote("component.h")
	portHeader      = ir.Quote("port.h")
)

func (v *visitor) define(name, value string, doc ...string) {
	v.consts = v.consts.AddDefinition(ir.Definition{Doc: ir.Doc(doc...), Name: name, Value: value})
}

func (v *visitor) Begin(ctx *backend.Context) error {
	b := ctx.Board
	debug := "0"
	if b.Debug() {
		debug = "1"
	}
	v.define("DEBUG", debug, "If set, enables additional console output for debugging purposes")
	v.define("QUEUE_SIZE_HW", strconv.Itoa(b.HWQueueSize()),
		"Defines the default size of the boards hardware queues.")
	v.define("QUEUE_SIZE_SW", strconv.Itoa(b.SWQueueSize()),
		"Defines the default size of the boards software queues.",
		"This is equivalent with the maximal number of values, that should be send in one message")
	return nil
}

func (v *visitor) NoMedium(*backend.Context) error { return nil }

func (v *visitor) UART(*backend.Context, *board.UART) error {
	v.medium("new uart()")
	return nil
}

func (v *visitor) Ethernet(_ *backend.Context, m *board.Ethernet) error {
	v.medium(ethernetExpr(board.MediumOptions(m)))
	return nil
}

func (v *visitor) EthernetLite(_ *backend.Context, m *board.EthernetLite) error {
	v.medium(ethernetExpr(board.MediumOptions(m)))
	return nil
}

// PCIe has no host driver yet.
func (v *visitor) PCIe(ctx *backend.Context, _ *board.PCIe) error {
	ctx.Log.Warn("pcie medium has no client interface; none generated")
	return nil
}

func (v *visitor) medium(expr string) {
	v.comps = v.comps.AddAttribute(ir.Attribute{
		Doc:       ir.Doc("The communication medium this board is attached with."),
		Modifiers: []ir.Modifier{ir.Private},
		Type:      ir.PointerTo("interface"),
		Name:      "intrfc",
		Init:      ir.Expr(expr, interfaceHeader),
	})
}

func ethernetExpr(opts []board.MediumOption) string {
	ip, port := DefaultIP, DefaultPort
	for _, o := range opts {
		switch o := o.(type) {
		case *board.IP:
			ip = o.Addr
		case *board.PortID:
			port = o.Port
		case *board.MAC, *board.Mask, *board.Gateway:
			// board side only
		}
	}
	return fmt.Sprintf("new ethernet(%q, %d)", ip, port)
}

func (v *visitor) GPI(_ *backend.Context, g *board.GPIO, id resource.ID) error {
	v.gpio(g, id)
	return nil
}

func (v *visitor) GPO(_ *backend.Context, g *board.GPIO, id resource.ID) error {
	v.gpio(g, id)
	return nil
}

func (v *visitor) DualGPIO(_ *backend.Context, g *board.GPIO, ids resource.GPIO) error {
	v.gpio(g, ids.In, ids.Out)
	return nil
}

func (v *visitor) gpio(g *board.GPIO, ids ...resource.ID) {
	args := make([]string, len(ids))
	for i, id := range ids {
		args[i] = strconv.Itoa(int(id))
	}
	v.comps = v.comps.AddAttribute(ir.Attribute{
		Doc:       ir.Doc("An instance of the #" + g.Name + " core."),
		Modifiers: []ir.Modifier{ir.Public},
		Type:      ir.Named("class " + g.Name),
		Name:      "gpio_" + g.Name,
		Init:      ir.Args(args, gpioHeader),
	})
}

func (v *visitor) DefaultScheduler(*backend.Context, *board.Scheduler) error { return nil }

func (v *visitor) UserScheduler(*backend.Context, *board.Scheduler, *board.UserCode) error {
	return nil
}

func (v *visitor) Core(*backend.Context, *board.Core) error { return nil }

func (v *visitor) EnterInstance(ctx *backend.Context, inst backend.Instance) error {
	if !inst.Host {
		return nil
	}
	class := ir.NewClass(inst.Name,
		ir.Doc("An abstract representation of the #"+inst.Name+" core.").
			WithTags(ir.See("components.h for a list of core instances within this board driver.")),
		ir.Extends{Name: "component", Modifier: ir.Private})
	scope := backend.NewClassScope(class)
	scope.Constructor = ir.Constructor{
		Doc: ir.Doc(
			"Constructor for the #"+inst.Name+" core.",
			"Creates a new "+inst.Name+" instance on a board attached to the provided communication medium."),
		Body: ir.NewCode().Needs(componentHeader),
	}
	scope.Destructor = ir.Destructor{
		Doc: ir.Doc(
			"Destructor for the #"+inst.Name+" core.",
			"Deletes registered ports and unregisters the core from the communication medium."),
	}
	ctx.Push(scope)
	return nil
}

var portKinds = map[board.Direction]struct{ typ, doc string }{
	board.In:   {"in", "An in-going AXI-Stream port."},
	board.Out:  {"out", "An out-going AXI-Stream port."},
	board.Dual: {"dual", "A bi-directional AXI-Stream port."},
}

func (v *visitor) CPUAxis(ctx *backend.Context, axis backend.Axis) error {
	scope, err := ctx.Current()
	if err != nil {
		return err
	}
	name := axis.Port.Name
	kind := portKinds[axis.Port.Direction]

	scope.Class = scope.Class.AddAttribute(ir.Attribute{
		Doc:       ir.Doc(kind.doc, "Communicate with the #"+scope.Class.Name+" core through this port."),
		Modifiers: []ir.Modifier{ir.Public},
		Type:      ir.PointerTo(kind.typ),
		Name:      name,
		Init:      ir.Expr("", componentHeader, portHeader),
	})

	id := ir.Named("unsigned char")
	ctor := scope.Constructor
	if axis.Port.Direction == board.Dual {
		ctor = ctor.
			AddParam(ir.Parameter{Type: id, Name: name + "_in"}, "Id of the in-going part of the port").
			AddParam(ir.Parameter{Type: id, Name: name + "_out"}, "Id of the out-going part of the port").
			AddInit(name, fmt.Sprintf("new dual(%s_in, %s_out)", name, name))
	} else {
		ctor = ctor.
			AddParam(ir.Parameter{Type: id, Name: name}, "Id of the port").
			AddInit(name, fmt.Sprintf("new %s(%s)", kind.typ, name))
	}
	scope.Constructor = ctor
	scope.Destructor = scope.Destructor.AddCode(ir.NewCode("delete " + name + ";"))

	if axis.Streams.HasMaster {
		scope.Args = append(scope.Args, strconv.Itoa(int(axis.Streams.Master)))
	}
	if axis.Streams.HasSlave {
		scope.Args = append(scope.Args, strconv.Itoa(int(axis.Streams.Slave)))
	}
	return nil
}

func (v *visitor) CoreLink(*backend.Context, backend.Link) error { return nil }

func (v *visitor) LeaveInstance(ctx *backend.Context, inst backend.Instance) error {
	if !inst.Host {
		return nil
	}
	scope, err := ctx.Pop()
	if err != nil {
		return err
	}
	v.comps = v.comps.AddClass(scope.Build())
	v.comps = v.comps.AddAttribute(ir.Attribute{
		Doc:       ir.Doc("An instance of the #" + inst.Name + " core."),
		Modifiers: []ir.Modifier{ir.Public},
		Type:      ir.Named("class " + inst.Name),
		Name:      inst.Name,
		Init:      ir.Args(scope.Args),
	})
	return nil
}

func (v *visitor) Finish(ctx *backend.Context) error {
	c := ctx.Counters
	v.define("IN_PORT_COUNT", strconv.Itoa(c.Count(resource.StreamMaster)), "The number of in-going component ports")
	v.define("OUT_PORT_COUNT", strconv.Itoa(c.Count(resource.StreamSlave)), "The number of out-going component ports")
	v.define("GPI_COUNT", strconv.Itoa(c.Count(resource.GPI)), "The number of gpi components")
	v.define("GPO_COUNT", strconv.Itoa(c.Count(resource.GPO)), "The number of gpo components")

	ctx.Result.Modules = append(ctx.Result.Modules, v.consts, v.comps)
	return nil
}
