package sdk

import (
	"path"
	"strconv"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/mhs"
	"github.com/wippyai/boardgen/resource"
	"github.com/wippyai/boardgen/scheduler"
)

// Name identifies the backend in diagnostics and configuration.
const Name = "sdk"

// Options configure the server backend.
type Options struct {
	// Dir is the root of the generated server project.
	Dir string
	// Templates holds the driver sources copied verbatim.
	Templates string
}

// Backend generates the embedded server.
type Backend struct {
	opts Options
}

// New returns a server backend.
func New(opts Options) *Backend {
	if opts.Dir == "" {
		opts.Dir = "server"
	}
	if opts.Templates == "" {
		opts.Templates = path.Join("templates", "server")
	}
	return &Backend{opts: opts}
}

func (b *Backend) Name() string { return Name }

func (b *Backend) NewVisitor() backend.Visitor {
	src := path.Join(b.opts.Dir, "src")
	return &visitor{
		opts: b.opts,
		src:  src,
		consts: ir.NewModule("constants", src, ir.Doc(
			"Defines several constants used by the server.",
			"This includes medium-specific configuration.")),
		comps: ir.NewModule("components", path.Join(src, "components"), ir.Doc(
			"Contains component-specific initialisation and processing procedures.")),
		init:     initProcedure(),
		reset:    resetProcedure(),
		axiWrite: axiWriteProcedure(),
		axiRead:  axiReadProcedure(),
		mss:      baseMSS(),
	}
}

type visitor struct {
	sched    board.Code
	opts     Options
	src      string
	consts   ir.Module
	comps    ir.Module
	init     ir.Procedure
	reset    ir.Procedure
	axiWrite ir.Procedure
	axiRead  ir.Procedure
	mss      mhs.File
	deploy   backend.Manifest
}

func (v *visitor) define(name, value, doc string, needs ...ir.Include) {
	v.consts = v.consts.AddDefinition(ir.Definition{
		Doc:   ir.Doc(doc),
		Name:  name,
		Value: value,
		Needs: needs,
	})
}

func (v *visitor) template(name string) string {
	return path.Join(v.opts.Templates, name)
}

func (v *visitor) Begin(ctx *backend.Context) error {
	b := ctx.Board
	if b.Debug() {
		v.define("DEBUG", "1", "Indicates, if additional messages should be logged on the console.")
		v.define("loopy_print(...)", "xil_printf(__VA_ARGS__)",
			"With the chosen debug level, debug output will be sent over the JTAG cable.",
			ir.Bracket("stdio.h"))
	} else {
		v.define("DEBUG", "0", "Indicates, if additional messages should be logged on the console.")
		v.define("loopy_print(...)", "",
			"With disabled debugging, calls to the print method are simply removed.")
	}
	v.define("MAX_OUT_SW_QUEUE_SIZE", strconv.Itoa(b.MaxSWQueueSize()),
		"Maximal size of out-going software queues.")
	v.define("PROTO_VERSION", catalog.ProtocolVersion,
		"Denotes protocol version, that should be used for sending messages.")
	return nil
}

func (v *visitor) DefaultScheduler(_ *backend.Context, s *board.Scheduler) error {
	v.sched = s.Code
	return nil
}

func (v *visitor) UserScheduler(_ *backend.Context, s *board.Scheduler, _ *board.UserCode) error {
	v.sched = s.Code
	return nil
}

// Cores are only reachable through their instances.
func (v *visitor) Core(*backend.Context, *board.Core) error { return nil }

func (v *visitor) EnterInstance(*backend.Context, backend.Instance) error { return nil }
func (v *visitor) CoreLink(*backend.Context, backend.Link) error          { return nil }
func (v *visitor) LeaveInstance(*backend.Context, backend.Instance) error { return nil }

func (v *visitor) Finish(ctx *backend.Context) error {
	c := ctx.Counters
	masters, slaves := c.Count(resource.StreamMaster), c.Count(resource.StreamSlave)

	v.define("IN_STREAM_COUNT", strconv.Itoa(masters), "Number of in-going stream interfaces.")
	v.define("OUT_STREAM_COUNT", strconv.Itoa(slaves), "Number of out-going stream interfaces.")
	v.define("gpi_count", strconv.Itoa(c.Count(resource.GPI)), "Number of gpi components")
	v.define("gpo_count", strconv.Itoa(c.Count(resource.GPO)), "Number of gpo components")

	v.comps = v.comps.
		AddProcedure(v.init).
		AddProcedure(v.reset).
		AddProcedure(v.axiWrite.AddLines(axiWriteTail...)).
		AddProcedure(v.axiRead.AddLines(axiReadTail...))

	sched, err := scheduler.Module(v.src, v.sched, scheduler.Params{InStreams: masters, OutStreams: slaves})
	if err != nil {
		return err
	}

	ctx.Result.Modules = append(ctx.Result.Modules, v.consts, v.comps, sched)
	ctx.Result.Descriptors = append(ctx.Result.Descriptors, backend.Descriptor{
		Name: "system.mss",
		Dir:  v.opts.Dir,
		File: v.mss,
	})
	ctx.Result.Deploy = v.deploy
	return nil
}

func initProcedure() ir.Procedure {
	return ir.NewProcedure(ir.Void, "init_components", ir.Doc(
		"Initialises all components on this board.",
		"This includes gpio components and user-defined IPCores,",
		"but not the communication medium this board is attached with.",
	)).AddLines("int status;")
}

func resetProcedure() ir.Procedure {
	return ir.NewProcedure(ir.Void, "reset_components", ir.Doc(
		"Resets all components in this board.",
		"This includes gpio components and user-defined IPCores,",
		"but not the communication medium, this board is attached with.",
	))
}
