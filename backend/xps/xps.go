package xps

import (
	"path"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/mhs"
	"github.com/wippyai/boardgen/resource"
)

// Name identifies the backend in diagnostics and configuration.
const Name = "xps"

// Options configure the hardware project backend.
type Options struct {
	// Dir is the root of the generated XPS project.
	Dir string
	// Templates holds the peripheral core sources, one directory per core.
	Templates string
}

// Backend generates the hardware project.
type Backend struct {
	opts Options
}

// New returns a hardware project backend.
func New(opts Options) *Backend {
	if opts.Dir == "" {
		opts.Dir = "project"
	}
	if opts.Templates == "" {
		opts.Templates = path.Join("templates", "project")
	}
	return &Backend{opts: opts}
}

func (b *Backend) Name() string { return Name }

func (b *Backend) NewVisitor() backend.Visitor {
	return &visitor{
		opts:      b.opts,
		instances: map[string]mhs.Block{},
	}
}

type visitor struct {
	opts      Options
	file      mhs.File
	mb        mhs.Block
	intr      mhs.Concat
	instances map[string]mhs.Block
	ucf       []string
	deploy    backend.Manifest
}

func (v *visitor) pcore(core, version string) {
	dir := catalog.PcoreDir(core, version)
	v.deploy = v.deploy.Add(
		path.Join(v.opts.Templates, "pcores", dir),
		path.Join(v.opts.Dir, "pcores", dir))
}

func (v *visitor) Begin(*backend.Context) error {
	v.file = baseSystem()
	v.mb = microBlaze()
	v.intr = mhs.Concat{mhs.Ident(catalog.TimerInstance + "_Interrupt")}
	return nil
}

func (v *visitor) DefaultScheduler(*backend.Context, *board.Scheduler) error { return nil }

func (v *visitor) UserScheduler(*backend.Context, *board.Scheduler, *board.UserCode) error {
	return nil
}

// Core deploys the peripheral core sources of a user core.
func (v *visitor) Core(_ *backend.Context, c *board.Core) error {
	v.pcore(c.Name, catalog.UserCoreVersion)
	return nil
}

func (v *visitor) Finish(ctx *backend.Context) error {
	c := ctx.Counters
	links := max(c.Count(resource.StreamMaster), c.Count(resource.StreamSlave))
	v.mb = v.mb.Add(mhs.Param("C_FSL_LINKS", mhs.Number(links)))

	v.file = v.file.AddBlock(v.mb, v.intc())
	for i := range ctx.Board.Instances {
		if b, ok := v.instances[ctx.Board.Instances[i].Name]; ok {
			v.file = v.file.AddBlock(b)
		}
	}

	ctx.Result.Descriptors = append(ctx.Result.Descriptors, backend.Descriptor{
		Name: "system.mhs",
		Dir:  v.opts.Dir,
		File: v.file,
	})
	ctx.Result.Texts = append(ctx.Result.Texts, backend.Text{
		Name:  "system.ucf",
		Dir:   path.Join(v.opts.Dir, "data"),
		Lines: v.ucf,
	})
	ctx.Result.Deploy = v.deploy
	return nil
}

func (v *visitor) intc() mhs.Block {
	return peripheral("axi_intc", catalog.IntcInstance, catalog.IntcCore,
		append(window(catalog.IntcInstance),
			mhs.Bus("S_AXI", ident(catalog.LiteBus)),
			mhs.Bus("INTERRUPT", ident(catalog.InterruptBus)),
			mhs.PortOf("S_AXI_ACLK", ident(catalog.ClockNet)),
			mhs.PortOf("INTR", v.intr))...)
}
