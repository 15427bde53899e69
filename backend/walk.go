package backend

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
)

// Walk drives v over ctx.Board. It returns the first error a visitor
// method returned; recoverable problems are left in ctx.Errors.
func Walk(ctx *Context, v Visitor) error {
	b := ctx.Board
	if err := v.Begin(ctx); err != nil {
		return ctx.fatal(err, b.Pos)
	}
	if err := walkMedium(ctx, v, b.Medium); err != nil {
		return err
	}
	for i := range b.GPIOs {
		if err := walkGPIO(ctx, v, &b.GPIOs[i]); err != nil {
			return err
		}
	}
	if err := walkScheduler(ctx, v, &b.Scheduler); err != nil {
		return err
	}
	for i := range b.Cores {
		if err := v.Core(ctx, &b.Cores[i]); err != nil {
			return ctx.fatal(err, b.Cores[i].Pos)
		}
	}
	for i := range b.Instances {
		if err := walkInstance(ctx, v, &b.Instances[i]); err != nil {
			return err
		}
	}
	if err := v.Finish(ctx); err != nil {
		return ctx.fatal(err, b.Pos)
	}
	return nil
}

func walkMedium(ctx *Context, v Visitor, m board.Medium) error {
	ctx.Log.Debug("medium", zap.String("kind", m.MediumName()))
	var err error
	pos := ctx.Board.Pos
	switch m := m.(type) {
	case *board.NoMedium:
		err = v.NoMedium(ctx)
	case *board.UART:
		err, pos = v.UART(ctx, m), m.Pos
	case *board.Ethernet:
		err, pos = v.Ethernet(ctx, m), m.Pos
	case *board.EthernetLite:
		err, pos = v.EthernetLite(ctx, m), m.Pos
	case *board.PCIe:
		err, pos = v.PCIe(ctx, m), m.Pos
	default:
		err = errors.Invariant(errors.PhaseTraverse, "unknown medium %T", m)
	}
	if err != nil {
		return ctx.fatal(err, pos)
	}
	return nil
}

func walkGPIO(ctx *Context, v Visitor, g *board.GPIO) error {
	ids := ctx.Counters.AllocateGPIO(g.Name, g.Direction)
	var err error
	switch g.Direction {
	case board.In:
		err = v.GPI(ctx, g, ids.In)
	case board.Out:
		err = v.GPO(ctx, g, ids.Out)
	case board.Dual:
		err = v.DualGPIO(ctx, g, ids)
	default:
		err = errors.Invariant(errors.PhaseTraverse, "gpio %s has direction %d", g.Name, g.Direction)
	}
	if err != nil {
		return ctx.fatal(err, g.Pos)
	}
	return nil
}

func walkScheduler(ctx *Context, v Visitor, s *board.Scheduler) error {
	var err error
	switch code := s.Code.(type) {
	case *board.DefaultCode:
		err = v.DefaultScheduler(ctx, s)
	case *board.UserCode:
		err = v.UserScheduler(ctx, s, code)
	default:
		err = errors.Invariant(errors.PhaseSchedule, "unknown scheduler code %T", code)
	}
	if err != nil {
		return ctx.fatal(err, s.Pos)
	}
	return nil
}

func walkInstance(ctx *Context, v Visitor, inst *board.Instance) error {
	core, ok := ctx.Board.Core(inst.Core)
	if !ok {
		ctx.Report(errors.MissingCore(inst.Name, inst.Core), inst.Pos)
		return nil
	}

	in := Instance{Instance: inst, Core: core, Host: inst.HasCPUConnection()}
	if err := v.EnterInstance(ctx, in); err != nil {
		return ctx.fatal(err, inst.Pos)
	}

	for _, bind := range inst.Bindings {
		port, ok := core.Port(bind.PortName())
		if !ok {
			ctx.Report(errors.MissingPort(inst.Name, core.Name, bind.PortName()), bind.Position())
			continue
		}

		var err error
		switch bind := bind.(type) {
		case *board.CPUAxis:
			err = walkAxis(ctx, v, inst, port, bind)
		case *board.CoreLink:
			err = walkLink(ctx, v, inst, port, bind)
		default:
			err = errors.Invariant(errors.PhaseTraverse, "unknown binding %T", bind)
		}
		if err != nil {
			return ctx.fatal(err, bind.Position())
		}
	}

	if err := v.LeaveInstance(ctx, in); err != nil {
		return ctx.fatal(err, inst.Pos)
	}
	return nil
}

func walkAxis(ctx *Context, v Visitor, inst *board.Instance, port *board.Port, bind *board.CPUAxis) error {
	streams, err := ctx.Counters.AllocateStreams(inst.Name+"."+port.Name, port.Direction)
	if err != nil {
		ctx.Report(err, bind.Pos)
	}
	if !streams.HasMaster && !streams.HasSlave {
		return nil
	}
	return v.CPUAxis(ctx, Axis{
		Binding:  bind,
		Port:     port,
		Instance: inst,
		Streams:  streams,
		Settings: ctx.Board.Settings(bind),
	})
}

func walkLink(ctx *Context, v Visitor, inst *board.Instance, port *board.Port, bind *board.CoreLink) error {
	peer, ok := ctx.Board.Instance(bind.Peer)
	if !ok {
		ctx.Report(errors.New(errors.PhaseTraverse, errors.KindStructural).
			Path(inst.Name, port.Name).
			Detail("link to undeclared instance %q", bind.Peer).
			Build(), bind.Pos)
		return nil
	}
	peerCore, ok := ctx.Board.Core(peer.Core)
	if !ok {
		// reported when the peer itself is walked
		return nil
	}
	peerPort, ok := peerCore.Port(bind.PeerPort)
	if !ok {
		ctx.Report(errors.MissingPort(peer.Name, peerCore.Name, bind.PeerPort), bind.Pos)
		return nil
	}
	return v.CoreLink(ctx, Link{
		Binding:  bind,
		Port:     port,
		Instance: inst,
		Peer:     peer,
		PeerPort: peerPort,
	})
}

func (c *Context) fatal(err error, pos board.Pos) error {
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		err = errors.Wrap(errors.PhaseTraverse, errors.KindInvariant, err, "backend aborted")
	}
	return c.attribute(err, pos)
}

// Run executes one backend over b. It returns the result only when the run
// neither aborted nor collected any error.
func Run(be Backend, b *board.Board) (*Result, error) {
	ctx := NewContext(be.Name(), b)
	ctx.Log.Debug("run started")

	if err := Walk(ctx, be.NewVisitor()); err != nil {
		ctx.Log.Debug("run aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Errors.Err(); err != nil {
		ctx.Log.Debug("run failed", zap.Int("errors", ctx.Errors.Len()))
		return nil, err
	}
	ctx.Log.Debug("run finished",
		zap.Int("modules", len(ctx.Result.Modules)),
		zap.Int("descriptors", len(ctx.Result.Descriptors)))
	return &ctx.Result, nil
}
