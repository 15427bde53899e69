package xps

import (
	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/resource"
)

func (v *visitor) GPI(ctx *backend.Context, g *board.GPIO, _ resource.ID) error {
	return v.gpio(ctx, g, true)
}

func (v *visitor) GPO(ctx *backend.Context, g *board.GPIO, _ resource.ID) error {
	return v.gpio(ctx, g, false)
}

// DualGPIO is reported; no catalog device drives both directions.
func (v *visitor) DualGPIO(ctx *backend.Context, g *board.GPIO, _ resource.GPIO) error {
	ctx.Report(errors.BidirectionalGPIO(g.Name), g.Pos)
	return nil
}

func (v *visitor) gpio(ctx *backend.Context, g *board.GPIO, input bool) error {
	dev, ok := catalog.Lookup(g.Name)
	if !ok {
		ctx.Report(errors.UnknownDevice(g.Name), g.Pos)
		return nil
	}
	if dev.Input != input {
		return errors.Invariant(errors.PhaseCatalog, "device %s declared %s", dev.Name, g.Direction)
	}

	v.file = v.file.AddAttribute(dev.ExternalPort()).AddBlock(dev.Block())
	if dev.HasInterrupt() {
		v.intr = append(v.intr, ident(dev.IntcPort()))
	}
	v.ucf = append(v.ucf, dev.UCF()...)
	return nil
}
