package xps

import (
	"fmt"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/mhs"
)

func (v *visitor) EnterInstance(_ *backend.Context, inst backend.Instance) error {
	v.instance(inst.Name, inst.Core.Name)
	return nil
}

func (v *visitor) LeaveInstance(*backend.Context, backend.Instance) error { return nil }

// instance returns the buffered block of an instance, creating it on first
// use. A link may reach a peer before the peer itself is entered.
func (v *visitor) instance(name, core string) mhs.Block {
	if b, ok := v.instances[name]; ok {
		return b
	}
	b := peripheral(core, name, catalog.UserCoreVersion,
		mhs.PortOf("ACLK", ident(catalog.ClockNet)),
		mhs.PortOf("ARESETN", ident(catalog.ResetNet)),
	)
	v.instances[name] = b
	return b
}

// bind attaches the bus interface iface of an instance to net, once.
func (v *visitor) bind(inst *board.Instance, iface, net string) {
	b := v.instance(inst.Name, inst.Core)
	if _, ok := b.Lookup(mhs.BusInterface, iface); ok {
		return
	}
	v.instances[inst.Name] = b.Add(mhs.Bus(iface, ident(net)))
}

func (v *visitor) CPUAxis(_ *backend.Context, axis backend.Axis) error {
	s, set := axis.Streams, axis.Settings
	port := axis.Port.Name
	in, out := port, port
	if axis.Port.Direction == board.Dual {
		in, out = port+"_in", port+"_out"
	}

	if s.HasMaster {
		group := fmt.Sprintf("m%d", s.Master)
		v.mb = v.mb.Add(mhs.Bus(fmt.Sprintf("M%d_AXIS", s.Master), ident(group)))
		v.bind(axis.Instance, in, v.writeChain(group, set))
	}
	if s.HasSlave {
		group := fmt.Sprintf("s%d", s.Slave)
		v.mb = v.mb.Add(mhs.Bus(fmt.Sprintf("S%d_AXIS", s.Slave), ident(group)))
		v.bind(axis.Instance, out, v.readChain(group, set))
	}
	return nil
}

// writeChain adds the stages from the processor towards the core and
// returns the net the core receives from.
func (v *visitor) writeChain(group string, set board.PortSettings) string {
	net := group
	if set.HWQueue > 0 {
		next := group + "_queue"
		v.queue(next, set.HWQueue, net, next)
		net = next
	}
	if set.BitWidth != board.DefaultBitWidth {
		next := group + "_mux"
		v.resizer(next, board.DefaultBitWidth, set.BitWidth, net, next)
		net = next
	}
	return net
}

// readChain adds the stages from the core towards the processor and
// returns the net the core sends on.
func (v *visitor) readChain(group string, set board.PortSettings) string {
	net := group
	if set.HWQueue > 0 {
		prev := group + "_queue"
		v.queue(prev, set.HWQueue, prev, net)
		net = prev
	}
	if set.BitWidth != board.DefaultBitWidth {
		prev := group + "_mux"
		v.resizer(prev, set.BitWidth, board.DefaultBitWidth, prev, net)
		net = prev
	}
	return net
}

func (v *visitor) queue(inst string, depth int, from, to string) {
	v.pcore("queue", catalog.QueueCore)
	v.file = v.file.AddBlock(peripheral("queue", inst, catalog.QueueCore,
		mhs.Param("C_DEPTH", mhs.Number(depth)),
		mhs.Param("C_WIDTH", mhs.Number(board.DefaultBitWidth)),
		mhs.Bus("S_AXIS", ident(from)),
		mhs.Bus("M_AXIS", ident(to)),
		mhs.PortOf("ACLK", ident(catalog.ClockNet)),
		mhs.PortOf("ARESETN", ident(catalog.ResetNet)),
	))
}

func (v *visitor) resizer(inst string, inWidth, outWidth int, from, to string) {
	v.pcore("resizer", catalog.ResizerCore)
	v.file = v.file.AddBlock(peripheral("resizer", inst, catalog.ResizerCore,
		mhs.Param("C_IN_WIDTH", mhs.Number(inWidth)),
		mhs.Param("C_OUT_WIDTH", mhs.Number(outWidth)),
		mhs.Bus("S_AXIS", ident(from)),
		mhs.Bus("M_AXIS", ident(to)),
		mhs.PortOf("ACLK", ident(catalog.ClockNet)),
		mhs.PortOf("ARESETN", ident(catalog.ResetNet)),
	))
}

// CoreLink wires both ends to one net named after the sending port. A link
// declared from both sides produces the net once.
func (v *visitor) CoreLink(_ *backend.Context, l backend.Link) error {
	src, srcPort := l.Instance, l.Port
	dst, dstPort := l.Peer, l.PeerPort
	if l.Port.Direction == board.In || (l.Port.Direction == board.Dual && l.PeerPort.Direction == board.Out) {
		src, srcPort, dst, dstPort = dst, dstPort, src, srcPort
	}
	net := src.Name + "_" + srcPort.Name
	v.bind(src, srcPort.Name, net)
	v.bind(dst, dstPort.Name, net)
	return nil
}
