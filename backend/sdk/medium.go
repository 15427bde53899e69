package sdk

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/mhs"
)

var ordinals = [...]string{"first ", "second", "third ", "fourth", "fifth ", "sixth "}

func (v *visitor) NoMedium(*backend.Context) error { return nil }

func (v *visitor) UART(*backend.Context, *board.UART) error {
	v.deployMedium("uart.c")
	return nil
}

func (v *visitor) Ethernet(ctx *backend.Context, m *board.Ethernet) error {
	v.ethernet(ctx, board.MediumOptions(m), m.Pos)
	return nil
}

func (v *visitor) EthernetLite(ctx *backend.Context, m *board.EthernetLite) error {
	v.ethernet(ctx, board.MediumOptions(m), m.Pos)
	return nil
}

func (v *visitor) PCIe(ctx *backend.Context, _ *board.PCIe) error {
	ctx.Log.Warn("pcie medium has no server driver; none deployed")
	return nil
}

func (v *visitor) deployMedium(file string) {
	v.deploy = v.deploy.Add(v.template(file), path.Join(v.src, "medium", "medium.c"))
}

func (v *visitor) ethernet(ctx *backend.Context, opts []board.MediumOption, pos board.Pos) {
	v.deployMedium("ethernet.c")

	for _, o := range opts {
		var err error
		switch o := o.(type) {
		case *board.MAC:
			err = v.mac(o.Addr)
		case *board.IP:
			err = v.ip("IP", o.Addr, "IP address")
		case *board.Mask:
			err = v.ip("MASK", o.Addr, "network mask")
		case *board.Gateway:
			err = v.ip("GW", o.Addr, "standard gateway")
		case *board.PortID:
			v.define("PORT", strconv.Itoa(o.Port), "The port for this boards TCP-connection.")
		}
		if err != nil {
			ctx.Report(err, pos)
		}
	}

	v.mss = v.mss.AddBlock(
		driver("emaclite", catalog.EmacliteDriver, catalog.EthernetLiteHW),
		mhs.NewBlock("LIBRARY",
			mhs.Param("LIBRARY_NAME", mhs.Ident(catalog.LwIPLibrary)),
			mhs.Param("LIBRARY_VER", mhs.Ident(catalog.LwIPLibraryVer)),
			mhs.Param("PROC_INSTANCE", mhs.Ident(catalog.ProcessorName)),
		),
	)
}

// mac defines MAC_1..MAC_6 as 0x-prefixed bytes.
func (v *visitor) mac(addr string) error {
	parts := strings.Split(addr, ":")
	if len(parts) != 6 {
		return errors.InvalidInput(errors.PhaseTraverse, []string{"medium", "mac"},
			fmt.Sprintf("malformed MAC address %q", addr))
	}
	for i, p := range parts {
		v.define(fmt.Sprintf("MAC_%d", i+1), "0x"+p,
			fmt.Sprintf("The %s 8 bits of the MAC address of this board.", ordinals[i]))
	}
	return nil
}

// ip defines <id>_1..<id>_4 as decimal octets.
func (v *visitor) ip(id, addr, what string) error {
	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return errors.InvalidInput(errors.PhaseTraverse, []string{"medium", strings.ToLower(id)},
			fmt.Sprintf("malformed %s %q", what, addr))
	}
	for i, p := range parts {
		v.define(fmt.Sprintf("%s_%d", id, i+1), p,
			fmt.Sprintf("The %s 8 bits of the %s of this board.", ordinals[i], what))
	}
	return nil
}
