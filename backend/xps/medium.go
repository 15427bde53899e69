package xps

import (
	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/mhs"
)

func (v *visitor) NoMedium(*backend.Context) error { return nil }

// UART shares the console UART of the base system and only wires its
// interrupt.
func (v *visitor) UART(*backend.Context, *board.UART) error {
	b, i, ok := v.file.Find(catalog.UartInstance)
	if !ok {
		return errors.Invariant(errors.PhaseTraverse, "base system has no %s", catalog.UartInstance)
	}
	irq := catalog.UartInstance + "_Interrupt"
	v.file = v.file.Replace(i, b.Add(mhs.PortOf("Interrupt", ident(irq))))
	v.intr = append(v.intr, ident(irq))
	return nil
}

func (v *visitor) Ethernet(*backend.Context, *board.Ethernet) error {
	v.ethernet()
	return nil
}

func (v *visitor) EthernetLite(*backend.Context, *board.EthernetLite) error {
	v.ethernet()
	return nil
}

func (v *visitor) PCIe(ctx *backend.Context, _ *board.PCIe) error {
	ctx.Log.Warn("pcie medium has no hardware block; none generated")
	return nil
}

// ethernet adds the Ethernet Lite MAC. Both Ethernet media use it.
func (v *visitor) ethernet() {
	const inst = catalog.EthernetLiteInstance
	irq := inst + "_IP2INTC_Irpt"

	for _, p := range []mhs.Attribute{
		externalPort(inst+"_TX_CLK", "I"),
		externalPort(inst+"_RX_CLK", "I"),
		externalPort(inst+"_TXD", "O", vec(3)),
		externalPort(inst+"_RXD", "I", vec(3)),
		externalPort(inst+"_TX_EN", "O"),
		externalPort(inst+"_RX_DV", "I"),
		externalPort(inst+"_PHY_RST_N", "O"),
	} {
		v.file = v.file.AddAttribute(p)
	}

	v.file = v.file.AddBlock(peripheral("axi_ethernetlite", inst, catalog.EthernetLiteCore,
		append(window(inst),
			mhs.Param("C_INCLUDE_INTERNAL_LOOPBACK", mhs.Number(0)),
			mhs.Bus("S_AXI", ident(catalog.LiteBus)),
			mhs.PortOf("S_AXI_ACLK", ident(catalog.ClockNet)),
			mhs.PortOf("IP2INTC_Irpt", ident(irq)),
			mhs.PortOf("PHY_tx_clk", ident(inst+"_TX_CLK")),
			mhs.PortOf("PHY_rx_clk", ident(inst+"_RX_CLK")),
			mhs.PortOf("PHY_tx_data", ident(inst+"_TXD")),
			mhs.PortOf("PHY_rx_data", ident(inst+"_RXD")),
			mhs.PortOf("PHY_tx_en", ident(inst+"_TX_EN")),
			mhs.PortOf("PHY_dv", ident(inst+"_RX_DV")),
			mhs.PortOf("PHY_rst_n", ident(inst+"_PHY_RST_N")))...))
	v.intr = append(v.intr, ident(irq))
}
