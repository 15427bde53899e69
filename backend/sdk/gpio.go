package sdk

import (
	"fmt"
	"path"
	"strconv"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/resource"
)

var (
	gpioHeader  = ir.Quote("gpio.h")
	xparameters = ir.Quote("xparameters.h")
	gpioDecls   = []string{"int gpio_read(int target)", "int gpio_write(int target, int val)"}
)

func (v *visitor) GPI(ctx *backend.Context, g *board.GPIO, id resource.ID) error {
	dev, ok := v.device(ctx, g)
	if !ok {
		return nil
	}
	if !dev.HasInterrupt() {
		return errors.Invariant(errors.PhaseCatalog, "input device %s has no interrupt channel", dev.Name)
	}

	v.comps = v.comps.AddDefinition(ir.Definition{
		Doc:   ir.Doc("GPI ID of the " + g.Name + " component"),
		Name:  "gpi_" + g.Name,
		Value: strconv.Itoa(int(id)),
	})

	handler := ir.NewProcedure(ir.Void, "GpioHandler_"+g.Name, ir.Doc(
		"Interrupt handler of the "+g.Name+" component.",
		"Forwards state changes to the host and clears the interrupt.",
	)).AddParam(ir.Parameter{Type: ir.PointerTo("void"), Name: "CallbackRef"})
	handler.Modifiers = []ir.Modifier{ir.Private}
	v.comps = v.comps.AddProcedure(handler.AddCode(handlerBody(g)))

	lines := []string{"", "// initialise " + g.Name}
	lines = append(lines, fmt.Sprintf("status = XGpio_Initialize(&gpi_components[gpi_%s], %s);", g.Name, dev.DeviceID))
	lines = append(lines, statusCheck("initialising", g.Name)...)
	lines = append(lines,
		fmt.Sprintf("XGpio_SetDataDirection(&gpi_components[gpi_%s], GPIO_CHANNEL1, 0xFFFFFFFF);", g.Name),
		fmt.Sprintf("status = GpioIntrSetup(&gpi_components[gpi_%s], %s, %s, GPIO_CHANNEL1, GpioHandler_%s);",
			g.Name, dev.DeviceID, dev.IntrChannel, g.Name))
	lines = append(lines, statusCheck("connecting interrupt of", g.Name)...)
	v.init = v.init.AddCode(ir.NewCode(lines...).Needs(gpioHeader, xparameters, constHeader))

	v.gpioDriver(dev)
	return nil
}

func (v *visitor) GPO(ctx *backend.Context, g *board.GPIO, id resource.ID) error {
	dev, ok := v.device(ctx, g)
	if !ok {
		return nil
	}

	v.comps = v.comps.AddDefinition(ir.Definition{
		Doc:   ir.Doc("GPO ID of the " + g.Name + " component"),
		Name:  "gpo_" + g.Name,
		Value: strconv.Itoa(int(id)),
	})

	lines := []string{"", "// initialise " + g.Name}
	lines = append(lines, fmt.Sprintf("status = XGpio_Initialize(&gpo_components[gpo_%s], %s);", g.Name, dev.DeviceID))
	lines = append(lines, statusCheck("initialising", g.Name)...)
	lines = append(lines, fmt.Sprintf("XGpio_SetDataDirection(&gpo_components[gpo_%s], GPIO_CHANNEL1, 0x0);", g.Name))
	v.init = v.init.AddCode(ir.NewCode(lines...).Needs(gpioHeader, xparameters, constHeader))

	v.gpioDriver(dev)
	return nil
}

// statusCheck leaves init_components when the preceding driver call failed.
func statusCheck(action, name string) []string {
	return []string{
		"if(status != XST_SUCCESS) {",
		fmt.Sprintf("    loopy_print(\"ERROR %s %s: %%d\\n\", status);", action, name),
		"    return;",
		"}",
	}
}

// DualGPIO aborts the run: the server drivers are strictly one-directional.
func (v *visitor) DualGPIO(_ *backend.Context, g *board.GPIO, _ resource.GPIO) error {
	return errors.BidirectionalGPIO(g.Name)
}

func (v *visitor) device(ctx *backend.Context, g *board.GPIO) (catalog.Device, bool) {
	dev, ok := catalog.Lookup(g.Name)
	if !ok {
		ctx.Report(errors.UnknownDevice(g.Name), g.Pos)
	}
	return dev, ok
}

// gpioDriver deploys the shared driver sources and registers the device
// with the board support package.
func (v *visitor) gpioDriver(dev catalog.Device) {
	dir := path.Join(v.src, "components")
	v.deploy = v.deploy.
		Add(v.template("gpio.h"), path.Join(dir, "gpio.h")).
		Add(v.template("gpio.c"), path.Join(dir, "gpio.c"))

	v.mss = v.mss.AddBlock(driver("gpio", catalog.GPIODriver, dev.HWInstance))
}

func handlerBody(g *board.GPIO) ir.Code {
	start := []string{"XGpio *GpioPtr = (XGpio *)CallbackRef;"}
	end := []string{"", "// Clear the Interrupt", "XGpio_InterruptClear(GpioPtr, GPIO_CHANNEL1);"}

	var lines []string
	switch code := g.Callback.(type) {
	case *board.UserCode:
		lines = append(lines, start...)
		lines = append(lines, "", "// user-defined callback code")
		lines = append(lines, code.Lines...)
	default:
		lines = append(lines, start...)
		lines = append(lines,
			"",
			"// transmit gpi state change to host",
			fmt.Sprintf("send_gpio(gpi_%s, gpio_read(gpi_%s));", g.Name, g.Name))
	}
	lines = append(lines, end...)
	return ir.NewCode(lines...).Needs(gpioHeader).Declares(gpioDecls...)
}
