package catalog

import (
	"strings"
	"testing"

	"github.com/wippyai/boardgen/mhs"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		input     bool
		interrupt bool
		width     int
	}{
		{"leds", false, false, 8},
		{"switches", true, true, 8},
		{"buttons", true, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("device %s not found", tt.name)
			}
			if d.Input != tt.input || d.HasInterrupt() != tt.interrupt || d.Width != tt.width {
				t.Errorf("device = %+v", d)
			}
			if len(d.Pins) != d.Width {
				t.Errorf("%d pins for width %d", len(d.Pins), d.Width)
			}
		})
	}

	if _, ok := Lookup("lasers"); ok {
		t.Error("unknown device should not be found")
	}
}

func TestNames(t *testing.T) {
	got := strings.Join(Names(), ",")
	if got != "buttons,leds,switches" {
		t.Errorf("Names = %s", got)
	}
}

func TestDevice_Block(t *testing.T) {
	d, _ := Lookup("buttons")
	b := d.Block()

	if b.Instance() != "Push_Buttons_5Bits" {
		t.Errorf("instance = %s", b.Instance())
	}
	if v, ok := b.Lookup(mhs.Port, "GPIO_IO_I"); !ok || v.String() != "Push_Buttons_5Bits_TRI_I" {
		t.Errorf("GPIO_IO_I = %v", v)
	}
	if v, ok := b.Lookup(mhs.Port, "IP2INTC_Irpt"); !ok || v.String() != "Push_Buttons_5Bits_IP2INTC_Irpt" {
		t.Errorf("IP2INTC_Irpt = %v", v)
	}

	leds, _ := Lookup("leds")
	if _, ok := leds.Block().Lookup(mhs.Port, "IP2INTC_Irpt"); ok {
		t.Error("leds should not have an interrupt port")
	}
}

func TestDevice_ExternalPortAndUCF(t *testing.T) {
	d, _ := Lookup("buttons")
	line := mhs.File{}.AddAttribute(d.ExternalPort()).String()
	if line != "PORT Push_Buttons_5Bits_TRI_I = Push_Buttons_5Bits_TRI_I, DIR = I, VEC = [4:0]\n" {
		t.Errorf("external port = %q", line)
	}

	ucf := d.UCF()
	if ucf[0] != `NET Push_Buttons_5Bits_TRI_I[0] LOC = "G26"  |  IOSTANDARD = "LVCMOS15";` {
		t.Errorf("ucf[0] = %s", ucf[0])
	}
}

func TestWindow(t *testing.T) {
	base, high, ok := Window(IntcInstance)
	if !ok || base != "0x41200000" || high != "0x4120ffff" {
		t.Errorf("Window(%s) = %s, %s, %v", IntcInstance, base, high, ok)
	}
	if _, _, ok := Window("nothing"); ok {
		t.Error("Window should fail for unknown instances")
	}
}

func TestPcoreDir(t *testing.T) {
	tests := []struct {
		core, version, want string
	}{
		{"queue", QueueCore, "queue_v1_00_a"},
		{"adder", UserCoreVersion, "adder_v1_00_a"},
		{"lmb", LMBBRAMCtrlCore, "lmb_v3_10_c"},
	}
	for _, tt := range tests {
		if got := PcoreDir(tt.core, tt.version); got != tt.want {
			t.Errorf("PcoreDir(%s, %s) = %s, want %s", tt.core, tt.version, got, tt.want)
		}
	}
}
