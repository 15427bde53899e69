package client

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/ir"
)

func sampleBoard() *board.Board {
	return &board.Board{
		Medium: &board.Ethernet{Options: []board.MediumOption{
			&board.MAC{Addr: "aa:bb:cc:dd:ee:ff"},
			&board.IP{Addr: "10.0.0.2"},
			&board.PortID{Port: 9000},
		}},
		Options:   []board.Option{&board.Debug{}, &board.SWQueue{Size: 256}},
		Scheduler: board.Scheduler{Code: &board.DefaultCode{}},
		GPIOs: []board.GPIO{
			{Name: "buttons", Direction: board.In, Callback: &board.DefaultCode{}},
			{Name: "leds", Direction: board.Out, Callback: &board.DefaultCode{}},
			{Name: "combo", Direction: board.Dual, Callback: &board.DefaultCode{}},
		},
		Cores: []board.Core{{
			Name: "adder",
			Ports: []board.Port{
				{Name: "a", Direction: board.In},
				{Name: "b", Direction: board.Dual},
				{Name: "sum", Direction: board.Out},
			},
		}},
		Instances: []board.Instance{
			{
				Name: "adder0",
				Core: "adder",
				Bindings: []board.Binding{
					&board.CPUAxis{Port: "a"},
					&board.CPUAxis{Port: "b"},
					&board.CPUAxis{Port: "sum"},
				},
			},
			{
				Name: "hidden",
				Core: "adder",
				Bindings: []board.Binding{
					&board.CoreLink{Port: "a", Peer: "adder0", PeerPort: "sum"},
				},
			},
		},
	}
}

func run(t *testing.T, b *board.Board) *backend.Result {
	t.Helper()
	res, err := backend.Run(New(Options{Dir: "out/client"}), b)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return res
}

func TestClient_Constants(t *testing.T) {
	res := run(t, sampleBoard())
	consts, ok := res.Module("constants")
	if !ok {
		t.Fatal("constants module missing")
	}
	if consts.Dir != "out/client/src" {
		t.Errorf("Dir = %s", consts.Dir)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"DEBUG", "1"},
		{"QUEUE_SIZE_HW", "64"},
		{"QUEUE_SIZE_SW", "256"},
		{"IN_PORT_COUNT", "2"},
		{"OUT_PORT_COUNT", "2"},
		{"GPI_COUNT", "2"},
		{"GPO_COUNT", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := consts.Definition(tt.name)
			if !ok {
				t.Fatalf("%s not defined", tt.name)
			}
			if d.Value != tt.value {
				t.Errorf("%s = %s, want %s", tt.name, d.Value, tt.value)
			}
			if len(d.Doc.Lines) == 0 {
				t.Errorf("%s has no documentation", tt.name)
			}
		})
	}
}

func TestClient_Components(t *testing.T) {
	res := run(t, sampleBoard())
	comps, _ := res.Module("components")
	if comps.Dir != "out/client/src/api" {
		t.Errorf("Dir = %s", comps.Dir)
	}

	medium, ok := comps.Attribute("intrfc")
	if !ok {
		t.Fatal("medium attribute missing")
	}
	if f, ok := medium.Init.(ir.Fragment); !ok || f.Expr != `new ethernet("10.0.0.2", 9000)` {
		t.Errorf("medium init = %#v", medium.Init)
	}

	gpioArgs := map[string]string{
		"gpio_buttons": "0",
		"gpio_leds":    "0",
		"gpio_combo":   "1,1",
	}
	for name, want := range gpioArgs {
		a, ok := comps.Attribute(name)
		if !ok {
			t.Errorf("%s missing", name)
			continue
		}
		if got := strings.Join(a.Init.(ir.InitList).Args, ","); got != want {
			t.Errorf("%s args = %s, want %s", name, got, want)
		}
	}

	class, ok := comps.Class("adder0")
	if !ok {
		t.Fatal("class adder0 missing")
	}
	var params []string
	for _, p := range class.Constructor.Params {
		params = append(params, p.Name)
	}
	if got := strings.Join(params, ","); got != "a,b_in,b_out,sum" {
		t.Errorf("constructor params = %s", got)
	}
	if len(class.Constructor.Doc.Tags) != 4 {
		t.Errorf("expected 4 documented params, got %d", len(class.Constructor.Doc.Tags))
	}
	if len(class.Attributes) != 3 {
		t.Errorf("expected 3 port attributes, got %d", len(class.Attributes))
	}
	if got := class.Constructor.Inits[1].Args[0]; got != "new dual(b_in, b_out)" {
		t.Errorf("dual member init = %s", got)
	}
	if got := strings.Join(class.Destructor.Body.Lines, " "); got != "delete a; delete b; delete sum;" {
		t.Errorf("destructor = %s", got)
	}

	inst, ok := comps.Attribute("adder0")
	if !ok {
		t.Fatal("instance attribute missing")
	}
	// a: master 0, b: master 1 + slave 0, sum: slave 1
	if got := strings.Join(inst.Init.(ir.InitList).Args, ","); got != "0,1,0,1" {
		t.Errorf("instance args = %s", got)
	}

	if _, ok := comps.Class("hidden"); ok {
		t.Error("instance without CPU connection must not produce a class")
	}
	if _, ok := comps.Attribute("hidden"); ok {
		t.Error("instance without CPU connection must not produce an attribute")
	}
}

func TestClient_StreamExhaustionKeepsFirstSixteen(t *testing.T) {
	b := sampleBoard()
	b.Instances = nil
	for i := 0; i < 17; i++ {
		b.Instances = append(b.Instances, board.Instance{
			Name:     fmt.Sprintf("w%d", i),
			Core:     "adder",
			Bindings: []board.Binding{&board.CPUAxis{Port: "a"}},
		})
	}

	if _, err := backend.Run(New(Options{}), b); err == nil {
		t.Fatal("expected the run to fail")
	}

	ctx := backend.NewContext(Name, b)
	v := New(Options{}).NewVisitor().(*visitor)
	if err := backend.Walk(ctx, v); err != nil {
		t.Fatalf("exhaustion must not abort the walk: %v", err)
	}
	if ctx.Errors.Len() != 1 {
		t.Fatalf("expected 1 collected error, got %d", ctx.Errors.Len())
	}
	for i := 0; i < 16; i++ {
		inst, ok := v.comps.Attribute(fmt.Sprintf("w%d", i))
		if !ok {
			t.Fatalf("w%d missing", i)
		}
		if got := inst.Init.(ir.InitList).Args; len(got) != 1 || got[0] != fmt.Sprint(i) {
			t.Errorf("w%d args = %v", i, got)
		}
	}
	if d, _ := v.consts.Definition("IN_PORT_COUNT"); d.Value != "16" {
		t.Errorf("IN_PORT_COUNT = %s", d.Value)
	}
}

func TestClient_Deterministic(t *testing.T) {
	a := run(t, sampleBoard())
	b := run(t, sampleBoard())
	for i := range a.Modules {
		if a.Modules[i].Outline() != b.Modules[i].Outline() {
			t.Errorf("module %s differs between runs", a.Modules[i].Name)
		}
	}
}
