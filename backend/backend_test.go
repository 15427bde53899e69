package backend

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/resource"
)

type recorder struct {
	Nop
	events []string
	abort  string
}

func (r *recorder) record(s string) error {
	r.events = append(r.events, s)
	if s == r.abort {
		return fmt.Errorf("abort at %s", s)
	}
	return nil
}

func (r *recorder) UART(*Context, *board.UART) error { return r.record("medium:uart") }
func (r *recorder) GPI(_ *Context, g *board.GPIO, id resource.ID) error {
	return r.record(fmt.Sprintf("gpi:%s=%d", g.Name, id))
}
func (r *recorder) GPO(_ *Context, g *board.GPIO, id resource.ID) error {
	return r.record(fmt.Sprintf("gpo:%s=%d", g.Name, id))
}
func (r *recorder) DefaultScheduler(*Context, *board.Scheduler) error {
	return r.record("scheduler:default")
}
func (r *recorder) Core(_ *Context, c *board.Core) error { return r.record("core:" + c.Name) }
func (r *recorder) EnterInstance(_ *Context, in Instance) error {
	return r.record(fmt.Sprintf("enter:%s host=%v", in.Name, in.Host))
}
func (r *recorder) CPUAxis(_ *Context, a Axis) error {
	s := fmt.Sprintf("axis:%s.%s", a.Instance.Name, a.Port.Name)
	if a.Streams.HasMaster {
		s += fmt.Sprintf(" m%d", a.Streams.Master)
	}
	if a.Streams.HasSlave {
		s += fmt.Sprintf(" s%d", a.Streams.Slave)
	}
	return r.record(s)
}
func (r *recorder) CoreLink(_ *Context, l Link) error {
	return r.record(fmt.Sprintf("link:%s.%s->%s.%s", l.Instance.Name, l.Port.Name, l.Peer.Name, l.PeerPort.Name))
}
func (r *recorder) LeaveInstance(_ *Context, in Instance) error { return r.record("leave:" + in.Name) }
func (r *recorder) Finish(ctx *Context) error {
	return r.record(fmt.Sprintf("finish m=%d s=%d",
		ctx.Counters.Count(resource.StreamMaster), ctx.Counters.Count(resource.StreamSlave)))
}

type recorderBackend struct{ r *recorder }

func (b recorderBackend) Name() string        { return "recorder" }
func (b recorderBackend) NewVisitor() Visitor { return b.r }

func testBoard() *board.Board {
	pos := board.Pos{File: "t.toml", Line: 1}
	return &board.Board{
		Medium:    &board.UART{Pos: pos},
		Scheduler: board.Scheduler{Code: &board.DefaultCode{}},
		GPIOs: []board.GPIO{
			{Name: "buttons", Direction: board.In, Callback: &board.DefaultCode{}},
			{Name: "leds", Direction: board.Out, Callback: &board.DefaultCode{}},
			{Name: "switches", Direction: board.In, Callback: &board.DefaultCode{}},
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
					&board.CoreLink{Port: "sum", Peer: "adder1", PeerPort: "a"},
				},
			},
			{
				Name: "adder1",
				Core: "adder",
				Bindings: []board.Binding{
					&board.CPUAxis{Port: "sum"},
				},
			},
			{
				Name: "adder2",
				Core: "adder",
				Bindings: []board.Binding{
					&board.CoreLink{Port: "sum", Peer: "adder0", PeerPort: "a"},
				},
			},
		},
		Pos: pos,
	}
}

func TestWalk_Order(t *testing.T) {
	r := &recorder{}
	ctx := NewContext("recorder", testBoard())
	if err := Walk(ctx, r); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if err := ctx.Errors.Err(); err != nil {
		t.Fatalf("unexpected errors: %v", err)
	}

	want := []string{
		"medium:uart",
		"gpi:buttons=0",
		"gpo:leds=0",
		"gpi:switches=1",
		"scheduler:default",
		"core:adder",
		"enter:adder0 host=true",
		"axis:adder0.a m0",
		"axis:adder0.b m1 s0",
		"link:adder0.sum->adder1.a",
		"leave:adder0",
		"enter:adder1 host=true",
		"axis:adder1.sum s1",
		"leave:adder1",
		"enter:adder2 host=false",
		"link:adder2.sum->adder0.a",
		"leave:adder2",
		"finish m=2 s=2",
	}
	if got := strings.Join(r.events, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("events:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestWalk_Deterministic(t *testing.T) {
	var runs []string
	for n := 0; n < 3; n++ {
		r := &recorder{}
		if err := Walk(NewContext("recorder", testBoard()), r); err != nil {
			t.Fatal(err)
		}
		runs = append(runs, strings.Join(r.events, ";"))
	}
	if runs[0] != runs[1] || runs[1] != runs[2] {
		t.Error("identical boards produced different traversals")
	}
}

func TestWalk_StructuralErrorsAreCollected(t *testing.T) {
	b := testBoard()
	b.Instances[0].Bindings = append([]board.Binding{
		&board.CPUAxis{Port: "missing", Pos: board.Pos{File: "t.toml", Line: 42}},
	}, b.Instances[0].Bindings...)
	b.Instances = append(b.Instances, board.Instance{Name: "ghost", Core: "nope"})

	r := &recorder{}
	ctx := NewContext("recorder", b)
	if err := Walk(ctx, r); err != nil {
		t.Fatalf("structural errors must not abort: %v", err)
	}

	errs := ctx.Errors.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	var ge *errors.Error
	if !stderrors.As(errs[0], &ge) || ge.Kind != errors.KindStructural || ge.Line != 42 || ge.Backend != "recorder" {
		t.Errorf("first error = %v", errs[0])
	}
	// the remaining bindings were still walked
	if !strings.Contains(strings.Join(r.events, ";"), "axis:adder0.a m0") {
		t.Error("valid bindings after the bad one were skipped")
	}
}

func TestWalk_StreamExhaustionIsCollected(t *testing.T) {
	b := testBoard()
	b.Instances = nil
	for i := 0; i < resource.StreamLimit+1; i++ {
		b.Instances = append(b.Instances, board.Instance{
			Name:     fmt.Sprintf("i%d", i),
			Core:     "adder",
			Bindings: []board.Binding{&board.CPUAxis{Port: "a"}},
		})
	}

	r := &recorder{}
	ctx := NewContext("recorder", b)
	if err := Walk(ctx, r); err != nil {
		t.Fatalf("exhaustion must not abort: %v", err)
	}
	if ctx.Errors.Len() != 1 {
		t.Fatalf("expected 1 error, got %d", ctx.Errors.Len())
	}

	var axes int
	for _, e := range r.events {
		if strings.HasPrefix(e, "axis:") {
			axes++
		}
	}
	if axes != resource.StreamLimit {
		t.Errorf("visited %d axes, want %d", axes, resource.StreamLimit)
	}
	if last := r.events[len(r.events)-1]; last != "finish m=16 s=0" {
		t.Errorf("last event = %s", last)
	}
}

func TestRun_AbortAndFailure(t *testing.T) {
	r := &recorder{abort: "gpo:leds=0"}
	res, err := Run(recorderBackend{r}, testBoard())
	if err == nil || res != nil {
		t.Fatalf("expected abort, got %v, %v", res, err)
	}
	if !errors.IsFatal(err) {
		t.Errorf("aborted run should be fatal: %v", err)
	}
	if r.events[len(r.events)-1] != "gpo:leds=0" {
		t.Error("walk continued after abort")
	}

	b := testBoard()
	b.Instances[0].Core = "nope"
	res, err = Run(recorderBackend{&recorder{}}, b)
	if err == nil || res != nil {
		t.Fatalf("expected failed run, got %v, %v", res, err)
	}
	var re *errors.RunError
	if !stderrors.As(err, &re) {
		t.Errorf("expected RunError, got %T", err)
	}

	res, err = Run(recorderBackend{&recorder{}}, testBoard())
	if err != nil || res.Backend != "recorder" {
		t.Errorf("Run = %v, %v", res, err)
	}
}

func TestContext_Scopes(t *testing.T) {
	ctx := NewContext("x", testBoard())
	if _, err := ctx.Pop(); !errors.IsFatal(err) {
		t.Errorf("Pop on empty stack should be an invariant error, got %v", err)
	}

	outer := NewClassScope(ir.NewClass("outer", ir.Doc("outer")))
	inner := NewClassScope(ir.NewClass("inner", ir.Doc("inner")))
	ctx.Push(outer)
	ctx.Push(inner)

	cur, err := ctx.Current()
	if err != nil || cur != inner {
		t.Fatalf("Current = %v, %v", cur, err)
	}
	cur.Constructor = cur.Constructor.AddInit("x", "1")

	got, _ := ctx.Pop()
	if got.Build().Constructor.Inits[0].Name != "x" {
		t.Error("scope edits lost on Build")
	}
	if ctx.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", ctx.Depth())
	}
}

func TestManifest_Add(t *testing.T) {
	var m Manifest
	m = m.Add("tpl/gpio.h", "src/components/gpio.h")
	m = m.Add("tpl/gpio.c", "src/components/gpio.c")
	again := m.Add("tpl/gpio.h", "src/components/gpio.h")
	other := m.Add("alt/gpio.h", "src/components/gpio.h")

	if len(again) != 2 {
		t.Errorf("duplicate destination added: %v", again)
	}
	if other[0].Source != "alt/gpio.h" || m[0].Source != "tpl/gpio.h" {
		t.Errorf("replacement leaked into original: %v / %v", m, other)
	}
}
