package board

import (
	"os"

	"github.com/pelletier/go-toml"
	pkgerrors "github.com/pkg/errors"

	"github.com/wippyai/boardgen/errors"
)

// Load reads an elaborated board from a TOML file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindIO).
			At(path, 0).
			Cause(pkgerrors.WithStack(err)).
			Detail("read board").
			Build()
	}
	return Decode(path, data)
}

// Decode maps TOML data onto a Board. file is only used for positions.
// Every malformed entry is reported; the returned error aggregates them.
func Decode(file string, data []byte) (*Board, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			At(file, 0).
			Cause(err).
			Detail("malformed TOML").
			Build()
	}

	d := &decoder{file: file}
	b := d.board(tree)
	if err := d.errs.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

type decoder struct {
	file string
	errs errors.Collection
}

func (d *decoder) pos(t *toml.Tree, key string) Pos {
	p := t.GetPosition(key)
	if p.Invalid() {
		p = t.Position()
	}
	return Pos{File: d.file, Line: p.Line}
}

func (d *decoder) fail(p Pos, path []string, format string, args ...any) {
	d.errs.Add(errors.New(errors.PhaseLoad, errors.KindInvalidInput).
		At(p.File, p.Line).
		Path(path...).
		Detail(format, args...).
		Build())
}

func (d *decoder) str(t *toml.Tree, key string) (string, bool) {
	if !t.Has(key) {
		return "", false
	}
	s, ok := t.Get(key).(string)
	if !ok {
		d.fail(d.pos(t, key), []string{key}, "expected a string")
	}
	return s, ok
}

func (d *decoder) integer(t *toml.Tree, key string) (int, bool) {
	if !t.Has(key) {
		return 0, false
	}
	n, ok := t.Get(key).(int64)
	if !ok {
		d.fail(d.pos(t, key), []string{key}, "expected an integer")
		return 0, false
	}
	if n < 0 {
		d.fail(d.pos(t, key), []string{key}, "negative value %d", n)
		return 0, false
	}
	return int(n), true
}

func (d *decoder) boolean(t *toml.Tree, key string) bool {
	if !t.Has(key) {
		return false
	}
	v, ok := t.Get(key).(bool)
	if !ok {
		d.fail(d.pos(t, key), []string{key}, "expected a boolean")
	}
	return v
}

func (d *decoder) lines(t *toml.Tree, key string) ([]string, bool) {
	if !t.Has(key) {
		return nil, false
	}
	raw, ok := t.Get(key).([]interface{})
	if !ok {
		d.fail(d.pos(t, key), []string{key}, "expected an array of strings")
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			d.fail(d.pos(t, key), []string{key}, "expected an array of strings")
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func (d *decoder) tables(t *toml.Tree, key string) []*toml.Tree {
	if !t.Has(key) {
		return nil
	}
	switch v := t.Get(key).(type) {
	case []*toml.Tree:
		return v
	case *toml.Tree:
		return []*toml.Tree{v}
	}
	d.fail(d.pos(t, key), []string{key}, "expected an array of tables")
	return nil
}

func (d *decoder) direction(t *toml.Tree, path []string) Direction {
	s, _ := d.str(t, "direction")
	switch s {
	case "in":
		return In
	case "out":
		return Out
	case "dual":
		return Dual
	}
	d.fail(d.pos(t, "direction"), path, "invalid direction %q", s)
	return In
}

func (d *decoder) board(t *toml.Tree) *Board {
	b := &Board{
		Medium:    &NoMedium{},
		Scheduler: Scheduler{Code: &DefaultCode{}},
		Pos:       Pos{File: d.file, Line: 1},
	}

	if d.boolean(t, "debug") {
		b.Options = append(b.Options, &Debug{})
	}
	if n, ok := d.integer(t, "hwqueue"); ok {
		b.Options = append(b.Options, &HWQueue{Size: n})
	}
	if n, ok := d.integer(t, "swqueue"); ok {
		b.Options = append(b.Options, &SWQueue{Size: n})
	}

	if mt := d.tables(t, "medium"); len(mt) == 1 {
		b.Medium = d.medium(mt[0])
	}
	if st := d.tables(t, "scheduler"); len(st) == 1 {
		b.Scheduler.Pos = d.pos(st[0], "code")
		if code, ok := d.lines(st[0], "code"); ok {
			b.Scheduler.Code = &UserCode{Lines: code}
		}
	}

	for _, gt := range d.tables(t, "gpio") {
		b.GPIOs = append(b.GPIOs, d.gpio(gt))
	}
	for _, ct := range d.tables(t, "core") {
		b.Cores = append(b.Cores, d.core(ct))
	}
	for _, it := range d.tables(t, "instance") {
		b.Instances = append(b.Instances, d.instance(it))
	}
	return b
}

func (d *decoder) medium(t *toml.Tree) Medium {
	kind, _ := d.str(t, "kind")
	p := d.pos(t, "kind")

	var opts []MediumOption
	if s, ok := d.str(t, "mac"); ok {
		opts = append(opts, &MAC{Addr: s})
	}
	if s, ok := d.str(t, "ip"); ok {
		opts = append(opts, &IP{Addr: s})
	}
	if s, ok := d.str(t, "mask"); ok {
		opts = append(opts, &Mask{Addr: s})
	}
	if s, ok := d.str(t, "gateway"); ok {
		opts = append(opts, &Gateway{Addr: s})
	}
	if n, ok := d.integer(t, "port"); ok {
		opts = append(opts, &PortID{Port: n})
	}

	switch kind {
	case "", "none":
		return &NoMedium{}
	case "uart":
		return &UART{Pos: p}
	case "ethernet":
		return &Ethernet{Options: opts, Pos: p}
	case "ethernet_lite":
		return &EthernetLite{Options: opts, Pos: p}
	case "pcie":
		return &PCIe{Pos: p}
	}
	d.fail(p, []string{"medium"}, "unknown medium %q", kind)
	return &NoMedium{}
}

func (d *decoder) gpio(t *toml.Tree) GPIO {
	name, _ := d.str(t, "name")
	g := GPIO{
		Name:     name,
		Pos:      d.pos(t, "name"),
		Callback: &DefaultCode{},
	}
	g.Direction = d.direction(t, []string{"gpio", name})
	if code, ok := d.lines(t, "callback"); ok {
		g.Callback = &UserCode{Lines: code}
	}
	return g
}

func (d *decoder) core(t *toml.Tree) Core {
	name, _ := d.str(t, "name")
	c := Core{Name: name, Pos: d.pos(t, "name")}
	for _, pt := range d.tables(t, "port") {
		pname, _ := d.str(pt, "name")
		c.Ports = append(c.Ports, Port{
			Name:      pname,
			Pos:       d.pos(pt, "name"),
			Direction: d.direction(pt, []string{name, pname}),
		})
	}
	return c
}

func (d *decoder) instance(t *toml.Tree) Instance {
	name, _ := d.str(t, "name")
	core, _ := d.str(t, "core")
	inst := Instance{Name: name, Core: core, Pos: d.pos(t, "name")}
	for _, bt := range d.tables(t, "bind") {
		if b := d.binding(name, bt); b != nil {
			inst.Bindings = append(inst.Bindings, b)
		}
	}
	return inst
}

func (d *decoder) binding(inst string, t *toml.Tree) Binding {
	port, _ := d.str(t, "port")
	p := d.pos(t, "port")
	cpu := d.boolean(t, "cpu")
	peer, hasPeer := d.str(t, "peer")

	switch {
	case cpu && hasPeer:
		d.fail(p, []string{inst, port}, "binding is both a CPU connection and a core link")
		return nil
	case cpu:
		axis := &CPUAxis{Port: port, Pos: p}
		if n, ok := d.integer(t, "hwqueue"); ok {
			axis.Options = append(axis.Options, &HWQueue{Size: n})
		}
		if n, ok := d.integer(t, "swqueue"); ok {
			axis.Options = append(axis.Options, &SWQueue{Size: n})
		}
		if n, ok := d.integer(t, "bitwidth"); ok {
			axis.Options = append(axis.Options, &BitWidth{Bits: n})
		}
		if n, ok := d.integer(t, "poll"); ok {
			axis.Options = append(axis.Options, &Poll{Count: n})
		}
		return axis
	case hasPeer:
		peerPort, _ := d.str(t, "peer_port")
		return &CoreLink{Port: port, Peer: peer, PeerPort: peerPort, Pos: p}
	}
	d.fail(p, []string{inst, port}, "binding needs either cpu = true or a peer")
	return nil
}
