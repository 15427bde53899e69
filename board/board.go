package board

// Pos is a source position in the board description.
type Pos struct {
	File string
	Line int
}

// Direction of a core port or GPIO device.
type Direction uint8

const (
	In Direction = iota
	Out
	Dual
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case Dual:
		return "dual"
	}
	return "unknown"
}

// Board is the elaborated board description.
type Board struct {
	Medium    Medium
	Scheduler Scheduler
	Options   []Option
	Cores     []Core
	Instances []Instance
	GPIOs     []GPIO
	Pos       Pos
}

// Core is a custom hardware IP core definition.
type Core struct {
	Name  string
	Ports []Port
	Pos   Pos
}

// Port is an AXI-Stream port of a core.
type Port struct {
	Name      string
	Pos       Pos
	Direction Direction
}

// Instance is a named instantiation of a core.
type Instance struct {
	Name     string
	Core     string
	Bindings []Binding
	Pos      Pos
}

// GPIO declares a general-purpose IO device from the catalog.
type GPIO struct {
	Callback  Code
	Name      string
	Pos       Pos
	Direction Direction
}

// Scheduler selects the scheduling policy of the embedded server.
type Scheduler struct {
	Code Code
	Pos  Pos
}

// Core returns the core with the given name.
func (b *Board) Core(name string) (*Core, bool) {
	for i := range b.Cores {
		if b.Cores[i].Name == name {
			return &b.Cores[i], true
		}
	}
	return nil, false
}

// Instance returns the instance with the given name.
func (b *Board) Instance(name string) (*Instance, bool) {
	for i := range b.Instances {
		if b.Instances[i].Name == name {
			return &b.Instances[i], true
		}
	}
	return nil, false
}

// Port returns the port with the given name.
func (c *Core) Port(name string) (*Port, bool) {
	for i := range c.Ports {
		if c.Ports[i].Name == name {
			return &c.Ports[i], true
		}
	}
	return nil, false
}

// HasCPUConnection reports whether at least one binding exposes a port to
// host software.
func (i *Instance) HasCPUConnection() bool {
	for _, b := range i.Bindings {
		if _, ok := b.(*CPUAxis); ok {
			return true
		}
	}
	return false
}

// IsMaster reports whether a CPU-connected port of this direction gets a
// host-write stream.
func (d Direction) IsMaster() bool {
	return d == In || d == Dual
}

// IsSlave reports whether a CPU-connected port of this direction gets a
// host-read stream.
func (d Direction) IsSlave() bool {
	return d == Out || d == Dual
}
