package board

// Defaults used when neither the board nor the port sets a value.
const (
	DefaultHWQueueSize = 64
	DefaultSWQueueSize = 1024
	DefaultBitWidth    = 32
)

// Debug reports whether the board enables debug output.
func (b *Board) Debug() bool {
	for _, o := range b.Options {
		if _, ok := o.(*Debug); ok {
			return true
		}
	}
	return false
}

// HWQueueSize returns the board-wide hardware queue depth.
func (b *Board) HWQueueSize() int {
	for _, o := range b.Options {
		if q, ok := o.(*HWQueue); ok {
			return q.Size
		}
	}
	return DefaultHWQueueSize
}

// SWQueueSize returns the board-wide software queue capacity.
func (b *Board) SWQueueSize() int {
	for _, o := range b.Options {
		if q, ok := o.(*SWQueue); ok {
			return q.Size
		}
	}
	return DefaultSWQueueSize
}

// PortSettings are the effective options of one CPU-connected port.
type PortSettings struct {
	HWQueue   int
	SWQueue   int
	BitWidth  int
	PollCount int
	Polling   bool
}

// Settings resolves the options of a CPU binding against the board defaults.
// Later options override earlier ones.
func (b *Board) Settings(axis *CPUAxis) PortSettings {
	s := PortSettings{
		HWQueue:  b.HWQueueSize(),
		SWQueue:  b.SWQueueSize(),
		BitWidth: DefaultBitWidth,
	}
	for _, o := range axis.Options {
		switch o := o.(type) {
		case *HWQueue:
			s.HWQueue = o.Size
		case *SWQueue:
			s.SWQueue = o.Size
		case *BitWidth:
			s.BitWidth = o.Bits
		case *Poll:
			s.Polling = true
			s.PollCount = o.Count
		case *Debug:
			// board-wide only
		}
	}
	return s
}

// Words returns the number of 32-bit words one value of the port occupies.
func (s PortSettings) Words() int {
	if s.BitWidth <= 32 {
		return 1
	}
	return (s.BitWidth + 31) / 32
}

// SWQueue32 returns the software queue capacity in 32-bit words.
func (s PortSettings) SWQueue32() int {
	return s.SWQueue * s.Words()
}

// PollCount32 returns the initial polling credit in 32-bit words.
func (s PortSettings) PollCount32() int {
	return s.PollCount * s.Words()
}

// MaxSWQueueSize returns the largest software queue capacity, in 32-bit
// words, over all CPU bindings and the board default.
func (b *Board) MaxSWQueueSize() int {
	largest := b.SWQueueSize()
	for i := range b.Instances {
		for _, bind := range b.Instances[i].Bindings {
			axis, ok := bind.(*CPUAxis)
			if !ok {
				continue
			}
			if n := b.Settings(axis).SWQueue32(); n > largest {
				largest = n
			}
		}
	}
	return largest
}

// MediumOptions returns the options of an Ethernet medium, or nil.
func MediumOptions(m Medium) []MediumOption {
	switch m := m.(type) {
	case *Ethernet:
		return m.Options
	case *EthernetLite:
		return m.Options
	}
	return nil
}
