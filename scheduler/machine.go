package scheduler

import (
	"context"

	"go.uber.org/zap"
)

// Hardware is the stream interface between processor and fabric.
type Hardware interface {
	// Write offers v to a host-write stream. It reports false when the
	// hardware queue is full.
	Write(stream int, v uint32) bool
	// Read takes a value from a host-read stream. It reports false when the
	// hardware queue is empty.
	Read(stream int) (uint32, bool)
}

// Inbox is what a medium delivers received messages to.
type Inbox interface {
	Deliver(stream int, v uint32) bool
	Credit(stream, n int)
}

// Medium is the transport to the host.
type Medium interface {
	// Receive drains pending host messages into in.
	Receive(in Inbox)
	// Flush sends values read from a host-read stream. It is called once per
	// stream on every step, with no values when the stream had nothing.
	Flush(stream int, values []uint32)
	// Poll tells the host a host-write stream has room again.
	Poll(stream int)
}

// OutConfig configures one host-read stream.
type OutConfig struct {
	Capacity  int // words per flush
	PollCount int // initial credit
	Polling   bool
}

// Config sizes the software side of the loop.
type Config struct {
	In  []int // software queue capacity per host-write stream
	Out []OutConfig
}

// Stats summarize one loop iteration.
type Stats struct {
	Written int
	Read    int
	Polls   int
}

// Machine runs the default scheduling loop.
type Machine struct {
	hw        Hardware
	medium    Medium
	log       *zap.Logger
	in        []*Queue
	out       []OutConfig
	pollCount []int
	buf       []uint32
}

// NewMachine returns a machine for cfg.
func NewMachine(cfg Config, hw Hardware, medium Medium) *Machine {
	m := &Machine{
		hw:        hw,
		medium:    medium,
		log:       Logger(),
		in:        make([]*Queue, len(cfg.In)),
		out:       append([]OutConfig(nil), cfg.Out...),
		pollCount: make([]int, len(cfg.Out)),
	}
	largest := 0
	for i, c := range cfg.In {
		m.in[i] = NewQueue(c)
	}
	for i, o := range cfg.Out {
		m.pollCount[i] = o.PollCount
		largest = max(largest, o.Capacity)
	}
	m.buf = make([]uint32, 0, largest)
	return m
}

// In returns the software queue of a host-write stream.
func (m *Machine) In(stream int) *Queue { return m.in[stream] }

// PollCount returns the outstanding read credit of a host-read stream.
func (m *Machine) PollCount(stream int) int { return m.pollCount[stream] }

// Deliver implements Inbox.
func (m *Machine) Deliver(stream int, v uint32) bool {
	if stream < 0 || stream >= len(m.in) {
		m.log.Debug("message for unknown stream dropped", zap.Int("stream", stream))
		return false
	}
	return m.in[stream].Push(v)
}

// Credit implements Inbox.
func (m *Machine) Credit(stream, n int) {
	if stream < 0 || stream >= len(m.pollCount) {
		m.log.Debug("poll for unknown stream dropped", zap.Int("stream", stream))
		return
	}
	m.pollCount[stream] += n
}

// Step runs one loop iteration.
func (m *Machine) Step() Stats {
	var st Stats
	m.medium.Receive(m)

	for pid, q := range m.in {
		for n := q.Cap(); n > 0; n-- {
			v, ok := q.Peek()
			if !ok {
				break
			}
			if !m.hw.Write(pid, v) {
				break
			}
			q.Take()
			st.Written++
			if q.Len() == q.Cap()-1 {
				m.medium.Poll(pid)
				st.Polls++
			}
		}
	}

	for pid, o := range m.out {
		for i := 0; i < o.Capacity && (!o.Polling || m.pollCount[pid] > 0); i++ {
			v, ok := m.hw.Read(pid)
			if !ok {
				break
			}
			m.buf = append(m.buf, v)
			st.Read++
			if o.Polling {
				m.pollCount[pid]--
			}
		}
		m.medium.Flush(pid, m.buf)
		m.buf = m.buf[:0]
	}
	return st
}

// Run loops until ctx is done and returns its error.
func (m *Machine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		m.Step()
	}
}
