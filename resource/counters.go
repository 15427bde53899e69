package resource

import (
	"go.uber.org/multierr"

	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
)

// Counters hold the identifier state of one backend run.
// Not safe for concurrent use.
type Counters struct {
	observers []Observer
	counts    [numCategories]int
}

// New returns zeroed counters.
func New() *Counters {
	return &Counters{}
}

// Count returns the number of ids handed out in a category.
func (c *Counters) Count(cat Category) int {
	return c.counts[cat]
}

// AllocateStreams assigns the streams of a CPU connection to a port of the
// given direction. A category past StreamLimit is skipped and reported in
// the returned error; the other category is still assigned.
func (c *Counters) AllocateStreams(owner string, dir board.Direction) (Streams, error) {
	var (
		s   Streams
		err error
	)
	if dir.IsMaster() {
		c.take(PortIn, owner)
		if id, ok := c.stream(StreamMaster, owner); ok {
			s.Master, s.HasMaster = id, true
		} else {
			err = multierr.Append(err, exhausted(errors.Master, owner))
		}
	}
	if dir.IsSlave() {
		c.take(PortOut, owner)
		if id, ok := c.stream(StreamSlave, owner); ok {
			s.Slave, s.HasSlave = id, true
		} else {
			err = multierr.Append(err, exhausted(errors.Slave, owner))
		}
	}
	return s, err
}

// AllocateGPIO assigns the ids of a GPIO device. Dual devices get one of
// each; backends that cannot drive them reject them before allocating.
func (c *Counters) AllocateGPIO(owner string, dir board.Direction) GPIO {
	var g GPIO
	if dir.IsMaster() {
		g.In, g.HasIn = c.take(GPI, owner), true
	}
	if dir.IsSlave() {
		g.Out, g.HasOut = c.take(GPO, owner), true
	}
	return g
}

// Subscribe adds an observer for allocation events.
func (c *Counters) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Counters) stream(cat Category, owner string) (ID, bool) {
	if c.counts[cat] >= StreamLimit {
		return 0, false
	}
	return c.take(cat, owner), true
}

func (c *Counters) take(cat Category, owner string) ID {
	id := ID(c.counts[cat])
	c.counts[cat]++
	c.notify(Event{Owner: owner, ID: id, Category: cat})
	return id
}

func (c *Counters) notify(e Event) {
	for _, o := range c.observers {
		o.OnAllocate(e)
	}
}

func exhausted(role errors.StreamRole, owner string) error {
	err := errors.StreamsExhausted(role, StreamLimit)
	err.Path = []string{owner}
	return err
}
