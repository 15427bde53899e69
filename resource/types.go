package resource

// ID is an allocated identifier. Generated code stores it in an
// unsigned char.
type ID uint8

// StreamLimit is the number of streams available per category.
const StreamLimit = 16

// Category of an identifier counter.
type Category uint8

const (
	PortIn Category = iota
	PortOut
	GPI
	GPO
	StreamMaster
	StreamSlave

	numCategories
)

var categoryNames = [numCategories]string{
	PortIn:       "port-in",
	PortOut:      "port-out",
	GPI:          "gpi",
	GPO:          "gpo",
	StreamMaster: "stream-master",
	StreamSlave:  "stream-slave",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// Event reports one allocation.
type Event struct {
	Owner    string
	ID       ID
	Category Category
}

// Observer receives allocation events.
type Observer interface {
	OnAllocate(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnAllocate(e Event) { f(e) }

// Streams are the stream ids assigned to one CPU connection.
type Streams struct {
	Master    ID
	Slave     ID
	HasMaster bool
	HasSlave  bool
}

// GPIO are the ids assigned to one GPIO device.
type GPIO struct {
	In     ID
	Out    ID
	HasIn  bool
	HasOut bool
}
