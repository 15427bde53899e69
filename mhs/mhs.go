package mhs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind of an attribute line.
type Kind uint8

const (
	Parameter Kind = iota
	Port
	BusInterface
)

func (k Kind) String() string {
	switch k {
	case Parameter:
		return "PARAMETER"
	case Port:
		return "PORT"
	case BusInterface:
		return "BUS_INTERFACE"
	}
	return "UNKNOWN"
}

// Value is the right-hand side of an assignment.
// Implemented by Ident, Number, Range, MemAddr and Concat.
type Value interface {
	fmt.Stringer
	isValue()
}

// Ident is a bare identifier.
type Ident string

// Number is a decimal literal.
type Number int

// Range is a bit vector range [Hi:Lo].
type Range struct {
	Hi, Lo int
}

// MemAddr is a hexadecimal address literal, written as given.
type MemAddr string

// Concat joins values with '&', as used for interrupt lines.
type Concat []Value

func (v Ident) String() string   { return string(v) }
func (v Number) String() string  { return strconv.Itoa(int(v)) }
func (v Range) String() string   { return fmt.Sprintf("[%d:%d]", v.Hi, v.Lo) }
func (v MemAddr) String() string { return string(v) }

func (v Concat) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.String()
	}
	return strings.Join(parts, " & ")
}

func (Ident) isValue()   {}
func (Number) isValue()  {}
func (Range) isValue()   {}
func (MemAddr) isValue() {}
func (Concat) isValue()  {}

// Assignment binds a name to a value.
type Assignment struct {
	Value Value
	Name  string
}

// Attribute is one line of a block or file header.
type Attribute struct {
	Assignments []Assignment
	Kind        Kind
}

// Param returns a single-assignment PARAMETER line.
func Param(name string, v Value) Attribute {
	return Attribute{Kind: Parameter, Assignments: []Assignment{{Name: name, Value: v}}}
}

// PortOf returns a single-assignment PORT line.
func PortOf(name string, v Value) Attribute {
	return Attribute{Kind: Port, Assignments: []Assignment{{Name: name, Value: v}}}
}

// Bus returns a single-assignment BUS_INTERFACE line.
func Bus(name string, v Value) Attribute {
	return Attribute{Kind: BusInterface, Assignments: []Assignment{{Name: name, Value: v}}}
}

// With returns a with an additional assignment on the same line.
func (a Attribute) With(name string, v Value) Attribute {
	a.Assignments = append(slices.Clip(a.Assignments), Assignment{Name: name, Value: v})
	return a
}

// Block is a BEGIN/END section.
type Block struct {
	Name       string
	Attributes []Attribute
}

// NewBlock returns a block of the given type.
func NewBlock(name string, attrs ...Attribute) Block {
	return Block{Name: name, Attributes: slices.Clone(attrs)}
}

// Add returns b with more attributes.
func (b Block) Add(attrs ...Attribute) Block {
	b.Attributes = append(slices.Clip(b.Attributes), attrs...)
	return b
}

// Lookup returns the value of the first assignment to name in an attribute
// of kind k.
func (b Block) Lookup(k Kind, name string) (Value, bool) {
	for _, a := range b.Attributes {
		if a.Kind != k {
			continue
		}
		for _, as := range a.Assignments {
			if as.Name == name {
				return as.Value, true
			}
		}
	}
	return nil, false
}

// Instance returns the INSTANCE parameter, or "".
func (b Block) Instance() string {
	if v, ok := b.Lookup(Parameter, "INSTANCE"); ok {
		return v.String()
	}
	return ""
}

// File is a complete descriptor.
type File struct {
	Attributes []Attribute
	Blocks     []Block
}

// AddAttribute returns f with another header line.
func (f File) AddAttribute(a Attribute) File {
	f.Attributes = append(slices.Clip(f.Attributes), a)
	return f
}

// AddBlock returns f with more blocks.
func (f File) AddBlock(blocks ...Block) File {
	f.Blocks = append(slices.Clip(f.Blocks), blocks...)
	return f
}

// Find returns the first block with the given INSTANCE parameter.
func (f File) Find(instance string) (Block, int, bool) {
	for i, b := range f.Blocks {
		if b.Instance() == instance {
			return b, i, true
		}
	}
	return Block{}, -1, false
}

// Replace returns f with the block at index i replaced.
func (f File) Replace(i int, b Block) File {
	blocks := slices.Clone(f.Blocks)
	blocks[i] = b
	f.Blocks = blocks
	return f
}
