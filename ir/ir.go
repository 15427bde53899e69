package ir

import "slices"

// TagKind is the kind of a structured documentation tag.
type TagKind uint8

const (
	TagParam TagKind = iota
	TagSee
	TagAuthor
	TagSince
	TagReturn
)

var tagNames = [...]string{"param", "see", "author", "since", "return"}

func (k TagKind) String() string {
	if int(k) < len(tagNames) {
		return tagNames[k]
	}
	return "unknown"
}

// Tag is one structured documentation entry. Name is only set for params.
type Tag struct {
	Name string  `json:"name,omitempty"`
	Text string  `json:"text"`
	Kind TagKind `json:"kind"`
}

func Param(name, text string) Tag { return Tag{Kind: TagParam, Name: name, Text: text} }
func See(text string) Tag         { return Tag{Kind: TagSee, Text: text} }
func Author(text string) Tag      { return Tag{Kind: TagAuthor, Text: text} }
func Since(text string) Tag       { return Tag{Kind: TagSince, Text: text} }
func Returns(text string) Tag     { return Tag{Kind: TagReturn, Text: text} }

// Documentation attached to every entity.
type Documentation struct {
	Lines []string `json:"lines,omitempty"`
	Tags  []Tag    `json:"tags,omitempty"`
}

// Doc returns documentation made of lines.
func Doc(lines ...string) Documentation {
	return Documentation{Lines: slices.Clone(lines)}
}

// WithTags returns d with additional tags.
func (d Documentation) WithTags(tags ...Tag) Documentation {
	d.Tags = add(d.Tags, tags...)
	return d
}

// Modifier is a storage or visibility qualifier.
type Modifier string

const (
	Public    Modifier = "public"
	Private   Modifier = "private"
	Protected Modifier = "protected"
	Static    Modifier = "static"
	Const     Modifier = "const"
	Volatile  Modifier = "volatile"
)

// Type names a target type. Pointer marks one level of indirection.
type Type struct {
	Name    string `json:"name"`
	Pointer bool   `json:"pointer,omitempty"`
}

// Void is the empty return type.
var Void = Type{Name: "void"}

func Named(name string) Type     { return Type{Name: name} }
func PointerTo(name string) Type { return Type{Name: name, Pointer: true} }

// Parameter of a procedure or constructor.
type Parameter struct {
	Type      Type   `json:"type"`
	Name      string `json:"name"`
	Reference bool   `json:"reference,omitempty"`
}

// Definition is a named compile-time constant or macro.
type Definition struct {
	Doc   Documentation `json:"doc"`
	Name  string        `json:"name"`
	Value string        `json:"value"`
	Needs []Include     `json:"needs,omitempty"`
}

// Attribute is a variable, field or member. Init may be nil.
type Attribute struct {
	Init      Initializer   `json:"init,omitempty"`
	Doc       Documentation `json:"doc"`
	Type      Type          `json:"type"`
	Name      string        `json:"name"`
	Modifiers []Modifier    `json:"modifiers,omitempty"`
}

// Struct is a plain record type.
type Struct struct {
	Doc    Documentation `json:"doc"`
	Name   string        `json:"name"`
	Fields []Attribute   `json:"fields,omitempty"`
}

// Enum is a named list of values.
type Enum struct {
	Doc    Documentation `json:"doc"`
	Name   string        `json:"name"`
	Values []string      `json:"values,omitempty"`
}

// Procedure is a free function or a method.
type Procedure struct {
	Doc       Documentation `json:"doc"`
	Returns   Type          `json:"returns"`
	Name      string        `json:"name"`
	Params    []Parameter   `json:"params,omitempty"`
	Modifiers []Modifier    `json:"modifiers,omitempty"`
	Body      Code          `json:"body"`
}

// NewProcedure returns an empty procedure.
func NewProcedure(returns Type, name string, doc Documentation) Procedure {
	return Procedure{Returns: returns, Name: name, Doc: doc}
}

// AddParam returns p with another parameter.
func (p Procedure) AddParam(param Parameter) Procedure {
	p.Params = add(p.Params, param)
	return p
}

// AddCode returns p with code appended to its body.
func (p Procedure) AddCode(c Code) Procedure {
	p.Body = p.Body.Append(c)
	return p
}

// AddLines returns p with lines appended to its body.
func (p Procedure) AddLines(lines ...string) Procedure {
	return p.AddCode(NewCode(lines...))
}

// MemberInit initializes one member in a constructor.
type MemberInit struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// Constructor of a class.
type Constructor struct {
	Doc    Documentation `json:"doc"`
	Params []Parameter   `json:"params,omitempty"`
	Inits  []MemberInit  `json:"inits,omitempty"`
	Body   Code          `json:"body"`
}

// AddParam returns c with a parameter documented by text.
func (c Constructor) AddParam(param Parameter, text string) Constructor {
	c.Params = add(c.Params, param)
	c.Doc = c.Doc.WithTags(Param(param.Name, text))
	return c
}

// AddInit returns c with another member initialization.
func (c Constructor) AddInit(name string, args ...string) Constructor {
	c.Inits = add(c.Inits, MemberInit{Name: name, Args: slices.Clone(args)})
	return c
}

// AddCode returns c with code appended to its body.
func (c Constructor) AddCode(code Code) Constructor {
	c.Body = c.Body.Append(code)
	return c
}

// Destructor of a class.
type Destructor struct {
	Doc  Documentation `json:"doc"`
	Body Code          `json:"body"`
}

// AddCode returns d with code appended to its body.
func (d Destructor) AddCode(code Code) Destructor {
	d.Body = d.Body.Append(code)
	return d
}

// Extends is one base class.
type Extends struct {
	Name     string   `json:"name"`
	Modifier Modifier `json:"modifier,omitempty"`
}

// Class has exactly one constructor and one destructor.
type Class struct {
	Doc         Documentation `json:"doc"`
	Name        string        `json:"name"`
	Extends     []Extends     `json:"extends,omitempty"`
	Attributes  []Attribute   `json:"attributes,omitempty"`
	Methods     []Procedure   `json:"methods,omitempty"`
	Constructor Constructor   `json:"constructor"`
	Destructor  Destructor    `json:"destructor"`
}

// NewClass returns a class with an empty constructor and destructor.
func NewClass(name string, doc Documentation, extends ...Extends) Class {
	return Class{Name: name, Doc: doc, Extends: slices.Clone(extends)}
}

// AddAttribute returns c with another attribute.
func (c Class) AddAttribute(a Attribute) Class {
	c.Attributes = add(c.Attributes, a)
	return c
}

// AddMethod returns c with another method.
func (c Class) AddMethod(p Procedure) Class {
	c.Methods = add(c.Methods, p)
	return c
}

// WithConstructor returns c with its constructor replaced.
func (c Class) WithConstructor(ctor Constructor) Class {
	c.Constructor = ctor
	return c
}

// WithDestructor returns c with its destructor replaced.
func (c Class) WithDestructor(dtor Destructor) Class {
	c.Destructor = dtor
	return c
}
