package ir

// Module is one generated compilation unit. Dir is the target directory
// hint handed to the renderer.
type Module struct {
	Doc         Documentation `json:"doc"`
	Name        string        `json:"name"`
	Dir         string        `json:"dir"`
	Definitions []Definition  `json:"definitions,omitempty"`
	Structs     []Struct      `json:"structs,omitempty"`
	Enums       []Enum        `json:"enums,omitempty"`
	Attributes  []Attribute   `json:"attributes,omitempty"`
	Procedures  []Procedure   `json:"procedures,omitempty"`
	Classes     []Class       `json:"classes,omitempty"`
}

// NewModule returns an empty module.
func NewModule(name, dir string, doc Documentation) Module {
	return Module{Name: name, Dir: dir, Doc: doc}
}

// AddDefinition returns m with another definition.
func (m Module) AddDefinition(d Definition) Module {
	m.Definitions = add(m.Definitions, d)
	return m
}

// AddStruct returns m with another struct.
func (m Module) AddStruct(s Struct) Module {
	m.Structs = add(m.Structs, s)
	return m
}

// AddEnum returns m with another enum.
func (m Module) AddEnum(e Enum) Module {
	m.Enums = add(m.Enums, e)
	return m
}

// AddAttribute returns m with another attribute.
func (m Module) AddAttribute(a Attribute) Module {
	m.Attributes = add(m.Attributes, a)
	return m
}

// AddProcedure returns m with another procedure.
func (m Module) AddProcedure(p Procedure) Module {
	m.Procedures = add(m.Procedures, p)
	return m
}

// AddClass returns m with another class.
func (m Module) AddClass(c Class) Module {
	m.Classes = add(m.Classes, c)
	return m
}

// WithProcedure replaces the first procedure named p.Name, or appends p.
func (m Module) WithProcedure(p Procedure) Module {
	for i := range m.Procedures {
		if m.Procedures[i].Name == p.Name {
			procs := make([]Procedure, len(m.Procedures))
			copy(procs, m.Procedures)
			procs[i] = p
			m.Procedures = procs
			return m
		}
	}
	return m.AddProcedure(p)
}

// Definition returns the first definition named name.
func (m Module) Definition(name string) (Definition, bool) {
	for _, d := range m.Definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Attribute returns the first module-level attribute named name.
func (m Module) Attribute(name string) (Attribute, bool) {
	for _, a := range m.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Procedure returns the first procedure named name.
func (m Module) Procedure(name string) (Procedure, bool) {
	for _, p := range m.Procedures {
		if p.Name == name {
			return p, true
		}
	}
	return Procedure{}, false
}

// Class returns the first class named name.
func (m Module) Class(name string) (Class, bool) {
	for _, c := range m.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// Includes returns every include required by the module, in first use order.
func (m Module) Includes() []Include {
	var out []Include
	for _, d := range m.Definitions {
		out = mergeIncludes(out, d.Needs)
	}
	attrs := func(as []Attribute) {
		for _, a := range as {
			if a.Init != nil {
				out = mergeIncludes(out, a.Init.Requires())
			}
		}
	}
	attrs(m.Attributes)
	for _, s := range m.Structs {
		attrs(s.Fields)
	}
	for _, p := range m.Procedures {
		out = mergeIncludes(out, p.Body.Includes)
	}
	for _, c := range m.Classes {
		attrs(c.Attributes)
		out = mergeIncludes(out, c.Constructor.Body.Includes)
		out = mergeIncludes(out, c.Destructor.Body.Includes)
		for _, p := range c.Methods {
			out = mergeIncludes(out, p.Body.Includes)
		}
	}
	return out
}
