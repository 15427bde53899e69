package ir

import (
	"fmt"
	"strings"
)

// Outline returns a deterministic structural listing of the module.
// It is not target syntax; the inspector and tests use it to compare
// modules.
func (m Module) Outline() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s (%s)\n", m.Name, m.Dir)
	for _, inc := range m.Includes() {
		fmt.Fprintf(&sb, "  include %s\n", inc)
	}
	for _, d := range m.Definitions {
		fmt.Fprintf(&sb, "  def %s = %s\n", d.Name, d.Value)
	}
	for _, s := range m.Structs {
		fmt.Fprintf(&sb, "  struct %s\n", s.Name)
		for _, f := range s.Fields {
			outlineAttr(&sb, "    ", f)
		}
	}
	for _, e := range m.Enums {
		fmt.Fprintf(&sb, "  enum %s {%s}\n", e.Name, strings.Join(e.Values, ", "))
	}
	for _, a := range m.Attributes {
		outlineAttr(&sb, "  ", a)
	}
	for _, p := range m.Procedures {
		outlineProc(&sb, "  ", p)
	}
	for _, c := range m.Classes {
		fmt.Fprintf(&sb, "  class %s", c.Name)
		for i, e := range c.Extends {
			sep := ", "
			if i == 0 {
				sep = " : "
			}
			fmt.Fprintf(&sb, "%s%s%s", sep, modPrefix(e.Modifier), e.Name)
		}
		sb.WriteByte('\n')
		for _, a := range c.Attributes {
			outlineAttr(&sb, "    ", a)
		}
		fmt.Fprintf(&sb, "    ctor(%s)\n", params(c.Constructor.Params))
		for _, in := range c.Constructor.Inits {
			fmt.Fprintf(&sb, "      init %s(%s)\n", in.Name, strings.Join(in.Args, ", "))
		}
		outlineBody(&sb, "      ", c.Constructor.Body)
		sb.WriteString("    dtor\n")
		outlineBody(&sb, "      ", c.Destructor.Body)
		for _, p := range c.Methods {
			outlineProc(&sb, "    ", p)
		}
	}
	return sb.String()
}

func (i Include) String() string {
	if i.Kind == BracketInclude {
		return "<" + i.Path + ">"
	}
	return `"` + i.Path + `"`
}

func (t Type) String() string {
	if t.Pointer {
		return t.Name + "*"
	}
	return t.Name
}

func modPrefix(m Modifier) string {
	if m == "" {
		return ""
	}
	return string(m) + " "
}

func params(ps []Parameter) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		ref := ""
		if p.Reference {
			ref = "&"
		}
		parts[i] = p.Type.String() + ref + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

func outlineAttr(sb *strings.Builder, indent string, a Attribute) {
	fmt.Fprintf(sb, "%sattr ", indent)
	for _, m := range a.Modifiers {
		sb.WriteString(modPrefix(m))
	}
	fmt.Fprintf(sb, "%s %s", a.Type, a.Name)
	switch init := a.Init.(type) {
	case Fragment:
		fmt.Fprintf(sb, " = %s", init.Expr)
	case InitList:
		fmt.Fprintf(sb, " (%s)", strings.Join(init.Args, ", "))
	}
	sb.WriteByte('\n')
}

func outlineProc(sb *strings.Builder, indent string, p Procedure) {
	fmt.Fprintf(sb, "%sproc ", indent)
	for _, m := range p.Modifiers {
		sb.WriteString(modPrefix(m))
	}
	fmt.Fprintf(sb, "%s %s(%s)\n", p.Returns, p.Name, params(p.Params))
	outlineBody(sb, indent+"  ", p.Body)
}

func outlineBody(sb *strings.Builder, indent string, c Code) {
	for _, d := range c.ForwardDecls {
		fmt.Fprintf(sb, "%sextern %s\n", indent, d)
	}
	for _, l := range c.Lines {
		fmt.Fprintf(sb, "%s| %s\n", indent, l)
	}
}
