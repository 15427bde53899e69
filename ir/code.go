package ir

import (
	"encoding/json"
	"slices"
)

// IncludeKind distinguishes quoted from bracketed includes.
type IncludeKind uint8

const (
	QuoteInclude IncludeKind = iota
	BracketInclude
)

// Include is a header required by a code fragment.
type Include struct {
	Path string      `json:"path"`
	Kind IncludeKind `json:"kind"`
}

// Quote returns a quoted include of path.
func Quote(path string) Include { return Include{Path: path, Kind: QuoteInclude} }

// Bracket returns a bracketed include of path.
func Bracket(path string) Include { return Include{Path: path, Kind: BracketInclude} }

// Code is an opaque body fragment: ordered lines plus what they need.
type Code struct {
	Lines        []string  `json:"lines,omitempty"`
	Includes     []Include `json:"includes,omitempty"`
	ForwardDecls []string  `json:"forward_decls,omitempty"`
}

// NewCode returns a fragment holding lines.
func NewCode(lines ...string) Code {
	return Code{Lines: slices.Clone(lines)}
}

// Needs returns c with additional includes.
func (c Code) Needs(incs ...Include) Code {
	c.Includes = mergeIncludes(c.Includes, incs)
	return c
}

// Declares returns c with additional forward declarations.
func (c Code) Declares(decls ...string) Code {
	c.ForwardDecls = mergeStrings(c.ForwardDecls, decls)
	return c
}

// Append returns the concatenation of c and other. Includes and forward
// declarations are merged keeping first occurrence order.
func (c Code) Append(other Code) Code {
	c.Lines = add(c.Lines, other.Lines...)
	c.Includes = mergeIncludes(c.Includes, other.Includes)
	c.ForwardDecls = mergeStrings(c.ForwardDecls, other.ForwardDecls)
	return c
}

// Empty reports whether c has no lines.
func (c Code) Empty() bool { return len(c.Lines) == 0 }

// Initializer is an opaque initial value of an attribute.
// Implemented by Fragment and InitList.
type Initializer interface {
	Requires() []Include
	isInitializer()
}

// Fragment is a pre-validated expression in target syntax.
type Fragment struct {
	Expr     string    `json:"expr"`
	Includes []Include `json:"includes,omitempty"`
}

// InitList is a constructor argument list.
type InitList struct {
	Args     []string  `json:"args"`
	Includes []Include `json:"includes,omitempty"`
}

// Expr returns a fragment for expr.
func Expr(expr string, incs ...Include) Fragment {
	return Fragment{Expr: expr, Includes: slices.Clone(incs)}
}

// Args returns an argument list initializer.
func Args(args []string, incs ...Include) InitList {
	return InitList{Args: slices.Clone(args), Includes: slices.Clone(incs)}
}

// Add returns l with another argument.
func (l InitList) Add(arg string) InitList {
	l.Args = add(l.Args, arg)
	return l
}

func (f Fragment) Requires() []Include { return f.Includes }
func (l InitList) Requires() []Include { return l.Includes }
func (Fragment) isInitializer()        {}
func (InitList) isInitializer()        {}

func (f Fragment) MarshalJSON() ([]byte, error) {
	type plain Fragment
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{"fragment", plain(f)})
}

func (l InitList) MarshalJSON() ([]byte, error) {
	type plain InitList
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{"init_list", plain(l)})
}

// add appends without sharing the backing array of s.
func add[T any](s []T, v ...T) []T {
	return append(slices.Clip(s), v...)
}

func mergeIncludes(dst, src []Include) []Include {
	out := slices.Clip(dst)
	for _, inc := range src {
		if !slices.Contains(out, inc) {
			out = append(out, inc)
		}
	}
	return out
}

func mergeStrings(dst, src []string) []string {
	out := slices.Clip(dst)
	for _, s := range src {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
