package backend

import (
	"slices"

	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/mhs"
)

// Deployment copies a template file verbatim into the generated tree.
type Deployment struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// Manifest is an ordered, destination-unique list of deployments.
type Manifest []Deployment

// Add returns m with src deployed to dest. A later entry for the same
// destination replaces the earlier one in place.
func (m Manifest) Add(src, dest string) Manifest {
	for i, d := range m {
		if d.Dest == dest {
			out := slices.Clone(m)
			out[i].Source = src
			return out
		}
	}
	return append(slices.Clip(m), Deployment{Source: src, Dest: dest})
}

// Descriptor is a named hardware block descriptor (system.mhs, system.mss).
type Descriptor struct {
	Name string
	Dir  string
	File mhs.File
}

// Text is a generated file passed through without structure, such as pin
// constraints.
type Text struct {
	Name  string
	Dir   string
	Lines []string
}

// Result is everything a successful backend run produced.
type Result struct {
	Backend     string
	Modules     []ir.Module
	Descriptors []Descriptor
	Texts       []Text
	Deploy      Manifest
}

// Module returns the module named name.
func (r *Result) Module(name string) (ir.Module, bool) {
	for _, m := range r.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return ir.Module{}, false
}

// Descriptor returns the descriptor named name.
func (r *Result) Descriptor(name string) (Descriptor, bool) {
	for _, d := range r.Descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
