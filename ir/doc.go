// Package ir provides the intermediate code model shared by all generation
// backends.
//
// The model is purely structural: modules hold definitions, structs, enums,
// attributes, procedures and classes; classes hold attributes, exactly one
// constructor, exactly one destructor and methods. Bodies and initializer
// expressions are opaque Code and Initializer leaves that carry the includes
// and forward declarations they require. Nothing in this package knows the
// syntax of a target language.
//
// # Builder
//
// Every entity is a value. Add and With methods return an updated copy and
// never write into the receiver's backing arrays, so an earlier value stays
// valid after a later one is extended:
//
//	consts := ir.NewModule("constants", "src", ir.Doc("Board constants."))
//	consts = consts.AddDefinition(ir.Definition{
//		Doc:   ir.Doc("Number of in-going stream interfaces."),
//		Name:  "IN_STREAM_COUNT",
//		Value: "2",
//	})
//
// Insertion order of every collection is preserved. Names are not checked
// for uniqueness; callers own that.
//
// Documentation is mandatory metadata supplied at construction time.
package ir
