package errors

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Collection accumulates the recoverable errors of one generation run.
// Not safe for concurrent use; each backend run owns its own Collection.
type Collection struct {
	err error
}

// Add appends err to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	c.err = multierr.Append(c.err, err)
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(multierr.Errors(c.err))
}

// Errors returns the collected errors in report order.
func (c *Collection) Errors() []error {
	return multierr.Errors(c.err)
}

// Err returns the combined error, or nil if nothing was collected.
func (c *Collection) Err() error {
	if c.err == nil {
		return nil
	}
	return &RunError{Errors: multierr.Errors(c.err)}
}

// RunError is returned when a generation run collected one or more errors.
type RunError struct {
	Errors []error
}

func (e *RunError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is/As.
func (e *RunError) Unwrap() []error {
	return e.Errors
}

// Flatten expands run errors and multierr combinations into a flat list.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*RunError); ok {
		var out []error
		for _, e := range re.Errors {
			out = append(out, Flatten(e)...)
		}
		return out
	}
	errs := multierr.Errors(err)
	if len(errs) == 1 {
		return errs
	}
	var out []error
	for _, e := range errs {
		out = append(out, Flatten(e)...)
	}
	return out
}
