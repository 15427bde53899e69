package backend

import (
	stderrors "errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/ir"
	"github.com/wippyai/boardgen/resource"
)

// Context is the mutable state of one backend run. The board itself is
// never modified.
type Context struct {
	Board    *board.Board
	Counters *resource.Counters
	Log      *zap.Logger
	Result   Result
	Errors   errors.Collection
	scopes   []*ClassScope
	backend  string
}

// NewContext returns a context for running the named backend over b.
func NewContext(backend string, b *board.Board) *Context {
	log := Logger().With(zap.String("backend", backend))
	ctx := &Context{
		Board:    b,
		Counters: resource.New(),
		Log:      log,
		Result:   Result{Backend: backend},
		backend:  backend,
	}
	ctx.Counters.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		log.Debug("allocated",
			zap.Stringer("category", e.Category),
			zap.String("owner", e.Owner),
			zap.Uint8("id", uint8(e.ID)))
	}))
	return ctx
}

// Backend returns the name of the running backend.
func (c *Context) Backend() string { return c.backend }

// Report collects a recoverable error, attributing it to the running
// backend and to pos when it carries no position of its own.
func (c *Context) Report(err error, pos board.Pos) {
	for _, e := range multierr.Errors(err) {
		c.Errors.Add(c.attribute(e, pos))
	}
}

func (c *Context) attribute(err error, pos board.Pos) error {
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		return err
	}
	out := ge.WithBackend(c.backend)
	if out.File == "" && pos.File != "" {
		out = out.WithPos(pos.File, pos.Line)
	}
	return out
}

// ClassScope is a class under construction.
type ClassScope struct {
	Class       ir.Class
	Constructor ir.Constructor
	Destructor  ir.Destructor
	// Args collects the constructor arguments of the instance attribute.
	Args []string
}

// NewClassScope opens a scope for class.
func NewClassScope(class ir.Class) *ClassScope {
	return &ClassScope{
		Class:       class,
		Constructor: class.Constructor,
		Destructor:  class.Destructor,
	}
}

// Build returns the finished class.
func (s *ClassScope) Build() ir.Class {
	return s.Class.WithConstructor(s.Constructor).WithDestructor(s.Destructor)
}

// Push opens a class scope.
func (c *Context) Push(s *ClassScope) {
	c.scopes = append(c.scopes, s)
}

// Current returns the innermost open scope.
func (c *Context) Current() (*ClassScope, error) {
	if len(c.scopes) == 0 {
		return nil, errors.Invariant(errors.PhaseTraverse, "no class under construction")
	}
	return c.scopes[len(c.scopes)-1], nil
}

// Pop closes the innermost scope and returns it.
func (c *Context) Pop() (*ClassScope, error) {
	s, err := c.Current()
	if err != nil {
		return nil, err
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
	return s, nil
}

// Depth returns the number of open scopes.
func (c *Context) Depth() int { return len(c.scopes) }
