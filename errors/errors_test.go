package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseAllocate,
				Kind:    KindConfiguration,
				Backend: "sdk",
				File:    "board.toml",
				Line:    12,
				Path:    []string{"adder0", "in1"},
				Detail:  "too many streams",
			},
			contains: []string{"board.toml:12", "[allocate/sdk]", "configuration", "adder0.in1", "too many streams"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTraverse,
				Kind:  KindStructural,
			},
			contains: []string{"[traverse]", "structural"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseOutput,
				Kind:   KindIO,
				Detail: "write module",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[output]", "io", "write module", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := MissingPort("inst", "core", "p")

	if !errors.Is(err, &Error{Phase: PhaseTraverse, Kind: KindStructural}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseTraverse, Kind: KindConfiguration}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCatalog, KindConfiguration).
		Backend("xps").
		At("b.toml", 3).
		Path("gpio", "leds").
		Cause(cause).
		Detail("lookup %s", "leds").
		Build()

	if err.Backend != "xps" || err.File != "b.toml" || err.Line != 3 {
		t.Errorf("unexpected attribution: %+v", err)
	}
	if len(err.Path) != 2 || err.Path[1] != "leds" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Detail != "lookup leds" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v", err.Cause)
	}
}

func TestWithBackendCopies(t *testing.T) {
	base := StreamsExhausted(Master, 16)
	tagged := base.WithBackend("client").WithPos("b.toml", 9)

	if base.Backend != "" || base.File != "" {
		t.Error("WithBackend/WithPos must not modify the receiver")
	}
	if tagged.Backend != "client" || tagged.Line != 9 {
		t.Errorf("tagged = %+v", tagged)
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(Invariant(PhaseTraverse, "impossible %d", 1)) {
		t.Error("invariant error should be fatal")
	}
	if IsFatal(UnknownDevice("lamps")) {
		t.Error("configuration error should not be fatal")
	}
	if IsFatal(errors.New("plain")) {
		t.Error("plain error should not be fatal")
	}

	kind, ok := KindOf(BidirectionalGPIO("leds"))
	if !ok || kind != KindConfiguration {
		t.Errorf("KindOf = %v, %v", kind, ok)
	}
}

func TestCollection(t *testing.T) {
	var c Collection
	if c.Err() != nil {
		t.Fatal("empty collection should have nil Err")
	}

	c.Add(nil)
	c.Add(UnknownDevice("lamps"))
	c.Add(MissingPort("a", "b", "c"))

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	err := c.Err()
	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("Err should be a RunError, got %T", err)
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, &Error{Phase: PhaseTraverse, Kind: KindStructural}) {
		t.Error("errors.Is should see through RunError")
	}

	flat := Flatten(err)
	if len(flat) != 2 {
		t.Errorf("Flatten = %d errors, want 2", len(flat))
	}
}
