package checkdoc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/iw2rmb/keydoc/document"
)

type stubChecker struct {
	name   string
	err    error
	report bool
	calls  *[]string
}

func (c stubChecker) Name() string { return c.name }

func (c stubChecker) Check(_ context.Context, run *Run) error {
	*c.calls = append(*c.calls, c.name)
	if c.report {
		run.Report(Finding{Check: c.name, Path: run.Path, Message: "stub"})
	}
	return c.err
}

func TestRegistry_RunsInOrder(t *testing.T) {
	var calls []string
	g := NewRegistry()
	for _, name := range []string{"first", "second", "third"} {
		if err := g.Register(stubChecker{name: name, calls: &calls}); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}

	findings, err := g.Run(context.Background(), document.New(""), "demo.el")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("findings = %v, want none", findings)
	}
	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestRegistry_ReportingCheckerDoesNotShortCircuit(t *testing.T) {
	var calls []string
	g := NewRegistry()
	_ = g.Register(stubChecker{name: "reporter", report: true, calls: &calls})
	_ = g.Register(stubChecker{name: "after", calls: &calls})

	findings, err := g.Run(context.Background(), document.New(""), "demo.el")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("findings = %v, want one", findings)
	}
	if len(calls) != 2 {
		t.Fatalf("calls = %v, want both checkers", calls)
	}
}

func TestRegistry_ErrorAbortsRemaining(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	g := NewRegistry()
	_ = g.Register(stubChecker{name: "reporter", report: true, calls: &calls})
	_ = g.Register(stubChecker{name: "failing", err: boom, calls: &calls})
	_ = g.Register(stubChecker{name: "never", calls: &calls})

	findings, err := g.Run(context.Background(), document.New(""), "demo.el")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if len(findings) != 1 {
		t.Fatalf("findings before the error must survive: %v", findings)
	}
	if want := []string{"reporter", "failing"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	var calls []string
	g := NewRegistry()
	_ = g.Register(stubChecker{name: "dup", calls: &calls})

	err := g.Register(stubChecker{name: "dup", calls: &calls})
	if !errors.Is(err, ErrCheckerExists) {
		t.Fatalf("err = %v, want ErrCheckerExists", err)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	var calls []string
	g := NewRegistry()
	_ = g.Register(stubChecker{name: "keep", calls: &calls})
	_ = g.Register(stubChecker{name: "drop", calls: &calls})

	g.Unregister("drop")
	g.Unregister("drop") // absent: no-op
	g.Unregister("never-registered")

	if want := []string{"keep"}; !reflect.DeepEqual(g.Names(), want) {
		t.Fatalf("Names() = %v, want %v", g.Names(), want)
	}
}

func TestRegistry_CanceledContext(t *testing.T) {
	var calls []string
	g := NewRegistry()
	_ = g.Register(stubChecker{name: "never", calls: &calls})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Run(ctx, document.New(""), "demo.el"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(calls) != 0 {
		t.Fatalf("no checker should run after cancellation: %v", calls)
	}
}

func TestFinding_String(t *testing.T) {
	f := Finding{
		Check:   "keywords",
		Path:    "demo.el",
		Pos:     document.Pos{Row: 4, Col: 2},
		Message: "file has no Keywords header line",
	}
	want := "demo.el:5:3: file has no Keywords header line"
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
