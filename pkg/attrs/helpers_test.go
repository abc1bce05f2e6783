package attrs

import (
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/domattr/internal/errors"
	"github.com/vango-dev/domattr/pkg/dom"
)

func asError(err error, target **errors.Error) bool {
	return stderrors.As(err, target)
}

func quietApplicator() *Applicator {
	return New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func mustApply(t testing.TB, a *Applicator, el dom.Element, m Map) bool {
	t.Helper()
	mutated, err := a.Apply(el, m, false)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return mutated
}

func attrOf(t testing.TB, el dom.Element, name string) string {
	t.Helper()
	v, ok := el.GetAttribute(name)
	if !ok {
		t.Fatalf("attribute %q missing (have %v)", name, el.AttributeNames())
	}
	return v
}

// Named types over scalar kinds, as callers commonly declare them.
type (
	token    string
	flag     bool
	level    int
	ratio    float64
	prefixed string
)

func (n prefixed) String() string { return "named:" + string(n) }
