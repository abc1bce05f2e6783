package attrs

import (
	"context"
	stderrors "errors"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/domattr/internal/errors"
	"github.com/vango-dev/domattr/pkg/dom"
)

// Default tracer name for apply spans.
const defaultTracerName = "domattr"

// InnerHTMLKey writes element content instead of an attribute.
const InnerHTMLKey = "innerHTML"

// directivePrefixes mark event directives stored verbatim for the
// downstream event binder.
var directivePrefixes = []string{"on:", "on-document:", "on-window:"}

const (
	opSet    = "set"
	opRemove = "remove"
	opProp   = "prop"
)

// Options configures an Applicator.
type Options struct {
	// Logger receives a Debug record per write and a Warn record per
	// failure. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics is updated per call. Nil disables metrics.
	Metrics *Metrics

	// Tracer starts one span per ApplyContext call.
	// If nil, the global otel tracer named "domattr" is used.
	Tracer trace.Tracer
}

// Applicator applies attribute maps to elements. It holds no per-element
// state and may be shared; a single element must not be written by two
// calls at once.
type Applicator struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// New creates an Applicator.
func New(opts Options) *Applicator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(defaultTracerName)
	}
	return &Applicator{
		logger:  opts.Logger,
		metrics: opts.Metrics,
		tracer:  opts.Tracer,
	}
}

var defaultApplicator = New(Options{})

// Apply writes attrs to el with the default Applicator.
func Apply(el dom.Element, attrs Map, isSVG bool) (bool, error) {
	return defaultApplicator.Apply(el, attrs, isSVG)
}

// Apply writes attrs to el and reports whether the element changed.
func (a *Applicator) Apply(el dom.Element, attrs Map, isSVG bool) (bool, error) {
	return a.ApplyContext(context.Background(), el, attrs, isSVG)
}

// ApplyContext is Apply with a context carrying the parent span.
func (a *Applicator) ApplyContext(ctx context.Context, el dom.Element, attrs Map, isSVG bool) (bool, error) {
	if len(attrs) == 0 {
		return false, nil
	}
	if el == nil {
		return false, errors.Newf(errors.CategoryValidation, "attrs: apply to nil element")
	}

	_, span := a.tracer.Start(ctx, "attrs.Apply", trace.WithAttributes(
		attribute.String("domattr.tag", el.TagName()),
		attribute.Int("domattr.entries", len(attrs)),
		attribute.Bool("domattr.svg", isSVG),
	))
	defer span.End()

	start := time.Now()
	w := &writer{
		el:     el,
		isSVG:  isSVG,
		live:   !isSVG && dom.IsControllable(el),
		logger: a.logger,
		m:      a.metrics,
	}
	mutated, err := w.apply(attrs)

	code := ""
	if err != nil {
		code = "unknown"
		var e *errors.Error
		if stderrors.As(err, &e) && e.Code != "" {
			code = e.Code
		}
		a.logger.Warn("apply failed", "tag", el.TagName(), "code", code, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("domattr.mutated", mutated))
	a.metrics.result(mutated, code, time.Since(start).Seconds())

	return mutated, err
}

// writer performs the writes of a single call.
type writer struct {
	el     dom.Element
	isSVG  bool
	live   bool
	logger *slog.Logger
	m      *Metrics
}

func (w *writer) record(op, name string) {
	w.m.write(op)
	w.logger.Debug("element write", "op", op, "attr", name, "tag", w.el.TagName())
}

func (w *writer) apply(attrs Map) (bool, error) {
	mutated := false
	var binds bindings

	for _, at := range attrs {
		key, value := at.Key, at.Value

		var changed bool
		var err error
		switch {
		case key == ServicesKey:
			changed, err = w.attachServices(value)
		case isDirective(key):
			changed = w.setDirective(key, value)
		case strings.HasPrefix(key, "$"):
			var slug string
			slug, err = bindSlug(key, value)
			if err == nil {
				binds.add(slug, key)
			}
		case key == "class" || key == "style":
			var s string
			s, err = StringifyClassOrStyle(value, key == "class")
			if err == nil {
				changed = w.writeAttr(key, s, s != "")
			}
		case key == InnerHTMLKey:
			changed, err = w.setInnerHTML(value)
		default:
			changed, err = w.setPlain(key, value)
		}
		if err != nil {
			return mutated, err
		}
		mutated = changed || mutated
	}

	if !binds.empty() {
		mutated = w.writeBindings(&binds) || mutated
	}
	return mutated, nil
}

func isDirective(key string) bool {
	for _, p := range directivePrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// writeAttr makes attribute name hold value, or removes it when present is
// false. It reports whether the element changed.
func (w *writer) writeAttr(name, value string, present bool) bool {
	cur, has := w.el.GetAttribute(name)
	if !present {
		if !has {
			return false
		}
		w.el.RemoveAttribute(name)
		w.record(opRemove, name)
		return true
	}
	if has && cur == value {
		return false
	}
	w.el.SetAttribute(name, value)
	w.record(opSet, name)
	return true
}

// writeProp always assigns the live property and reports whether the value
// differed from the previous one.
func (w *writer) writeProp(name string, value any) bool {
	prev, ok := w.el.Property(name)
	w.el.SetProperty(name, value)
	if ok && reflect.DeepEqual(prev, value) {
		return false
	}
	w.record(opProp, name)
	return true
}

func (w *writer) setDirective(key string, value any) bool {
	s, ok := scalarString(value)
	if !ok {
		s = errors.JSONValue(value)
	}
	return w.writeAttr(key, s, s != "")
}

func (w *writer) setPlain(key string, value any) (bool, error) {
	var s string
	var present bool

	if b, ok := boolValue(value); ok && isBooleanAttr(key) {
		present = b
	} else {
		var ok bool
		s, ok = scalarString(value)
		if !ok {
			return false, errors.NewValueShape(value, key)
		}
		present = s != ""
	}

	changed := w.writeAttr(key, s, present)
	if !w.live || !dom.IsLiveProp(key) {
		return changed, nil
	}

	var prop any = s
	if isBooleanAttr(key) {
		prop = present
	}
	return w.writeProp(key, prop) || changed, nil
}

func (w *writer) setInnerHTML(value any) (bool, error) {
	s, ok := scalarString(value)
	if !ok {
		return false, errors.NewValueShape(value, InnerHTMLKey)
	}
	if value == nil {
		changed := false
		if prev, ok := w.el.Property(InnerHTMLKey); ok && prev != "" {
			changed = w.writeProp(InnerHTMLKey, "")
		}
		return w.writeAttr(InnerHTMLKey, "", false) || changed, nil
	}
	changed := false
	if prev, ok := w.el.Property(InnerHTMLKey); !ok || prev != s {
		changed = w.writeProp(InnerHTMLKey, s)
	}
	return w.writeAttr(InnerHTMLKey, "", true) || changed, nil
}

func (w *writer) attachServices(value any) (bool, error) {
	svcs, err := resolveServices(value)
	if err != nil {
		return false, err
	}
	tracked := &trackingElement{Element: w.el, w: w}
	for _, svc := range svcs {
		if err := svc.Attach(tracked); err != nil {
			return tracked.mutated, errors.NewServiceAttach(serviceName(svc), err).WithAttr(ServicesKey)
		}
	}
	return tracked.mutated, nil
}

// writeBindings writes one bind:<slug> attribute per slug. Keys of this
// call that now resolve elsewhere are dropped from their old binding
// attributes; keys contributed by other calls are kept.
func (w *writer) writeBindings(b *bindings) bool {
	mutated := false
	carried := make(map[string][]string)

	for _, name := range w.el.AttributeNames() {
		if !strings.HasPrefix(name, BindPrefix) {
			continue
		}
		slug := strings.TrimPrefix(name, BindPrefix)
		cur, _ := w.el.GetAttribute(name)

		var keep []string
		for _, k := range splitBound(cur) {
			if !b.all[k] {
				keep = append(keep, k)
			}
		}
		if _, ok := b.keys[slug]; ok {
			carried[slug] = keep
			continue
		}
		joined := strings.Join(keep, BindSeparator)
		mutated = w.writeAttr(name, joined, len(keep) > 0) || mutated
	}

	for _, slug := range b.slugs {
		keys := append(carried[slug], b.keys[slug]...)
		mutated = w.writeAttr(BindName(slug), strings.Join(keys, BindSeparator), true) || mutated
	}
	return mutated
}
