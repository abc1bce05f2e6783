package attrs

import (
	"strings"
	"unicode"

	"github.com/vango-dev/domattr/internal/errors"
)

const (
	// BindPrefix starts every synthesized binding attribute name.
	BindPrefix = "bind:"

	// BindSeparator joins the $-keys listed in a binding attribute.
	BindSeparator = "|"
)

// Slug converts a bound value into its DOM-safe binding slug. nil yields "".
// Upper-case letters become "-" followed by the lower-case letter, so
// "someItem:123" becomes "some-item:123".
func Slug(value any) (string, bool) {
	s, ok := scalarString(value)
	if !ok {
		return "", false
	}
	return kebab(s), true
}

// BindName returns the binding attribute name for a slug.
func BindName(slug string) string {
	return BindPrefix + slug
}

func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bindings accumulates $-keys per slug in first-seen order.
type bindings struct {
	slugs []string
	keys  map[string][]string
	all   map[string]bool
}

func (b *bindings) add(slug, key string) {
	if b.keys == nil {
		b.keys = make(map[string][]string)
		b.all = make(map[string]bool)
	}
	if _, ok := b.keys[slug]; !ok {
		b.slugs = append(b.slugs, slug)
	}
	b.keys[slug] = append(b.keys[slug], key)
	b.all[key] = true
}

func (b *bindings) empty() bool { return len(b.slugs) == 0 }

// bindSlug resolves the slug for a $-key, reporting a shape error for values
// that are not scalars.
func bindSlug(key string, value any) (string, error) {
	slug, ok := Slug(value)
	if !ok {
		return "", errors.NewValueShape(value, key)
	}
	return slug, nil
}

func splitBound(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, BindSeparator)
}
