package attrs

import (
	"strings"

	"github.com/vango-dev/domattr/internal/errors"
)

// StringifyClassOrStyle converts a class or style value into its attribute
// string.
//
// Strings pass through and nil becomes "". A sequence is space-joined and is
// only accepted for class. A mapping yields the truthy keys for class, and
// "name:value" pairs joined by ";" for style, where every entry is kept
// regardless of its value. Pairs keep their order; Go maps are walked in
// sorted key order.
func StringifyClassOrStyle(value any, isClass bool) (string, error) {
	target := "style"
	if isClass {
		target = "class"
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	if seq, ok := sequence(value); ok {
		if !isClass {
			return "", errors.NewValueShape(value, target)
		}
		tokens := make([]string, 0, len(seq))
		for _, item := range seq {
			s, ok := scalarString(item)
			if !ok {
				return "", errors.NewValueShape(value, target)
			}
			tokens = append(tokens, s)
		}
		return strings.Join(tokens, " "), nil
	}

	if entries, ok := mapping(value); ok {
		if isClass {
			tokens := make([]string, 0, len(entries))
			for _, e := range entries {
				if truthy(e.Value) {
					tokens = append(tokens, e.Key)
				}
			}
			return strings.Join(tokens, " "), nil
		}
		decls := make([]string, 0, len(entries))
		for _, e := range entries {
			s, ok := scalarString(e.Value)
			if !ok {
				return "", errors.NewValueShape(value, target)
			}
			decls = append(decls, e.Key+":"+s)
		}
		return strings.Join(decls, ";"), nil
	}

	if s, ok := scalarString(value); ok {
		return s, nil
	}
	return "", errors.NewValueShape(value, target)
}
