package attrs

import (
	"encoding/json"
	"testing"

	"github.com/vango-dev/domattr/internal/errors"
)

func TestStringifyClassOrStyle(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		isClass bool
		want    string
	}{
		{"class string", "a b", true, "a b"},
		{"class nil", nil, true, ""},
		{"style nil", nil, false, ""},
		{"class slice", []string{"foo", "bar", "baz"}, true, "foo bar baz"},
		{"class any slice", []any{"foo", "bar"}, true, "foo bar"},
		{"class empty slice", []string{}, true, ""},
		{
			"class pairs keep order and filter falsy",
			Pairs{{"zeta", true}, {"off", false}, {"alpha", 1}, {"nil", nil}, {"empty", ""}},
			true,
			"zeta alpha",
		},
		{"class go map sorted", map[string]bool{"b": true, "a": true, "c": false}, true, "a b"},
		{
			"style pairs keep falsy entries",
			Pairs{{"color", "red"}, {"width", 0}, {"hidden", false}},
			false,
			"color:red;width:0;hidden:false",
		},
		{"style go map sorted", map[string]string{"z-index": "1", "color": "blue"}, false, "color:blue;z-index:1"},
		{"style string", "color:red", false, "color:red"},
		{"style json number", Pairs{{"opacity", json.Number("0.5")}}, false, "opacity:0.5"},
		{"class named string", token("a b"), true, "a b"},
		{"class named string slice", []token{"x", "y"}, true, "x y"},
		{"class named empty string is falsy", map[string]token{"a": "", "b": "on"}, true, "b"},
		{"class named bool", Pairs{{"on", flag(true)}, {"off", flag(false)}}, true, "on"},
		{"style named values", Pairs{{"color", token("red")}, {"z-index", level(2)}, {"opacity", ratio(0.5)}}, false, "color:red;z-index:2;opacity:0.5"},
		{"stringer wins over kind", Pairs{{"content", prefixed("x")}}, false, "content:named:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringifyClassOrStyle(tt.value, tt.isClass)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("StringifyClassOrStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringifyClassOrStyle_StyleRejectsSequence(t *testing.T) {
	for _, v := range []any{[]string{"a", "b"}, []any{"a", 1}, [2]string{"x", "y"}} {
		_, err := StringifyClassOrStyle(v, false)
		if err == nil {
			t.Fatalf("StringifyClassOrStyle(%v, false) should fail", v)
		}
		if !errors.IsValueShape(err) {
			t.Errorf("error should be a value-shape error, got %v", err)
		}
	}

	_, err := StringifyClassOrStyle([]string{"a", "b"}, false)
	var e *errors.Error
	if !asError(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	want := `Value '["a","b"]' can't be written into 'style' attribute.`
	if e.Message != want {
		t.Errorf("Message = %q, want %q", e.Message, want)
	}
	if e.Attr != "style" {
		t.Errorf("Attr = %q, want style", e.Attr)
	}
}

func TestStringifyClassOrStyle_BadShapes(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		isClass bool
	}{
		{"class struct", struct{ A int }{1}, true},
		{"class nested slice", []any{[]string{"x"}}, true},
		{"style nested mapping", Pairs{{"a", Pairs{{"b", 1}}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StringifyClassOrStyle(tt.value, tt.isClass); !errors.IsValueShape(err) {
				t.Errorf("want value-shape error, got %v", err)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"someItem:123:child:432", "some-item:123:child:432"},
		{"otherItem", "other-item"},
		{nil, ""},
		{"plain", "plain"},
		{42, "42"},
	}
	for _, tt := range tests {
		got, ok := Slug(tt.in)
		if !ok || got != tt.want {
			t.Errorf("Slug(%v) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := Slug([]string{"x"}); ok {
		t.Error("Slug(slice) should fail")
	}
}
