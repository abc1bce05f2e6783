package dom

import (
	"reflect"
	"testing"
)

func TestNodeAttributes(t *testing.T) {
	n := NewElement("DIV")
	if n.TagName() != "div" {
		t.Errorf("TagName() = %q, want div", n.TagName())
	}

	n.SetAttribute("id", "a")
	n.SetAttribute("class", "x")
	n.SetAttribute("id", "b")

	if got, ok := n.GetAttribute("id"); !ok || got != "b" {
		t.Errorf("GetAttribute(id) = %q, %v", got, ok)
	}
	if want := []string{"id", "class"}; !reflect.DeepEqual(n.AttributeNames(), want) {
		t.Errorf("AttributeNames() = %v, want %v", n.AttributeNames(), want)
	}

	n.RemoveAttribute("id")
	n.RemoveAttribute("missing")
	if n.HasAttribute("id") {
		t.Error("id should be removed")
	}
	if want := []string{"class"}; !reflect.DeepEqual(n.AttributeNames(), want) {
		t.Errorf("AttributeNames() = %v, want %v", n.AttributeNames(), want)
	}
}

func TestNodeProperties(t *testing.T) {
	n := &Node{tag: "input"}
	if _, ok := n.Property("value"); ok {
		t.Error("unset property should be absent")
	}
	n.SetProperty("value", "x")
	if v, _ := n.Property("value"); v != "x" {
		t.Errorf("Property(value) = %v", v)
	}
	if n.HasAttribute("value") {
		t.Error("SetProperty must not touch attributes")
	}
}

func TestIsControllable(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{"input", NewElement("input"), true},
		{"select", NewElement("select"), true},
		{"textarea", NewElement("textarea"), true},
		{"div", NewElement("div"), false},
		{"svg input", NewSVGElement("input"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsControllable(tt.el); got != tt.want {
				t.Errorf("IsControllable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLiveProp(t *testing.T) {
	for _, name := range []string{"value", "checked", "selected"} {
		if !IsLiveProp(name) {
			t.Errorf("IsLiveProp(%q) = false", name)
		}
	}
	if IsLiveProp("title") {
		t.Error("IsLiveProp(title) = true")
	}
}
