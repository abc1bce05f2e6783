package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/domattr/internal/errors"
)

func TestRunApply(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		attrs string
		svg   bool
		want  string
	}{
		{
			name:  "input value",
			html:  `<input value="a">`,
			attrs: `{"value":"b"}`,
			want:  "<input value=\"b\">\nmutated=true\n",
		},
		{
			name:  "unchanged",
			html:  `<div id="x"></div>`,
			attrs: `{"id":"x"}`,
			want:  "<div id=\"x\"></div>\nmutated=false\n",
		},
		{
			name:  "binding",
			html:  `<div></div>`,
			attrs: `{"$myData":"someItem:123:child:432"}`,
			want:  "<div bind:some-item:123:child:432=\"$myData\"></div>\nmutated=true\n",
		},
		{
			name:  "hook service",
			html:  `<ul></ul>`,
			attrs: `{"decl:services":[{"kind":"hook","name":"Sortable"}]}`,
			want:  "<ul data-hook=\"Sortable\"></ul>\nmutated=true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts := applyOptions{html: tt.html, attrsFile: "-", svg: tt.svg, configDir: t.TempDir()}
			if err := runApply(context.Background(), opts, strings.NewReader(tt.attrs), &stdout, &stderr); err != nil {
				t.Fatalf("runApply: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunApply_AttrsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attrs.json")
	if err := os.WriteFile(path, []byte(`{"class":{"on":true,"off":false}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	opts := applyOptions{html: `<p></p>`, attrsFile: path, configDir: dir}
	if err := runApply(context.Background(), opts, nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if want := "<p class=\"on\"></p>\nmutated=true\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunApply_ValidationError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := applyOptions{html: `<div></div>`, attrsFile: "-", configDir: t.TempDir()}
	err := runApply(context.Background(), opts, strings.NewReader(`{"decl:services":"foo"}`), &stdout, &stderr)
	if !errors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunApply_BadConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "domattr.json"), []byte(`{"server":{"port":70000}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	opts := applyOptions{html: `<div></div>`, attrsFile: "-", configDir: dir}
	err := runApply(context.Background(), opts, strings.NewReader(`{}`), &stdout, &stderr)
	if err == nil || !strings.HasPrefix(err.Error(), "E120") {
		t.Errorf("err = %v, want E120", err)
	}
}

func TestVersionCmd_Short(t *testing.T) {
	var out bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != version+"\n" {
		t.Errorf("version = %q", got)
	}
}

func TestRootCmd_NoColor(t *testing.T) {
	defer errors.EnableColors()

	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-color", "version", "--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	errors.PrintError(&b, errors.Newk(errors.KindServicesNotArray, "x"))
	if strings.Contains(b.String(), "\033[") {
		t.Errorf("colors still enabled: %q", b.String())
	}
}
