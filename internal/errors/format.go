package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format returns a multi-line error message for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString(color(colorRed+colorBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Attr != "" {
		b.WriteString(color(colorGray, "  attribute: "))
		b.WriteString(e.Attr)
		b.WriteString("\n")
	}
	if e.Detail != "" {
		b.WriteString("  ")
		b.WriteString(e.Detail)
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString(color(colorGray, "  cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// Payload is the JSON body shape of an Error.
type Payload struct {
	Code     string   `json:"code,omitempty"`
	Category Category `json:"category,omitempty"`
	Message  string   `json:"message"`
	Attr     string   `json:"attr,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

// Payload returns the JSON body for e.
func (e *Error) Payload() Payload {
	return Payload{
		Code:     e.Code,
		Category: e.Category,
		Message:  e.Message,
		Attr:     e.Attr,
		Detail:   e.Detail,
	}
}

// PrintError writes a formatted error to w.
func PrintError(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "%s %s\n", color(colorRed+colorBold, "ERROR:"), err.Error())
}
