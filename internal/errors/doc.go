// Package errors provides the structured error kinds raised by domattr.
//
// Every failure the attribute engine can report has a Kind. A Kind maps to
// a stable code (e.g. "E210"), a category, and a message template. The
// rendered message embeds the JSON form of the offending value so callers
// can match failure text exactly.
//
// # Error Categories
//
//   - value-shape: a value's structure does not fit its target attribute
//   - validation: a declarative-service directive is malformed
//   - config: domattr.json could not be loaded or is invalid
//
// # Usage
//
//	err := errors.Newk(errors.KindServicesNotArray, "foo")
//	fmt.Println(err.Message)
//	// Expecting array of services, got '"foo"'.
//
//	if errors.IsValidation(err) {
//	    // treat as a programming error
//	}
package errors
