package layout

import (
	"fmt"
	"strings"

	goerrors "errors"
)

// A DescriptionError reports a syntax problem in a format description. It is
// returned by Compile and CompileV1, never by Format or Parse: a Layout that
// compiled is always structurally valid.
type DescriptionError struct {
	Kind DescriptionErrorKind
	// Index is the byte offset into the description at which the problem was
	// found.
	Index int
	// Value is the offending component name or modifier text, when there is
	// one.
	Value string
}

// DescriptionErrorKind discriminates the syntax problems Compile can report.
type DescriptionErrorKind int

const (
	// UnclosedOpeningBracket: the description ended inside a component.
	UnclosedOpeningBracket DescriptionErrorKind = iota
	// MissingComponentName: a "[" was not followed by a component name.
	MissingComponentName
	// InvalidComponentName: the component name is not one of the recognized
	// names.
	InvalidComponentName
	// InvalidModifier: a modifier was not of the form key:value, or its key
	// or value is not recognized for the component.
	InvalidModifier
	// MissingRequiredModifier: a component that requires a modifier (ignore
	// requires count) was written without it.
	MissingRequiredModifier
	// NotSupported: the construct is valid only in the other dialect, e.g. a
	// nested [optional ...] group in a version 1 description.
	NotSupported
	// TrailingEscape: a version 2 description ended with a bare backslash.
	TrailingEscape
)

func (e *DescriptionError) Error() string {
	switch e.Kind {
	case UnclosedOpeningBracket:
		return fmt.Sprintf("unclosed opening bracket at byte index %d", e.Index)
	case MissingComponentName:
		return fmt.Sprintf("missing component name at byte index %d", e.Index)
	case InvalidComponentName:
		return fmt.Sprintf("invalid component name %q at byte index %d", e.Value, e.Index)
	case InvalidModifier:
		return fmt.Sprintf("invalid modifier %q at byte index %d", e.Value, e.Index)
	case MissingRequiredModifier:
		return fmt.Sprintf("missing required modifier %q for the component at byte index %d", e.Value, e.Index)
	case NotSupported:
		return fmt.Sprintf("%s is not supported at byte index %d", e.Value, e.Index)
	case TrailingEscape:
		return fmt.Sprintf("trailing escape character at byte index %d", e.Index)
	}
	return fmt.Sprintf("invalid format description at byte index %d", e.Index)
}

func descErr(kind DescriptionErrorKind, index int, value string) error {
	return &DescriptionError{Kind: kind, Index: index, Value: value}
}

// A FormatError is returned when a value cannot be written with a layout:
// either a component needs an entity the value does not carry (formatting a
// bare Time with [year], say), the value is outside what the representation
// can express, or the sink returned a write error.
type FormatError struct {
	// Component is the name of the component that failed.
	Component string
	// OutOfRange reports that the value was present but cannot be expressed
	// by the component's representation.
	OutOfRange bool
	// Err is the underlying sink error, if the failure was an I/O one.
	Err error
}

func (e *FormatError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("formatting [%s]: %v", e.Component, e.Err)
	case e.OutOfRange:
		return fmt.Sprintf("the [%s] component cannot represent the value being formatted", e.Component)
	}
	return fmt.Sprintf("the value being formatted does not provide the [%s] component", e.Component)
}

func (e *FormatError) Unwrap() error { return e.Err }

func insufficient(component string) error {
	return &FormatError{Component: component}
}

func unrepresentable(component string) error {
	return &FormatError{Component: component, OutOfRange: true}
}

// ParseErrorKind discriminates the ways an input can fail to match a layout.
type ParseErrorKind int

const (
	// InvalidLiteral: the input did not contain the layout's literal text.
	InvalidLiteral ParseErrorKind = iota
	// InvalidComponent: the input did not match the named component's
	// pattern, or the matched value is out of range for it.
	InvalidComponent
	// UnexpectedTrailingInput: input remained after the layout was fully
	// matched.
	UnexpectedTrailingInput
)

// A ParseError reports input text that does not match a layout. Index is the
// byte offset into the input at which matching failed.
type ParseError struct {
	Kind      ParseErrorKind
	Component string
	Index     int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidLiteral:
		return fmt.Sprintf("input does not match the expected literal at byte index %d", e.Index)
	case InvalidComponent:
		return fmt.Sprintf("input does not match the [%s] component at byte index %d", e.Component, e.Index)
	case UnexpectedTrailingInput:
		return fmt.Sprintf("unexpected trailing input at byte index %d", e.Index)
	}
	return fmt.Sprintf("input does not match the layout at byte index %d", e.Index)
}

// An AlternativesError aggregates the failures of every branch of a [first
// ...] group when none of them matched.
type AlternativesError []error

func (errs AlternativesError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "no alternative matched (%d tried):", len(errs))
	for i, err := range errs {
		lines := strings.Split(err.Error(), "\n")
		fmt.Fprintf(&buf, "\n %d. %s", i+1, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(&buf, "\n    %s", line)
		}
	}
	return buf.String()
}

// ErrInsufficientInformation is returned by the Parsed resolution methods
// when the accumulated fields are not enough to construct the requested
// type.
var ErrInsufficientInformation = goerrors.New("insufficient information to construct the requested type")
