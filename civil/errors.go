package civil

import "fmt"

// A ComponentRange error is returned by the checked constructors in this
// package when a component's value lies outside its legal range. It reports
// the name of the offending component along with the range that was expected.
type ComponentRange struct {
	// Name of the component, e.g. "month" or "ordinal".
	Name string
	// Minimum and Maximum are the inclusive bounds of the legal range.
	Minimum int64
	Maximum int64
	// Value is the value that was provided.
	Value int64
	// Conditional reports whether the bounds depend on the values of other
	// components; the number of days in a month depends on the month and the
	// year, for example.
	Conditional bool
}

func (e *ComponentRange) Error() string {
	s := fmt.Sprintf("%s must be in the range %d..=%d, got %d", e.Name, e.Minimum, e.Maximum, e.Value)
	if e.Conditional {
		s += ", given the values of other components"
	}
	return s
}

func componentRange(name string, min, max, value int64, conditional bool) error {
	return &ComponentRange{
		Name:        name,
		Minimum:     min,
		Maximum:     max,
		Value:       value,
		Conditional: conditional,
	}
}
