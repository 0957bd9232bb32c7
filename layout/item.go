package layout

import (
	"strconv"
	"strings"
)

type componentKind int

const (
	compDay componentKind = iota
	compEnd
	compHour
	compIgnore
	compMinute
	compMonth
	compOffsetHour
	compOffsetMinute
	compOffsetSecond
	compOrdinal
	compPeriod
	compSecond
	compSubsecond
	compUnixTimestamp
	compWeekday
	compWeekNumber
	compYear
)

type padding int

const (
	padZero padding = iota
	padSpace
	padNone
)

type monthRepr int

const (
	monthNumerical monthRepr = iota
	monthLong
	monthShort
)

type weekdayRepr int

const (
	weekdayLong weekdayRepr = iota
	weekdayShort
	weekdaySunday
	weekdayMonday
)

type weekRepr int

const (
	weekISO weekRepr = iota
	weekSunday
	weekMonday
)

type yearRepr int

const (
	yearFull yearRepr = iota
	yearCentury
	yearLastTwo
)

type timestampPrecision int

const (
	precisionSecond timestampPrecision = iota
	precisionMillisecond
	precisionMicrosecond
	precisionNanosecond
)

// A component is one fully resolved [name modifiers...] unit. It is flat
// rather than a per-kind union: each kind reads only the fields its modifiers
// can set, and the rest stay at their zero values.
type component struct {
	kind componentKind
	name string // canonical name, for error reporting

	padding         padding
	monthRepr       monthRepr
	weekdayRepr     weekdayRepr
	weekRepr        weekRepr
	yearRepr        yearRepr
	yearBaseISO     bool
	yearExtended    bool
	hour12          bool
	signMandatory   bool
	uppercase       bool
	caseSensitive   bool
	oneIndexed      bool
	digits          int // subsecond digit count; 0 means "one or more"
	precision       timestampPrecision
	count           int
	discardTrailing bool
}

// The instruction forms the formatter and parser execute. A compiled layout
// is a flat slice of these; Optional and First carry nested slices.
type item interface{ isItem() }

type litItem struct{ text []byte }

type compItem struct{ component }

type optionalItem struct{ items []item }

type firstItem struct{ groups [][]item }

func (litItem) isItem()      {}
func (compItem) isItem()     {}
func (optionalItem) isItem() {}
func (firstItem) isItem()    {}

// A Layout is a compiled format description, ready to format and parse with.
// It is immutable after Compile returns and safe for concurrent use.
type Layout struct {
	items []item
	src   string
}

// Compile builds a Layout from a format description such as
// "[year]-[month]-[day]". The description syntax is the current (version 2)
// dialect: backslash escapes and nested [optional ...] and [first ...]
// groups. The returned error, if any, is a *DescriptionError.
func Compile(desc string) (*Layout, error) {
	return compile(desc, V2)
}

// CompileV1 is Compile for the legacy (version 1) dialect, where "[[" is the
// bracket escape and nested groups are not recognized.
func CompileV1(desc string) (*Layout, error) {
	return compile(desc, V1)
}

// MustCompile is like Compile but panics if the description is invalid. It is
// intended for descriptions known at build time.
func MustCompile(desc string) *Layout {
	l, err := Compile(desc)
	if err != nil {
		panic(err)
	}
	return l
}

func compile(desc string, version Version) (*Layout, error) {
	src := []byte(desc)
	nodes, err := parseAST(lexDescription(src, version), version, len(src))
	if err != nil {
		return nil, err
	}
	items, err := buildItems(nodes)
	if err != nil {
		return nil, err
	}
	return &Layout{items: items, src: desc}, nil
}

// String returns the source description the layout was compiled from.
func (l *Layout) String() string { return l.src }

func buildItems(nodes []astNode) ([]item, error) {
	items := make([]item, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case *astLiteral:
			items = append(items, litItem{text: n.text})
		case *astComponent:
			c, err := buildComponent(n)
			if err != nil {
				return nil, err
			}
			items = append(items, compItem{c})
		case *astOptional:
			sub, err := buildItems(n.items)
			if err != nil {
				return nil, err
			}
			items = append(items, optionalItem{items: sub})
		case *astFirst:
			groups := make([][]item, 0, len(n.groups))
			for _, g := range n.groups {
				sub, err := buildItems(g)
				if err != nil {
					return nil, err
				}
				groups = append(groups, sub)
			}
			items = append(items, firstItem{groups: groups})
		}
	}
	return items, nil
}

// buildComponent types an AST component: the name selects the kind and its
// defaults, then each key:value modifier is applied. Names, keys, and values
// all match case-insensitively.
func buildComponent(node *astComponent) (component, error) {
	name := strings.ToLower(node.name)
	c := component{
		name:          name,
		caseSensitive: true,
		uppercase:     true,
		oneIndexed:    true,
		yearExtended:  true,
	}
	switch name {
	case "day":
		c.kind = compDay
	case "end":
		c.kind = compEnd
	case "hour":
		c.kind = compHour
	case "ignore":
		c.kind = compIgnore
	case "minute":
		c.kind = compMinute
	case "month":
		c.kind = compMonth
	case "offset_hour":
		c.kind = compOffsetHour
	case "offset_minute":
		c.kind = compOffsetMinute
	case "offset_second":
		c.kind = compOffsetSecond
	case "ordinal":
		c.kind = compOrdinal
	case "period":
		c.kind = compPeriod
	case "second":
		c.kind = compSecond
	case "subsecond":
		c.kind = compSubsecond
	case "unix_timestamp":
		c.kind = compUnixTimestamp
	case "weekday":
		c.kind = compWeekday
	case "week_number":
		c.kind = compWeekNumber
	case "year":
		c.kind = compYear
	default:
		return component{}, descErr(InvalidComponentName, node.namePos, node.name)
	}

	for _, mod := range node.mods {
		if !applyModifier(&c, strings.ToLower(mod.key), strings.ToLower(mod.value)) {
			return component{}, descErr(InvalidModifier, mod.keyPos, mod.key+":"+mod.value)
		}
	}

	if c.kind == compIgnore && c.count == 0 {
		return component{}, &DescriptionError{
			Kind:  MissingRequiredModifier,
			Index: node.namePos,
			Value: "count",
		}
	}
	return c, nil
}

// applyModifier sets the field a key:value pair names, reporting whether the
// pair is legal for the component's kind.
func applyModifier(c *component, key, value string) bool {
	switch key {
	case "padding":
		if !paddedKind(c.kind) {
			return false
		}
		switch value {
		case "zero":
			c.padding = padZero
		case "space":
			c.padding = padSpace
		case "none":
			c.padding = padNone
		default:
			return false
		}
		return true

	case "repr":
		switch c.kind {
		case compHour:
			switch value {
			case "24":
				c.hour12 = false
			case "12":
				c.hour12 = true
			default:
				return false
			}
		case compMonth:
			switch value {
			case "numerical":
				c.monthRepr = monthNumerical
			case "long":
				c.monthRepr = monthLong
			case "short":
				c.monthRepr = monthShort
			default:
				return false
			}
		case compWeekday:
			switch value {
			case "long":
				c.weekdayRepr = weekdayLong
			case "short":
				c.weekdayRepr = weekdayShort
			case "sunday":
				c.weekdayRepr = weekdaySunday
			case "monday":
				c.weekdayRepr = weekdayMonday
			default:
				return false
			}
		case compWeekNumber:
			switch value {
			case "iso":
				c.weekRepr = weekISO
			case "sunday":
				c.weekRepr = weekSunday
			case "monday":
				c.weekRepr = weekMonday
			default:
				return false
			}
		case compYear:
			switch value {
			case "full":
				c.yearRepr = yearFull
			case "century":
				c.yearRepr = yearCentury
			case "last_two":
				c.yearRepr = yearLastTwo
			default:
				return false
			}
		default:
			return false
		}
		return true

	case "sign":
		switch c.kind {
		case compOffsetHour, compYear, compUnixTimestamp:
		default:
			return false
		}
		switch value {
		case "automatic":
			c.signMandatory = false
		case "mandatory":
			c.signMandatory = true
		default:
			return false
		}
		return true

	case "case":
		if c.kind != compPeriod {
			return false
		}
		switch value {
		case "upper":
			c.uppercase = true
		case "lower":
			c.uppercase = false
		default:
			return false
		}
		return true

	case "case_sensitive":
		switch c.kind {
		case compMonth, compWeekday, compPeriod:
		default:
			return false
		}
		switch value {
		case "true":
			c.caseSensitive = true
		case "false":
			c.caseSensitive = false
		default:
			return false
		}
		return true

	case "one_indexed":
		if c.kind != compWeekday {
			return false
		}
		switch value {
		case "true":
			c.oneIndexed = true
		case "false":
			c.oneIndexed = false
		default:
			return false
		}
		return true

	case "base":
		if c.kind != compYear {
			return false
		}
		switch value {
		case "calendar":
			c.yearBaseISO = false
		case "iso_week":
			c.yearBaseISO = true
		default:
			return false
		}
		return true

	case "range":
		if c.kind != compYear {
			return false
		}
		switch value {
		case "standard":
			c.yearExtended = false
		case "extended":
			c.yearExtended = true
		default:
			return false
		}
		return true

	case "digits":
		if c.kind != compSubsecond {
			return false
		}
		if value == "1+" {
			c.digits = 0
			return true
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 9 {
			return false
		}
		c.digits = n
		return true

	case "precision":
		if c.kind != compUnixTimestamp {
			return false
		}
		switch value {
		case "second":
			c.precision = precisionSecond
		case "millisecond":
			c.precision = precisionMillisecond
		case "microsecond":
			c.precision = precisionMicrosecond
		case "nanosecond":
			c.precision = precisionNanosecond
		default:
			return false
		}
		return true

	case "count":
		if c.kind != compIgnore {
			return false
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 1<<16-1 {
			return false
		}
		c.count = n
		return true

	case "trailing_input":
		if c.kind != compEnd {
			return false
		}
		switch value {
		case "prohibit":
			c.discardTrailing = false
		case "discard":
			c.discardTrailing = true
		default:
			return false
		}
		return true
	}
	return false
}

func paddedKind(kind componentKind) bool {
	switch kind {
	case compDay, compHour, compMinute, compMonth, compOffsetHour,
		compOffsetMinute, compOffsetSecond, compOrdinal, compSecond,
		compWeekNumber, compYear:
		return true
	}
	return false
}
