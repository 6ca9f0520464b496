package main

import "fmt"

type Kind int

const (
	KindDate Kind = iota
	KindTime
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// FormatPattern is one textual shape a date, a time or a date-time may take.
// Directive is the strftime form shown to users, Layout the compiled Go form.
type FormatPattern struct {
	Directive string
	Layout    string
	Kind      Kind
	Zoned     bool

	expr      string
	hour12    bool
	shortYear bool
}

func fromLayout(directive string, c compiledLayout, kind Kind) FormatPattern {
	return FormatPattern{
		Directive: directive,
		Layout:    c.layout,
		Kind:      kind,
		Zoned:     c.has(fieldZone),
		expr:      c.expr,
		hour12:    c.parts&partHour12 != 0,
		shortYear: c.parts&partShortYear != 0,
	}
}

func newPattern(directive string, kind Kind) (FormatPattern, error) {
	c, err := compileLayout(directive)
	if err != nil {
		return FormatPattern{}, err
	}
	return fromLayout(directive, c, kind), nil
}

// newCustomPattern compiles a caller-supplied token. Its kind follows from
// the fields it parses, so a time-only token is anchored like a built-in
// time pattern.
func newCustomPattern(directive string) (FormatPattern, error) {
	c, err := compileLayout(directive)
	if err != nil {
		return FormatPattern{}, err
	}
	kind := KindDateTime
	switch {
	case !c.has(fieldTime):
		kind = KindDate
	case !c.has(fieldDate):
		kind = KindTime
	}
	return fromLayout(directive, c, kind), nil
}

func mustPattern(directive string, kind Kind) FormatPattern {
	p, err := newPattern(directive, kind)
	if err != nil {
		panic(err)
	}
	return p
}

// Order matters and is never re-sorted; the first pattern that parses wins.
var datePatterns = []FormatPattern{
	mustPattern("%m-%d-%y", KindDate), // 5-24-93
	mustPattern("%m-%d-%Y", KindDate), // 5-24-1993
	mustPattern("%D", KindDate),       // 05/24/93, 5/24/93
	mustPattern("%m/%d/%Y", KindDate), // 5/24/1993
	mustPattern("%F", KindDate),       // 1993-05-01
	mustPattern("%v", KindDate),       // 1-May-1993
}

// 12-hour forms precede the 24-hour form of the same precision.
var timePatterns = []FormatPattern{
	mustPattern("%I:%M %p", KindTime),    // 01:23 PM
	mustPattern("%I:%M %P", KindTime),    // 01:23 pm
	mustPattern("%l:%M %p", KindTime),    // 1:23 PM
	mustPattern("%l:%M %P", KindTime),    // 1:23 pm
	mustPattern("%H:%M", KindTime),       // 13:55
	mustPattern("%I:%M:%S %p", KindTime), // 01:23:01 PM
	mustPattern("%I:%M:%S %P", KindTime), // 01:23:01 pm
	mustPattern("%l:%M:%S %p", KindTime), // 1:23:01 PM
	mustPattern("%l:%M:%S %P", KindTime), // 1:23:01 pm
	mustPattern("%H:%M:%S", KindTime),    // 13:55:01
}

// DatePatterns returns the built-in date-only patterns in match order.
func DatePatterns() []FormatPattern {
	return append([]FormatPattern(nil), datePatterns...)
}

// TimePatterns returns the built-in time-only patterns in match order.
func TimePatterns() []FormatPattern {
	return append([]FormatPattern(nil), timePatterns...)
}

// Composed yields every pairing of first and second, in order, as a single
// date-time pattern whose parts are separated by one space. Patterns are
// built as they are requested; returning false from yield stops early.
func Composed(first, second []FormatPattern) func(yield func(FormatPattern) bool) {
	return func(yield func(FormatPattern) bool) {
		for _, a := range first {
			for _, b := range second {
				p := FormatPattern{
					Directive: a.Directive + " " + b.Directive,
					Layout:    a.Layout + " " + b.Layout,
					Kind:      KindDateTime,
					Zoned:     a.Zoned || b.Zoned,
					expr:      a.expr + " " + b.expr,
					hour12:    a.hour12 || b.hour12,
					shortYear: a.shortYear || b.shortYear,
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// DateTimePatterns yields date-then-time compositions.
func DateTimePatterns() func(yield func(FormatPattern) bool) {
	return Composed(datePatterns, timePatterns)
}

// TimeDatePatterns yields time-then-date compositions.
func TimeDatePatterns() func(yield func(FormatPattern) bool) {
	return Composed(timePatterns, datePatterns)
}
