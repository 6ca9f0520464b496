package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var ErrUnsupportedDirective = errors.New("unsupported directive")

type field int

const (
	fieldDate field = 1 << iota
	fieldTime
	fieldZone
)

// part is one calendar or clock component a conversion fills in.
type part int

const (
	partYear part = 1 << iota
	partShortYear
	partMonth
	partDay
	partHour
	partHour12
	partMeridiem
	partMinute
	partSecond
)

const (
	dateParts = partYear | partMonth | partDay
	timeParts = partHour | partHour12 | partMeridiem | partMinute | partSecond
)

type conversion struct {
	layout string
	// expr matches the same text the layout element accepts.
	expr  string
	field field
	parts part
}

// Go layout elements for each strftime conversion. Numeric fields use the
// unpadded Go elements where possible so that "5" and "05" both parse.
var conversions = map[byte]conversion{
	'Y': {"2006", `\d{4}`, fieldDate, partYear},
	'y': {"06", `\d{2}`, fieldDate, partYear | partShortYear},
	'm': {"1", `\d{1,2}`, fieldDate, partMonth},
	'd': {"2", `\d{1,2}`, fieldDate, partDay},
	'e': {"_2", ` ?\d{1,2}`, fieldDate, partDay},
	'b': {"Jan", `[A-Za-z]{3}`, fieldDate, partMonth},
	'h': {"Jan", `[A-Za-z]{3}`, fieldDate, partMonth},
	'B': {"January", `[A-Za-z]+`, fieldDate, partMonth},
	'a': {"Mon", `[A-Za-z]{3}`, 0, 0},
	'A': {"Monday", `[A-Za-z]+`, 0, 0},
	'H': {"15", `\d{1,2}`, fieldTime, partHour},
	'k': {"15", `\d{1,2}`, fieldTime, partHour},
	'I': {"03", `(\d{2})`, fieldTime, partHour12},
	'l': {"3", `(\d{1,2})`, fieldTime, partHour12},
	'M': {"04", `\d{2}`, fieldTime, partMinute},
	'S': {"05", `\d{2}`, fieldTime, partSecond},
	'p': {"PM", `(?:AM|PM)`, fieldTime, partMeridiem},
	'P': {"pm", `(?:am|pm)`, fieldTime, partMeridiem},
	'z': {"-0700", `[+-]\d{4}`, fieldZone, 0},
}

// Composite conversions expand to other directives before translation.
var compositeDirectives = map[byte]string{
	'D': "%m/%d/%y",
	'F': "%Y-%m-%d",
	'v': "%e-%b-%Y",
	'R': "%H:%M",
	'T': "%H:%M:%S",
	'r': "%I:%M:%S %p",
}

// Literal text Go would read as part of a layout.
var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

type compiledLayout struct {
	layout string
	// expr is a regexp source for the same text, with one group per 12-hour
	// field.
	expr   string
	fields field
	parts  part
}

func (c compiledLayout) has(f field) bool {
	return c.fields&f != 0
}

// compileLayout translates a strftime directive such as "%m-%d-%y" into a Go
// reference layout and records which kinds of field it parses. A directive
// that names some date fields must name year, month and day; one that names
// clock fields must name the hour (12-hour with AM/PM, or 24-hour) and minute.
func compileLayout(directive string) (compiledLayout, error) {
	var out strings.Builder
	var expr strings.Builder
	var literal strings.Builder
	var fields field
	var parts part

	flushLiteral := func() error {
		s := literal.String()
		literal.Reset()
		if s == "" {
			return nil
		}
		if strings.ContainsAny(s, "0123456789") {
			return fmt.Errorf("%w: literal %q contains digits", ErrUnsupportedDirective, s)
		}
		for _, w := range layoutWords {
			if strings.Contains(s, w) {
				return fmt.Errorf("%w: literal %q contains %q", ErrUnsupportedDirective, s, w)
			}
		}
		out.WriteString(s)
		expr.WriteString(regexp.QuoteMeta(s))
		return nil
	}

	expanded := expandComposites(directive)
	for i := 0; i < len(expanded); i++ {
		c := expanded[i]
		if c != '%' {
			literal.WriteByte(c)
			continue
		}
		if i+1 >= len(expanded) {
			return compiledLayout{}, fmt.Errorf("%w: trailing %% in %q", ErrUnsupportedDirective, directive)
		}
		i++
		switch verb := expanded[i]; verb {
		case '%':
			literal.WriteByte('%')
		case 'n':
			literal.WriteByte('\n')
		case 't':
			literal.WriteByte('\t')
		default:
			conv, ok := conversions[verb]
			if !ok {
				return compiledLayout{}, fmt.Errorf("%w: %%%c in %q", ErrUnsupportedDirective, verb, directive)
			}
			if err := flushLiteral(); err != nil {
				return compiledLayout{}, err
			}
			out.WriteString(conv.layout)
			expr.WriteString(conv.expr)
			fields |= conv.field
			parts |= conv.parts
		}
	}
	if err := flushLiteral(); err != nil {
		return compiledLayout{}, err
	}
	if fields&(fieldDate|fieldTime) == 0 {
		return compiledLayout{}, fmt.Errorf("%w: no date or time conversions in %q", ErrUnsupportedDirective, directive)
	}
	if parts&dateParts != 0 && parts&dateParts != dateParts {
		return compiledLayout{}, fmt.Errorf("%w: %q needs year, month and day", ErrUnsupportedDirective, directive)
	}
	if parts&timeParts != 0 {
		hour := parts&partHour != 0 || parts&(partHour12|partMeridiem) == partHour12|partMeridiem
		if !hour || parts&partMinute == 0 {
			return compiledLayout{}, fmt.Errorf("%w: %q needs an hour with AM/PM or a 24-hour hour, and minutes", ErrUnsupportedDirective, directive)
		}
	}
	return compiledLayout{layout: out.String(), expr: expr.String(), fields: fields, parts: parts}, nil
}

func expandComposites(directive string) string {
	var b strings.Builder
	for i := 0; i < len(directive); i++ {
		c := directive[i]
		if c != '%' || i+1 >= len(directive) {
			b.WriteByte(c)
			continue
		}
		next := directive[i+1]
		if composite, ok := compositeDirectives[next]; ok {
			b.WriteString(composite)
		} else {
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

var hour12Exprs sync.Map // expr -> *regexp.Regexp

// validHour12 reports whether no 12-hour field of input is zero. time.Parse
// accepts "00" for the 03 and 3 elements and reads it as 12.
func validHour12(expr, input string) bool {
	v, ok := hour12Exprs.Load(expr)
	if !ok {
		re, err := regexp.Compile("^" + expr + "$")
		if err != nil {
			return true
		}
		v, _ = hour12Exprs.LoadOrStore(expr, re)
	}
	m := v.(*regexp.Regexp).FindStringSubmatch(input)
	if m == nil {
		return true
	}
	for _, h := range m[1:] {
		if n, err := strconv.Atoi(h); err == nil && n == 0 {
			return false
		}
	}
	return true
}
