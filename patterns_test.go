package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func directives(seq func(yield func(FormatPattern) bool)) []string {
	var out []string
	seq(func(p FormatPattern) bool {
		out = append(out, p.Directive)
		return true
	})
	return out
}

func TestBuiltinPatternOrder(t *testing.T) {
	wantDates := []string{"%m-%d-%y", "%m-%d-%Y", "%D", "%m/%d/%Y", "%F", "%v"}
	if diff := cmp.Diff(wantDates, directives(eachOf(DatePatterns()))); diff != "" {
		t.Errorf("date patterns mismatch (-want +got):\n%s", diff)
	}

	wantTimes := []string{
		"%I:%M %p", "%I:%M %P", "%l:%M %p", "%l:%M %P", "%H:%M",
		"%I:%M:%S %p", "%I:%M:%S %P", "%l:%M:%S %p", "%l:%M:%S %P", "%H:%M:%S",
	}
	if diff := cmp.Diff(wantTimes, directives(eachOf(TimePatterns()))); diff != "" {
		t.Errorf("time patterns mismatch (-want +got):\n%s", diff)
	}

	for _, p := range DatePatterns() {
		if p.Kind != KindDate || p.Zoned {
			t.Errorf("%q: kind %v zoned %v", p.Directive, p.Kind, p.Zoned)
		}
	}
	for _, p := range TimePatterns() {
		if p.Kind != KindTime || p.Zoned {
			t.Errorf("%q: kind %v zoned %v", p.Directive, p.Kind, p.Zoned)
		}
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	dates := DatePatterns()
	dates[0] = FormatPattern{Directive: "changed"}
	if DatePatterns()[0].Directive != "%m-%d-%y" {
		t.Error("DatePatterns exposed the registry")
	}
}

func TestComposed(t *testing.T) {
	dt := directives(DateTimePatterns())
	if len(dt) != len(datePatterns)*len(timePatterns) {
		t.Fatalf("got %d date-time patterns", len(dt))
	}
	if dt[0] != "%m-%d-%y %I:%M %p" || dt[len(dt)-1] != "%v %H:%M:%S" {
		t.Errorf("unexpected date-time order: first %q last %q", dt[0], dt[len(dt)-1])
	}
	// The date varies slowest.
	if dt[1] != "%m-%d-%y %I:%M %P" {
		t.Errorf("dt[1] = %q", dt[1])
	}

	td := directives(TimeDatePatterns())
	if len(td) != len(dt) {
		t.Fatalf("got %d time-date patterns", len(td))
	}
	if td[0] != "%I:%M %p %m-%d-%y" || td[1] != "%I:%M %p %m-%d-%Y" {
		t.Errorf("unexpected time-date order: %q, %q", td[0], td[1])
	}

	var p FormatPattern
	DateTimePatterns()(func(fp FormatPattern) bool {
		p = fp
		return false
	})
	if p.Layout != "1-2-06 03:04 PM" || p.Kind != KindDateTime {
		t.Errorf("first composed pattern = %+v", p)
	}
}

func TestComposedStopsEarly(t *testing.T) {
	n := 0
	Composed(datePatterns, timePatterns)(func(FormatPattern) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("yield called %d times, want 3", n)
	}
}

func TestNewCustomPatternKind(t *testing.T) {
	tests := []struct {
		directive string
		kind      Kind
		zoned     bool
	}{
		{"%d-%m-%y %H:%M", KindDateTime, false},
		{"%d.%m.%Y", KindDate, false},
		{"%Hh%M", KindTime, false},
		{"%Y-%m-%d %H:%M %z", KindDateTime, true},
	}
	for _, tt := range tests {
		p, err := newCustomPattern(tt.directive)
		if err != nil {
			t.Errorf("newCustomPattern(%q): %v", tt.directive, err)
			continue
		}
		if p.Kind != tt.kind || p.Zoned != tt.zoned {
			t.Errorf("newCustomPattern(%q) = kind %v zoned %v, want %v %v", tt.directive, p.Kind, p.Zoned, tt.kind, tt.zoned)
		}
	}
	if _, err := newCustomPattern("%Q"); err == nil {
		t.Error("expected error for %Q")
	}
}
