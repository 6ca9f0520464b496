package main

import (
	"errors"
	"testing"
)

func TestCompileLayout(t *testing.T) {
	tests := []struct {
		directive string
		layout    string
		fields    field
	}{
		{"%m-%d-%y", "1-2-06", fieldDate},
		{"%m-%d-%Y", "1-2-2006", fieldDate},
		{"%D", "1/2/06", fieldDate},
		{"%F", "2006-1-2", fieldDate},
		{"%v", "_2-Jan-2006", fieldDate},
		{"%B %e, %Y", "January _2, 2006", fieldDate},
		{"%I:%M %p", "03:04 PM", fieldTime},
		{"%l:%M %P", "3:04 pm", fieldTime},
		{"%T", "15:04:05", fieldTime},
		{"%r", "03:04:05 PM", fieldTime},
		{"%a %d %b %Y %H:%M", "Mon 2 Jan 2006 15:04", fieldDate | fieldTime},
		{"%d.%m.%Y %H:%M %z", "2.1.2006 15:04 -0700", fieldDate | fieldTime | fieldZone},
		{"%Y%%%m%%%d", "2006%1%2", fieldDate},
		{"%m%d%Y%H%M", "1220061504", fieldDate | fieldTime},
		{"%H%n%M", "15\n04", fieldTime},
	}
	for _, tt := range tests {
		c, err := compileLayout(tt.directive)
		if err != nil {
			t.Errorf("compileLayout(%q): %v", tt.directive, err)
			continue
		}
		if c.layout != tt.layout {
			t.Errorf("compileLayout(%q) layout = %q, want %q", tt.directive, c.layout, tt.layout)
		}
		if c.fields != tt.fields {
			t.Errorf("compileLayout(%q) fields = %b, want %b", tt.directive, c.fields, tt.fields)
		}
	}
}

func TestCompileLayoutRejects(t *testing.T) {
	for _, directive := range []string{
		"",
		"hello",
		"%Q-%m",
		"%Y-%",
		"%a",
		"%Z",
		"%Y-01",
		"Mon %H:%M",
		"%H:%M PM",
		// Zone abbreviations are not parsed.
		"%Y-%m-%d %H:%M %Z",
		// Incomplete dates and times.
		"%m%H",
		"%d-%m",
		"%b %Y",
		"%H",
		"%I:%M",
		"%H:%S",
		"%F %H",
	} {
		_, err := compileLayout(directive)
		if !errors.Is(err, ErrUnsupportedDirective) {
			t.Errorf("compileLayout(%q) = %v, want ErrUnsupportedDirective", directive, err)
		}
	}
}

func TestExpandComposites(t *testing.T) {
	tests := map[string]string{
		"%D %T": "%m/%d/%y %H:%M:%S",
		"%F":    "%Y-%m-%d",
		"%%D":   "%%D",
		"50%":   "50%",
		"%R":    "%H:%M",
	}
	for in, want := range tests {
		if got := expandComposites(in); got != want {
			t.Errorf("expandComposites(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidHour12(t *testing.T) {
	c, err := compileLayout("%I:%M %p")
	if err != nil {
		t.Fatal(err)
	}
	if c.expr != `(\d{2}):\d{2} (?:AM|PM)` {
		t.Errorf("expr = %q", c.expr)
	}
	tests := map[string]bool{
		"12:30 PM": true,
		"01:30 AM": true,
		"00:30 PM": false,
		"00:30 AM": false,
	}
	for input, want := range tests {
		if got := validHour12(c.expr, input); got != want {
			t.Errorf("validHour12(%q) = %v, want %v", input, got, want)
		}
	}

	c, err = compileLayout("%F %l:%M:%S %P")
	if err != nil {
		t.Fatal(err)
	}
	if validHour12(c.expr, "2022-04-22 0:30:00 pm") {
		t.Error("accepted hour 0")
	}
	if !validHour12(c.expr, "2022-04-22 9:30:00 pm") {
		t.Error("rejected hour 9")
	}
}
