package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConvert(t *testing.T) {
	c := NewConverter(newTestResolver(mustLoad(t, "America/Chicago")))

	tests := []struct {
		token string
		want  Outcome
		line  string
	}{
		{
			token: "1641794400",
			want:  Outcome{Input: "1641794400", Result: "01-10-2022 00:00:00", Direction: ToDateTime},
			line:  "1641794400 => 01-10-2022 00:00:00",
		},
		{
			token: "1668060000000",
			want:  Outcome{Input: "1668060000000", Result: "11-10-2022 00:00:00", Direction: ToDateTime, Milliseconds: true},
			line:  "1668060000000 => 11-10-2022 00:00:00",
		},
		{
			token: "1-May-1993 4:50 AM",
			want:  Outcome{Input: "1-May-1993 4:50 AM", Result: "736249800", Direction: ToEpoch, Stage: "datetime", Pattern: "%v %l:%M %p"},
			line:  "1-May-1993 4:50 AM => 736249800",
		},
		{
			token: "+736249800",
			want:  Outcome{Input: "+736249800", Result: "05-01-1993 04:50:00", Direction: ToDateTime},
			line:  "+736249800 => 05-01-1993 04:50:00",
		},
	}
	for _, tt := range tests {
		got := c.Convert(tt.token)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("Convert(%q) mismatch (-want +got):\n%s", tt.token, diff)
		}
		if line := got.Line(); line != tt.line {
			t.Errorf("Convert(%q).Line() = %q, want %q", tt.token, line, tt.line)
		}
	}
}

func TestConvertFailures(t *testing.T) {
	c := NewConverter(newTestResolver(time.UTC))

	got := c.Convert("gibberish")
	if !errors.Is(got.Err, ErrInvalidPattern) || got.Direction != ToEpoch {
		t.Errorf("Convert(gibberish) = %+v", got)
	}
	if line := got.Line(); line != "Unable to parse value: gibberish" {
		t.Errorf("Line() = %q", line)
	}

	// Milliseconds far past year 9999 still render.
	got = c.Convert("999999999999999999")
	if got.Err != nil || !got.Milliseconds || got.Direction != ToDateTime || got.Result == "" {
		t.Errorf("Convert(999999999999999999) = %+v", got)
	}

	// Too large for int64, so it is text and no pattern matches.
	got = c.Convert("99999999999999999999")
	if !errors.Is(got.Err, ErrInvalidPattern) {
		t.Errorf("Convert(99999999999999999999) = %+v", got)
	}
}

func TestConvertAll(t *testing.T) {
	c := NewConverter(newTestResolver(mustLoad(t, "America/Chicago")))

	var tokens []string
	for i := 0; i < 50; i++ {
		tokens = append(tokens, fmt.Sprint(1641794400+int64(i)*3600), "bogus", "5/1/93 4:50 am")
	}

	sequential, err := c.ConvertAll(context.Background(), tokens, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sequential) != len(tokens) {
		t.Fatalf("got %d outcomes for %d tokens", len(sequential), len(tokens))
	}
	for i, o := range sequential {
		if o.Input != tokens[i] {
			t.Fatalf("outcome %d is for %q, want %q", i, o.Input, tokens[i])
		}
	}

	parallel, err := c.ConvertAll(context.Background(), tokens, 8)
	if err != nil {
		t.Fatal(err)
	}
	lines := func(outcomes []Outcome) []string {
		out := make([]string, len(outcomes))
		for i, o := range outcomes {
			out[i] = o.Line()
		}
		return out
	}
	if diff := cmp.Diff(sequential, parallel, cmpopts.IgnoreFields(Outcome{}, "Err")); diff != "" {
		t.Errorf("parallel outcomes differ (-sequential +parallel):\n%s", diff)
	}
	if diff := cmp.Diff(lines(sequential), lines(parallel)); diff != "" {
		t.Errorf("parallel lines differ (-sequential +parallel):\n%s", diff)
	}
}

func TestConvertAllCanceled(t *testing.T) {
	c := NewConverter(newTestResolver(time.UTC))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{0, 1, 4} {
		_, err := c.ConvertAll(ctx, []string{"0", "1"}, workers)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: got %v, want context.Canceled", workers, err)
		}
	}
}
