package main

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
)

type Direction string

const (
	// ToDateTime renders an epoch as a date/time.
	ToDateTime Direction = "datetime"
	// ToEpoch resolves date/time text to epoch seconds.
	ToEpoch Direction = "epoch"
)

// Outcome is the result of converting one command line token.
type Outcome struct {
	Input        string
	Result       string
	Direction    Direction
	Milliseconds bool
	Stage        string
	Pattern      string
	Err          error
}

// Line renders the outcome the way the CLI prints it.
func (o Outcome) Line() string {
	if o.Err != nil {
		return fmt.Sprintf("Unable to parse value: %s", o.Input)
	}
	return fmt.Sprintf("%s => %s", o.Input, o.Result)
}

// Converter decides the direction for each token: integers are epochs to
// render, anything else is date/time text to resolve.
type Converter struct {
	resolver *Resolver
}

func NewConverter(resolver *Resolver) *Converter {
	return &Converter{resolver: resolver}
}

func (c *Converter) Convert(token string) Outcome {
	if epoch, err := strconv.ParseInt(token, 10, 64); err == nil {
		out := Outcome{Input: token, Direction: ToDateTime}
		r, err := EpochToDateTime(epoch, c.resolver.Location)
		if err != nil {
			out.Err = err
			return out
		}
		out.Result = r.Text
		out.Milliseconds = r.Milliseconds
		return out
	}

	out := Outcome{Input: token, Direction: ToEpoch}
	m, err := c.resolver.Resolve(token)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = strconv.FormatInt(m.Epoch, 10)
	out.Stage = m.Stage.String()
	out.Pattern = m.Pattern
	return out
}

// ConvertAll converts tokens with up to workers conversions in flight and
// returns the outcomes in input order. A failed token never stops the
// others; only ctx does.
func (c *Converter) ConvertAll(ctx context.Context, tokens []string, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(tokens))
	if workers <= 1 {
		for i, token := range tokens {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			outcomes[i] = c.Convert(token)
		}
		return outcomes, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, token := range tokens {
		i, token := i, token
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = c.Convert(token)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
