package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type options struct {
	Timezone  string    `description:"timezone for this run, overrides TIMEZONE and the stored timezone" long:"tz"`
	Config    string    `description:"config file (default: <user config dir>/rti/default-config.toml)" long:"config"`
	JSON      bool      `description:"print one JSON object per value" long:"json"`
	Parallel  int       `description:"number of values converted concurrently" long:"parallel" default:"1"`
	LogLevel  LogLevel  `description:"log level (debug/info/warn/error)" long:"log-level" default:"warn"`
	LogFormat LogFormat `description:"log format (console/json)" long:"log-format" default:"console"`
	Version   bool      `description:"print version" long:"version" short:"v"`
}

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

var (
	version  string
	revision string
)

var errNoArguments = errors.New("Must include at least one argument!")

const longDescription = `rti converts Unix epoch time to a human readable format and vice versa.
Enter values to convert separated by a space. Integers are rendered as
MM-DD-YYYY HH:MM:SS; anything else is parsed as a date and/or time and
printed as epoch seconds. Put -- before negative epochs.`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(int(code))
}

type app struct {
	opt       options
	parser    *flags.Parser
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	now       func() time.Time
	logger    *zap.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) exitCode {
	a := &app{
		stdout:    stdout,
		stderr:    stderr,
		lookupEnv: lookupEnv,
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	parser, err := a.newParser()
	if err != nil {
		fmt.Fprintf(stderr, "[rti] %v\n", err)
		return exitError
	}
	a.parser = parser

	tokens, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, flagsErr.Message)
				return exitOK
			}
			fmt.Fprintln(stderr, flagsErr.Message)
			return exitError
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if parser.Active != nil {
		// A command ran inside ParseArgs.
		return exitOK
	}
	if a.opt.Version {
		fmt.Fprintf(stdout, "version: %s (%s)\n", version, revision)
		return exitOK
	}
	if err := a.convert(ctx, tokens); err != nil {
		if errors.Is(err, errNoArguments) {
			parser.WriteHelp(stderr)
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func (a *app) newParser() (*flags.Parser, error) {
	parser := flags.NewNamedParser("rti", flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [VALUE...] | COMMAND"
	parser.LongDescription = longDescription
	parser.SubcommandsOptional = true
	if _, err := parser.AddGroup("Application Options", "", &a.opt); err != nil {
		return nil, err
	}

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"help", "View this message", "", &helpCommand{app: a}},
		{"set-tz", "Set a configured timezone", "Stores TIMEZONE as the default for later runs.", &setTZCommand{app: a}},
		{"clear-tz", "Clear timezone config", "", &clearTZCommand{app: a}},
		{"add-token", "Add a custom parsing token", "Stores a strftime pattern (for example \"%d-%m-%y %H:%M\") tried before the built-in patterns.", &addTokenCommand{app: a}},
		{"remove-token", "Remove a custom parsing token", "No changes are made if the token does not exist.", &removeTokenCommand{app: a}},
		{"view-tokens", "See the stored custom parsing tokens", "", &viewTokensCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, err
		}
	}
	return parser, nil
}

// setup builds the logger once options are known.
func (a *app) setup() error {
	logger, err := newLogger(a.stderr, a.opt.LogLevel, a.opt.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) store() (*Store, error) {
	path := a.opt.Config
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return NewStore(path), nil
}

// storeCommand runs one config store operation and prints its message.
func (a *app) storeCommand(op func(*Store) (string, error)) error {
	if err := a.setup(); err != nil {
		return err
	}
	store, err := a.store()
	if err != nil {
		return err
	}
	msg, err := op(store)
	if err != nil {
		return err
	}
	a.logger.Debug("config updated", zap.String("path", store.Path()))
	fmt.Fprintln(a.stdout, msg)
	return nil
}

func (a *app) convert(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return errNoArguments
	}
	if err := a.setup(); err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	store, err := a.store()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		a.logger.Warn("ignoring config file", zap.Error(err))
		cfg = &Config{}
	}
	loc, err := resolveLocation(a.opt.Timezone, a.lookupEnv, cfg, a.logger)
	if err != nil {
		return err
	}

	resolver := NewResolver(loc, resolveCustomTokens(cfg, a.logger))
	resolver.Now = a.now
	outcomes, err := NewConverter(resolver).ConvertAll(ctx, tokens, a.opt.Parallel)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.stdout)
	for _, o := range outcomes {
		a.logOutcome(o)
		if a.opt.JSON {
			if err := enc.Encode(newJSONOutcome(o)); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(a.stdout, o.Line())
	}
	return nil
}

func (a *app) logOutcome(o Outcome) {
	if o.Milliseconds {
		a.logger.Warn("parsing epoch time as milliseconds", zap.String("input", o.Input))
	}
	if o.Err != nil {
		a.logger.Debug("unable to parse value", zap.String("input", o.Input), zap.Error(o.Err))
		return
	}
	a.logger.Debug("converted",
		zap.String("input", o.Input),
		zap.String("direction", string(o.Direction)),
		zap.String("stage", o.Stage),
		zap.String("pattern", o.Pattern),
	)
}

type jsonOutcome struct {
	Input        string    `json:"input"`
	Output       string    `json:"output,omitempty"`
	Direction    Direction `json:"direction"`
	Milliseconds bool      `json:"milliseconds,omitempty"`
	Stage        string    `json:"stage,omitempty"`
	Pattern      string    `json:"pattern,omitempty"`
	Error        string    `json:"error,omitempty"`
}

func newJSONOutcome(o Outcome) jsonOutcome {
	out := jsonOutcome{
		Input:        o.Input,
		Output:       o.Result,
		Direction:    o.Direction,
		Milliseconds: o.Milliseconds,
		Stage:        o.Stage,
		Pattern:      o.Pattern,
	}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}
	return out
}

type helpCommand struct {
	app *app
}

// Execute prints the top level help rather than the help of this command.
func (c *helpCommand) Execute(args []string) error {
	p := c.app.parser
	active := p.Active
	p.Active = nil
	p.WriteHelp(c.app.stdout)
	p.Active = active
	return nil
}

type setTZCommand struct {
	app  *app
	Args struct {
		Timezone string `positional-arg-name:"TIMEZONE"`
	} `positional-args:"yes" required:"yes"`
}

func (c *setTZCommand) Execute(args []string) error {
	return c.app.storeCommand(func(s *Store) (string, error) {
		return s.SetTimezone(c.Args.Timezone)
	})
}

type clearTZCommand struct {
	app *app
}

func (c *clearTZCommand) Execute(args []string) error {
	return c.app.storeCommand((*Store).ClearTimezone)
}

type addTokenCommand struct {
	app  *app
	Args struct {
		Token string `positional-arg-name:"TOKEN"`
	} `positional-args:"yes" required:"yes"`
}

func (c *addTokenCommand) Execute(args []string) error {
	return c.app.storeCommand(func(s *Store) (string, error) {
		return s.AddToken(c.Args.Token)
	})
}

type removeTokenCommand struct {
	app  *app
	Args struct {
		Token string `positional-arg-name:"TOKEN"`
	} `positional-args:"yes" required:"yes"`
}

func (c *removeTokenCommand) Execute(args []string) error {
	return c.app.storeCommand(func(s *Store) (string, error) {
		return s.RemoveToken(c.Args.Token)
	})
}

type viewTokensCommand struct {
	app *app
}

func (c *viewTokensCommand) Execute(args []string) error {
	return c.app.storeCommand(func(s *Store) (string, error) {
		tokens, err := s.Tokens()
		if err != nil {
			return "", err
		}
		if len(tokens) == 0 {
			return "", errNoCustomTokens
		}
		return strings.Join(append([]string{"Custom datetime tokens:"}, tokens...), "\n"), nil
	})
}
