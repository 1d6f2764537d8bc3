package config

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mad-life/pkg/core"
	"mad-life/pkg/life"
)

// DefaultStepMillis is the delay between generations while playing.
const DefaultStepMillis = 80

// Run holds the process-level settings resolved from flags, environment
// variables and defaults, in that order of precedence.
type Run struct {
	ConfigPath   string
	StepMillis   int
	WindowWidth  int
	WindowHeight int
	Margin       float64
	Workers      int
	LogLevel     string
	Addr         string

	Random  bool
	Density float64
	Seed    int64
	Rows    int
	Cols    int
	Mode    string
	Rule    string
}

// resolver defines how to resolve a single configuration value.
type resolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*Run, string) error
}

func intSetter(field func(*Run) *int) func(*Run, string) error {
	return func(r *Run, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(r) = n
		return nil
	}
}

func floatSetter(field func(*Run) *float64) func(*Run, string) error {
	return func(r *Run, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(r) = f
		return nil
	}
}

func stringSetter(field func(*Run) *string) func(*Run, string) error {
	return func(r *Run, v string) error {
		*field(r) = v
		return nil
	}
}

var resolvers = []resolver{
	{"config", "MADLIFE_CONFIG", "", "path to a game configuration file (.txt or .yaml)",
		stringSetter(func(r *Run) *string { return &r.ConfigPath })},
	{"step-ms", "MADLIFE_STEP_MS", "0", "milliseconds between generations while playing (0 uses the file or 80)",
		intSetter(func(r *Run) *int { return &r.StepMillis })},
	{"width", "MADLIFE_WIDTH", "600", "window width in pixels",
		intSetter(func(r *Run) *int { return &r.WindowWidth })},
	{"height", "MADLIFE_HEIGHT", "600", "window height in pixels",
		intSetter(func(r *Run) *int { return &r.WindowHeight })},
	{"margin", "MADLIFE_MARGIN", "60", "margin around the grid in pixels",
		floatSetter(func(r *Run) *float64 { return &r.Margin })},
	{"workers", "MADLIFE_WORKERS", "1", "goroutines computing each generation",
		intSetter(func(r *Run) *int { return &r.Workers })},
	{"log-level", "MADLIFE_LOG_LEVEL", "info", "log level (debug, info, warn, error)",
		stringSetter(func(r *Run) *string { return &r.LogLevel })},
	{"addr", "MADLIFE_ADDR", ":8080", "HTTP listen address for the server",
		stringSetter(func(r *Run) *string { return &r.Addr })},
	{"random", "MADLIFE_RANDOM", "false", "seed the grid with a random soup instead of the file's cells",
		func(r *Run, v string) error {
			b, err := strconv.ParseBool(v)
			r.Random = b
			return err
		}},
	{"density", "MADLIFE_DENSITY", "0.3", "fraction of cells alive in a random soup",
		floatSetter(func(r *Run) *float64 { return &r.Density })},
	{"seed", "MADLIFE_SEED", "42", "random soup seed",
		func(r *Run, v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			r.Seed = n
			return err
		}},
	{"rows", "MADLIFE_ROWS", "10", "grid rows when no configuration file is used",
		intSetter(func(r *Run) *int { return &r.Rows })},
	{"cols", "MADLIFE_COLS", "10", "grid columns when no configuration file is used",
		intSetter(func(r *Run) *int { return &r.Cols })},
	{"mode", "MADLIFE_MODE", "BASIC", "game mode when no configuration file is used",
		stringSetter(func(r *Run) *string { return &r.Mode })},
	{"rule", "MADLIFE_RULE", "B3/S23", "B/S rule when no configuration file is used",
		stringSetter(func(r *Run) *string { return &r.Rule })},
}

// Flags holds the registered flag values until Resolve is called.
type Flags struct {
	values map[string]*string
}

// Bind registers every setting on fs. Empty flag values fall through to the
// environment and then to the default.
func Bind(fs *flag.FlagSet) *Flags {
	f := &Flags{values: map[string]*string{}}
	for _, res := range resolvers {
		desc := fmt.Sprintf("%s (env %s, default %q)", res.description, res.envVarName, res.defaultVal)
		f.values[res.flagName] = fs.String(res.flagName, "", desc)
	}
	return f
}

// Resolve applies flag, environment and default values, in that order.
func (f *Flags) Resolve(getenv func(string) string) (Run, error) {
	var run Run
	for _, res := range resolvers {
		value := res.defaultVal
		if v := *f.values[res.flagName]; v != "" {
			value = v
		} else if v := getenv(res.envVarName); v != "" {
			value = v
		}
		if err := res.setter(&run, value); err != nil {
			return Run{}, fmt.Errorf("setting %s=%q: %w", res.flagName, value, err)
		}
	}
	if run.Workers < 1 {
		run.Workers = 1
	}
	return run, nil
}

// StepSpeed picks the generation delay: the run setting, then the file's,
// then DefaultStepMillis.
func StepSpeed(run Run, game Game) time.Duration {
	ms := DefaultStepMillis
	switch {
	case run.StepMillis > 0:
		ms = run.StepMillis
	case game.StepMillis > 0:
		ms = game.StepMillis
	}
	return time.Duration(ms) * time.Millisecond
}

// PromptPath asks for a configuration file name on out and reads it from in.
func PromptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter configuration file name: \n>> ")
	line, err := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("read configuration file name: %w", err)
	}
	return line, nil
}

// Prepare produces the game for a run: from the configuration file (asking
// for its name when none was given and no random soup was requested), with
// the seeds replaced by a random soup when Random is set.
func Prepare(run Run, in io.Reader, out io.Writer) (Game, error) {
	var game Game
	switch {
	case run.ConfigPath != "":
		g, err := Load(run.ConfigPath)
		if err != nil {
			return Game{}, err
		}
		game = g
	case run.Random:
		mode, err := life.ParseMode(run.Mode)
		if err != nil {
			return Game{}, err
		}
		game = Game{Rows: run.Rows, Cols: run.Cols, Mode: mode, Rule: run.Rule}
		if err := game.Validate(); err != nil {
			return Game{}, err
		}
	default:
		path, err := PromptPath(in, out)
		if err != nil {
			return Game{}, err
		}
		g, err := Load(path)
		if err != nil {
			return Game{}, err
		}
		game = g
	}
	if run.Random {
		game.Seeds = core.RandomSeeds(run.Seed, game.Rows, game.Cols, game.Mode, run.Density)
	}
	return game, nil
}
