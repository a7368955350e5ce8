package utils

import (
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	Size          int      `json:"size"`
	CellSize      int      `json:"cell_size"`
	TickInterval  Duration `json:"tick_interval"`
	Pattern       string   `json:"pattern"`
	RandomDensity float64  `json:"random_density"`
	Seed          int64    `json:"seed"`
	LogFile       string   `json:"log_file"`
}

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("50ms") or a number of milliseconds.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// Set implements flag.Value.
func (d *Duration) Set(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return errors.Wrapf(err, "[Duration] expected string or milliseconds, got %s", data)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:          80,
		CellSize:      2, // terminal columns per cell
		TickInterval:  Duration(50 * time.Millisecond),
		Pattern:       "empty",
		RandomDensity: 0.15,
		Seed:          42,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid dimension (cells per side)")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "terminal columns per cell")
	fs.Var(&c.TickInterval, "tick", "delay between generations while running (e.g. 50ms)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: "+strings.Join(model.PatternNames(), ", "))
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "live cell probability for random patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write debug logs to this file")
}

// FromArgs builds the configuration from defaults, then the JSON file named
// by -config (skipped when it does not exist), then the remaining flags.
func FromArgs(name string, args []string) (Config, error) {
	cfg := DefaultConfig()
	first := flag.NewFlagSet(name, flag.ContinueOnError)
	path := first.String("config", "config.json", "JSON configuration file")
	cfg.Bind(first)
	if err := first.Parse(args); err != nil {
		return cfg, err
	}

	loaded, err := LoadConfig(*path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	final := flag.NewFlagSet(name, flag.ContinueOnError)
	loaded.Bind(final)
	var setErr error
	first.Visit(func(f *flag.Flag) {
		if f.Name == "config" || setErr != nil {
			return
		}
		setErr = errors.Wrapf(final.Set(f.Name, f.Value.String()), "[FromArgs] flag -%s", f.Name)
	})
	return loaded, setErr
}

// Interval returns the tick interval as a time.Duration.
func (c Config) Interval() time.Duration { return time.Duration(c.TickInterval) }

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.TickInterval <= 0:
		return errors.Errorf("[Validate] tick_interval must be positive, got %v", c.Interval())
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if _, ok := model.LookupPattern(c.Pattern); !ok {
		return errors.Errorf("[Validate] unknown pattern %q (want one of %s)",
			c.Pattern, strings.Join(model.PatternNames(), ", "))
	}
	return nil
}
