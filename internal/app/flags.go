package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"lifegrid/pkg/sims/life"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*o = append(*o, value)
	return nil
}

// Map turns the overrides into the form life.FromMap reads.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		parts := strings.SplitN(kv, "=", 2)
		m[parts[0]] = parts[1]
	}
	return m
}

// Config represents the command-line parameters for the shells.
type Config struct {
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
	Verbose bool
	LogFile string
	Set     Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 20, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second driving the clock")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fill the grid with a soup from this seed (0 keeps it empty)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to load at startup")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log commands and generations")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write the log to this file instead of stderr")
	fs.Var(&c.Set, "set", "simulation override in key=value form (n, interval, policy, overflow, seed_mode, density, noise_scale; repeatable)")
}

// Life builds the simulation described by the flags, logging to logger.
func (c *Config) Life(logger *log.Logger) (*life.Life, error) {
	sim := life.New(life.FromMap(c.Set.Map()))
	sim.SetLogger(logger)
	if c.Seed != 0 {
		sim.Reset(c.Seed)
	}
	if c.Pattern != "" {
		if err := sim.ApplyPattern(c.Pattern); err != nil {
			return nil, err
		}
	}
	return sim, nil
}

// Logger returns the logger selected by -v and -log. The returned closer
// releases the log file, if any.
func (c *Config) Logger() (*log.Logger, io.Closer, error) {
	if !c.Verbose {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	if c.LogFile == "" {
		return log.New(os.Stderr, "life: ", log.LstdFlags), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "life: ", log.LstdFlags), f, nil
}
