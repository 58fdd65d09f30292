package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"torus-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Seed     int64
	Workers  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    100,
		Height:   100,
		CellSize: 8,
		TPS:      10,
		Workers:  life.DefaultWorkers(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial generation (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
}

// Parse binds c to fs, parses args and applies the optional positional
// arguments [width [height [cell]]]. The result is validated.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := []*int{&c.Width, &c.Height, &c.CellSize}
	names := []string{"width", "height", "cell size"}
	rest := fs.Args()
	if len(rest) > len(positional) {
		return fmt.Errorf("too many arguments: %q", rest[len(positional):])
	}
	for i, arg := range rest {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		*positional[i] = v
	}
	return c.Validate()
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("height must be positive, got %d", c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a clock-derived one when the
// seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
