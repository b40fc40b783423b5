package bench

import "fmt"

// Config describes one benchmark sweep. The zero value is invalid; start
// from DefaultConfig.
type Config struct {
	InitPoints   int     `mapstructure:"initpoints"`
	DeltaPoints  int     `mapstructure:"deltapoints"`
	Increments   int     `mapstructure:"increments"`
	Runs         int     `mapstructure:"runs"`
	MinPoints    int     `mapstructure:"minpoints"`
	MaxTolerance float64 `mapstructure:"maxtolerance"`
	MaxVariation float64 `mapstructure:"maxvariation"`
	MaxGroup     int     `mapstructure:"maxgroup"`
	Seed         int64   `mapstructure:"seed"`
}

// DefaultConfig returns the full sweep: 100 sizes from 100 points in steps
// of 50, 1000 runs each.
func DefaultConfig() Config {
	return Config{
		InitPoints:   100,
		DeltaPoints:  50,
		Increments:   100,
		Runs:         1000,
		MinPoints:    0,
		MaxTolerance: 3,
		MaxVariation: 1.5,
		MaxGroup:     10,
		Seed:         1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.InitPoints < 1:
		return fmt.Errorf("%w: initpoints must be ≥ 1, got %d", ErrBadConfig, c.InitPoints)
	case c.DeltaPoints < 0:
		return fmt.Errorf("%w: deltapoints must be ≥ 0, got %d", ErrBadConfig, c.DeltaPoints)
	case c.Increments < 1:
		return fmt.Errorf("%w: increments must be ≥ 1, got %d", ErrBadConfig, c.Increments)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be ≥ 1, got %d", ErrBadConfig, c.Runs)
	case c.MaxTolerance < 0:
		return fmt.Errorf("%w: maxtolerance must be ≥ 0, got %g", ErrBadConfig, c.MaxTolerance)
	case c.MaxVariation < 0:
		return fmt.Errorf("%w: maxvariation must be ≥ 0, got %g", ErrBadConfig, c.MaxVariation)
	case c.MaxGroup < 1:
		return fmt.Errorf("%w: maxgroup must be ≥ 1, got %d", ErrBadConfig, c.MaxGroup)
	}

	return nil
}

// Sizes lists the batch sizes of the sweep, MinPoints filter applied.
func (c Config) Sizes() []int {
	var out []int
	for k := 0; k < c.Increments; k++ {
		n := c.InitPoints + k*c.DeltaPoints
		if n < c.MinPoints {
			continue
		}
		out = append(out, n)
	}

	return out
}
