package treeslicer

import (
	"fmt"
	"strconv"
	"strings"
)

// Config configures a slicer. A config is fixed once a slicer has been
// created from it.
type Config struct {
	// ID names the slicer in traces and in published events.
	ID string
	// Dimension is the length of the vector of slice times.
	Dimension int
	// Inclusive puts the anchor itself as the last entry of the vector.
	Inclusive bool
	// To is the anchor where slices end.
	To Anchor
	// BreakAt selects event based slicing. None means equidistant slices.
	BreakAt BreakCriterion
	// MinorDimension is an optional stride; if > 0, Dimension has to be a
	// multiple of it.
	MinorDimension int
}

// DefaultConfig returns a config for an inclusive, equidistant slicing up
// to the tMRCA. Dimension has to be set by clients.
func DefaultConfig() Config {
	return Config{
		Inclusive: true,
		To:        TMRCA,
		BreakAt:   None,
	}
}

func (cfg Config) normalized() Config {
	cfg.ID = strings.TrimSpace(cfg.ID)
	if cfg.ID == "" {
		cfg.ID = "treeslicer"
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.To < Present || cfg.To > TMRCA {
		return fmt.Errorf("%w: unknown anchor point (%d) for input 'to' of %s",
			ErrInvalidConfig, int(cfg.To), cfg.ID)
	}
	if cfg.BreakAt < None || cfg.BreakAt > BranchSamples {
		return fmt.Errorf("%w: unknown break criterion (%d) for input 'breakAt' of %s",
			ErrInvalidConfig, int(cfg.BreakAt), cfg.ID)
	}
	if cfg.Dimension < 2 {
		return fmt.Errorf("%w: dimension of %s must be at least 2, is %d",
			ErrInvalidConfig, cfg.ID, cfg.Dimension)
	}
	if cfg.MinorDimension < 0 {
		return fmt.Errorf("%w: minor dimension stride of %s must not be negative, is %d",
			ErrInvalidConfig, cfg.ID, cfg.MinorDimension)
	}
	if cfg.MinorDimension > 0 && cfg.Dimension%cfg.MinorDimension > 0 {
		return fmt.Errorf("%w: dimension %d of %s must be divisible by stride %d",
			ErrInvalidConfig, cfg.Dimension, cfg.ID, cfg.MinorDimension)
	}
	return nil
}

// Options is the string-keyed configuration surface of a slicer, as found in
// host configuration files or command lines. Recognized keys are
//
//	id, to, inclusive, dimension, breakAt, minorDimensionStride
//
// Keys are matched case-insensitively.
type Options map[string]string

// Option keys.
const (
	OptID             = "id"
	OptTo             = "to"
	OptInclusive      = "inclusive"
	OptDimension      = "dimension"
	OptBreakAt        = "breakat"
	OptMinorDimension = "minordimensionstride"
)

// ConfigFromOptions creates a validated config from string options. Missing
// options take their values from DefaultConfig; dimension is required.
func ConfigFromOptions(opts Options) (Config, error) {
	cfg := DefaultConfig()
	seen := false
	for key, value := range opts {
		var err error
		switch strings.ToLower(strings.TrimSpace(key)) {
		case OptID:
			cfg.ID = value
		case OptTo:
			cfg.To, err = ParseAnchor(value)
		case OptInclusive:
			cfg.Inclusive, err = parseBool(key, value)
		case OptDimension:
			cfg.Dimension, err = parseInt(key, value)
			seen = true
		case OptBreakAt:
			cfg.BreakAt, err = ParseBreakCriterion(value)
		case OptMinorDimension:
			cfg.MinorDimension, err = parseInt(key, value)
		default:
			err = fmt.Errorf("%w: unknown option %q", ErrInvalidConfig, key)
		}
		if err != nil {
			return cfg, err
		}
	}
	if !seen {
		return cfg, fmt.Errorf("%w: option 'dimension' is required", ErrInvalidConfig)
	}
	return cfg.normalized(), cfg.validate()
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: option %q expects a boolean, is %q", ErrInvalidConfig, key, value)
	}
	return b, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: option %q expects an integer, is %q", ErrInvalidConfig, key, value)
	}
	return n, nil
}
