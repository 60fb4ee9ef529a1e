// Package config resolves the process-wide numeric configuration of vecgeom.
//
// Configuration is loaded once at startup, in increasing priority:
//  1. Built-in defaults (the vector package defaults)
//  2. YAML file (vecgeom.yaml by default; a missing file is not an error)
//  3. .env file loaded into the environment (a missing file is not an error)
//  4. VECGEOM_* environment variables
//
// Command-line flags are applied on top by the caller. The result is turned
// into a single vector.Context with Config.Context and never changed afterwards.
//
// Example config.yaml:
//
//	precision: 28
//	decimal_sqrt: false
//	tolerances:
//	  zero: 1e-10
//	  orthogonal: 1e-10
//	  parallel: 1e-4
//	format:
//	  places: 3
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecgeom/vector"
)

// Environment variable names.
const (
	EnvPrecision   = "VECGEOM_PRECISION"
	EnvDecimalSqrt = "VECGEOM_DECIMAL_SQRT"
	EnvZeroTol     = "VECGEOM_ZERO_TOLERANCE"
	EnvOrthoTol    = "VECGEOM_ORTHOGONAL_TOLERANCE"
	EnvParallelTol = "VECGEOM_PARALLEL_TOLERANCE"
	EnvPlaces      = "VECGEOM_PLACES"
)

// Default file locations.
const (
	DefaultConfigFile = "vecgeom.yaml"
	DefaultEnvFile    = ".env"
)

// DefaultPlaces is the number of fractional digits the CLI prints for
// scalar results (-1 prints the full decimal).
const DefaultPlaces = -1

// ErrInvalidConfig is returned for values outside their documented range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Tolerances holds predicate tolerances.
type Tolerances struct {
	Zero       float64 `yaml:"zero"`
	Orthogonal float64 `yaml:"orthogonal"`
	Parallel   float64 `yaml:"parallel"`
}

// Format holds output formatting options.
type Format struct {
	Places int `yaml:"places"`
}

// Config is the resolved configuration.
type Config struct {
	Precision   int        `yaml:"precision"`
	DecimalSqrt bool       `yaml:"decimal_sqrt"`
	Tolerances  Tolerances `yaml:"tolerances"`
	Format      Format     `yaml:"format"`
}

// LoadDefaults returns the built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Precision:   vector.DefaultPrecision,
		DecimalSqrt: false,
		Tolerances: Tolerances{
			Zero:       vector.DefaultZeroTolerance,
			Orthogonal: vector.DefaultOrthogonalTolerance,
			Parallel:   vector.DefaultParallelTolerance,
		},
		Format: Format{Places: DefaultPlaces},
	}
}

// Load resolves defaults, then configPath, then envFile, then the environment.
// Empty paths skip the corresponding step.
func Load(configPath, envFile string) (*Config, error) {
	cfg, err := LoadFromFile(configPath)
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		// godotenv never overwrites a variable that is already set, even to
		// the empty string, while lookup ignores empty values. An exported
		// but empty VECGEOM_* variable therefore hides its .env entry and
		// the YAML or default value applies.
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile starts from defaults and overlays the YAML file at path.
// A missing file yields the defaults. Only keys present in the file override.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// Unmarshalling into the populated struct keeps defaults for absent keys.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPrecision, v, ErrInvalidConfig)
		}
		c.Precision = n
	}
	if v, ok := lookup(EnvDecimalSqrt); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDecimalSqrt, v, ErrInvalidConfig)
		}
		c.DecimalSqrt = b
	}
	for name, dst := range map[string]*float64{
		EnvZeroTol:     &c.Tolerances.Zero,
		EnvOrthoTol:    &c.Tolerances.Orthogonal,
		EnvParallelTol: &c.Tolerances.Parallel,
	} {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", name, v, ErrInvalidConfig)
			}
			*dst = f
		}
	}
	if v, ok := lookup(EnvPlaces); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPlaces, v, ErrInvalidConfig)
		}
		c.Format.Places = n
	}

	return nil
}

// lookup returns a trimmed, non-empty environment value.
func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}

// Validate checks every field against its documented range.
func (c *Config) Validate() error {
	if c.Precision < 1 || c.Precision > vector.MaxPrecision {
		return fmt.Errorf("precision %d not in [1, %d]: %w", c.Precision, vector.MaxPrecision, ErrInvalidConfig)
	}
	for name, tol := range map[string]float64{
		"zero":       c.Tolerances.Zero,
		"orthogonal": c.Tolerances.Orthogonal,
		"parallel":   c.Tolerances.Parallel,
	} {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			return fmt.Errorf("%s tolerance %v: %w", name, tol, ErrInvalidConfig)
		}
	}
	if c.Format.Places < -1 {
		return fmt.Errorf("format places %d: %w", c.Format.Places, ErrInvalidConfig)
	}

	return nil
}

// Context builds the vector.Context described by c, zero tolerance included.
// Call Validate first; out-of-range values panic inside the vector options.
func (c *Config) Context() vector.Context {
	opts := []vector.Option{
		vector.WithPrecision(c.Precision),
		vector.WithZeroTolerance(c.Tolerances.Zero),
	}
	if c.DecimalSqrt {
		opts = append(opts, vector.WithDecimalSqrt())
	}

	return vector.NewContext(opts...)
}
