package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vecgeom/internal/config"
	"github.com/katalvlaran/vecgeom/vector"
)

// app carries the configuration resolved once in PersistentPreRunE.
type app struct {
	cfg *config.Config
	ctx vector.Context
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		envFile     string
		precision   int
		decimalSqrt bool
		places      int
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "vecgeom",
		Short: "Exact-precision Euclidean vector geometry",
		Long: `vecgeom evaluates vector operations in decimal arithmetic.

Vectors are written as comma-separated coordinates, optionally wrapped in
brackets: [1.5,-2,3]. A bare argument starting with '-' must follow "--".

Configuration priority (highest first): flags, VECGEOM_* environment,
the --env-file, the --config YAML file, built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if flags.Changed("decimal-sqrt") {
				cfg.DecimalSqrt = decimalSqrt
			}
			if flags.Changed("places") {
				cfg.Format.Places = places
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.ctx = cfg.Context()

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", getEnvStr("VECGEOM_CONFIG", config.DefaultConfigFile), "YAML config file")
	pf.StringVar(&envFile, "env-file", getEnvStr("VECGEOM_ENV_FILE", config.DefaultEnvFile), ".env file")
	pf.IntVar(&precision, "precision", vector.DefaultPrecision, "significant digits kept by arithmetic")
	pf.BoolVar(&decimalSqrt, "decimal-sqrt", false, "compute square roots in decimal instead of float64")
	pf.IntVar(&places, "places", config.DefaultPlaces, "fractional digits for scalar output (-1 = full)")

	root.AddCommand(
		a.binaryCmd("plus", "Add two vectors", vector.Vector.Plus),
		a.binaryCmd("minus", "Subtract B from A", vector.Vector.Minus),
		a.scaleCmd(),
		a.magnitudeCmd(),
		a.normalizeCmd(),
		a.dotCmd(),
		a.angleCmd(),
		a.checkCmd(),
		a.demoCmd(),
		versionCmd(),
	)

	return root
}

func (a *app) binaryCmd(name, short string, op func(v, w vector.Vector) (vector.Vector, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, w, err := a.parsePair(args)
			if err != nil {
				return err
			}
			res, err := op(v, w)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale A C",
		Short: "Multiply a vector by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			c, err := decimal.NewFromString(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("scale: factor %q: %w", args[1], vector.ErrInvalidInput)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Scale(c))

			return nil
		},
	}
}

func (a *app) magnitudeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude A",
		Short: "Print the Euclidean length of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatDecimal(v.Magnitude()))

			return nil
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize A",
		Short: "Print the unit vector in the direction of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			u, err := v.Normalized()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)

			return nil
		},
	}
}

func (a *app) dotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "Print the inner product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, w, err := a.parsePair(args)
			if err != nil {
				return err
			}
			d, err := v.Dot(w)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatDecimal(d))

			return nil
		},
	}
}

func (a *app) angleCmd() *cobra.Command {
	var degrees bool
	cmd := &cobra.Command{
		Use:   "angle A B",
		Short: "Print the angle between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, w, err := a.parsePair(args)
			if err != nil {
				return err
			}
			unit := vector.Radians
			if degrees {
				unit = vector.Degrees
			}
			theta, err := v.AngleWith(w, unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatFloat(theta))

			return nil
		},
	}
	cmd.Flags().BoolVar(&degrees, "degrees", false, "report degrees instead of radians")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check A B",
		Short: "Report zero, orthogonal and parallel predicates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, w, err := a.parsePair(args)
			if err != nil {
				return err
			}
			// The zero tolerance is bound into a.ctx, so IsZero and the
			// parallel check agree on which operands are zero.
			tol := a.cfg.Tolerances
			zv, zw := v.IsZero(), w.IsZero()
			orth, err := v.IsOrthogonalWithin(w, tol.Orthogonal)
			if err != nil {
				return err
			}
			par, err := v.IsParallelWithin(w, tol.Parallel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zero(A): %t\n", zv)
			fmt.Fprintf(out, "zero(B): %t\n", zw)
			fmt.Fprintf(out, "orthogonal: %t\n", orth)
			fmt.Fprintf(out, "parallel: %t\n", par)

			return nil
		},
	}
}

// demoCmd prints a fixed set of sample computations.
func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runDemo(out io.Writer) error {
	v, err := a.ctx.New(1, 2, 3)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)

	pairs := []struct {
		name string
		op   func(v, w vector.Vector) (vector.Vector, error)
		a, b []float64
	}{
		{"plus", vector.Vector.Plus, []float64{8.218, -9.341}, []float64{-1.129, 2.111}},
		{"minus", vector.Vector.Minus, []float64{7.119, 8.215}, []float64{-8.223, 0.878}},
	}
	for _, p := range pairs {
		x, err := a.ctx.New(p.a...)
		if err != nil {
			return err
		}
		y, err := a.ctx.New(p.b...)
		if err != nil {
			return err
		}
		res, err := p.op(x, y)
		if err != nil {
			return fmt.Errorf("demo %s: %w", p.name, err)
		}
		fmt.Fprintln(out, res)
	}

	s, err := a.ctx.New(1.671, -1.012, -0.318)
	if err != nil {
		return err
	}
	scaled, err := s.TimesScalar(7.41)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, scaled)

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Overrides the root hook: version must work without a valid config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vecgeom v%s (%s)\n", version, commit)
		},
	}
}

func (a *app) parsePair(args []string) (vector.Vector, vector.Vector, error) {
	v, err := a.parseVector(args[0])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	w, err := a.parseVector(args[1])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}

	return v, w, nil
}

// parseVector accepts "1,2,3", "[1,2,3]" or "(1,2,3)".
func (a *app) parseVector(s string) (vector.Vector, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '[' && s[len(s)-1] == ']' || s[0] == '(' && s[len(s)-1] == ')') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return a.ctx.FromStrings()
	}

	return a.ctx.FromStrings(strings.Split(s, ",")...)
}

func (a *app) formatDecimal(d decimal.Decimal) string {
	if a.cfg.Format.Places < 0 {
		return d.String()
	}

	return d.StringFixed(int32(a.cfg.Format.Places))
}

func (a *app) formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', a.cfg.Format.Places, 64)
}

// getEnvStr returns the environment value for key or defaultVal.
func getEnvStr(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return defaultVal
}
