package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// OrbitResult is the outcome of the orbit command.
type OrbitResult struct {
	Multiplier int64 `yaml:"multiplier"`
	Modulus    int64 `yaml:"modulus"`
	X0         int64 `yaml:"x0"`
	Tail       int   `yaml:"tail"`
	Period     int   `yaml:"period"`
}

func (a *app) newOrbitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Measure tail and period of the orbit of x -> a*x mod m",
		Long: `Measure tail and period of the orbit of x -> a*x mod m starting at x0.
Every state is kept in memory until the first repetition, so use small moduli.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mult, mod := a.generator()
			mu, err := desrng.NewMultiplier(mult, mod)
			if err != nil {
				return err
			}
			x0 := a.v.GetInt64("x0")
			if x0 < 0 || x0 >= mod {
				return fmt.Errorf("x0 %d not in [0, %d): %w", x0, mod, desrng.ErrDomain)
			}

			ctx, cancel := a.analysisContext(cmd)
			defer cancel()
			start := desrng.SampleTime()
			tail, period, err := desrng.AnalyzeOrbit[int64](ctx, mu, x0)
			if err != nil {
				return err
			}
			logrus.Infof("orbit analysis of a=%d m=%d took %v", mult, mod, desrng.Elapsed(start))

			res := OrbitResult{Multiplier: mult, Modulus: mod, X0: x0, Tail: tail, Period: period}
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "tail %d\nperiod %d\n", tail, period)
			})
		},
	}
	flags := cmd.Flags()
	addGeneratorFlags(flags)
	flags.Int64("x0", 1, "Initial state")
	return cmd
}
