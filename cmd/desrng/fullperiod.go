package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// FullPeriodResult is the outcome of the fullperiod command.
type FullPeriodResult struct {
	Multiplier int64  `yaml:"multiplier"`
	Modulus    int64  `yaml:"modulus"`
	FullPeriod bool   `yaml:"full_period"`
	Elapsed    string `yaml:"elapsed"`
}

func (a *app) newFullPeriodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fullperiod",
		Short: "Test whether a multiplier has full period relative to a prime modulus",
		Long: `Test whether a multiplier has full period relative to a prime modulus.
The test walks up to m-1 steps; the modulus must be prime for the answer to be meaningful.
Use --timeout or Ctrl-C to abort; an aborted test exits with an error instead of printing false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mult, mod := a.generator()
			ctx, cancel := a.analysisContext(cmd)
			defer cancel()

			start := desrng.SampleTime()
			full, err := desrng.IsFullPeriod(ctx, mult, mod)
			if err != nil {
				return err
			}
			elapsed := desrng.Elapsed(start)
			logrus.Infof("full-period test of a=%d m=%d took %v", mult, mod, elapsed)

			res := FullPeriodResult{Multiplier: mult, Modulus: mod, FullPeriod: full, Elapsed: elapsed.String()}
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "%v\n", full)
			})
		},
	}
	addGeneratorFlags(cmd.Flags())
	return cmd
}
