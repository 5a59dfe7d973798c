package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// MultipliersResult is the outcome of the multipliers command.
type MultipliersResult struct {
	Multiplier     int64   `yaml:"multiplier"`
	Modulus        int64   `yaml:"modulus"`
	CompatibleOnly bool    `yaml:"compatible_only"`
	Count          int     `yaml:"count"`
	Multipliers    []int64 `yaml:"multipliers"`
}

// totients are only predicted for moduli that factor quickly
const totientLimit = int64(1) << 40

func (a *app) newMultipliersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multipliers",
		Short: "List all full-period multipliers relative to a prime modulus",
		Long: `List all full-period multipliers relative to a prime modulus, given one full-period multiplier.
The multipliers are printed in discovery order (a^k mod m for ascending k), not sorted.
With --compatible-only only modulus-compatible multipliers (m mod x < m div x) are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mult, mod := a.generator()
			limit := a.v.GetInt("limit")
			res := MultipliersResult{Multiplier: mult, Modulus: mod, CompatibleOnly: a.v.GetBool("compatible-only")}

			if mod > 2 && mod-1 <= totientLimit && limit == 0 {
				if phi, err := desrng.Totient(mod - 1); err == nil {
					logrus.Infof("expecting %d full-period multipliers relative to %d", phi, mod)
				}
			}

			ctx, cancel := a.analysisContext(cmd)
			defer cancel()
			start := desrng.SampleTime()
			err := desrng.WalkFullPeriodMultipliers(ctx, mult, mod, func(x int64) bool {
				if res.CompatibleOnly {
					if ok, _ := desrng.IsModulusCompatible(x, mod); !ok {
						return true
					}
				}
				res.Multipliers = append(res.Multipliers, x)
				return limit <= 0 || len(res.Multipliers) < limit
			})
			if err != nil {
				return err
			}
			res.Count = len(res.Multipliers)
			logrus.Infof("listed %d multipliers in %v", res.Count, desrng.Elapsed(start))

			return a.emit(cmd, res, func(w io.Writer) {
				for _, x := range res.Multipliers {
					fmt.Fprintln(w, x)
				}
			})
		},
	}
	flags := cmd.Flags()
	addGeneratorFlags(flags)
	flags.Int("limit", 0, "Stop after this many multipliers (0 lists all)")
	flags.Bool("compatible-only", false, "List modulus-compatible multipliers only")
	return cmd
}
