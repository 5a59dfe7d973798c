package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// FactorResult is the outcome of the factor command.
type FactorResult struct {
	Multiplier int64 `yaml:"multiplier"`
	Modulus    int64 `yaml:"modulus"`
	Q          int64 `yaml:"q"`
	R          int64 `yaml:"r"`
	Compatible bool  `yaml:"compatible"`
}

func (a *app) newFactorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Print the approximate factorization m = a*q + r",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mult, mod := a.generator()
			q, r, err := desrng.ApproxFactor(mult, mod)
			if err != nil {
				return err
			}
			res := FactorResult{Multiplier: mult, Modulus: mod, Q: q, R: r, Compatible: r < q}
			return a.emit(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "q %d\nr %d\ncompatible %v\n", q, r, res.Compatible)
			})
		},
	}
	addGeneratorFlags(cmd.Flags())
	return cmd
}
