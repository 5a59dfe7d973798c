package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// PrimesResult is the outcome of the primes command.
type PrimesResult struct {
	N      int   `yaml:"n"`
	Count  int   `yaml:"count"`
	Primes []int `yaml:"primes"`
}

func (a *app) newPrimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List the primes up to n (candidate moduli)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.v.GetInt("n")
			primes, err := desrng.Sieve(n)
			if err != nil {
				return err
			}
			res := PrimesResult{N: n, Count: len(primes), Primes: primes}
			return a.emit(cmd, res, func(w io.Writer) {
				for _, p := range primes {
					fmt.Fprintln(w, p)
				}
			})
		},
	}
	cmd.Flags().Int("n", 100, "Upper bound (must be greater than 2)")
	return cmd
}
