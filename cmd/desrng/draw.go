package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TomTonic/desrng"
)

// DrawResult is the outcome of the draw command.
type DrawResult struct {
	Dist       string    `yaml:"dist"`
	Seed       int64     `yaml:"seed"`
	Multiplier int64     `yaml:"multiplier"`
	Modulus    int64     `yaml:"modulus"`
	Values     []float64 `yaml:"values,omitempty"`
	Integers   []int64   `yaml:"integers,omitempty"`
	FinalState int64     `yaml:"final_state"`
}

func (a *app) newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw variates from a Lehmer generator",
		Long: `Draw variates from a Lehmer generator.
Distributions: random (0,1), uniform (lo,hi), equilikely [lo,hi] (integers, both bounds inclusive)
and exponential with the given mean. A seed of 0 draws a random seed; the final state is printed
so that a sequence can be continued with --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mult, mod := a.generator()
			seed := a.v.GetInt64("seed")
			if seed == 0 {
				seed = desrng.RandomSeed() % mod
				if seed == 0 {
					seed = 1
				}
				logrus.Infof("using random seed %d", seed)
			}
			g, err := desrng.NewLehmerWith(mult, mod, seed)
			if err != nil {
				return err
			}

			n := a.v.GetInt("n")
			if n < 0 {
				return fmt.Errorf("--n must not be negative, got %d", n)
			}
			res := DrawResult{Dist: a.v.GetString("dist"), Seed: seed, Multiplier: mult, Modulus: mod}
			lo, hi := a.v.GetFloat64("lo"), a.v.GetFloat64("hi")
			switch res.Dist {
			case "random":
				for range n {
					res.Values = append(res.Values, g.Random())
				}
			case "uniform":
				for range n {
					res.Values = append(res.Values, g.Uniform(lo, hi))
				}
			case "equilikely":
				ilo, ihi := int64(lo), int64(hi)
				if ilo > ihi {
					return fmt.Errorf("equilikely needs lo <= hi, got [%d, %d]", ilo, ihi)
				}
				for range n {
					res.Integers = append(res.Integers, g.Equilikely(ilo, ihi))
				}
			case "exponential":
				mean := a.v.GetFloat64("mean")
				if mean <= 0 {
					return fmt.Errorf("exponential needs a positive mean, got %v", mean)
				}
				for range n {
					res.Values = append(res.Values, g.Exponential(mean))
				}
			default:
				return fmt.Errorf("unknown distribution %q", res.Dist)
			}
			res.FinalState = g.State()

			return a.emit(cmd, res, func(w io.Writer) {
				for _, v := range res.Values {
					fmt.Fprintf(w, "%.10f\n", v)
				}
				for _, v := range res.Integers {
					fmt.Fprintf(w, "%d\n", v)
				}
			})
		},
	}
	flags := cmd.Flags()
	addGeneratorFlags(flags)
	flags.String("dist", "random", "Distribution (random, uniform, equilikely, exponential)")
	flags.Int("n", 10, "Number of variates to draw")
	flags.Int64("seed", desrng.DefaultSeed, "Initial state in [1, m-1]; 0 draws a random seed")
	flags.Float64("lo", 0, "Lower bound for uniform and equilikely")
	flags.Float64("hi", 1, "Upper bound for uniform and equilikely")
	flags.Float64("mean", 1, "Mean of the exponential distribution")
	return cmd
}
