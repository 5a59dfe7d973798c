package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TomTonic/desrng"
)

// app holds the configuration shared by all subcommands of one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "desrng",
		Short: "Lehmer random number generation and full-period analysis.",
		Long: `Lehmer random number generation and full-period analysis.
Draw variates from the minimal standard generator (a=48271, m=2^31-1) or any other
multiplier/modulus pair, test multipliers for full period, list all full-period
multipliers of a prime modulus and measure tail and period of generator orbits. For example:
  desrng draw --dist exponential --mean 2 --n 5 --seed 1
  desrng fullperiod -a 16807 -m 2147483647 --timeout 1m
  desrng multipliers -a 2 -m 13 --output yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(a.v.GetString("log"))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.v.GetString("log"), err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.desrng.yaml)")
	flags.String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	flags.String("output", "text", "Output format (text, yaml)")
	flags.Duration("timeout", 0, "Abort long-running analyses after this duration (0 means no limit)")

	root.AddCommand(
		a.newDrawCmd(),
		a.newFullPeriodCmd(),
		a.newMultipliersCmd(),
		a.newOrbitCmd(),
		a.newFactorCmd(),
		a.newPrimesCmd(),
	)
	return root
}

// Execute runs the command line and exits with status 1 on error.
// An interrupt (Ctrl-C) cancels a running analysis.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		stop()
		os.Exit(1)
	}
}

// initConfig reads in the config file and environment variables (DESRNG_MODULUS etc.).
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".desrng")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("desrng")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logrus.Debugf("using config file %s", a.v.ConfigFileUsed())
	return nil
}

// analysisContext derives the context for a long-running analysis from the command's context
// and the --timeout setting.
func (a *app) analysisContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

func addGeneratorFlags(flags *pflag.FlagSet) {
	flags.Int64P("multiplier", "a", desrng.DefaultMultiplier, "Multiplier a")
	flags.Int64P("modulus", "m", desrng.DefaultModulus, "Modulus m (should be prime)")
}

func (a *app) generator() (mult, mod int64) {
	return a.v.GetInt64("multiplier"), a.v.GetInt64("modulus")
}
