// SPDX-License-Identifier: MIT

// Package cli implements the lvlp command line.
//
//	lvlp solve -f problem.yaml [--rule dantzig|bland] [--max-iterations N]
//	           [--require-feasible-start] [-o text|json|yaml]
//	lvlp serve [--listen :8080]
//	lvlp version
//
// Every flag can also come from the environment (LVLP_MAX_ITERATIONS=50) or
// from a YAML file passed with --config; flags win over the environment,
// which wins over the file.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlp/runner"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// Version is set at build time with -ldflags "-X .../cli.Version=...".
var Version = "dev"

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig               = "config"
	keyRule                 = "rule"
	keyMaxIterations        = "max-iterations"
	keyRequireFeasibleStart = "require-feasible-start"
	keyOutput               = "output"
	keyFile                 = "file"
	keyListen               = "listen"

	envPrefix = "LVLP"
)

// NewRootCommand builds the lvlp command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "lvlp",
		Short:         "Solve linear programs with the primal simplex method",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().String(keyConfig, "", "YAML file with default values for any flag")
	gofs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(gofs)
	cmd.PersistentFlags().AddGoFlagSet(gofs)

	cmd.AddCommand(
		newSolveCommand(v),
		newServeCommand(v),
		newVersionCommand(),
	)

	return cmd
}

// loadConfig layers flags over LVLP_* environment variables over the
// optional config file.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		klog.V(2).Infof("loaded config from %s", path)
	}

	return nil
}

// addSolverFlags registers the flags that map onto runner.Config.
func addSolverFlags(fs *pflag.FlagSet) {
	def := runner.DefaultConfig()
	fs.String(keyRule, def.Rule.String(), "pivoting rule: dantzig or bland")
	fs.Int(keyMaxIterations, def.MaxIterations, "maximum number of pivots per solve")
	fs.Bool(keyRequireFeasibleStart, def.RequireFeasibleStart, "reject problems whose slack basis is not feasible")
}

// solverConfig resolves runner.Config from v.
func solverConfig(v *viper.Viper) (runner.Config, error) {
	rule, err := simplex.ParseRule(v.GetString(keyRule))
	if err != nil {
		return runner.Config{}, err
	}
	cfg := runner.Config{
		Rule:                 rule,
		MaxIterations:        v.GetInt(keyMaxIterations),
		RequireFeasibleStart: v.GetBool(keyRequireFeasibleStart),
	}

	return cfg, cfg.Validate()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvlp version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lvlp %s\n", Version)
			return err
		},
	}
}
