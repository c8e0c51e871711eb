// SPDX-License-Identifier: MIT

package cli

import (
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvlp/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/solve, /healthz and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := solverConfig(v)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			s, err := server.New(server.Config{
				Listen: v.GetString(keyListen),
				Solver: cfg,
			}, reg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return s.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String(keyListen, server.DefaultListen, "listen address")
	addSolverFlags(cmd.Flags())

	return cmd
}
