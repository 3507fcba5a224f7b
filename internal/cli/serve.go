package cli

import (
	"github.com/spf13/cobra"

	"codeguard/internal/server"
)

func newServeCommand(global *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scanning service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()
			if addr != "" {
				e.cfg.Server.Addr = addr
			}
			srv := server.New(e.analyzer, server.Options{
				Addr:           e.cfg.Server.Addr,
				RequestTimeout: e.cfg.Server.RequestTimeout,
				Logger:         e.logger,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}
