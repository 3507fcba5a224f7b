package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeguard/internal/report"
	"codeguard/internal/source"
	"codeguard/internal/watch"
)

func newWatchCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Rescan source files whenever they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watching %s\n", args[0])
			w := watch.New(e.logger)
			return w.Run(cmd.Context(), args[0], func(ctx context.Context, path string) {
				data, err := source.ReadFile(path, e.cfg.Limits.MaxBytes)
				if err != nil {
					e.logger.Warn("read failed", zap.String("file", path), zap.Error(err))
					return
				}
				rep, err := e.analyzer.Analyze(ctx, data, source.LanguageForFile(path), path)
				if err != nil {
					e.logger.Warn("analysis failed", zap.String("file", path), zap.Error(err))
					return
				}
				fmt.Fprintln(out, report.Summary(rep))
			})
		},
	}
}
