package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeguard/internal/analyzer"
	"codeguard/internal/config"
	"codeguard/internal/logging"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type globalFlags struct {
	configPath string
	debug      bool
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "codeguard",
		Short: "Static security scanner for source code",
		Long: `codeguard is a rule-based static vulnerability scanner for source code.
It matches PHP, HTML, JavaScript, Python, Java, C, C++ and C# sources
against known vulnerability patterns and reports each finding with its
severity, location and remediation advice.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (optional)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newScanCommand(flags),
		newRulesCommand(flags),
		newServeCommand(flags),
		newWatchCommand(flags),
	)
	return cmd
}

// env is what every subcommand needs: the resolved config, a logger and
// an analyzer built from both.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	analyzer *analyzer.Analyzer
}

func (f *globalFlags) load() (*env, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Level(), f.debug)
	if err != nil {
		return nil, err
	}
	a := analyzer.New(analyzer.Options{
		Registry: cfg.Registry(),
		Limits: analyzer.Limits{
			MaxBytes: cfg.Limits.MaxBytes,
			MaxLines: cfg.Limits.MaxLines,
			Timeout:  cfg.Limits.Timeout,
		},
		Logger: logger,
	})
	return &env{cfg: cfg, logger: logger, analyzer: a}, nil
}
