package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"codeguard/internal/fetch"
	"codeguard/internal/report"
	"codeguard/internal/source"
	"codeguard/internal/types"
)

// ErrThreshold is returned by scan when --fail-on is exceeded.
var ErrThreshold = errors.New("findings at or above threshold")

type scanFlags struct {
	lang    string
	format  string
	verbose bool
	failOn  string
	out     string
}

func newScanCommand(global *globalFlags) *cobra.Command {
	flags := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan [path|url|-]",
		Short: "Scan a source file for vulnerabilities",
		Long: `Scan a local file, an http(s) URL or standard input ("-" or no argument).
The language is detected from the file extension unless --lang is given;
standard input requires --lang.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "-"
			if len(args) == 1 {
				target = args[0]
			}
			return runScan(cmd, global, flags, target)
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "Language id, overrides extension detection")
	cmd.Flags().StringVarP(&flags.format, "format", "o", "text", "Output format: text, json, markdown, sarif, html")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "", "Exit non-zero when a finding at or above this severity exists")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write the report to a file instead of stdout")
	return cmd
}

func runScan(cmd *cobra.Command, global *globalFlags, flags *scanFlags, target string) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	var threshold types.Severity
	if flags.failOn != "" {
		if threshold, err = types.ParseSeverity(flags.failOn); err != nil {
			return fmt.Errorf("invalid --fail-on: %w", err)
		}
	}

	e, err := global.load()
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	data, name, err := readTarget(cmd, e, target)
	if err != nil {
		return err
	}
	lang := flags.lang
	if lang == "" {
		if name == "" {
			return errors.New("--lang is required when reading standard input")
		}
		lang = source.LanguageForFile(name)
	}

	rep, err := e.analyzer.Analyze(cmd.Context(), data, lang, name)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	color := false
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	} else if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	opts := report.Options{Verbose: flags.verbose, Color: color, ToolVersion: Version}
	if err := report.Render(w, rep, format, opts); err != nil {
		return err
	}

	if threshold.Valid() {
		if n := rep.CountAtLeast(threshold); n > 0 {
			return fmt.Errorf("%w: %d finding(s) at or above %s", ErrThreshold, n, threshold)
		}
	}
	return nil
}

// readTarget returns the bytes to scan and the name used for language
// detection. The name is empty for standard input.
func readTarget(cmd *cobra.Command, e *env, target string) ([]byte, string, error) {
	switch {
	case target == "-":
		data, err := source.ReadAll(cmd.InOrStdin(), e.cfg.Limits.MaxBytes)
		return data, "", err
	case fetch.IsURL(target):
		client := fetch.NewClient(e.cfg.Limits.MaxBytes, e.logger)
		client.Token = os.Getenv("CODEGUARD_FETCH_TOKEN")
		file, err := client.Fetch(cmd.Context(), target)
		if err != nil {
			return nil, "", err
		}
		return file.Data, file.Name, nil
	default:
		data, err := source.ReadFile(target, e.cfg.Limits.MaxBytes)
		return data, target, err
	}
}
