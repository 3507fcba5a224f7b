package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeguard/internal/risk"
	"codeguard/internal/rules"
	"codeguard/internal/scanner"
	"codeguard/internal/source"
	"codeguard/internal/types"
)

var (
	ErrNoSource       = errors.New("no source provided")
	ErrSourceTooLarge = errors.New("source exceeds byte limit")
	ErrTooManyLines   = errors.New("source exceeds line limit")
)

// Limits bound a single analysis. Zero values disable a limit.
type Limits struct {
	MaxBytes int64
	MaxLines int
	Timeout  time.Duration
}

// Options configure an Analyzer.
type Options struct {
	Registry *rules.Registry
	Limits   Limits
	Logger   *zap.Logger
}

// Analyzer performs static analysis on source text. It is safe for
// concurrent use.
type Analyzer struct {
	dispatcher *Dispatcher
	scanner    *scanner.Scanner
	limits     Limits
	logger     *zap.Logger
}

// New creates a new analyzer instance
func New(opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{
		dispatcher: NewDispatcher(opts.Registry),
		scanner:    scanner.New(logger),
		limits:     opts.Limits,
		logger:     logger,
	}
	for _, err := range a.dispatcher.Registry().Problems() {
		logger.Warn("rule problem", zap.Error(err))
	}
	return a
}

// Registry returns the rule registry in use.
func (a *Analyzer) Registry() *rules.Registry {
	return a.dispatcher.Registry()
}

// Limits returns the configured ceilings.
func (a *Analyzer) Limits() Limits {
	return a.limits
}

// Analyze scans src as language lang. filename is informational only.
// A nil src is an error; an empty one is a valid one-line source.
func (a *Analyzer) Analyze(ctx context.Context, src []byte, lang, filename string) (*types.Report, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if a.limits.MaxBytes > 0 && int64(len(src)) > a.limits.MaxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSourceTooLarge, len(src), a.limits.MaxBytes)
	}
	return a.analyze(ctx, string(src), lang, filename)
}

// AnalyzeString is Analyze for text already held as a string.
func (a *Analyzer) AnalyzeString(ctx context.Context, src, lang, filename string) (*types.Report, error) {
	if a.limits.MaxBytes > 0 && int64(len(src)) > a.limits.MaxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSourceTooLarge, len(src), a.limits.MaxBytes)
	}
	return a.analyze(ctx, src, lang, filename)
}

func (a *Analyzer) analyze(ctx context.Context, text, lang, filename string) (*types.Report, error) {
	lines := source.SplitLines(text)
	if a.limits.MaxLines > 0 && len(lines) > a.limits.MaxLines {
		return nil, fmt.Errorf("%w: %d > %d lines", ErrTooManyLines, len(lines), a.limits.MaxLines)
	}

	if a.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.limits.Timeout)
		defer cancel()
	}

	report := &types.Report{
		Language:  strings.TrimSpace(lang),
		Filename:  filename,
		LineCount: len(lines),
		Findings:  []types.Finding{},
		Warnings:  []types.Warning{},
	}

	set, warning := a.dispatcher.Dispatch(lang)
	if warning != nil {
		a.logger.Debug("unsupported language", zap.String("language", lang), zap.String("file", filename))
		report.Warnings = append(report.Warnings, *warning)
	} else {
		findings, err := a.scanner.Scan(ctx, lines, set)
		if err != nil {
			return nil, fmt.Errorf("analysis of %q aborted: %w", filename, err)
		}
		report.Findings = findings
	}

	report.Stats = risk.Aggregate(report.Findings, report.Warnings)
	report.Risk = risk.Assess(report.Stats)

	a.logger.Debug("analysis complete",
		zap.String("language", report.Language),
		zap.String("file", filename),
		zap.Int("lines", report.LineCount),
		zap.Int("findings", len(report.Findings)),
		zap.String("risk", string(report.Risk.Level)))
	return report, nil
}
