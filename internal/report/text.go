package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeguard/internal/types"
)

var (
	styleCritical = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9"))
	styleHigh     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleMedium   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleLow      = lipgloss.NewStyle().Faint(true)
	styleSafe     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFaint    = lipgloss.NewStyle().Faint(true)
)

func severityStyle(sev types.Severity) lipgloss.Style {
	switch sev {
	case types.SeverityCritical:
		return styleCritical
	case types.SeverityHigh:
		return styleHigh
	case types.SeverityMedium:
		return styleMedium
	default:
		return styleLow
	}
}

func riskStyle(level types.RiskLevel) lipgloss.Style {
	switch level {
	case types.RiskCritical:
		return styleCritical
	case types.RiskHigh:
		return styleHigh
	case types.RiskMedium:
		return styleMedium
	case types.RiskLow:
		return styleLow
	default:
		return styleSafe
	}
}

// Text writes a human-readable report. LOW findings are only shown when
// opts.Verbose is set; they are always counted in the summary.
func Text(w io.Writer, r *types.Report, opts Options) error {
	paint := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %d lines)\n\n", displayName(r), r.Language, r.LineCount)

	for _, warn := range r.Warnings {
		fmt.Fprintf(&b, "%s %s\n", paint(styleWarning, "[WARNING]"), warn.Title)
		fmt.Fprintf(&b, "  %s\n", warn.Description)
		fmt.Fprintf(&b, "  %s\n\n", paint(styleFaint, warn.Recommendation))
	}

	hidden := 0
	for _, f := range r.Findings {
		if !opts.Verbose && f.Severity == types.SeverityLow {
			hidden++
			continue
		}
		label := fmt.Sprintf("[%s]", f.Severity)
		fmt.Fprintf(&b, "%s %s: %s\n", paint(severityStyle(f.Severity), label), f.RuleID, f.Title)
		fmt.Fprintf(&b, "  Line %d: %s\n", f.Line, f.CodeSnippet)
		if opts.Verbose {
			fmt.Fprintf(&b, "  %s\n", f.Description)
		}
		fmt.Fprintf(&b, "  %s\n\n", paint(styleFaint, "fix: "+f.Recommendation))
	}

	if r.Stats.Safe {
		fmt.Fprintf(&b, "%s\n", paint(styleSafe, "No security vulnerabilities found."))
	} else {
		fmt.Fprintf(&b, "critical: %d  high: %d  medium: %d  low: %d\n",
			r.Stats.Count(types.SeverityCritical),
			r.Stats.Count(types.SeverityHigh),
			r.Stats.Count(types.SeverityMedium),
			r.Stats.Count(types.SeverityLow))
	}
	fmt.Fprintf(&b, "Risk: %s (%d/100)\n", paint(riskStyle(r.Risk.Level), string(r.Risk.Level)), r.Risk.Score)
	if hidden > 0 {
		fmt.Fprintf(&b, "%d low severity finding(s) hidden, use --verbose to show\n", hidden)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary is a one-line digest used by watch mode.
func Summary(r *types.Report) string {
	return fmt.Sprintf("%s: %d finding(s), critical=%d high=%d medium=%d low=%d, risk %s (%d)",
		displayName(r), len(r.Findings),
		r.Stats.Count(types.SeverityCritical),
		r.Stats.Count(types.SeverityHigh),
		r.Stats.Count(types.SeverityMedium),
		r.Stats.Count(types.SeverityLow),
		r.Risk.Level, r.Risk.Score)
}
