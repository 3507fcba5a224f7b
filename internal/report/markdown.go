package report

import (
	"fmt"
	"io"
	"strings"

	"codeguard/internal/types"
)

// Markdown writes the report as a Markdown document.
func Markdown(w io.Writer, r *types.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# codeguard report\n\n")
	fmt.Fprintf(&b, "- File: `%s`\n", displayName(r))
	fmt.Fprintf(&b, "- Language: `%s`\n", r.Language)
	fmt.Fprintf(&b, "- Lines: `%d`\n", r.LineCount)
	fmt.Fprintf(&b, "- Risk: **%s** (%d/100)\n\n", r.Risk.Level, r.Risk.Score)

	b.WriteString("| Critical | High | Medium | Low |\n")
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n",
		r.Stats.Count(types.SeverityCritical),
		r.Stats.Count(types.SeverityHigh),
		r.Stats.Count(types.SeverityMedium),
		r.Stats.Count(types.SeverityLow))

	for _, warn := range r.Warnings {
		fmt.Fprintf(&b, "> **%s**: %s. %s.\n\n", warn.Title, warn.Description, warn.Recommendation)
	}

	if len(r.Findings) == 0 {
		if len(r.Warnings) == 0 {
			b.WriteString("No security vulnerabilities found.\n")
		}
	} else {
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "## [%s] %s\n\n", f.Severity, f.Title)
			fmt.Fprintf(&b, "- Rule: `%s`\n", f.RuleID)
			fmt.Fprintf(&b, "- Line: %d\n", f.Line)
			if f.Reference != "" {
				fmt.Fprintf(&b, "- OWASP: %s\n", f.Reference)
			}
			fmt.Fprintf(&b, "- Description: %s\n", f.Description)
			fmt.Fprintf(&b, "- Recommendation: %s\n\n", f.Recommendation)
			fmt.Fprintf(&b, "```\n%s\n```\n\n", f.CodeSnippet)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
