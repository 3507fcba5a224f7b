// Package report renders analysis reports for terminals, files and browsers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"codeguard/internal/types"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatSARIF    Format = "sarif"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown, FormatSARIF, FormatHTML}

// ParseFormat accepts a format name in any case. "md" is an alias of markdown.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if f == "md" {
		return FormatMarkdown, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", raw)
}

// Options tune rendering.
type Options struct {
	// Verbose includes LOW findings in text output.
	Verbose bool
	// Color enables terminal styling in text output.
	Color bool
	// ToolVersion is reported in SARIF output.
	ToolVersion string
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *types.Report, format Format, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, r, opts)
	case FormatJSON:
		return JSON(w, r)
	case FormatMarkdown:
		return Markdown(w, r)
	case FormatSARIF:
		return SARIF(w, r, opts.ToolVersion)
	case FormatHTML:
		return HTML(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// JSON writes the indented report JSON.
func JSON(w io.Writer, r *types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(r)); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return nil
}

// normalize returns a copy with nil slices replaced by empty ones so they
// encode as arrays.
func normalize(r *types.Report) *types.Report {
	out := *r
	if out.Findings == nil {
		out.Findings = []types.Finding{}
	}
	if out.Warnings == nil {
		out.Warnings = []types.Warning{}
	}
	return &out
}

func displayName(r *types.Report) string {
	if r.Filename != "" {
		return r.Filename
	}
	return "<input>"
}
