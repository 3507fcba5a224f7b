package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"codeguard/internal/types"
)

// Stylesheet is shared with the server's form page.
const Stylesheet = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f8; color: #222; }
.container { max-width: 960px; margin: 0 auto; padding: 24px; }
h1 { margin-top: 0; }
.stats { display: flex; gap: 12px; margin: 16px 0; }
.stat { flex: 1; background: #fff; border-radius: 6px; padding: 12px; text-align: center; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.stat .count { font-size: 28px; font-weight: bold; }
.meter { background: #e0e0e0; border-radius: 6px; height: 18px; overflow: hidden; }
.meter .fill { height: 100%; }
.risk-SAFE .fill, .risk-LOW .fill { background: #2e7d32; }
.risk-MEDIUM .fill { background: #f9a825; }
.risk-HIGH .fill { background: #ef6c00; }
.risk-CRITICAL .fill { background: #c62828; }
.card { background: #fff; border-radius: 6px; padding: 16px; margin: 12px 0; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.card.clean { border-left: 6px solid #2e7d32; }
.card.warning { border-left: 6px solid #f9a825; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 4px; color: #fff; font-size: 12px; font-weight: bold; }
.badge-critical { background: #c62828; }
.badge-high { background: #ef6c00; }
.badge-medium { background: #f9a825; color: #222; }
.badge-low { background: #1565c0; }
pre { background: #272822; color: #f8f8f2; padding: 8px; border-radius: 4px; overflow-x: auto; }
.muted { color: #666; font-size: 13px; }
`

var funcs = template.FuncMap{
	"badge": func(s types.Severity) string { return "badge-" + s.Key() },
	"count": func(st types.SeverityStats, key string) int {
		sev, err := types.ParseSeverity(key)
		if err != nil {
			return 0
		}
		return st.Count(sev)
	},
	"css": func(s string) template.CSS { return template.CSS(s) },
}

var reportTemplate = template.Must(template.New("report").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>codeguard report{{with .Filename}}: {{.}}{{end}}</title>
<style>{{css .Stylesheet}}</style>
</head>
<body>
<div class="container">
<h1>Security Analysis Report</h1>
<p class="muted" id="meta">{{if .Filename}}{{.Filename}} · {{end}}{{.Language}} · {{.LineCount}} lines</p>

<div class="stats">
  <div class="stat" id="stat-critical"><div class="count">{{count .Stats "critical"}}</div>Critical</div>
  <div class="stat" id="stat-high"><div class="count">{{count .Stats "high"}}</div>High</div>
  <div class="stat" id="stat-medium"><div class="count">{{count .Stats "medium"}}</div>Medium</div>
  <div class="stat" id="stat-low"><div class="count">{{count .Stats "low"}}</div>Low</div>
</div>

<div class="card">
  <strong>Risk level: <span id="risk-level">{{.Risk.Level}}</span></strong> <span class="muted">({{.Risk.Score}}/100)</span>
  <div class="meter risk-{{.Risk.Level}}"><div class="fill" id="risk-fill" style="width: {{.Risk.Score}}%"></div></div>
</div>

{{range .Warnings}}
<div class="card warning">
  <h3>{{.Title}}</h3>
  <p>{{.Description}}</p>
  <p class="muted">{{.Recommendation}}</p>
</div>
{{end}}

{{if .Stats.Safe}}
<div class="card clean" id="clean">
  <h3>No Security Vulnerabilities Found</h3>
  <p>No known vulnerability patterns were detected in this code.</p>
</div>
{{end}}

{{range .Findings}}
<div class="card finding" data-rule="{{.RuleID}}">
  <h3><span class="badge {{badge .Severity}}">{{.Severity}}</span> {{.Title}}</h3>
  <p class="muted">Line {{.Line}}{{with .Reference}} · OWASP: {{.}}{{end}}</p>
  <p>{{.Description}}</p>
  <pre><code>{{.CodeSnippet}}</code></pre>
  <p><strong>Recommendation:</strong> {{.Recommendation}}</p>
</div>
{{end}}
</div>
</body>
</html>
`))

type htmlView struct {
	*types.Report
	Stylesheet string
}

// HTML writes a standalone HTML page for r. All report text is escaped.
func HTML(w io.Writer, r *types.Report) error {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, htmlView{Report: normalize(r), Stylesheet: Stylesheet}); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
