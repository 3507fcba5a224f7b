package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeguard/internal/risk"
	"codeguard/internal/types"
)

func sampleReport() *types.Report {
	findings := []types.Finding{
		{
			RuleID:         "php.sql_injection",
			Title:          "SQL Injection",
			Severity:       types.SeverityCritical,
			Description:    "Potential SQL injection vulnerability",
			Line:           3,
			CodeSnippet:    `mysqli_query($conn, "SELECT * FROM t WHERE id=" . $_GET['id'] . "<b>");`,
			Recommendation: "Use prepared statements",
			Reference:      "A1:2017-Injection",
		},
		{
			RuleID:         "php.xss",
			Title:          "XSS Vulnerability",
			Severity:       types.SeverityHigh,
			Line:           5,
			CodeSnippet:    "echo $name;",
			Recommendation: "Escape output",
		},
		{
			RuleID:         "php.secure_randomness",
			Title:          "Secure Randomness",
			Severity:       types.SeverityLow,
			Line:           7,
			CodeSnippet:    "bin2hex(random_bytes(16));",
			Recommendation: "Verify randomness source",
		},
		{
			RuleID:   "php.xss",
			Title:    "XSS Vulnerability",
			Severity: types.SeverityHigh,
			Line:     9,
		},
	}
	r := &types.Report{
		Language:  "php",
		Filename:  "./app/index.php",
		LineCount: 10,
		Findings:  findings,
		Warnings:  []types.Warning{},
	}
	r.Stats = risk.Aggregate(r.Findings, r.Warnings)
	r.Risk = risk.Assess(r.Stats)
	return r
}

func cleanReport() *types.Report {
	r := &types.Report{Language: "python", LineCount: 2}
	r.Stats = risk.Aggregate(nil, nil)
	r.Risk = risk.Assess(r.Stats)
	return r
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"text", "JSON", " markdown", "md", "sarif", "html"} {
		_, err := ParseFormat(raw)
		assert.NoError(t, err, raw)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestTextHidesLowUnlessVerbose(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text(&out, sampleReport(), Options{}))
	assert.Contains(t, out.String(), "[CRITICAL] php.sql_injection: SQL Injection")
	assert.Contains(t, out.String(), "Line 3:")
	assert.NotContains(t, out.String(), "php.secure_randomness")
	assert.Contains(t, out.String(), "1 low severity finding(s) hidden")
	assert.Contains(t, out.String(), "Risk: CRITICAL (100/100)")
	assert.NotContains(t, out.String(), "\x1b[")

	out.Reset()
	require.NoError(t, Text(&out, sampleReport(), Options{Verbose: true}))
	assert.Contains(t, out.String(), "[LOW] php.secure_randomness")
	assert.NotContains(t, out.String(), "hidden")
}

func TestTextClean(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text(&out, cleanReport(), Options{}))
	assert.Contains(t, out.String(), "No security vulnerabilities found.")
	assert.Contains(t, out.String(), "Risk: SAFE (0/100)")
}

func TestJSONAlwaysArrays(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, JSON(&out, cleanReport()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &raw))
	assert.Equal(t, []any{}, raw["vulnerabilities"])
	assert.Equal(t, []any{}, raw["warnings"])
	assert.Equal(t, float64(1), raw["stats"].(map[string]any)["safe"])
}

func TestMarkdown(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Markdown(&out, sampleReport()))
	md := out.String()
	assert.True(t, strings.HasPrefix(md, "# codeguard report"))
	assert.Contains(t, md, "## [CRITICAL] SQL Injection")
	assert.Contains(t, md, "- OWASP: A1:2017-Injection")
	assert.Contains(t, md, "| 1 | 2 | 0 | 1 |")

	out.Reset()
	require.NoError(t, Markdown(&out, cleanReport()))
	assert.Contains(t, out.String(), "No security vulnerabilities found.")
}

func TestSARIF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, SARIF(&out, sampleReport(), "1.2.3"))

	var log sarifLog
	require.NoError(t, json.Unmarshal(out.Bytes(), &log))
	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	run := log.Runs[0]
	assert.Equal(t, "codeguard", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	assert.Len(t, run.Tool.Driver.Rules, 3)

	require.Len(t, run.Results, 4)
	levels := []string{}
	for _, res := range run.Results {
		levels = append(levels, res.Level)
		assert.Equal(t, "app/index.php", res.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	}
	assert.Equal(t, []string{"error", "error", "note", "error"}, levels)
	assert.Equal(t, 3, run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "warning", sevToLevel(types.SeverityMedium))
}

func TestHTMLReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HTML(&out, sampleReport()))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)

	assert.Equal(t, "1", strings.TrimSpace(doc.Find("#stat-critical .count").Text()))
	assert.Equal(t, "2", strings.TrimSpace(doc.Find("#stat-high .count").Text()))
	assert.Equal(t, "CRITICAL", doc.Find("#risk-level").Text())
	style, _ := doc.Find("#risk-fill").Attr("style")
	assert.Contains(t, style, "width: 100%")
	assert.Equal(t, 0, doc.Find("#clean").Length())

	cards := doc.Find(".finding")
	require.Equal(t, 4, cards.Length())
	first := cards.First()
	assert.True(t, first.Find(".badge").HasClass("badge-critical"))
	rule, _ := first.Attr("data-rule")
	assert.Equal(t, "php.sql_injection", rule)
	assert.Contains(t, first.Find("code").Text(), `"<b>");`)
	assert.Equal(t, 0, first.Find("code b").Length())
}

func TestHTMLClean(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HTML(&out, cleanReport()))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)
	assert.Equal(t, "No Security Vulnerabilities Found", doc.Find("#clean h3").Text())
	assert.Equal(t, "SAFE", doc.Find("#risk-level").Text())
	assert.Equal(t, 0, doc.Find(".finding").Length())
}

func TestRenderDispatch(t *testing.T) {
	for _, f := range Formats {
		var out bytes.Buffer
		require.NoError(t, Render(&out, sampleReport(), f, Options{}), f)
		assert.NotZero(t, out.Len())
	}
	assert.Error(t, Render(&bytes.Buffer{}, sampleReport(), Format("xml"), Options{}))
}
