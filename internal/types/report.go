package types

// Finding is a rule match against one line of source.
type Finding struct {
	RuleID         string   `json:"rule_id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Line           int      `json:"line"`
	CodeSnippet    string   `json:"code_snippet"`
	Recommendation string   `json:"recommendation"`
	Reference      string   `json:"owasp"`
}

// Warning is a report-level notice that is not tied to a rule match.
// Warnings are not counted in SeverityStats but do mark a report unsafe.
type Warning struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Line           int    `json:"line"`
	CodeSnippet    string `json:"code_snippet"`
	Recommendation string `json:"recommendation"`
}

// RiskLevel is the label derived from a risk score.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Risk is the numeric summary of a report, score in [0,100].
type Risk struct {
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
}

// Report is the result of a single analysis.
type Report struct {
	Language  string        `json:"language"`
	Filename  string        `json:"filename"`
	LineCount int           `json:"line_count"`
	Findings  []Finding     `json:"vulnerabilities"`
	Warnings  []Warning     `json:"warnings"`
	Stats     SeverityStats `json:"stats"`
	Risk      Risk          `json:"risk"`
}

// Safe reports whether nothing was found and no warning was raised.
func (r *Report) Safe() bool {
	return r.Stats.Safe
}

// CountAtLeast returns the number of findings with severity >= min.
func (r *Report) CountAtLeast(min Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity >= min {
			n++
		}
	}
	return n
}
