package scanner

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"codeguard/internal/rules"
	"codeguard/internal/types"
)

// Scanner applies a rule set to source lines.
type Scanner struct {
	logger *zap.Logger
}

// New returns a Scanner. A nil logger discards output.
func New(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// Scan runs every rule of set against every line and returns the findings
// ordered by line, then by rule. Rules that fault are treated as a
// non-match. The only error returned is from ctx.
func (s *Scanner) Scan(ctx context.Context, lines []string, set *rules.RuleSet) ([]types.Finding, error) {
	findings := []types.Finding{}
	if set.Len() == 0 {
		return findings, nil
	}

	var starts map[int]map[int]int
	if set.HasMultiline() {
		starts = s.multilineStarts(lines, set)
	}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo := i + 1
		snippet := strings.TrimSpace(line)
		for idx, rule := range set.Rules {
			hits := 0
			if rule.Multiline {
				hits = starts[idx][lineNo]
			} else {
				ok, err := rule.Matches(line)
				if err != nil {
					s.logger.Debug("rule evaluation failed",
						zap.String("rule", rule.ID), zap.Int("line", lineNo), zap.Error(err))
				}
				if ok {
					hits = 1
				}
			}
			for ; hits > 0; hits-- {
				findings = append(findings, newFinding(rule, lineNo, snippet))
			}
		}
	}
	return findings, nil
}

// multilineStarts evaluates multi-line rules over the joined text and
// returns, per rule index, the number of windows starting on each line.
func (s *Scanner) multilineStarts(lines []string, set *rules.RuleSet) map[int]map[int]int {
	text := strings.Join(lines, "\n")
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}

	starts := make(map[int]map[int]int)
	for idx, rule := range set.Rules {
		if !rule.Multiline {
			continue
		}
		windows, err := rule.Windows(text)
		if err != nil {
			s.logger.Debug("rule evaluation failed", zap.String("rule", rule.ID), zap.Error(err))
			continue
		}
		byLine := make(map[int]int)
		for _, w := range windows {
			// 1-based number of the line containing w[0]
			line := sort.Search(len(offsets), func(i int) bool { return offsets[i] > w[0] })
			byLine[line]++
		}
		starts[idx] = byLine
	}
	return starts
}

func newFinding(rule *rules.Rule, line int, snippet string) types.Finding {
	return types.Finding{
		RuleID:         rule.ID,
		Title:          rule.Title,
		Severity:       rule.Severity,
		Description:    rule.Description,
		Line:           line,
		CodeSnippet:    snippet,
		Recommendation: rule.Recommendation,
		Reference:      rule.Reference,
	}
}
