// Package risk folds findings into severity counts and a risk score.
package risk

import "codeguard/internal/types"

var weights = map[types.Severity]int{
	types.SeverityCritical: 100,
	types.SeverityHigh:     50,
	types.SeverityMedium:   25,
	types.SeverityLow:      10,
}

// Aggregate counts findings per severity. Warnings are not counted but
// still clear the safe flag.
func Aggregate(findings []types.Finding, warnings []types.Warning) types.SeverityStats {
	stats := types.NewSeverityStats()
	for _, f := range findings {
		stats.Add(f.Severity)
	}
	if len(findings) > 0 || len(warnings) > 0 {
		stats.MarkUnsafe()
	}
	return stats
}

// Score returns the weighted severity sum clamped to [0,100].
func Score(stats types.SeverityStats) int {
	score := 0
	for sev, w := range weights {
		score += w * stats.Count(sev)
	}
	if score > 100 {
		return 100
	}
	return score
}

// Level maps a score to its risk label.
func Level(score int) types.RiskLevel {
	switch {
	case score > 80:
		return types.RiskCritical
	case score > 60:
		return types.RiskHigh
	case score > 40:
		return types.RiskMedium
	case score > 20:
		return types.RiskLow
	default:
		return types.RiskSafe
	}
}

// Assess returns the score and level for stats.
func Assess(stats types.SeverityStats) types.Risk {
	score := Score(stats)
	return types.Risk{Score: score, Level: Level(score)}
}
