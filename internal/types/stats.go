package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SeverityStats counts findings per severity. Safe starts true and is
// cleared as soon as any finding or warning is recorded.
type SeverityStats struct {
	counts [4]int
	Safe   bool
}

// NewSeverityStats returns empty stats with Safe set.
func NewSeverityStats() SeverityStats {
	return SeverityStats{Safe: true}
}

// Add records one finding of the given severity. Invalid severities are ignored.
func (s *SeverityStats) Add(sev Severity) {
	if !sev.Valid() {
		return
	}
	s.counts[sev-SeverityLow]++
	s.Safe = false
}

// MarkUnsafe clears the safe flag without counting a finding.
func (s *SeverityStats) MarkUnsafe() {
	s.Safe = false
}

// Count returns the number of findings recorded at sev.
func (s SeverityStats) Count(sev Severity) int {
	if !sev.Valid() {
		return 0
	}
	return s.counts[sev-SeverityLow]
}

// Total returns the number of findings across all severities.
func (s SeverityStats) Total() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// MarshalJSON writes {"critical":n,"high":n,"medium":n,"low":n,"safe":0|1}.
func (s SeverityStats) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for _, sev := range Severities {
		fmt.Fprintf(&b, "%q:%d,", sev.Key(), s.Count(sev))
	}
	safe := 0
	if s.Safe {
		safe = 1
	}
	fmt.Fprintf(&b, "\"safe\":%d}", safe)
	return b.Bytes(), nil
}

func (s *SeverityStats) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out SeverityStats
	for _, sev := range Severities {
		out.counts[sev-SeverityLow] = raw[sev.Key()]
	}
	out.Safe = raw["safe"] != 0
	*s = out
	return nil
}
