package types

import (
	"fmt"
	"strings"
)

// Severity is the ordinal risk category of a rule and its findings.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Severities lists every severity, most severe first.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Valid reports whether s is one of the four declared severities.
func (s Severity) Valid() bool {
	return s >= SeverityLow && s <= SeverityCritical
}

// String returns the upper-case label, e.g. "CRITICAL".
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Key returns the lower-case label used as a stats key, e.g. "critical".
func (s Severity) Key() string {
	return strings.ToLower(s.String())
}

// ParseSeverity accepts a label in any case.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", raw)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
