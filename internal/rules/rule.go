package rules

import (
	"errors"
	"fmt"
	"regexp"

	"codeguard/internal/types"
)

// ErrInvalidRule marks a rule whose patterns could not be compiled.
var ErrInvalidRule = errors.New("invalid rule")

// Definition is the declarative form of a rule. Patterns carry their own
// flags, e.g. (?i) for case-insensitive matching.
type Definition struct {
	ID             string         `yaml:"id" json:"id"`
	Title          string         `yaml:"title" json:"title"`
	Severity       types.Severity `yaml:"severity" json:"severity"`
	Pattern        string         `yaml:"pattern" json:"pattern"`
	Exclude        string         `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Multiline      bool           `yaml:"multiline,omitempty" json:"multiline,omitempty"`
	Description    string         `yaml:"description" json:"description"`
	Recommendation string         `yaml:"recommendation" json:"recommendation"`
	Reference      string         `yaml:"reference,omitempty" json:"reference,omitempty"`
}

// Language groups the definitions for one language id.
type Language struct {
	ID    string
	Rules []Definition
}

// Rule is a compiled Definition. A rule whose patterns failed to compile
// is kept but never matches.
type Rule struct {
	Definition
	match   *regexp.Regexp
	exclude *regexp.Regexp
	err     error
}

func compileRule(def Definition) *Rule {
	r := &Rule{Definition: def}
	match, err := regexp.Compile(def.Pattern)
	if err != nil {
		r.err = fmt.Errorf("%w %s: pattern: %v", ErrInvalidRule, def.ID, err)
		return r
	}
	r.match = match
	if def.Exclude != "" {
		exclude, err := regexp.Compile(def.Exclude)
		if err != nil {
			r.err = fmt.Errorf("%w %s: exclude: %v", ErrInvalidRule, def.ID, err)
			return r
		}
		r.exclude = exclude
	}
	return r
}

// Err returns the compile error of the rule, if any.
func (r *Rule) Err() error {
	return r.err
}

// Matches reports whether text matches the rule pattern and not its
// exclusion. Faults are returned as errors and never as a match.
func (r *Rule) Matches(text string) (matched bool, err error) {
	if r.err != nil {
		return false, r.err
	}
	defer func() {
		if p := recover(); p != nil {
			matched, err = false, fmt.Errorf("rule %s: match panicked: %v", r.ID, p)
		}
	}()
	if !r.match.MatchString(text) {
		return false, nil
	}
	if r.exclude != nil && r.exclude.MatchString(text) {
		return false, nil
	}
	return true, nil
}

// Windows returns the [start,end) byte offsets of every non-overlapping
// match of a multi-line rule in text, dropping windows the exclusion matches.
func (r *Rule) Windows(text string) (windows [][2]int, err error) {
	if r.err != nil {
		return nil, r.err
	}
	defer func() {
		if p := recover(); p != nil {
			windows, err = nil, fmt.Errorf("rule %s: match panicked: %v", r.ID, p)
		}
	}()
	for _, loc := range r.match.FindAllStringIndex(text, -1) {
		if r.exclude != nil && r.exclude.MatchString(text[loc[0]:loc[1]]) {
			continue
		}
		windows = append(windows, [2]int{loc[0], loc[1]})
	}
	return windows, nil
}

// RuleSet is the ordered list of rules for one language.
type RuleSet struct {
	Language string
	Rules    []*Rule
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

// HasMultiline reports whether any rule needs whole-text evaluation.
func (s *RuleSet) HasMultiline() bool {
	for _, r := range s.Rules {
		if r.Multiline {
			return true
		}
	}
	return false
}
