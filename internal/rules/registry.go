package rules

import (
	"fmt"
	"strings"

	"codeguard/internal/types"
)

// Override adjusts a single rule by id.
type Override struct {
	Disabled bool   `yaml:"disabled"`
	Severity string `yaml:"severity"`
}

// Options control how a Registry is built.
type Options struct {
	Overrides      map[string]Override
	Custom         []Language
	IncludeSecrets bool
}

// Registry maps language ids to compiled rule sets. It is read-only once
// built and safe for concurrent use.
type Registry struct {
	sets     map[string]*RuleSet
	order    []string
	problems []error
}

// Default builds a registry from the builtin rules with no overrides.
func Default() *Registry {
	return NewRegistry(Builtin(), Options{})
}

// NewRegistry compiles langs, merges custom rules and applies overrides.
// Bad rules are recorded in Problems instead of failing the build.
func NewRegistry(langs []Language, opts Options) *Registry {
	reg := &Registry{sets: make(map[string]*RuleSet)}

	defs := make(map[string][]Definition)
	seen := make(map[string]bool)
	add := func(lang string, def Definition) {
		if _, ok := defs[lang]; !ok {
			reg.order = append(reg.order, lang)
			defs[lang] = nil
		}
		if def.ID == "" {
			return
		}
		if seen[def.ID] {
			reg.problems = append(reg.problems, fmt.Errorf("%w %s: duplicate id", ErrInvalidRule, def.ID))
			return
		}
		seen[def.ID] = true
		defs[lang] = append(defs[lang], def)
	}

	for _, lang := range langs {
		id := NormalizeLanguage(lang.ID)
		add(id, Definition{})
		for _, def := range lang.Rules {
			add(id, def)
		}
	}
	for _, lang := range opts.Custom {
		id := NormalizeLanguage(lang.ID)
		if id == "" {
			reg.problems = append(reg.problems, fmt.Errorf("%w: custom rule without language", ErrInvalidRule))
			continue
		}
		add(id, Definition{})
		for i, def := range lang.Rules {
			if def.ID == "" {
				def.ID = fmt.Sprintf("%s.custom_%d", id, i+1)
			}
			if err := validateDefinition(def); err != nil {
				reg.problems = append(reg.problems, err)
				continue
			}
			add(id, def)
		}
	}

	var shared []Definition
	if opts.IncludeSecrets {
		shared = secretRules()
	}

	for _, lang := range reg.order {
		set := &RuleSet{Language: lang}
		list := defs[lang]
		if len(list) > 0 {
			list = append(list, shared...)
		}
		for _, def := range list {
			def, keep := reg.applyOverride(def, opts.Overrides)
			if !keep {
				continue
			}
			rule := compileRule(def)
			if err := rule.Err(); err != nil {
				reg.problems = append(reg.problems, err)
			}
			set.Rules = append(set.Rules, rule)
		}
		reg.sets[lang] = set
	}
	return reg
}

func (r *Registry) applyOverride(def Definition, overrides map[string]Override) (Definition, bool) {
	ov, ok := overrides[def.ID]
	if !ok {
		return def, true
	}
	if ov.Disabled {
		return def, false
	}
	if ov.Severity != "" {
		sev, err := types.ParseSeverity(ov.Severity)
		if err != nil {
			r.problems = append(r.problems, fmt.Errorf("override %s: %w", def.ID, err))
			return def, true
		}
		def.Severity = sev
	}
	return def, true
}

func validateDefinition(def Definition) error {
	switch {
	case strings.TrimSpace(def.Title) == "":
		return fmt.Errorf("%w %s: missing title", ErrInvalidRule, def.ID)
	case strings.TrimSpace(def.Pattern) == "":
		return fmt.Errorf("%w %s: missing pattern", ErrInvalidRule, def.ID)
	case !def.Severity.Valid():
		return fmt.Errorf("%w %s: missing or unknown severity", ErrInvalidRule, def.ID)
	}
	return nil
}

// RulesFor returns the rule set registered for a language id.
func (r *Registry) RulesFor(lang string) (*RuleSet, bool) {
	set, ok := r.sets[NormalizeLanguage(lang)]
	return set, ok
}

// Languages returns registered language ids in registration order.
func (r *Registry) Languages() []string {
	return append([]string(nil), r.order...)
}

// Problems returns the errors collected while building the registry.
func (r *Registry) Problems() []error {
	return append([]error(nil), r.problems...)
}

// NormalizeLanguage trims and lower-cases a language id.
func NormalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
