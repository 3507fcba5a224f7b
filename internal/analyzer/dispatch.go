package analyzer

import (
	"codeguard/internal/rules"
	"codeguard/internal/types"
)

// UnsupportedWarning is reported when no rules exist for a language.
func UnsupportedWarning() types.Warning {
	return types.Warning{
		Title:          "Unsupported Language",
		Description:    "This language is not fully supported for security scanning",
		Line:           0,
		CodeSnippet:    "",
		Recommendation: "Consider using a supported language or perform manual security review",
	}
}

// Dispatcher routes a language id to its rule set.
type Dispatcher struct {
	registry *rules.Registry
}

func NewDispatcher(reg *rules.Registry) *Dispatcher {
	if reg == nil {
		reg = rules.Default()
	}
	return &Dispatcher{registry: reg}
}

// Dispatch returns the rule set for lang, or a warning when the language
// is unknown or has no enabled rules. Exactly one of the results is nil.
func (d *Dispatcher) Dispatch(lang string) (*rules.RuleSet, *types.Warning) {
	set, ok := d.registry.RulesFor(lang)
	if !ok || set.Len() == 0 {
		w := UnsupportedWarning()
		return nil, &w
	}
	return set, nil
}

// Registry returns the registry the dispatcher reads from.
func (d *Dispatcher) Registry() *rules.Registry {
	return d.registry
}
