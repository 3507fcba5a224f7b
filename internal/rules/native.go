package rules

import "codeguard/internal/types"

func cRules() []Definition {
	return []Definition{
		{
			ID:             "c.buffer_overflow",
			Title:          "Buffer Overflow Risk",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)strcpy|strcat|gets`,
			Description:    "Use of unsafe string functions can lead to buffer overflows",
			Recommendation: "Use safer alternatives like strncpy, strncat, fgets",
			Reference:      owaspKnownVulnerable,
		},
		{
			ID:             "c.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)system\s*\(.*\)`,
			Description:    "System call may execute dangerous user-controlled commands",
			Recommendation: "Avoid system(); validate and sanitize inputs",
			Reference:      owaspInjection,
		},
	}
}

func cppRules() []Definition {
	return []Definition{
		{
			ID:             "cpp.buffer_overflow",
			Title:          "Buffer Overflow Risk",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)strcpy|strcat|gets`,
			Description:    "Unsafe string manipulation may lead to buffer overflow",
			Recommendation: "Use std::string or safer functions like strncpy",
			Reference:      owaspKnownVulnerable,
		},
		{
			ID:             "cpp.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)system\s*\(.*\)`,
			Description:    "Use of system() can lead to OS command injection",
			Recommendation: "Avoid system calls with user input",
			Reference:      owaspInjection,
		},
		{
			ID:             "cpp.unbounded_allocation",
			Title:          "Memory Allocation without Bounds Check",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)new\s+[^\s]+\[\d+\]`,
			Description:    "Array allocations should have bounds checked",
			Recommendation: "Ensure size is validated before dynamic allocation",
			Reference:      owaspAccessControl,
		},
	}
}
