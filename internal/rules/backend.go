package rules

import "codeguard/internal/types"

func pythonRules() []Definition {
	return []Definition{
		{
			ID:             "python.sql_injection",
			Title:          "SQL Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)\b(execute|executemany)\s*\(.*%s.*\)`,
			Description:    "String formatting in SQL query",
			Recommendation: "Use parameterized queries with ? placeholders",
			Reference:      owaspInjection,
		},
		{
			ID:             "python.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)subprocess\.(run|call|Popen)`,
			Description:    "Shell command execution with user input",
			Recommendation: "Avoid shell=True and validate input",
			Reference:      owaspInjection,
		},
	}
}

func javaRules() []Definition {
	return []Definition{
		{
			ID:             "java.sql_injection",
			Title:          "SQL Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)Statement\.executeQuery|createStatement\(\)`,
			Description:    "Dynamic SQL query without prepared statements",
			Recommendation: "Use PreparedStatement with parameterized queries",
			Reference:      owaspInjection,
		},
		{
			ID:             "java.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)Runtime\.getRuntime\(\)\.exec\(`,
			Description:    "System command execution with user input",
			Recommendation: "Validate and sanitize all command inputs",
			Reference:      owaspInjection,
		},
	}
}

func csharpRules() []Definition {
	return []Definition{
		{
			ID:             "csharp.sql_injection",
			Title:          "SQL Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)SqlCommand\s*\(.*\+.*\)`,
			Description:    "Concatenated SQL queries may allow SQL injection",
			Recommendation: "Use parameterized queries with SqlCommand.Parameters",
			Reference:      owaspInjection,
		},
		{
			ID:             "csharp.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)Process\.Start\s*\(.*\)`,
			Description:    "Executing shell commands can lead to security risks",
			Recommendation: "Avoid user input in Process.Start arguments",
			Reference:      owaspInjection,
		},
		{
			ID:             "csharp.reflected_xss",
			Title:          "Reflected XSS",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)ViewBag|ViewData\s*\[.*\]\s*=\s*Request`,
			Description:    "Directly assigning Request data to views may lead to XSS",
			Recommendation: "Use Html.Encode and validate user input before rendering",
			Reference:      owaspXSS,
		},
	}
}
