package rules

import "codeguard/internal/types"

func htmlRules() []Definition {
	return []Definition{
		{
			ID:             "html.xss_event_handler",
			Title:          "XSS (Inline Event Handler)",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)<\w+\s+[^>]*(on\w+)\s*=\s*["']?[^"'>]*\$\{?[a-zA-Z0-9_]+\}?[^"'>]*["']?`,
			Description:    "Unsanitized user input in event handler",
			Recommendation: "Avoid inline event handlers with user input",
			Reference:      owaspXSS,
		},
		{
			ID:             "html.xss_script_tag",
			Title:          "XSS (Script Tag)",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)<script[^>]*>[^<]*\$\{?[a-zA-Z0-9_]+\}?[^<]*</script>`,
			Description:    "Unsanitized user input inside script tag",
			Recommendation: "Sanitize all user input used in JavaScript contexts",
			Reference:      owaspXSS,
		},
		{
			ID:             "html.xss_attribute",
			Title:          "XSS (Attribute Injection)",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)<[^>]*(href|src)\s*=\s*["']?[^"'>]*\$\{?[a-zA-Z0-9_]+\}?[^"'>]*["']?`,
			Description:    "Unsanitized user input in attribute",
			Recommendation: "Validate and sanitize all URLs and attribute values",
			Reference:      owaspXSS,
		},
		{
			ID:             "html.clickjacking",
			Title:          "Clickjacking Risk",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)<iframe[^>]*>`,
			Description:    "Iframe usage without proper security headers",
			Recommendation: "Set X-Frame-Options header to prevent clickjacking",
			Reference:      owaspMisconfig,
		},
		{
			ID:             "html.form_get",
			Title:          "Form with GET Method",
			Severity:       types.SeverityLow,
			Pattern:        `(?i)<form[^>]*(method\s*=\s*["']?get["']?)`,
			Description:    "Sensitive data exposed in URL",
			Recommendation: "Use POST method for forms containing sensitive data",
			Reference:      owaspDataExposure,
		},
		{
			ID:             "html.password_input",
			Title:          "Password Input",
			Severity:       types.SeverityLow,
			Pattern:        `(?i)<input[^>]*(type\s*=\s*["']?password["']?)`,
			Description:    `Password input without autocomplete="off"`,
			Recommendation: `Add autocomplete="off" to password fields`,
			Reference:      owaspBrokenAuth,
		},
	}
}

func javascriptRules() []Definition {
	return []Definition{
		{
			ID:             "javascript.dom_xss",
			Title:          "DOM XSS",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)\.innerHTML\s*=`,
			Description:    "Direct HTML injection without sanitization",
			Recommendation: "Use textContent instead or sanitize with DOMPurify",
			Reference:      owaspXSS,
		},
		{
			ID:             "javascript.code_injection",
			Title:          "Code Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)eval\s*\(`,
			Description:    "Dangerous eval function with user input",
			Recommendation: "Avoid eval() with user-controlled input",
			Reference:      owaspInjection,
		},
		{
			ID:             "javascript.client_storage",
			Title:          "Client-side Storage",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)localStorage|sessionStorage`,
			Description:    "Sensitive data stored in client-side storage",
			Recommendation: "Avoid storing sensitive data in localStorage/sessionStorage",
			Reference:      owaspDataExposure,
		},
		{
			ID:             "javascript.insecure_api_call",
			Title:          "Insecure API Calls",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)\bfetch\s*\(|axios\.get|\.ajax\s*\(`,
			Description:    "Potential insecure API requests",
			Recommendation: "Implement proper authentication and CSRF protection",
			Reference:      owaspBrokenAuth,
		},
		{
			ID:             "javascript.debug_code",
			Title:          "Debugging Code",
			Severity:       types.SeverityLow,
			Pattern:        `(?i)console\.log\s*\(`,
			Description:    "Debugging statements left in production code",
			Recommendation: "Remove console logs before deploying to production",
			Reference:      owaspDataExposure,
		},
	}
}
