package rules

import "codeguard/internal/types"

func phpRules() []Definition {
	return []Definition{
		{
			ID:             "php.sql_injection",
			Title:          "SQL Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)\b(mysqli_query|mysql_query|pg_query|sqlite_query|exec|query|prepare)\s*\(.*\$\w+.*\)`,
			Exclude:        `(?i)\b(mysqli_query|mysql_query|pg_query|sqlite_query)\s*\(\s*\$?\w+\s*,\s*"[^"]*"\s*\)`,
			Description:    "Direct variable usage in SQL query without prepared statements",
			Recommendation: "Use prepared statements with parameterized queries (PDO or mysqli)",
			Reference:      owaspInjection,
		},
		{
			ID:             "php.xss",
			Title:          "XSS Vulnerability",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)(echo|print|<\?=)\s*[^;]*\$\w+`,
			Exclude:        `(?i)htmlspecialchars|htmlentities`,
			Description:    "Unescaped output of user-controlled data",
			Recommendation: "Use htmlspecialchars() or htmlentities() with ENT_QUOTES and UTF-8",
			Reference:      owaspXSS,
		},
		{
			// The window runs from the opening tag to the nearest </form>;
			// a token field anywhere after the opening tag suppresses it.
			ID:             "php.csrf",
			Title:          "Potential CSRF Vulnerability",
			Severity:       types.SeverityMedium,
			Pattern:        `(?is)<form[^>]*method=["']?post["']?[^>]*>.*?</form>`,
			Exclude:        `(?is)<form[^>]*>.*(csrf|token|hidden)`,
			Multiline:      true,
			Description:    "Form with POST method lacks visible CSRF token input field",
			Recommendation: "Include a hidden CSRF token input and verify it on form submission",
			Reference:      owaspAccessControl,
		},
		{
			ID:             "php.code_injection",
			Title:          "Code Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)\b(eval|assert|create_function)\s*\(`,
			Description:    "Dangerous function allowing execution of arbitrary code",
			Recommendation: "Avoid using eval() and similar functions with user input",
			Reference:      owaspInjection,
		},
		{
			ID:             "php.command_injection",
			Title:          "Command Injection",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)\b(exec|shell_exec|system|passthru|proc_open)\s*\(.*\$\w+.*\)`,
			Description:    "System command execution with user-controlled input",
			Recommendation: "Use escapeshellarg() and avoid direct command execution with user input",
			Reference:      owaspInjection,
		},
		{
			ID:             "php.path_traversal",
			Title:          "Path Traversal/LFI",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)\b(file_get_contents|file|readfile|include|require)\s*\(.*\$\w+.*\)`,
			Description:    "File operations with user-controlled path",
			Recommendation: "Validate and sanitize file paths, use basename()",
			Reference:      owaspAccessControl,
		},
		{
			ID:             "php.file_upload",
			Title:          "File Upload Risks",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)\b(move_uploaded_file)\s*\(`,
			Description:    "File upload handling without proper validation",
			Recommendation: "Validate file type, extension, and content; store outside web root",
			Reference:      owaspAccessControl,
		},
		{
			ID:             "php.insecure_hashing",
			Title:          "Insecure Hashing",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)\b(md5|sha1)\s*\(`,
			Exclude:        `hash_equals`,
			Description:    "Use of weak hashing algorithms for sensitive data",
			Recommendation: "Use password_hash() or Argon2 for password storage",
			Reference:      owaspBrokenAuth,
		},
		{
			ID:             "php.superglobal",
			Title:          "Direct Superglobal Usage",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)\$_(GET|POST|REQUEST|COOKIE|SERVER)\s*\[`,
			Exclude:        `(?i)(isset|empty|htmlspecialchars|htmlentities|filter_var|intval|test_input)\s*\(\s*\$_(GET|POST|REQUEST|COOKIE|SERVER)\s*\[|\$_SERVER\["REQUEST_METHOD"\]`,
			Description:    "User input used without validation or sanitization",
			Recommendation: "Always validate and sanitize user input with filter_var()",
			Reference:      owaspInjection,
		},
		{
			ID:             "php.open_redirect",
			Title:          "Open Redirect",
			Severity:       types.SeverityMedium,
			Pattern:        `(?i)header\s*\(.*Location:\s*\$\w+`,
			Description:    "Redirect using user-controlled input",
			Recommendation: "Validate redirect URLs against a whitelist",
			Reference:      owaspRedirects,
		},
		{
			ID:             "php.secure_randomness",
			Title:          "Secure Randomness",
			Severity:       types.SeverityLow,
			Pattern:        `(?i)\b(openssl_random_pseudo_bytes|random_bytes|bin2hex)\s*\(`,
			Description:    "Proper cryptographically secure random function usage",
			Recommendation: "Good practice for generating secure tokens",
			Reference:      owaspBrokenAuth,
		},
	}
}
