package rules

import "codeguard/internal/types"

// secretRules detect hardcoded credentials. They are language-neutral and
// only added when Options.IncludeSecrets is set.
func secretRules() []Definition {
	return []Definition{
		{
			ID:             "secret.aws_access_key",
			Title:          "Hardcoded AWS Access Key",
			Severity:       types.SeverityCritical,
			Pattern:        `AKIA[0-9A-Z]{16}`,
			Description:    "Potential AWS access key id embedded in source",
			Recommendation: "Remove the key, rotate it, and load credentials from the environment or a secret manager",
			Reference:      owaspDataExposure,
		},
		{
			ID:             "secret.api_key",
			Title:          "Hardcoded API Key",
			Severity:       types.SeverityCritical,
			Pattern:        `(?i)(api[_-]?key|apikey)\s*[=:]\s*['"]?[a-zA-Z0-9]{20,}['"]?`,
			Description:    "Potential API key assigned from a literal",
			Recommendation: "Move the key to configuration outside the repository and rotate it",
			Reference:      owaspDataExposure,
		},
		{
			ID:             "secret.private_key",
			Title:          "Embedded Private Key",
			Severity:       types.SeverityCritical,
			Pattern:        `-----BEGIN\s+(RSA|DSA|EC|OPENSSH)\s+PRIVATE KEY-----`,
			Description:    "Private key material embedded in source",
			Recommendation: "Remove the key from source control and issue a new key pair",
			Reference:      owaspDataExposure,
		},
		{
			ID:             "secret.password",
			Title:          "Hardcoded Password",
			Severity:       types.SeverityHigh,
			Pattern:        `(?i)(password|pwd|passwd)\s*[=:]\s*['"]?[^'\s"]+['"]?`,
			Exclude:        `(?i)(password|pwd|passwd)\s*[=:]\s*['"]?\s*(\$|getenv|os\.environ|process\.env|environment\.)`,
			Description:    "Potential password assigned from a literal",
			Recommendation: "Read passwords from the environment or a secret manager",
			Reference:      owaspDataExposure,
		},
	}
}
