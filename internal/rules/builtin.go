package rules

// Language ids with builtin rule sets.
const (
	LangPHP        = "php"
	LangHTML       = "html"
	LangJavaScript = "javascript"
	LangPython     = "python"
	LangJava       = "java"
	LangC          = "c"
	LangCPP        = "cpp"
	LangCSharp     = "csharp"
)

// OWASP Top 10 (2017) references used by the builtin rules.
const (
	owaspInjection       = "A1:2017-Injection"
	owaspBrokenAuth      = "A2:2017-Broken Authentication"
	owaspDataExposure    = "A3:2017-Sensitive Data Exposure"
	owaspAccessControl   = "A5:2017-Broken Access Control"
	owaspMisconfig       = "A6:2017-Security Misconfiguration"
	owaspXSS             = "A7:2017-Cross-Site Scripting (XSS)"
	owaspKnownVulnerable = "A9:2017-Using Components with Known Vulnerabilities"
	owaspRedirects       = "A10:2017-Unvalidated Redirects and Forwards"
)

// Builtin returns a fresh copy of the builtin rule definitions, in
// dispatch order.
func Builtin() []Language {
	return []Language{
		{ID: LangPHP, Rules: phpRules()},
		{ID: LangHTML, Rules: htmlRules()},
		{ID: LangJavaScript, Rules: javascriptRules()},
		{ID: LangPython, Rules: pythonRules()},
		{ID: LangJava, Rules: javaRules()},
		{ID: LangC, Rules: cRules()},
		{ID: LangCPP, Rules: cppRules()},
		{ID: LangCSharp, Rules: csharpRules()},
	}
}
