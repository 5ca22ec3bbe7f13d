// Package redact strips sensitive information from strings before they
// are logged. Error messages routinely carry connection strings, SQL
// fragments, or credentials, and none of that belongs in log output.
package redact

import "regexp"

// Redaction placeholders
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Password-like key/value fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Opaque session tokens (32 hex characters)
	sessionTokenRegex = regexp.MustCompile(`\b[0-9a-f]{32}\b`)

	// SQL statement fragments leaked from driver errors
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)(?:[\s\w,*()='"$]+)?`,
	)

	placeholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, CredentialPlaceholder},
		{passwordRegex, CredentialPlaceholder},
		{sessionTokenRegex, TokenPlaceholder},
		{sqlRegex, SQLPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range placeholders {
		result = p.pattern.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
