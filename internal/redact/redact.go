// Package redact scrubs sensitive material from strings before they are
// logged. Error messages regularly carry connection strings, credentials, or
// whole bearer tokens (a failed JWT parse echoes the token back); everything
// the server logs about a failure goes through here first.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for matched sensitive content.
const (
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedToken      = "[REDACTED_TOKEN]"
	redactedEmail      = "[REDACTED_EMAIL]"
)

var (
	// Connection strings with inline credentials (postgres://user:pw@host).
	connStringRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// password=..., password: ... fragments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Generic secrets and API keys.
	secretRegex = regexp.MustCompile(`(?i)(secret|api[_-]?key|signing[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Three-part base64url JWTs.
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses (PII in logs).
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	s = connStringRegex.ReplaceAllString(s, "$1://"+redactedCredential+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+redactedCredential)
	s = secretRegex.ReplaceAllString(s, "$1$2"+redactedCredential)
	s = jwtRegex.ReplaceAllString(s, redactedToken)
	// Earlier placeholders followed by a hostname parse like email addresses;
	// leave those alone.
	s = emailRegex.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "REDACTED_") {
			return m
		}
		return redactedEmail
	})
	return s
}

// Error redacts an error's message for safe logging. Returns the empty
// string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
