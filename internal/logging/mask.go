package logging

import (
	"log/slog"
	"strings"
)

// SecretVisibleChars is how many leading characters MaskSecret keeps.
const SecretVisibleChars = 4

// sensitiveWords mark attribute keys whose values are never logged in full.
var sensitiveWords = []string{"token", "secret", "password", "api_key", "apikey", "credential"}

// MaskSecret hides all but a short prefix of a secret. Short values are
// hidden entirely.
func MaskSecret(value string) string {
	switch {
	case value == "":
		return ""
	case len(value) <= SecretVisibleChars*2:
		return strings.Repeat("*", len(value))
	default:
		return value[:SecretVisibleChars] + "***"
	}
}

// IsSensitiveField reports whether a key names secret data.
func IsSensitiveField(key string) bool {
	lower := strings.ToLower(key)
	for _, w := range sensitiveWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func maskAttr(_ []string, a slog.Attr) slog.Attr {
	if !IsSensitiveField(a.Key) {
		return a
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, MaskSecret(a.Value.String()))
	}
	return slog.String(a.Key, "********")
}
