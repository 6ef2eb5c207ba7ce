package config

import (
	"net/url"
	"slices"
	"strings"
)

// Redacted replaces secret values wherever they are displayed.
const Redacted = "[REDACTED]"

var secretSuffixes = []string{
	"_PASSWORD",
	"_SECRET",
	"_SECRET_KEY",
	"_TOKEN",
	"_BASIC_AUTH",
	"_API_KEY",
}

// IsSecret reports whether values stored under key must never be displayed.
// Keys tagged secret in [DefaultSchema] are secret, as is any key ending in
// one of the well-known credential suffixes.
func IsSecret(key string) bool {
	if f, ok := DefaultSchema.Field(key); ok && f.Secret {
		return true
	}

	upper := strings.ToUpper(key)
	for _, suffix := range secretSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return true
		}
	}

	return false
}

// DisplayValue returns value as it may be shown in logs, errors and
// reports: [Redacted] for secret keys, the URL with its password masked
// for URL-looking values, and value itself otherwise.
func DisplayValue(key, value string) string {
	if IsSecret(key) {
		return Redacted
	}
	if !strings.Contains(value, "://") {
		return value
	}

	u, err := url.Parse(value)
	if err != nil {
		return maskUserinfo(value)
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return u.Redacted()
		}
	}

	return value
}

// maskUserinfo replaces everything between "://" and the last '@' of a value
// url.Parse rejected. A malformed URL gives no reliable authority bounds, so
// nothing before that '@' is kept.
func maskUserinfo(value string) string {
	i := strings.Index(value, "://") + len("://")
	at := strings.LastIndex(value[i:], "@")
	if at < 0 {
		return value
	}

	return value[:i] + Redacted + value[i+at:]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
