package storage

import (
	"net/url"
	"strings"
)

// IsPostgresConnString reports whether the config value selects the
// Postgres backend rather than a SQLite file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a Postgres connection string
// carries a password inline. Inline passwords end up in shell history and
// process listings, so they are rejected; the keyring or environment should
// hold them instead.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			// Unparseable URL-style strings are treated as suspect.
			return true
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") && kv[1] != "" {
			return true
		}
	}
	return false
}
