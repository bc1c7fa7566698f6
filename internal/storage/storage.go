package storage

import (
	"net/url"
	"strings"

	"github.com/selahapp/selah/internal/storage/postgres"
	"github.com/selahapp/selah/internal/storage/sqlite"
)

// NewProvider selects a backend from the config string: a PostgreSQL
// connection string gets the Postgres store, a path ending in .json gets the
// single-file JSON store, anything else gets SQLite.
func NewProvider(config string) Provider {
	if IsPostgresConfig(config) {
		return postgres.New(config)
	}
	if strings.HasSuffix(config, ".json") {
		return NewJSONStore(config)
	}
	return sqlite.NewStore(config)
}

// IsPostgresConfig reports whether the config string is a PostgreSQL
// connection URL.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Embedded credentials are refused; the keyring or
// environment should hold them instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
