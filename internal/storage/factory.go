package storage

import (
	"strings"

	"github.com/julianstephens/habitflow/internal/storage/postgres"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

// New selects a storage backend from the config value: PostgreSQL
// connection strings get the postgres store, anything else is treated
// as a SQLite file path.
func New(config string) Provider {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return postgres.New(config)
	}
	return sqlite.New(config)
}
