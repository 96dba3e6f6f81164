// Package migrations embeds the SQL schema migrations for both storage
// backends. The sqlite/ and postgres/ subdirectories hold equivalent
// schemas expressed in each dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
