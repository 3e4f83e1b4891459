package db

import "embed"

// MigrationFS embeds the SQL migration files from internal/db/migrations
// so cmd/migrate can apply them without access to the source tree.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
