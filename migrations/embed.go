// Package migrations embeds the schema of the dashboard's source tables.
// Production owns these tables; the files seed local and integration databases.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
