// Package migrations embeds the schema files so binaries can self-migrate
package migrations

import "embed"

// FS holds every *.up.sql file in lexical order
//
//go:embed *.up.sql
var FS embed.FS
