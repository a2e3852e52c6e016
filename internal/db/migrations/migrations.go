// Package migrations embeds the goose SQL migrations of the duel archive.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
