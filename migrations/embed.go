// Package migrations holds the goose SQL migrations applied at startup.
package migrations

import "embed"

// FS contains every migration file in this directory.
//
//go:embed *.sql
var FS embed.FS
