// Package migrations ships the goose SQL migrations inside the binary.
package migrations

import "embed"

// FS holds the numbered goose migration files.
//
//go:embed *.sql
var FS embed.FS
