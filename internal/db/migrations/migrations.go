// Package migrations embeds the SQL schema migrations so the server binary
// can bring a database up to date without shipping files alongside it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
