// Package migrations embeds the goose SQL migrations so the server and the
// e2e suite apply the same schema without a filesystem path at runtime.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
