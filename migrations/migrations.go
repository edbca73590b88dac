// Package migrations embeds the goose SQL migrations so they can be applied
// both at application startup and by the repository test helper.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
