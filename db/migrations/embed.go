// Package migrations embeds the goose migrations for every supported dialect.
// Each dialect lives in its own directory named after the store driver.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
