// Package migrations holds the embedded SQL migration files for the sqlite
// driver. They are applied at startup via golang-migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
