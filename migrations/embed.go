// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and at startup.
//
// Server holds the Postgres schema of the trip service. Local holds the SQLite
// schema of the planner's on-device store.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed server/*.sql local/*.sql
var files embed.FS

// Server holds the Postgres migrations of the trip service.
var Server = mustSub("server")

// Local holds the SQLite migrations of the planner's current-trip store.
var Local = mustSub("local")

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic("migrations: " + err.Error())
	}
	return sub
}
