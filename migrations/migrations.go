package migrations

import "embed"

// Dir is the directory of FS holding the goose migrations.
const Dir = "."

//go:embed *.sql
var FS embed.FS
