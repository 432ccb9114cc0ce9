package migrations

import "embed"

// FS holds the campaign snapshot and participation schema.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binaries expect. Bump it together with
// every new migration pair.
const Version uint = 1
