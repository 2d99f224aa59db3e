package core

import "database/sql"

// AdapterConfig holds configuration for connecting to a database.
type AdapterConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string
	Options  map[string]string
	Params   map[string]any
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // opening quote character: ", `, [
	QuoteEnd string // closing quote character (usually same as Quote, ] for [)
	Escape   string // escape sequence for an embedded closing quote: "", ``, ]]
}

// Rows wraps sql.Rows to provide a consistent interface across adapters.
type Rows struct {
	*sql.Rows
}
