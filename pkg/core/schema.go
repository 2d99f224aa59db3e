package core

// ColumnDescriptor describes one table column in canonical form,
// independent of the source catalog's row format. Columns are ordered by
// catalog ordinal position.
type ColumnDescriptor struct {
	Name       string
	Type       TypeTag
	NativeType string // the catalog's type text, e.g. "DECIMAL(18,3)"
	Nullable   bool
	PrimaryKey bool

	// Default is the parsed default value when the catalog text matches
	// the simple literal grammar; a computed or multi-token default is
	// carried through as Raw text; nil means no default.
	Default Value

	// Optional size facets; nil when the catalog does not supply them.
	MaxLength *int
	Precision *int
	Scale     *int
}

// IndexDescriptor describes one index in canonical form.
type IndexDescriptor struct {
	Name    string
	Columns []string // ordered as in the index definition
	Unique  bool
	Primary bool
}
