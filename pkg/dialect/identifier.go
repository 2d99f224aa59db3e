package dialect

import (
	"regexp"
	"strings"
)

// bareIdent matches identifiers that can be emitted without quoting,
// provided they are not reserved words.
var bareIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RenderIdentifier renders a simple identifier, quoting only when needed.
// The wildcard symbol is always emitted literally and unquoted.
func (d *Dialect) RenderIdentifier(name string) string {
	if name == d.Wildcard {
		return name
	}
	if bareIdent.MatchString(name) && !d.IsReservedWord(name) {
		return name
	}
	return d.QuoteIdentifier(name)
}

// QuoteIdentifier unconditionally quotes an identifier, doubling any
// embedded closing quote character.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// RenderQualified renders a table-qualified column reference with dot
// notation, quoting each part independently.
func (d *Dialect) RenderQualified(table, column string) string {
	return d.RenderIdentifier(table) + "." + d.RenderIdentifier(column)
}
