// Package dialect provides SQL dialect configuration and the expression
// compiler that renders core values and expression trees to dialect-exact
// SQL text.
//
// This package contains the engine-independent machinery: the Dialect
// configuration type, its fluent builder, identifier rendering, the
// standard literal encoder, and the operator-rendering registry. Concrete
// dialect definitions are registered from pkg/adapters/*/dialect packages.
package dialect

import (
	"strings"

	"github.com/quarryhq/quarry/pkg/core"
)

// OperatorRenderer renders one ComplexExpr operator into a fully
// parenthesized SQL fragment.
type OperatorRenderer func(c *Compiler, operands []core.Expr) (string, error)

// DefaultRenderer is the named fallback for operator tags the dialect does
// not own. The boundary between core-owned and delegated operators is this
// interface, not an implicit else branch.
type DefaultRenderer interface {
	RenderOperator(c *Compiler, op core.OpTag, operands []core.Expr) (string, error)
}

// Encoder renders a single literal value to SQL text.
type Encoder func(v core.Value) (string, error)

// Dialect represents a SQL dialect configuration. All fields are fixed at
// build time; a Dialect is safe for concurrent use.
type Dialect struct {
	Name          string
	Identifiers   core.IdentifierConfig
	DefaultSchema string

	// Wildcard is the symbol emitted literally and unquoted, used for
	// count(*) style references.
	Wildcard string

	reservedWords map[string]struct{}
	operators     map[core.OpTag]OperatorRenderer
	fallback      DefaultRenderer
	encode        Encoder
}

// IsReservedWord returns true if the word needs quoting when used as an
// identifier. The check is case-insensitive.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// EncodeValue renders a literal value using the dialect's encoder.
func (d *Dialect) EncodeValue(v core.Value) (string, error) {
	return d.encode(v)
}

// OperatorRenderer returns the renderer for an operator tag, or nil if the
// dialect does not own the tag.
func (d *Dialect) OperatorRenderer(op core.OpTag) OperatorRenderer {
	return d.operators[op]
}

// Fallback returns the delegated renderer for unowned operator tags, or
// nil if none is configured.
func (d *Dialect) Fallback() DefaultRenderer {
	return d.fallback
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a dialect builder with ANSI-ish defaults: double-quote
// identifiers, `*` wildcard, and the standard literal encoder.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:    `"`,
				QuoteEnd: `"`,
				Escape:   `""`,
			},
			Wildcard:      "*",
			reservedWords: make(map[string]struct{}),
			operators:     make(map[core.OpTag]OperatorRenderer),
			encode:        EncodeStandard,
		},
	}
}

// Identifiers configures identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd, escape string) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:    quote,
		QuoteEnd: quoteEnd,
		Escape:   escape,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// Wildcard sets the wildcard symbol.
func (b *Builder) Wildcard(symbol string) *Builder {
	b.dialect.Wildcard = symbol
	return b
}

// WithReservedWords registers words that need quoting when used as
// identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Operator registers a renderer for an operator tag.
func (b *Builder) Operator(op core.OpTag, r OperatorRenderer) *Builder {
	b.dialect.operators[op] = r
	return b
}

// WithFallback sets the delegated renderer for unowned operator tags.
func (b *Builder) WithFallback(r DefaultRenderer) *Builder {
	b.dialect.fallback = r
	return b
}

// LiteralEncoder overrides the literal encoder.
func (b *Builder) LiteralEncoder(e Encoder) *Builder {
	b.dialect.encode = e
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
