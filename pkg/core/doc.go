// Package core contains the pure data types shared by the dialect and
// adapter layers: the literal value union, the expression tree, canonical
// type tags, schema descriptors, and the error taxonomy.
//
// The Golden Rule: pkg/core holds Domain Data only. It imports nothing
// beyond the standard library and github.com/google/uuid, so every other
// package can depend on it without dragging in drivers or CLI machinery.
// This is enforced by arch_test.go.
package core
