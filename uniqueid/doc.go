// uniqueid/doc.go

/*
Package uniqueid provides a structured, immutable identifier for test
artifacts, based on the canonical format `type:[value]/type:[value]/...`.

An ID is an ordered sequence of typed segments, read root to leaf. IDs are
values: deriving a child with Append never modifies the parent, equality is
structural, and the canonical string form round-trips losslessly through
Parse. Reserved characters inside a segment are escaped on the wire, so any
text survives serialization.

This package enforces the identifier schema and centralizes all formatting
and parsing logic; collaborators treat the string form as an opaque token.
*/
package uniqueid
