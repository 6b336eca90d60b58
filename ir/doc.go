// Package ir provides the resolved value tree produced by converting a
// launchctl dump.
//
// # Overview
//
// Every converted document is an ir.Node tree. The tree is a tagged union
// covering exactly the values a dump can resolve to:
//
//   - NullType: the repaired "none" placeholder
//   - BoolType: true/false
//   - NumberType: integers, decimal or hexadecimal in the source
//   - StringType: everything else
//   - ObjectType: key-value pairs in first-occurrence order
//   - ArrayType: ordered list of nodes
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the string key node for the value at
// Values[i], so there are always as many fields as values. Keys are unique;
// Set replaces the value of an existing key in place so that a key keeps
// the position of its first occurrence.
//
// # Numbers
//
// Integers that fit are placed under Int64. Integers that do not fit in 64
// bits are kept as their base-10 text under Number and encoded verbatim.
//
// # Thread Safety
//
// Node structures are not thread-safe. A tree is owned by the call that
// produced it.
package ir
