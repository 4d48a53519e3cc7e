// Package document provides the value model shared by instances and
// schemas: an immutable tree over null, bool, number, string, array, and
// object variants.
//
// This package contains the tree types and the operations every other
// internal package leans on. It imports nothing internal; document remains
// the foundational layer with no circular dependencies.
//
// Key design points:
//   - Numbers keep their decoded encoding (int64, uint64, or float64) but
//     compare and hash by mathematical value: 4, uint 4, and 4.0 are one
//     number as far as Equal and Hash are concerned.
//   - Objects preserve insertion order. Equality ignores that order; the
//     validation engine's keyword iteration depends on it.
//   - JSON and YAML decoding both go through order-preserving paths. The
//     convenient map[string]any route would scramble keys.
//   - MarshalCanonical/Digest produce a stable serialized form for
//     content-addressed record keeping, never for display.
package document
