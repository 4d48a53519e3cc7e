// Package engine implements the schema-keyword validation engine.
//
// The engine is a small interpreter: the schema document is the program,
// the instance document is the input, and the output is acceptance or a
// single ValidationError locating the first failure in both trees.
//
// ARCHITECTURE:
//
// Descent with fail-fast evaluation:
// Validate walks instance and schema together. At each schema object the
// registered keywords run in the schema's own key order; the first failing
// keyword stops the level, gains its keyword name on the schema path, and
// propagates. Compound keywords recurse through descend, which appends one
// instance and/or schema path segment per level as the error unwinds. Paths
// therefore accumulate innermost-first and render reversed.
//
// Permissive no-op rules:
// Every rule guards its own applicability: when the instance or the schema
// value is not the shape the keyword works on, the rule succeeds silently.
// Type mismatches are solely the type keyword's business. This is what lets
// independent keywords co-occur on one schema object without knowing about
// each other. Instance shape is checked before schema shape throughout.
//
// Purity:
// Evaluation is synchronous recursion with no shared mutable state, no I/O,
// and no panics: every failure is a returned value. Concurrent Validate
// calls on independent documents are safe. Recursion depth is bounded by
// the document trees; nothing here guards against cyclic schemas, which
// cannot arise without an external $ref resolver.
//
// Known limitation: a schema object containing $ref is accepted without
// evaluating anything, including its sibling keywords. Reference resolution
// is a collaborator this engine does not yet have.
package engine
