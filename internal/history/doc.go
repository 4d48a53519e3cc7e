// Package history provides SQLite-backed storage for validation run
// records.
//
// Each run row captures what was validated (source paths plus canonical
// digests of both documents), the outcome, and the rendered error location
// for failures. Digests make re-validations of identical content visible
// across renames.
//
// Database configuration:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// Recording is strictly opt-in from the CLI; the validation engine itself
// never touches storage.
package history
