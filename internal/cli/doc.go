// Package cli implements the sieve command-line interface.
//
// Commands:
//   - validate: check one instance document against one schema
//   - test: run a test-suite file of schemas with expected verdicts
//   - history: list runs recorded with validate --record
//
// All commands share the text/JSON output formatter and the exit-code
// convention: 0 success, 1 validation or suite failure, 2 command error.
// Verbose diagnostics go to stderr so JSON output stays parseable.
package cli
