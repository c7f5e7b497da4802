// Package cli provides the command-line interface for mockdb.
//
// Commands:
//   - serve: load a configuration file and start the mock server
//   - validate: check a configuration file without serving it
//   - version: show build information
//
// Logging is configured with the persistent --log-level, --log-format and
// --log-file flags, which default to MOCKDB_LOG_LEVEL and MOCKDB_LOG_FORMAT.
package cli
