// Package database opens the optional relational database used for the audit trail.
//
// Connect supports MySQL (the production default) and SQLite (handy for local runs).
// The connection is optional: callers log a warning and continue without auditing
// when it fails.
package database
