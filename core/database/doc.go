// Package database handles the connection to the remote content tables.
//
// It provides a wrapper around GORM to configure the MySQL connection the
// content gateway reads and writes through. The connection is deliberately
// optional: if the database is unconfigured or unreachable, the application
// keeps serving the bundled fallback content and only mutation operations fail.
//
// # Connect
//
// Connect builds a DSN from the configuration, opens the connection with
// sane pool settings, and verifies it with a bounded ping. An unconfigured
// database (empty host or name) fails fast without a network attempt.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("running on fallback content", zap.Error(err))
//	}
package database
