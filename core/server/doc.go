// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings such as the listen port
// and the optional admin API key.
//
// This package is primarily used by the core/config package to embed server
// settings and by the admin feature to decide whether the shared-key middleware
// is active.
package server
