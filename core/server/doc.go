// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure: the listening port, the API key protecting
// every route, and the upload body limit.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start.go to configure Fiber and the auth middleware.
package server
