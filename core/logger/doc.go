// Package logger builds the application's zap logger.
//
// Level "debug" selects zap's development config (ISO8601 timestamps, stack
// traces on warn); every other level uses the production config. Format picks
// the json or console encoder.
//
// Request handlers log through WithRayID so every line of one request carries
// the same ray_id field set by the rayid middleware:
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.Error(err))
package logger
