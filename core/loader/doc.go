// Package loader registers HTTP features and loads the enabled ones.
//
// A feature bundles a service, its handler and its routes behind
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// cmd/start.go registers bucket, search and audit with a Manager and calls
// LoadAll once the middleware chain is in place. Disabled features (audit
// without a database) are skipped.
package loader
