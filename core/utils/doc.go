// Package utils provides small helpers shared by the HTTP handlers and CLI,
// mainly lenient conversion of query parameters and flag values.
package utils
