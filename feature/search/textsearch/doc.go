// Package textsearch finds a word in the text of a downloaded object.
//
// Bytes are decoded through an ordered chain of decoders (UTF-8, then Latin-1),
// split into lines and scanned once. Each matching line is reported with its
// 1-based number, its trimmed content and the non-overlapping occurrence count.
//
//	engine := textsearch.NewEngine()
//	res, err := engine.Search(raw, "error", false)
//
// The package performs no I/O; callers fetch the bytes themselves.
package textsearch
