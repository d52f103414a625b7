package search

// Config holds configuration for the word search feature.
type Config struct {
	// MaxObjectBytes caps how much of an object is downloaded for a search.
	// Zero or negative disables the cap.
	MaxObjectBytes int64 `mapstructure:"max_object_bytes" default:"10485760"`
}
