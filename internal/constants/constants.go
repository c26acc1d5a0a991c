// Package constants provides shared constants used across the codebase.
package constants

// Upload constants
const (
	// MaxUploadSize is the maximum accepted face photo size in bytes
	MaxUploadSize = 10 << 20 // 10 MiB
)

// Scan constants
const (
	// DefaultConfidenceThreshold is used when the rules file does not set one
	DefaultConfidenceThreshold = 0.5
)

// Recommendation constants
const (
	// DefaultTopN is the default maximum number of recommended products
	DefaultTopN = 5
)
