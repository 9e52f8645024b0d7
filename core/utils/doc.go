// Package utils provides common utility functions for the quest-zone application.
// It includes lenient type coercion helpers used when decoding raw content rows,
// where any value that cannot be coerced falls back to a caller-supplied default.
package utils
