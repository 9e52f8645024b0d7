package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StringOr coerces val to a string. Missing or non-textual values yield fallback.
func StringOr(val any, fallback string) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fallback
	}
}

// IntOr coerces val to an int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
// Values that cannot be coerced yield fallback.
func IntOr(val any, fallback int) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
		return fallback
	case []byte:
		if i, err := strconv.Atoi(strings.TrimSpace(string(v))); err == nil {
			return i
		}
		return fallback
	default:
		return fallback
	}
}

// FloatOr coerces val to a float64. Values that cannot be coerced yield fallback.
func FloatOr(val any, fallback float64) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return float64(IntOr(v, 0))
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return fallback
	case []byte:
		if f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64); err == nil {
			return f
		}
		return fallback
	default:
		return fallback
	}
}

// BoolOr coerces val to a bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
// Values that cannot be coerced yield fallback.
func BoolOr(val any, fallback bool) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return IntOr(v, 0) == 1
	case string:
		return parseBoolString(v, fallback)
	case []byte:
		return parseBoolString(string(v), fallback)
	default:
		return fallback
	}
}

func parseBoolString(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true
	case "0", "false", "":
		return false
	default:
		return fallback
	}
}

// StringSliceOr coerces val to a string slice. It accepts native slices and
// JSON-encoded arrays (the format list columns are persisted in). Values that
// cannot be coerced yield fallback.
func StringSliceOr(val any, fallback []string) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		return parseJSONStringSlice(v, fallback)
	case []byte:
		return parseJSONStringSlice(string(v), fallback)
	default:
		return fallback
	}
}

func parseJSONStringSlice(s string, fallback []string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return fallback
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
