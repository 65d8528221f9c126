package rapidapi

import "strings"

// The Instagram upstream's schema is undocumented and unstable, so its
// reply is decoded into a generic map and read through ordered field
// fallbacks instead of a fixed struct.

// firstString returns the first key whose value is a non-empty string.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// isTruthy reports whether v is boolean true or the string "true",
// the two encodings seen for flags like is_video.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	}
	return false
}
