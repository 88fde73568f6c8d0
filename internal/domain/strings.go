package domain

import "strings"

// OrDefault returns s trimmed of surrounding space, or def when nothing is left.
func OrDefault(s, def string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}
