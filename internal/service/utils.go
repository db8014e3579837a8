package service

import "strings"

// sanitizeUTF8 drops invalid UTF-8 sequences so raw query text cannot trip
// PostgreSQL encoding errors.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}
