// ABOUTME: SQL helper functions for query construction.
// ABOUTME: Escapes LIKE patterns used by the account name search.

package store

import "strings"

// escapeSQLLike escapes the LIKE wildcards % and _ plus the \ escape character.
// The backslash goes first so the later escapes are not doubled.
func escapeSQLLike(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "\\", "\\\\")
	pattern = strings.ReplaceAll(pattern, "%", "\\%")
	pattern = strings.ReplaceAll(pattern, "_", "\\_")
	return pattern
}
