// ABOUTME: Resource detection for request logging.
// ABOUTME: Maps a URL path to the CRM collection it reads from.

package logging

import "strings"

// ResourceFromPath names the collection a request targets. Nested routes
// report the innermost collection, so /api/accounts/ACC0001/prospects is
// "prospects".
func ResourceFromPath(path string) string {
	if path == "/healthz" {
		return "health"
	}
	rest, ok := strings.CutPrefix(path, "/api/")
	if !ok {
		return "unknown"
	}

	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) >= 3 {
		return resourceName(parts[2])
	}
	return resourceName(parts[0])
}

func resourceName(segment string) string {
	switch segment {
	case "accounts", "notes", "prospects", "activities":
		return segment
	}
	return "unknown"
}
