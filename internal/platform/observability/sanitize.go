package observability

import "strings"

const (
	routeFieldLimit  = 180
	methodFieldLimit = 10
	userFieldLimit   = 64
	defaultLimit     = 256
)

// sanitizeString strips control characters and truncates, so attacker
// supplied values cannot inject log lines or bloat entries.
func sanitizeString(value string, limit int) string {
	if limit <= 0 {
		limit = defaultLimit
	}

	var b strings.Builder
	b.Grow(len(value))
	kept := 0
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if kept >= limit {
			break
		}
		b.WriteRune(r)
		kept++
	}
	return b.String()
}

// SanitizeRoute bounds a route pattern for logging.
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return sanitizeString(route, routeFieldLimit)
}

// SanitizeMethod bounds an HTTP method for logging.
func SanitizeMethod(method string) string {
	return sanitizeString(method, methodFieldLimit)
}

// SanitizeUserID bounds a user identifier for logging.
func SanitizeUserID(uid string) string {
	return sanitizeString(uid, userFieldLimit)
}
