package aggregators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kpi-pipeline/internal/models"
)

const dateLayout = "2006-01-02"

// ParseDateUTC truncates an input timestamp to its UTC calendar date.
// Only the exact literal-Z layout is accepted; offsets are rejected.
func ParseDateUTC(timestampUTC string) (string, error) {
	t, err := time.Parse(models.TimestampLayoutUTC, timestampUTC)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// NormalizeEndpoint reduces an endpoint to its base for grouping:
// query suffixes are stripped (/redirect-to?url=/get -> /redirect-to) and
// known variable-path families collapse to their prefix
// (/status/403 -> /status, /basic-auth/user/pass -> /basic-auth).
func NormalizeEndpoint(endpoint string) string {
	base, _, _ := strings.Cut(endpoint, "?")

	if strings.HasPrefix(base, "/status/") {
		return "/status"
	}
	if strings.HasPrefix(base, "/basic-auth/") {
		return "/basic-auth"
	}

	return base
}

// stringify renders any JSON value as the string form coercion operates on.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// coerceInt converts a loosely typed status_code to an int. Numbers truncate
// toward zero; numeric strings are accepted with surrounding whitespace;
// fractional strings are not.
func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// coerceFloat converts a loosely typed elapsed_ms to a float64.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
