package normalize

import (
	"strconv"
	"strings"
)

// Duration converts a "MM:SS" or "H:MM:SS" string to whole seconds.
// Empty, malformed or unparseable input yields 0, which downstream
// scoring treats as "unknown" rather than a mismatch.
func Duration(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "00:00" {
		return 0
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			return 0
		}
		values = append(values, value)
	}

	if len(values) == 2 {
		return values[0]*60 + values[1]
	}
	return values[0]*3600 + values[1]*60 + values[2]
}
