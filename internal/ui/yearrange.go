package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// parseYearRange parses a year filter spec: "1990-2005", "1990-",
// "-2005", or a bare "1990" (exact year). An empty spec clears both
// bounds.
func parseYearRange(spec string) (from, to *int, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil, nil
	}

	if !strings.Contains(spec, "-") {
		year, err := strconv.Atoi(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid year %q", spec)
		}
		return &year, &year, nil
	}

	parts := strings.SplitN(spec, "-", 2)
	lo := strings.TrimSpace(parts[0])
	hi := strings.TrimSpace(parts[1])

	if lo != "" {
		year, err := strconv.Atoi(lo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid year %q", lo)
		}
		from = &year
	}
	if hi != "" {
		year, err := strconv.Atoi(hi)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid year %q", hi)
		}
		to = &year
	}
	if from != nil && to != nil && *from > *to {
		return nil, nil, fmt.Errorf("year range %s is reversed", spec)
	}
	return from, to, nil
}

func yearSpecString(from, to *int) string {
	switch {
	case from != nil && to != nil && *from == *to:
		return strconv.Itoa(*from)
	case from != nil && to != nil:
		return fmt.Sprintf("%d-%d", *from, *to)
	case from != nil:
		return fmt.Sprintf("%d-", *from)
	case to != nil:
		return fmt.Sprintf("-%d", *to)
	default:
		return ""
	}
}
