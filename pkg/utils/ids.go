package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a store identifier taken from a query string.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}
	return uint(id), nil
}
