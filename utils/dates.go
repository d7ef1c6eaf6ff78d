package utils

import (
	"fmt"
	"strings"
	"time"
)

// The admin surface enters promotion dates like "2024.12.31"; older records
// may carry dashed or full RFC 3339 forms.
var validUntilLayouts = []string{"2006.01.02", "2006-01-02", time.RFC3339}

func ParseValidUntil(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range validUntilLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
