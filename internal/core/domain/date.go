package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for Birthday, Birth and Death.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a plain day or an RFC 3339 timestamp and returns it in
// UTC. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}
