// Package parsing holds small parsers for extractor metadata values.
package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// HyphenateYyyyMmDd hyphenates compact yyyymmdd date values for parsing.
func HyphenateYyyyMmDd(d string) string {
	d = strings.ReplaceAll(d, " ", "")
	d = strings.ReplaceAll(d, "-", "")
	if len(d) < 8 {
		return d
	}
	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}

// ParseUploadDate parses the extractor's upload date field, which is
// normally compact yyyymmdd but may be any common date string.
func ParseUploadDate(d string) (time.Time, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	if len(d) == 8 && isDigits(d) {
		d = HyphenateYyyyMmDd(d)
	}
	t, err := dateparse.ParseAny(d)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", d)
	}
	return t, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
