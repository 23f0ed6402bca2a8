package downloads

import (
	"fmt"
	"net/url"
	"strings"

	"tubegrab/internal/errs"
)

// ValidateURL checks the raw URL against the recognized YouTube host
// patterns. No network call is made.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: empty URL", errs.ErrInvalidURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", errs.ErrInvalidURL, u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtube.com",
		host == "youtu.be",
		strings.HasSuffix(host, ".youtube.com"):
		return nil
	}
	return fmt.Errorf("%w: host %q", errs.ErrInvalidURL, host)
}
