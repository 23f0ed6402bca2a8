// Package cookies exports browser cookies into a Netscape-format file
// the external downloader can consume for age-restricted videos.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/browserutils/kooky"
	// Register all supported browser cookie stores.
	_ "github.com/browserutils/kooky/browser/all"

	"tubegrab/internal/logging"
)

const cookieDomain = "youtube.com"

// Export reads valid YouTube cookies from the browsers installed on
// this machine and writes them to outPath. Returns the written path,
// or "" when no cookies were found (not an error: downloads simply
// proceed unauthenticated).
func Export(ctx context.Context, outPath string) (string, error) {
	kookyCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(cookieDomain))
	if err != nil {
		return "", fmt.Errorf("failed reading browser cookies: %w", err)
	}
	if len(kookyCookies) == 0 {
		logging.I("No browser cookies found for %s", cookieDomain)
		return "", nil
	}

	logging.I("Found %d browser cookies for %s", len(kookyCookies), cookieDomain)

	if err := writeNetscapeFile(convertToHTTPCookies(kookyCookies), outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// writeNetscapeFile saves the cookies to a file in Netscape format.
func writeNetscapeFile(cookies []*http.Cookie, path string) error {
	var b strings.Builder
	b.WriteString("# Netscape HTTP Cookie File\n")
	b.WriteString("# https://curl.haxx.se/rfc/cookie_spec.html\n")
	b.WriteString("# This is a generated file! Do not edit.\n\n")

	for _, c := range cookies {
		b.WriteString(netscapeLine(c))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write cookie file %q: %w", path, err)
	}
	logging.D(1, "Saved %d cookies to file %s", len(cookies), path)
	return nil
}

// netscapeLine renders one cookie as a Netscape cookie-jar row:
// domain, subdomain flag, path, secure flag, expiry, name, value.
func netscapeLine(c *http.Cookie) string {
	domain := c.Domain
	if !strings.HasPrefix(domain, ".") && strings.Count(domain, ".") > 1 {
		domain = "." + domain
	}

	includeSub := "FALSE"
	if strings.HasPrefix(domain, ".") {
		includeSub = "TRUE"
	}

	secure := "FALSE"
	if c.Secure {
		secure = "TRUE"
	}

	path := c.Path
	if path == "" {
		path = "/"
	}

	var expires int64
	if !c.Expires.IsZero() {
		expires = c.Expires.Unix()
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s\t%s",
		domain, includeSub, path, secure, expires, c.Name, c.Value)
}
