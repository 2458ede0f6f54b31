package audit

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var slugSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerateSlug derives a human-readable identifier from the target URL plus
// a base-36 millisecond timestamp suffix. The URL must already carry a
// scheme. Malformed input falls back to an audit-<epoch-millis> slug, so the
// result is always non-empty. Uniqueness holds per target+millisecond; calls
// inside the same millisecond for the same host collide, which is acceptable
// for single-request-at-a-time usage.
func GenerateSlug(rawURL string, ts time.Time) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return fmt.Sprintf("audit-%d", ts.UnixMilli())
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	slug := strings.ToLower(slugSanitizer.ReplaceAllString(host, "-"))
	return slug + "-" + strconv.FormatInt(ts.UnixMilli(), 36)
}
