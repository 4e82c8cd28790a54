// Package origin derives a best-effort client address for audit records.
// The result is provenance only and must not be used for access control.
package origin

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

const (
	// HeaderForwardedFor is consulted before the connection address.
	HeaderForwardedFor = "X-Forwarded-For"

	ipv4MappedPrefix = "::ffff:"
)

// Resolve returns the origin from candidates given in priority order.
// The first non-blank candidate wins; for a comma-separated proxy chain only
// the first hop is kept, and an IPv4-mapped IPv6 prefix is stripped.
// Returns domain.UnknownOrigin when every candidate is blank or the chosen
// candidate has an empty first hop.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}

		if first, _, found := strings.Cut(c, ","); found {
			c = strings.TrimSpace(first)
		}

		c = strings.TrimPrefix(c, ipv4MappedPrefix)
		if c == "" {
			return domain.UnknownOrigin
		}
		return c
	}
	return domain.UnknownOrigin
}

// FromRequest resolves the origin of r using X-Forwarded-For, then the
// connection's remote address.
func FromRequest(r *http.Request) string {
	return Resolve(r.Header.Get(HeaderForwardedFor), hostOnly(r.RemoteAddr))
}

// hostOnly drops the port from a "host:port" address. Values without a port
// are returned unchanged.
func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
