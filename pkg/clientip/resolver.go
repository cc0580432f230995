package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted, in order, when no headers are configured.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Config lists the proxy headers trusted to carry the client address.
type Config struct {
	TrustedHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:"," envDefault:"X-Forwarded-For,X-Real-IP"`
}

// Resolver picks the client address from trusted proxy headers, falling back
// to the TCP peer address.
type Resolver struct {
	headers []string
}

// NewResolver trusts headers in the given priority order. Without headers it
// uses DefaultHeaders.
func NewResolver(headers ...string) *Resolver {
	clean := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			clean = append(clean, http.CanonicalHeaderKey(h))
		}
	}
	if len(clean) == 0 {
		clean = append(clean, DefaultHeaders...)
	}
	return &Resolver{headers: clean}
}

// FromRequest returns the normalized client address, or "" if none is valid.
// Comma separated headers such as X-Forwarded-For yield their first valid entry.
func (res *Resolver) FromRequest(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// Middleware stores the resolved address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.FromRequest(r))))
	})
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
