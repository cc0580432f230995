// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// A Resolver checks the configured proxy headers in priority order and falls
// back to RemoteAddr. Its Middleware stores the result in the request context
// and LoggerExtractor attaches it to log records:
//
//	res := clientip.NewResolver("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(res.Middleware)
//
// Only list headers that your proxy overwrites; anything else can be spoofed
// by the client.
package clientip
