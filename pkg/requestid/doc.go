// Package requestid assigns a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response. FromContext reads it back and LoggerExtractor feeds it to the
// logger package so every log line of a request carries "request_id".
package requestid
