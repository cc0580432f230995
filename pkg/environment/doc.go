// Package environment names the deployment environments and carries the
// current one through context.Context.
//
// Parse turns configuration values such as "prod" into an Environment.
// Middleware attaches the environment to every request context and
// LoggerExtractor exposes it to the logger package.
package environment
