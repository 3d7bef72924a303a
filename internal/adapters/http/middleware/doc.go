// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs the middleware in this order:
//
//	RequestID → Recovery → OpenTelemetry → Logging → Timeout → Handler
//
// RequestID runs first so that a recovered panic can be logged with the id.
package middleware
