// Package api implements the HTTP surface of the service: request
// models, handlers for users, events and the image proxy, and the
// mapping from internal errors to HTTP status codes. Route wiring and
// middleware live in cmd/server and internal/api/middleware.
package api
