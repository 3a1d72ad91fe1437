// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service
// layer.
//
// The session travels in an HttpOnly cookie set on OTP verification and
// cleared on logout; every protected route resolves it to a user ID
// through the auth middleware.
package http
