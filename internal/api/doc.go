// Package api exposes the rental services over HTTP. Handlers decode and
// validate requests, call a service and translate its sentinel errors into
// status codes and sanitized messages.
package api
