// Package httpkit re-exports the platform http surface modules need so they
// do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "prokontra/internal/platform/net/http"
)

type (
	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response is the HTTP response type
	Response = phttp.Response

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Call adapts a handler that takes no JSON body. A returned Response passes
// through unchanged; any other value is wrapped in a 200 envelope
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}
