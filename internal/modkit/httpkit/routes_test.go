package httpkit

import (
	"net/http"
	"testing"

	phttp "prokontra/internal/platform/net/http"
)

func TestMountUnder_WiresMiddlewareThenRoutes(t *testing.T) {
	t.Parallel()

	root := &routeRecorder{}
	authMw := func(next http.Handler) http.Handler { return next }
	quotaMw := func(next http.Handler) http.Handler { return next }

	MountUnder(root, "/topics", []func(http.Handler) http.Handler{authMw, quotaMw}, func(sub Router) {
		sub.Get("/{slug}", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.OK("remote-work")
		}))
	})

	if len(root.prefixes) != 1 || root.prefixes[0] != "/topics" {
		t.Fatalf("Route prefixes = %v, want [/topics]", root.prefixes)
	}
	if root.useCount != 1 || root.mwSeen != 2 {
		t.Fatalf("Use calls = %d with %d middleware, want 1/2", root.useCount, root.mwSeen)
	}
	if len(root.recs) != 1 {
		t.Fatalf("registrations = %d, want 1", len(root.recs))
	}
	if got := root.recs[0]; got.verb != "GET" || got.path != "/{slug}" || got.ph == nil {
		t.Fatalf("registration = %+v, want GET /{slug} with handler", got)
	}
}

func TestMountUnder_EmptyMiddlewareSkipsUse(t *testing.T) {
	t.Parallel()

	root := &routeRecorder{}
	MountUnder(root, "/votes", nil, func(sub Router) {
		sub.Delete("/{id}", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.NoContent()
		}))
	})

	if root.useCount != 0 {
		t.Fatalf("Use ran %d times on an empty stack, want 0", root.useCount)
	}
	if len(root.recs) != 1 || root.recs[0].verb != "DELETE" || root.recs[0].path != "/{id}" {
		t.Fatalf("registrations = %+v, want one DELETE /{id}", root.recs)
	}
}
