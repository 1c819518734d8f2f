// Package http provides http transport for reasons
package http

import (
	stdhttp "net/http"

	"prokontra/internal/modkit/httpkit"
	"prokontra/internal/services/api/reasons/domain"
	svc "prokontra/internal/services/api/reasons/service"
	identsvc "prokontra/internal/services/identity/service"
)

// Register mounts reason endpoints on the given router. Posting sits behind
// the limiter; the listing stays unmetered.
func Register(r httpkit.Router, s svc.Service, limited func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	r.Group(func(gr httpkit.Router) {
		if limited != nil {
			gr.Use(limited)
		}
		httpkit.PostJSON[domain.CreateInput](gr, "/", h.create)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	ident := identsvc.Resolve(r)
	return h.svc.List(r.Context(), ident, r.URL.Query().Get("slug"))
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	ident := identsvc.Resolve(r)
	created, err := h.svc.Create(r.Context(), ident, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(created), nil
}
