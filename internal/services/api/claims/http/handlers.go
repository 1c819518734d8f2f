// Package http provides http transport for claims
package http

import (
	stdhttp "net/http"

	"prokontra/internal/modkit/httpkit"
	svc "prokontra/internal/services/api/claims/service"
	identsvc "prokontra/internal/services/identity/service"
)

// Register mounts the claim endpoint on the given router
func Register(r httpkit.Router, s svc.Service, limited func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	r.Group(func(gr httpkit.Router) {
		if limited != nil {
			gr.Use(limited)
		}
		httpkit.Post(gr, "/", h.claim)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) claim(r *stdhttp.Request) (any, error) {
	return h.svc.Claim(r.Context(), identsvc.Resolve(r))
}
