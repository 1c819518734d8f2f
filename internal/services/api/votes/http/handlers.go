// Package http provides http transport for votes
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"prokontra/internal/modkit/httpkit"
	"prokontra/internal/services/api/votes/domain"
	svc "prokontra/internal/services/api/votes/service"
	identsvc "prokontra/internal/services/identity/service"
)

// Register mounts vote endpoints on the given router. The cast route sits
// behind the limiter so reads stay unmetered.
func Register(r httpkit.Router, s svc.Service, limited func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	r.Group(func(gr httpkit.Router) {
		if limited != nil {
			gr.Use(limited)
		}
		httpkit.PostJSON[domain.CastInput](gr, "/", h.cast)
	})
	httpkit.Get(r, "/{reasonID}", h.score)
}

type handlers struct{ svc svc.Service }

func (h *handlers) cast(r *stdhttp.Request, in domain.CastInput) (any, error) {
	ident := identsvc.Resolve(r)
	if err := h.svc.Cast(r.Context(), ident, in); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

func (h *handlers) score(r *stdhttp.Request) (any, error) {
	return h.svc.ScoreOf(r.Context(), chi.URLParam(r, "reasonID"))
}
