// Package http provides http transport for topics
package http

import (
	stdhttp "net/http"

	"prokontra/internal/modkit/httpkit"
	svc "prokontra/internal/services/api/topics/service"
)

// Register mounts topics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/active", h.active)
}

type handlers struct{ svc svc.Service }

func (h *handlers) active(r *stdhttp.Request) (any, error) {
	return h.svc.Active(r.Context())
}
