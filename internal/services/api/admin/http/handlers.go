// Package http provides http transport for the admin surface
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"prokontra/internal/modkit/httpkit"
	svc "prokontra/internal/services/api/admin/service"
	policydom "prokontra/internal/services/api/policy/domain"
	reasonsdom "prokontra/internal/services/api/reasons/domain"
	identsvc "prokontra/internal/services/identity/service"
)

// Register mounts the admin endpoints on the given router. Every handler
// checks the role itself, the router only guarantees a parsed token.
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PatchJSON[reasonsdom.ModerateInput](r, "/reasons/{reasonID}", h.moderate)
	httpkit.Get(r, "/banned-words", h.listWords)
	httpkit.PostJSON[policydom.AddInput](r, "/banned-words", h.addWord)
	httpkit.DeleteJSON[policydom.RemoveInput](r, "/banned-words", h.removeWord)
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc svc.Service }

func (h *handlers) moderate(r *stdhttp.Request, in reasonsdom.ModerateInput) (any, error) {
	if err := svc.RequireAdmin(identsvc.Resolve(r)); err != nil {
		return nil, err
	}
	if err := h.svc.Moderate(r.Context(), chi.URLParam(r, "reasonID"), in); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

func (h *handlers) listWords(r *stdhttp.Request) (any, error) {
	if err := svc.RequireAdmin(identsvc.Resolve(r)); err != nil {
		return nil, err
	}
	return h.svc.ListWords(r.Context())
}

func (h *handlers) addWord(r *stdhttp.Request, in policydom.AddInput) (any, error) {
	if err := svc.RequireAdmin(identsvc.Resolve(r)); err != nil {
		return nil, err
	}
	return h.svc.AddWord(r.Context(), in)
}

func (h *handlers) removeWord(r *stdhttp.Request, in policydom.RemoveInput) (any, error) {
	if err := svc.RequireAdmin(identsvc.Resolve(r)); err != nil {
		return nil, err
	}
	if err := h.svc.RemoveWord(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"ok": true}, nil
}

func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	if err := svc.RequireAdmin(identsvc.Resolve(r)); err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context())
}
