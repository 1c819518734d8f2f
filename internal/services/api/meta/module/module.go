// Package module exposes the service's own vitals as a module
package module

import (
	"net/http"
	"time"

	modkit "prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	str "prokontra/internal/platform/strings"

	metahttp "prokontra/internal/services/api/meta/http"
)

// Module serves health, readiness, and version endpoints
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs the meta module; it needs no repo, just the PG seam
// for readiness probes
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "prokontra-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes mounts the meta routes
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

func (m *Module) Name() string { return str.MustString(m.name, "module name") }

func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns nil, meta exposes nothing to other modules
func (m *Module) Ports() any { return nil }
