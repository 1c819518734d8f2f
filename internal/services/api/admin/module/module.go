// Package module wires the admin surface into the API using modkit
package module

import (
	"net/http"

	modkit "prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	str "prokontra/internal/platform/strings"
	adminhttp "prokontra/internal/services/api/admin/http"
	adminrepo "prokontra/internal/services/api/admin/repo"
	adminsvc "prokontra/internal/services/api/admin/service"
)

// Module is the moderation and banned-word admin surface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc adminsvc.Service
}

// New constructs an admin module. Moderation, policy, and auth ports arrive
// via WithPorts.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("admin"), modkit.WithPrefix("/admin")}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok {
		panic("admin module requires PortsIn via modkit.WithPorts")
	}

	repo := adminrepo.NewPG()
	svc := adminsvc.New(deps.PG, repo, in.Moderation, in.Policy)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, in.Auth, func(pr httpkit.Router) {
			adminhttp.Register(pr, m.svc)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the admin routes under the module prefix
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

// Name reports the registry name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix reports the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares reports the per-module middleware chain
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns what this module exposes to others
func (m *Module) Ports() any { return m.ports }
