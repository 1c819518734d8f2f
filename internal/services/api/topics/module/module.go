// Package module wires topics into the API using modkit
package module

import (
	"net/http"

	modkit "prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	str "prokontra/internal/platform/strings"
	topicshttp "prokontra/internal/services/api/topics/http"
	topicsrepo "prokontra/internal/services/api/topics/repo"
	topicssvc "prokontra/internal/services/api/topics/service"
)

// Module owns debate topics and their lifecycle
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc topicssvc.Service
}

// New wires repo and service and prepares the route hooks
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("topics"), modkit.WithPrefix("/topics")}, opts...)...)

	repo := topicsrepo.NewPG()
	svc := topicssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Topics: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		topicshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts topic routes under the module prefix
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
