// Package module wires reasons into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	phttp "prokontra/internal/platform/net/http"
	"prokontra/internal/platform/net/middleware"
	"prokontra/internal/platform/ratelimit"
	str "prokontra/internal/platform/strings"
	reasonshttp "prokontra/internal/services/api/reasons/http"
	reasonsrepo "prokontra/internal/services/api/reasons/repo"
	reasonssvc "prokontra/internal/services/api/reasons/service"
)

// Module owns pro/con reasons: posting, listing, ranking
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc reasonssvc.Service
}

// New constructs a reasons module. The topics, scores, and policy ports are
// injected via WithPorts since other modules own them.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("reasons"), modkit.WithPrefix("/reasons")}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok {
		panic("reasons module requires PortsIn via modkit.WithPorts")
	}

	repo := reasonsrepo.NewPG()
	svc := reasonssvc.New(deps.PG, repo, in.Topics, in.Scores, in.Policy)

	perMin := deps.Cfg.Prefix("RATE_").MayInt("REASONS_PER_MIN", 12)
	limiter := ratelimit.NewWindow(perMin, time.Minute)
	limited := middleware.RateLimit(limiter, "reasons", phttp.JSON)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Moderation: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reasonshttp.Register(r, m.svc, limited)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts reason routes under the module prefix
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
