// Package module wires votes into the API using modkit
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
	voteshttp "prokontra/internal/services/api/votes/http"
	votesrepo "prokontra/internal/services/api/votes/repo"
	votessvc "prokontra/internal/services/api/votes/service"
)

// Module records votes and serves tallies
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc votessvc.Service
}

// New wires the vote repo and service; the reasons port arrives via
// WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("votes"), modkit.WithPrefix("/votes")}, opts...)...)

	repo := votesrepo.NewPG()
	svc := votessvc.New(deps.PG, repo)

	perMin := deps.Cfg.Prefix("RATE_").MayInt("VOTES_PER_MIN", 40)
	limiter := ratelimit.NewWindow(perMin, time.Minute)
	limited := middleware.RateLimit(limiter, "votes", phttp.JSON)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Scores: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		voteshttp.Register(r, m.svc, limited)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts vote routes under the module prefix
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
