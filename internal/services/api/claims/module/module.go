// Package module wires claims into the API using modkit
package module

import (
	"context"
	"net/http"
	"time"

	modkit "prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	"prokontra/internal/modkit/repokit"
	phttp "prokontra/internal/platform/net/http"
	"prokontra/internal/platform/net/middleware"
	"prokontra/internal/platform/ratelimit"
	str "prokontra/internal/platform/strings"
	claimshttp "prokontra/internal/services/api/claims/http"
	claimsrepo "prokontra/internal/services/api/claims/repo"
	claimssvc "prokontra/internal/services/api/claims/service"
)

// Module lets an authenticated account claim anonymous contributions
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc claimssvc.Service
}

// New constructs a claims module. The accounts and auth ports arrive via
// WithPorts, claiming only makes sense for an authenticated caller.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("claims"), modkit.WithPrefix("/claim")}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok {
		panic("claims module requires PortsIn via modkit.WithPorts")
	}

	repo := claimsrepo.NewPG()

	// merges over a large anonymous history shouldn't hold locks forever
	db := repokit.WithBeginHooks(deps.PG, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, "set local statement_timeout = '5s'")
		return err
	})
	svc := claimssvc.New(db, repo, in.Accounts)

	perMin := deps.Cfg.Prefix("RATE_").MayInt("CLAIMS_PER_MIN", 12)
	limiter := ratelimit.NewWindow(perMin, time.Minute)
	limited := middleware.RateLimit(limiter, "claims", phttp.JSON)

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
			claimshttp.Register(pr, m.svc, limited)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts claim routes behind the module middleware
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
