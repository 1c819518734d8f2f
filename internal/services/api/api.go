// Package api provides the HTTP API for the application
package api

import (
	"prokontra/internal/platform/config"
	"prokontra/internal/platform/logger"
	phttp "prokontra/internal/platform/net/http"
	"prokontra/internal/platform/store"

	"prokontra/internal/modkit"
	"prokontra/internal/modkit/httpkit"
	"prokontra/internal/modkit/module"

	adminmod "prokontra/internal/services/api/admin/module"
	claimsmod "prokontra/internal/services/api/claims/module"
	metamod "prokontra/internal/services/api/meta/module"
	policyrepo "prokontra/internal/services/api/policy/repo"
	policysvc "prokontra/internal/services/api/policy/service"
	reasonsmod "prokontra/internal/services/api/reasons/module"
	topicsmod "prokontra/internal/services/api/topics/module"
	votesmod "prokontra/internal/services/api/votes/module"
	identrepo "prokontra/internal/services/identity/repo"
	identsvc "prokontra/internal/services/identity/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// SecureCookies marks the anon cookie Secure, turn off for local http
	SecureCookies bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// identity first, every other module leans on it
	verifier := identsvc.NewHMACVerifier([]byte(opt.Config.MustString("AUTH_JWT_SECRET")))
	ident := identsvc.New(deps.PG, identrepo.NewPG(), verifier)
	authPort := httpkit.NewPortFunc(ident.TokenFunc())

	// policy has no routes of its own, admin mounts its CRUD
	policy := policysvc.New(deps.PG, policyrepo.NewPG())

	topics := topicsmod.New(deps)
	votes := votesmod.New(deps)

	reasons := reasonsmod.New(deps, modkit.WithPorts(reasonsmod.PortsIn{
		Topics: module.MustPortsOf[topicsmod.Ports](topics).Topics,
		Scores: module.MustPortsOf[votesmod.Ports](votes).Scores,
		Policy: policy,
	}))

	claims := claimsmod.New(deps, modkit.WithPorts(claimsmod.PortsIn{
		Accounts: ident,
		Auth:     authPort,
	}))

	admin := adminmod.New(deps, modkit.WithPorts(adminmod.PortsIn{
		Moderation: module.MustPortsOf[reasonsmod.Ports](reasons).Moderation,
		Policy:     policy,
		Auth:       authPort,
	}))

	mods := []module.Module{
		metamod.New(deps),
		topics,
		votes,
		reasons,
		claims,
		admin,
	}

	// every request gets an anon cookie and, when a bearer rides along, the
	// account identity. Protected routes re-check with the hard auth gate.
	stack := append(
		httpkit.CommonStack(),
		identsvc.AnonCookie(opt.SecureCookies),
		httpkit.AuthOptional(authPort),
	)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
