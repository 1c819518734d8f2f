package modkit

import (
	phttp "prokontra/internal/platform/net/http"
)

// Module is what every API module exposes to the composition root: routes to
// mount plus a port set other modules can wire against
type Module interface {
	// MountRoutes registers HTTP routes on the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module-specific port set for cross-module wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options. Modules expose
// New(deps Deps, opts ...Option) Module built on this shape
type Builder func(Deps, ...Option) Module
