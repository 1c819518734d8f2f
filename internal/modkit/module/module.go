// Package module holds the module contract as a standalone package so a
// module exporting its own ports type can avoid importing all of modkit
package module

import (
	phttp "prokontra/internal/platform/net/http"
)

// Module mirrors modkit.Module
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
