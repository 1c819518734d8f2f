package module

import (
	"prokontra/internal/platform/net/middleware"
	identdom "prokontra/internal/services/identity/domain"
)

// PortsIn are the collaborator ports claims needs from other modules
type PortsIn struct {
	Accounts identdom.AccountsPort
	Auth     middleware.AuthPort
}
