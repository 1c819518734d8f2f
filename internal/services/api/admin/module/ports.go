package module

import (
	"prokontra/internal/platform/net/middleware"
	policydom "prokontra/internal/services/api/policy/domain"
	reasonsdom "prokontra/internal/services/api/reasons/domain"
)

// PortsIn are the collaborator ports admin needs from other modules
type PortsIn struct {
	Moderation reasonsdom.ModerationPort
	Policy     policydom.ServicePort
	Auth       middleware.AuthPort
}
