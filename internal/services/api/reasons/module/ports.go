package module

import (
	policydom "prokontra/internal/services/api/policy/domain"
	reasonsdom "prokontra/internal/services/api/reasons/domain"
	topicsdom "prokontra/internal/services/api/topics/domain"
	votesdom "prokontra/internal/services/api/votes/domain"
)

// PortsIn are the collaborator ports the reasons module consumes
type PortsIn struct {
	Topics topicsdom.ServicePort
	Scores votesdom.ScoresPort
	Policy policydom.CheckerPort
}

// Ports exposes the moderation surface to the admin module
type Ports struct {
	Moderation reasonsdom.ModerationPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
