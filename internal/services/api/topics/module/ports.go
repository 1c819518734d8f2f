package module

import (
	topicsdom "prokontra/internal/services/api/topics/domain"
)

// Ports exposes the topic resolver to other modules
type Ports struct {
	Topics topicsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
