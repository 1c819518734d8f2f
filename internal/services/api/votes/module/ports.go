package module

import (
	votesdom "prokontra/internal/services/api/votes/domain"
)

// Ports exposes the score aggregator to other modules
type Ports struct {
	Scores votesdom.ScoresPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
