// Package modkit wires modules together and carries their shared deps.
package modkit

import (
	"prokontra/internal/modkit/repokit"
	"prokontra/internal/platform/config"
	"prokontra/internal/platform/logger"
)

// Deps is the bundle every module constructor receives.
// Pure wiring; no behavior lives here.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// ZeroOK reports whether a zero Deps is usable, which it is for tests
// that never touch the store. Callers still nil-check PG.
func (d Deps) ZeroOK() bool { return true }
