package store

import (
	"prokontra/internal/platform/logger"
)

// Option tweaks a Store while Open assembles it
type Option func(*Store) error

// WithLogger routes subclient logging through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
