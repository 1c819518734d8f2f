package domain

import (
	"context"

	identdom "prokontra/internal/services/identity/domain"
)

// ServicePort is what other modules may call on claims
type ServicePort interface {
	// Claim re-homes the caller's anonymous reasons and votes onto their account
	Claim(ctx context.Context, ident identdom.Identity) (Result, error)
}
