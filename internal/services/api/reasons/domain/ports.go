package domain

import (
	"context"

	identdom "prokontra/internal/services/identity/domain"
)

// ServicePort defines the service contract for reasons
type ServicePort interface {
	List(ctx context.Context, ident identdom.Identity, slug string) (Board, error)
	Create(ctx context.Context, ident identdom.Identity, in CreateInput) (Created, error)
}

// ModerationPort is what the admin surface needs
type ModerationPort interface {
	SetDeleted(ctx context.Context, reasonID string, deleted bool) error
	SetFeatured(ctx context.Context, reasonID string, featured bool) error
}
