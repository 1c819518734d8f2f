package domain

import (
	"context"

	identdom "prokontra/internal/services/identity/domain"
)

// ServicePort defines the service contract for votes
type ServicePort interface {
	Cast(ctx context.Context, ident identdom.Identity, in CastInput) error
	ScoreOf(ctx context.Context, reasonID string) (Score, error)
}

// ScoresPort is what the reason listing needs from the aggregator
type ScoresPort interface {
	// ScoresFor returns scores for the given reasons; absent ids mean no votes
	ScoresFor(ctx context.Context, reasonIDs []string) (map[string]Score, error)
	// VotesOf returns the caller's current vote per reason, account rows
	// winning over anonymous rows when both exist
	VotesOf(ctx context.Context, ident identdom.Identity, reasonIDs []string) (map[string]int, error)
}
