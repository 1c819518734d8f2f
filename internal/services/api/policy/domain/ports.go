package domain

import "context"

// CheckerPort is what the contribution path needs: reject or pass a body
type CheckerPort interface {
	// Check returns a content policy error when body matches the word list
	Check(ctx context.Context, body string) error
}

// ServicePort defines the full service contract including admin CRUD
type ServicePort interface {
	CheckerPort
	List(ctx context.Context) ([]BannedWord, error)
	Add(ctx context.Context, in AddInput) (BannedWord, error)
	Remove(ctx context.Context, in RemoveInput) error
}
