package domain

import "context"

// ServicePort defines the service contract for topics
type ServicePort interface {
	// Resolve returns the topic named by slug, or the newest live topic
	// when slug is empty
	Resolve(ctx context.Context, slug string) (Topic, error)
	// Active returns the newest live topic
	Active(ctx context.Context) (Topic, error)
}
