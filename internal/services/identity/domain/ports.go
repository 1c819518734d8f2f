package domain

import "context"

// VerifierPort checks a bearer token and returns the account it names
type VerifierPort interface {
	Verify(token string) (accountID string, role string, err error)
}

// AccountsPort abstracts the account rows the claim flow needs
type AccountsPort interface {
	// Ensure creates the account row if it does not exist yet
	Ensure(ctx context.Context, id, role string) error
}
