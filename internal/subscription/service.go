// Package subscription owns the durable mapping of (user, wallet address)
// registrations. It is the single writer of that data; every other component
// reads it through this service.
package subscription

import "context"

// Service defines the registration operations exposed to the rest of the
// system. Implementations validate input and delegate persistence to the
// configured Storage.
type Service interface {
	// Track registers a wallet address for a user.
	// Returns ErrAlreadyTracked if the pair is already registered.
	Track(ctx context.Context, userID, address string) error

	// Untrack removes a registration.
	// Returns ErrNotTracked if the pair is not registered.
	Untrack(ctx context.Context, userID, address string) error

	// ChangeAddress atomically replaces the address of an existing
	// registration. Returns ErrNotTracked if the old pair is missing and
	// ErrAddressConflict if the new pair already exists.
	ChangeAddress(ctx context.Context, userID, oldAddress, newAddress string) error

	// List returns the user's registrations in insertion order.
	List(ctx context.Context, userID string) ([]Subscription, error)

	// ListAll returns every registration across all users.
	ListAll(ctx context.Context) ([]Subscription, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage Storage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new subscription service backed by the provided Storage.
func New(storage Storage) *service {
	return &service{
		storage: storage,
	}
}
