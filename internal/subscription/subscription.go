package subscription

import (
	"context"
	"errors"

	"github.com/gabapcia/kaswatch/internal/pkg/validator"
)

var (
	// ErrAlreadyTracked is returned by Track when the (user, address) pair is
	// already registered. The stored data is left untouched, making Track
	// effectively idempotent.
	ErrAlreadyTracked = errors.New("wallet already tracked by user")

	// ErrNotTracked is returned by Untrack and ChangeAddress when no
	// registration exists for the given (user, address) pair. Nothing is
	// mutated in that case.
	ErrNotTracked = errors.New("wallet not tracked by user")

	// ErrAddressConflict is returned by ChangeAddress when the new address is
	// already tracked by the same user. The replace is rejected instead of
	// creating a duplicate registration.
	ErrAddressConflict = errors.New("new wallet address already tracked by user")
)

// Subscription represents a single (user, wallet address) registration.
// The pair is unique: a user tracks a given address at most once.
//
// Both fields are required and validated before any storage call.
type Subscription struct {
	UserID  string `validate:"required"` // opaque identifier of the subscribing user
	Address string `validate:"required"` // wallet address being monitored
}

// Storage defines the persistence contract for wallet registrations.
//
// All operations are linearizable with respect to each other, and every
// mutating call must be committed before it returns success.
type Storage interface {
	// CreateSubscription inserts the registration unless the exact
	// (user, address) pair already exists, in which case it returns
	// ErrAlreadyTracked and changes nothing.
	CreateSubscription(ctx context.Context, sub Subscription) error

	// DeleteSubscription removes the registration. It returns ErrNotTracked
	// if the pair does not exist.
	DeleteSubscription(ctx context.Context, sub Subscription) error

	// ReplaceSubscriptionAddress atomically rewrites the address of an
	// existing registration, preserving its position in the user's list.
	//
	// It returns ErrNotTracked if (userID, oldAddress) does not exist, and
	// ErrAddressConflict if (userID, newAddress) already exists.
	ReplaceSubscriptionAddress(ctx context.Context, userID, oldAddress, newAddress string) error

	// ListSubscriptions returns every registration of the given user in
	// insertion order. The order is stable across calls.
	ListSubscriptions(ctx context.Context, userID string) ([]Subscription, error)

	// ListAllSubscriptions returns every registration of every user. It is
	// used to rebuild watch jobs after a restart.
	ListAllSubscriptions(ctx context.Context) ([]Subscription, error)
}

// buildSubscription constructs and validates a Subscription from raw input.
func buildSubscription(userID, address string) (Subscription, error) {
	sub := Subscription{
		UserID:  userID,
		Address: address,
	}

	return sub, validator.Validate(sub)
}

// Track registers a wallet address for the given user.
//
// It validates the input and delegates to Storage. ErrAlreadyTracked is
// passed through unchanged so callers can treat the call as idempotent.
func (s *service) Track(ctx context.Context, userID, address string) error {
	sub, err := buildSubscription(userID, address)
	if err != nil {
		return err
	}

	return s.storage.CreateSubscription(ctx, sub)
}

// Untrack removes the registration of a wallet address for the given user.
func (s *service) Untrack(ctx context.Context, userID, address string) error {
	sub, err := buildSubscription(userID, address)
	if err != nil {
		return err
	}

	return s.storage.DeleteSubscription(ctx, sub)
}

// ChangeAddress replaces the address of an existing registration in place.
//
// The replace is atomic. If the user already tracks newAddress the call fails
// with ErrAddressConflict rather than producing a duplicate registration.
func (s *service) ChangeAddress(ctx context.Context, userID, oldAddress, newAddress string) error {
	if _, err := buildSubscription(userID, oldAddress); err != nil {
		return err
	}
	if _, err := buildSubscription(userID, newAddress); err != nil {
		return err
	}

	return s.storage.ReplaceSubscriptionAddress(ctx, userID, oldAddress, newAddress)
}

// List returns the wallet registrations of the given user in insertion order.
func (s *service) List(ctx context.Context, userID string) ([]Subscription, error) {
	return s.storage.ListSubscriptions(ctx, userID)
}

// ListAll returns every registration across all users.
func (s *service) ListAll(ctx context.Context) ([]Subscription, error) {
	return s.storage.ListAllSubscriptions(ctx)
}
