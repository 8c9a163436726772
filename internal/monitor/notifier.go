package monitor

import (
	"context"

	"github.com/gabapcia/kaswatch/internal/pkg/logger"
)

// Recipient identifies one subscriber of a wallet's notifications: the user
// that registered the wallet and the destination its messages are pushed to
// (e.g. a chat identifier).
type Recipient struct {
	UserID      string `validate:"required"` // opaque identifier of the subscribing user
	Destination string `validate:"required"` // delivery destination for notifications
}

// Notification is a single outbound message produced by a detected change.
type Notification struct {
	ID          string // unique delivery identifier (UUIDv7)
	Address     string // wallet address the activity belongs to
	Destination string // delivery destination of the recipient
	Text        string // fully rendered message body
}

// Notifier pushes rendered notifications to their destination.
//
// Delivery is fire-and-forget from the scheduler's point of view: no
// acknowledgment is awaited beyond the error returned by Deliver, and a
// failed delivery never interrupts the polling schedule.
type Notifier interface {
	// Deliver sends the notification to its destination. It returns an error
	// if the message could not be handed off.
	Deliver(ctx context.Context, n Notification) error
}

// NotificationDispatchFailure describes a notification that could not be
// delivered after all retry attempts. Errors holds every error encountered,
// in attempt order.
type NotificationDispatchFailure struct {
	Notification Notification
	Errors       []error
}

// dispatchFailureHandler consumes terminal delivery failures.
type dispatchFailureHandler func(ctx context.Context, failure NotificationDispatchFailure)

// defaultOnDispatchFailure logs terminal delivery failures.
func defaultOnDispatchFailure(ctx context.Context, failure NotificationDispatchFailure) {
	logger.Error(ctx, "notification dispatch failure",
		"notification.id", failure.Notification.ID,
		"wallet.address", failure.Notification.Address,
		"notification.destination", failure.Notification.Destination,
		"errors", failure.Errors,
	)
}
