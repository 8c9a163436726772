package redis

import (
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/kaswatch/internal/subscription"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts an in-process Redis server and returns a storage
// client connected to it.
func newTestClient(t *testing.T) *client {
	t.Helper()

	srv := miniredis.RunT(t)

	conn := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return &client{conn: conn}
}

func TestClient_CreateSubscription(t *testing.T) {
	t.Run("should store a new registration", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		sub := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}

		// Act
		err := c.CreateSubscription(t.Context(), sub)

		// Assert
		require.NoError(t, err)

		subs, err := c.ListSubscriptions(t.Context(), sub.UserID)
		require.NoError(t, err)
		assert.Equal(t, []subscription.Subscription{sub}, subs)
	})

	t.Run("should return ErrAlreadyTracked when the pair is already registered", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		sub := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}
		require.NoError(t, c.CreateSubscription(t.Context(), sub))

		// Act
		err := c.CreateSubscription(t.Context(), sub)

		// Assert
		assert.ErrorIs(t, err, subscription.ErrAlreadyTracked)
	})

	t.Run("should store exactly one member for concurrent registrations of the same pair", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		sub := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}

		const attempts = 25

		// Act
		var (
			wg   sync.WaitGroup
			errs = make([]error, attempts)
		)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = c.CreateSubscription(t.Context(), sub)
			}()
		}
		wg.Wait()

		// Assert
		var created, duplicated int
		for _, err := range errs {
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, subscription.ErrAlreadyTracked):
				duplicated++
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, attempts-1, duplicated)

		subs, err := c.ListSubscriptions(t.Context(), sub.UserID)
		require.NoError(t, err)
		assert.Equal(t, []subscription.Subscription{sub}, subs)
	})

	t.Run("should keep registrations of different users apart", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		first := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}
		second := subscription.Subscription{UserID: "67890", Address: first.Address}

		// Act
		require.NoError(t, c.CreateSubscription(t.Context(), first))
		err := c.CreateSubscription(t.Context(), second)

		// Assert
		require.NoError(t, err)

		subs, err := c.ListSubscriptions(t.Context(), first.UserID)
		require.NoError(t, err)
		assert.Equal(t, []subscription.Subscription{first}, subs)
	})
}

func TestClient_DeleteSubscription(t *testing.T) {
	t.Run("should remove an existing registration", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		sub := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}
		require.NoError(t, c.CreateSubscription(t.Context(), sub))

		// Act
		err := c.DeleteSubscription(t.Context(), sub)

		// Assert
		require.NoError(t, err)

		subs, err := c.ListSubscriptions(t.Context(), sub.UserID)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("should return ErrNotTracked when the registration does not exist", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		sub := subscription.Subscription{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"}

		// Act
		err := c.DeleteSubscription(t.Context(), sub)

		// Assert
		assert.ErrorIs(t, err, subscription.ErrNotTracked)
	})
}

func TestClient_ReplaceSubscriptionAddress(t *testing.T) {
	t.Run("should rewrite the address and keep the registration's position", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		userID := "12345"
		oldAddress := "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"
		otherAddress := "kaspa:qr5e2k9mf6d07m9xrw0g3r5e2k9mf6d07m"
		newAddress := "kaspa:qz9f3l0ng7e18n0ysx1h4z9f3l0ng7e18n"

		require.NoError(t, c.CreateSubscription(t.Context(), subscription.Subscription{UserID: userID, Address: oldAddress}))
		time.Sleep(time.Millisecond) // distinct insertion scores
		require.NoError(t, c.CreateSubscription(t.Context(), subscription.Subscription{UserID: userID, Address: otherAddress}))

		// Act
		err := c.ReplaceSubscriptionAddress(t.Context(), userID, oldAddress, newAddress)

		// Assert
		require.NoError(t, err)

		subs, err := c.ListSubscriptions(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []subscription.Subscription{
			{UserID: userID, Address: newAddress},
			{UserID: userID, Address: otherAddress},
		}, subs)
	})

	t.Run("should return ErrNotTracked when the old address is not registered", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)

		// Act
		err := c.ReplaceSubscriptionAddress(t.Context(), "12345", "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l", "kaspa:qz9f3l0ng7e18n0ysx1h4z9f3l0ng7e18n")

		// Assert
		assert.ErrorIs(t, err, subscription.ErrNotTracked)
	})

	t.Run("should return ErrAddressConflict when the new address is already registered", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		userID := "12345"
		oldAddress := "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"
		newAddress := "kaspa:qz9f3l0ng7e18n0ysx1h4z9f3l0ng7e18n"

		require.NoError(t, c.CreateSubscription(t.Context(), subscription.Subscription{UserID: userID, Address: oldAddress}))
		require.NoError(t, c.CreateSubscription(t.Context(), subscription.Subscription{UserID: userID, Address: newAddress}))

		// Act
		err := c.ReplaceSubscriptionAddress(t.Context(), userID, oldAddress, newAddress)

		// Assert
		assert.ErrorIs(t, err, subscription.ErrAddressConflict)

		subs, err := c.ListSubscriptions(t.Context(), userID)
		require.NoError(t, err)
		assert.Len(t, subs, 2)
	})
}

func TestClient_ListSubscriptions(t *testing.T) {
	t.Run("should return an empty list for an unknown user", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)

		// Act
		subs, err := c.ListSubscriptions(t.Context(), "12345")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("should list registrations in insertion order", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		userID := "12345"
		addresses := []string{
			"kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l",
			"kaspa:qr5e2k9mf6d07m9xrw0g3r5e2k9mf6d07m",
			"kaspa:qz9f3l0ng7e18n0ysx1h4z9f3l0ng7e18n",
		}
		for _, address := range addresses {
			require.NoError(t, c.CreateSubscription(t.Context(), subscription.Subscription{UserID: userID, Address: address}))
			time.Sleep(time.Millisecond) // distinct insertion scores
		}

		// Act
		subs, err := c.ListSubscriptions(t.Context(), userID)

		// Assert
		require.NoError(t, err)

		got := make([]string, 0, len(subs))
		for _, sub := range subs {
			got = append(got, sub.Address)
		}
		assert.Equal(t, addresses, got)
	})
}

func TestClient_ListAllSubscriptions(t *testing.T) {
	t.Run("should return an empty list when nothing is registered", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)

		// Act
		subs, err := c.ListAllSubscriptions(t.Context())

		// Assert
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("should gather registrations across every user", func(t *testing.T) {
		// Arrange
		c := newTestClient(t)
		expected := []subscription.Subscription{
			{UserID: "12345", Address: "kaspa:qq0d6h8pe5c96l8wqv9f2q0d6h8pe5c96l"},
			{UserID: "12345", Address: "kaspa:qr5e2k9mf6d07m9xrw0g3r5e2k9mf6d07m"},
			{UserID: "67890", Address: "kaspa:qz9f3l0ng7e18n0ysx1h4z9f3l0ng7e18n"},
		}
		for _, sub := range expected {
			require.NoError(t, c.CreateSubscription(t.Context(), sub))
		}

		// Act
		subs, err := c.ListAllSubscriptions(t.Context())

		// Assert
		require.NoError(t, err)
		assert.ElementsMatch(t, expected, subs)
	})
}
