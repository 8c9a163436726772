package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/kaswatch/internal/subscription"

	redis "github.com/redis/go-redis/v9"
)

// subscriptionKeyPrefix is the Redis key namespace for wallet registrations.
const subscriptionKeyPrefix = "subscription"

// subscriptionUserKey returns the key of the sorted set holding one user's
// tracked wallet addresses. The insertion timestamp is used as score, giving
// a stable insertion-order listing.
//
// Format: "subscription:user:{userID}"
func subscriptionUserKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", subscriptionKeyPrefix, userID)
}

// replaceSubscriptionScript atomically rewrites a tracked address inside a
// user's sorted set, preserving the original insertion score.
//
// KEYS[1] = the user's subscription set
// ARGV[1] = old address, ARGV[2] = new address
//
// Returns "not_found" if the old address is not tracked, "conflict" if the
// new address already is, and "ok" on success.
var replaceSubscriptionScript = redis.NewScript(`
local score = redis.call('ZSCORE', KEYS[1], ARGV[1])
if not score then
	return 'not_found'
end
if redis.call('ZSCORE', KEYS[1], ARGV[2]) then
	return 'conflict'
end
redis.call('ZREM', KEYS[1], ARGV[1])
redis.call('ZADD', KEYS[1], score, ARGV[2])
return 'ok'
`)

// CreateSubscription implements subscription.Storage using ZADD NX: the add
// and the duplicate check are a single atomic operation, so two concurrent
// registrations of the same pair store exactly one member.
func (c *client) CreateSubscription(ctx context.Context, sub subscription.Subscription) error {
	key := subscriptionUserKey(sub.UserID)

	added, err := c.conn.ZAddNX(ctx, key, redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: sub.Address,
	}).Result()
	if err != nil {
		return err
	}

	if added == 0 {
		return subscription.ErrAlreadyTracked
	}

	return nil
}

// DeleteSubscription removes the registration, reporting ErrNotTracked when
// the member did not exist.
func (c *client) DeleteSubscription(ctx context.Context, sub subscription.Subscription) error {
	key := subscriptionUserKey(sub.UserID)

	removed, err := c.conn.ZRem(ctx, key, sub.Address).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return subscription.ErrNotTracked
	}

	return nil
}

// ReplaceSubscriptionAddress atomically rewrites the tracked address via a
// Lua script, keeping the registration's position in the listing.
func (c *client) ReplaceSubscriptionAddress(ctx context.Context, userID, oldAddress, newAddress string) error {
	key := subscriptionUserKey(userID)

	result, err := replaceSubscriptionScript.Run(ctx, c.conn, []string{key}, oldAddress, newAddress).Text()
	if err != nil {
		return err
	}

	switch result {
	case "not_found":
		return subscription.ErrNotTracked
	case "conflict":
		return subscription.ErrAddressConflict
	default:
		return nil
	}
}

// ListSubscriptions returns the user's registrations ordered by insertion
// score.
func (c *client) ListSubscriptions(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	key := subscriptionUserKey(userID)

	addresses, err := c.conn.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	subs := make([]subscription.Subscription, 0, len(addresses))
	for _, address := range addresses {
		subs = append(subs, subscription.Subscription{
			UserID:  userID,
			Address: address,
		})
	}

	return subs, nil
}

// ListAllSubscriptions scans every user subscription set. It is only used
// at startup to rebuild polling jobs, so the SCAN cost is acceptable.
func (c *client) ListAllSubscriptions(ctx context.Context) ([]subscription.Subscription, error) {
	var (
		subs    []subscription.Subscription
		pattern = subscriptionKeyPrefix + ":user:*"
		prefix  = subscriptionKeyPrefix + ":user:"
	)

	iter := c.conn.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		userID := key[len(prefix):]

		userSubs, err := c.ListSubscriptions(ctx, userID)
		if err != nil {
			return nil, err
		}

		subs = append(subs, userSubs...)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// Compile-time assertion that *client satisfies subscription.Storage.
var _ subscription.Storage = new(client)
