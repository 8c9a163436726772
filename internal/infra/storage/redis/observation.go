package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/kaswatch/internal/ledger"
	"github.com/gabapcia/kaswatch/internal/monitor"
)

const (
	// monitorKeyPrefix is the Redis key namespace for wallet observation
	// baselines.
	monitorKeyPrefix = "monitor"

	// observationCountField holds the last observed transaction count.
	observationCountField = "transaction_count"

	// observationTxsField holds the JSON-encoded recent transaction list.
	observationTxsField = "transactions"
)

// observationKey returns the key of the hash holding one wallet's baseline.
//
// Format: "monitor:observation:{address}"
func observationKey(address string) string {
	return fmt.Sprintf("%s:observation:%s", monitorKeyPrefix, address)
}

// LoadObservation implements monitor.ObservationStorage backed by a Redis
// hash. A missing hash maps to monitor.ErrNoObservation.
func (c *client) LoadObservation(ctx context.Context, address string) (monitor.ObservationState, error) {
	fields, err := c.conn.HGetAll(ctx, observationKey(address)).Result()
	if err != nil {
		return monitor.ObservationState{}, err
	}

	if len(fields) == 0 {
		return monitor.ObservationState{}, monitor.ErrNoObservation
	}

	count, err := strconv.ParseInt(fields[observationCountField], 10, 64)
	if err != nil {
		return monitor.ObservationState{}, fmt.Errorf("parsing stored transaction count: %w", err)
	}

	var txs []ledger.Transaction
	if raw := fields[observationTxsField]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &txs); err != nil {
			return monitor.ObservationState{}, fmt.Errorf("decoding stored transactions: %w", err)
		}
	}

	return monitor.ObservationState{
		TransactionCount: count,
		Transactions:     txs,
	}, nil
}

// SaveObservation replaces the wallet's baseline. The hash has no TTL: it
// lives until the last subscriber of the wallet unsubscribes.
func (c *client) SaveObservation(ctx context.Context, address string, state monitor.ObservationState) error {
	encoded, err := json.Marshal(state.Transactions)
	if err != nil {
		return err
	}

	return c.conn.HSet(ctx, observationKey(address),
		observationCountField, strconv.FormatInt(state.TransactionCount, 10),
		observationTxsField, string(encoded),
	).Err()
}

// DeleteObservation drops the wallet's baseline. Deleting a missing key is
// not an error.
func (c *client) DeleteObservation(ctx context.Context, address string) error {
	return c.conn.Del(ctx, observationKey(address)).Err()
}

// Compile-time assertion that *client satisfies monitor.ObservationStorage.
var _ monitor.ObservationStorage = new(client)
