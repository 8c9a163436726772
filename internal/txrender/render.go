// Package txrender turns raw ledger data into the human-readable text used in
// notifications and command replies. Rendering is pure: no I/O, no clock, no
// shared state beyond the configured display timezone.
package txrender

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/kaswatch/internal/ledger"

	"github.com/shopspring/decimal"
)

// invalidTimestamp is rendered in place of a block time that cannot be
// converted. A bad timestamp never fails the whole render.
const invalidTimestamp = "Invalid timestamp"

// sompiPerKAS is the number of smallest units in one display unit.
const sompiPerKAS = 100_000_000

// blockTimeLayout is the display format for localized block times.
const blockTimeLayout = "2006-01-02 15:04:05"

// Amount converts a sompi amount into its KAS display string.
//
// The amount is scaled by 10^8 and printed with eight fractional digits, then
// the last two characters are dropped. The result always carries exactly six
// fractional digits and is truncated, never rounded:
//
//	123456789012 -> "1234.567890"
//	199999999    -> "1.999999"
func Amount(sompi int64) string {
	s := fmt.Sprintf("%d.%08d", sompi/sompiPerKAS, sompi%sompiPerKAS)
	return s[:len(s)-2]
}

// USDEstimate returns the USD value of a sompi amount at the given price,
// formatted with two decimals.
//
// The estimate is computed from the truncated KAS display amount, not the raw
// sompi value, so the rendered numbers stay consistent with each other.
func USDEstimate(sompi int64, price decimal.Decimal) string {
	amount, err := decimal.NewFromString(Amount(sompi))
	if err != nil {
		// Amount output is always a valid decimal; this path is unreachable.
		return decimal.Zero.StringFixed(2)
	}

	return amount.Mul(price).StringFixed(2)
}

// Renderer formats transactions for display, localizing block times to a
// fixed timezone chosen at construction.
type Renderer struct {
	loc *time.Location
}

// New creates a Renderer that localizes block times to the named IANA
// timezone (e.g. "US/Eastern"). It returns an error if the timezone is
// unknown.
func New(timezone string) (*Renderer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	return &Renderer{loc: loc}, nil
}

// blockTime converts an epoch-milliseconds UTC timestamp into the configured
// local timezone. Timestamps that cannot be represented render as the
// invalidTimestamp placeholder.
func (r *Renderer) blockTime(millis int64) string {
	if r == nil || r.loc == nil || millis < 0 {
		return invalidTimestamp
	}

	t := time.UnixMilli(millis).In(r.loc)
	if t.Year() > 9999 {
		return invalidTimestamp
	}

	return t.Format(blockTimeLayout)
}

// Transactions renders a numbered list of transactions, most recent first,
// with the total output amount, its USD estimate at the given price, and the
// localized block time:
//
//	1. Transaction ID: <id>
//	   Amount: <kas> KAS (~$<usd>)
//	   Time: <local time>
func (r *Renderer) Transactions(txs []ledger.Transaction, price decimal.Decimal) string {
	var b strings.Builder
	for i, tx := range txs {
		fmt.Fprintf(&b, "%d. Transaction ID: %s\n", i+1, tx.ID)
		fmt.Fprintf(&b, "   Amount: %s KAS (~$%s)\n", Amount(tx.TotalOutput), USDEstimate(tx.TotalOutput, price))
		fmt.Fprintf(&b, "   Time: %s\n\n", r.blockTime(tx.BlockTime))
	}

	return b.String()
}
