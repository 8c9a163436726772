// Package kaspa implements the ledger.Client contract against the public
// Kaspa REST API (api.kaspa.org or any compatible deployment).
package kaspa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/kaswatch/internal/ledger"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// client talks to the Kaspa REST API over a retrying HTTP client.
type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// Compile-time check that *client satisfies the ledger.Client contract.
var _ ledger.Client = (*client)(nil)

// NewClient creates a Kaspa REST client rooted at baseURL
// (e.g. "https://api.kaspa.org").
func NewClient(baseURL string, httpClient *retryablehttp.Client) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// getJSON performs a GET against the API and decodes the JSON response into
// out. Transport failures, non-2xx statuses, and undecodable payloads all
// map to ledger.ErrUnavailable: from the core's point of view they are the
// same transient condition.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status %d", ledger.ErrUnavailable, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ledger.ErrUnavailable, err)
	}

	return nil
}

// FetchBalance returns the address balance in sompi.
func (c *client) FetchBalance(ctx context.Context, address string) (int64, error) {
	var body balanceResponse
	path := fmt.Sprintf("/addresses/%s/balance", url.PathEscape(address))

	if err := c.getJSON(ctx, path, &body); err != nil {
		return 0, err
	}

	return body.Balance, nil
}

// FetchTransactionCount returns the cumulative transaction count of the
// address.
func (c *client) FetchTransactionCount(ctx context.Context, address string) (int64, error) {
	var body transactionCountResponse
	path := fmt.Sprintf("/addresses/%s/transactions-count", url.PathEscape(address))

	if err := c.getJSON(ctx, path, &body); err != nil {
		return 0, err
	}

	return body.Total, nil
}

// FetchRecentTransactions returns up to limit transactions for the address,
// most-recent-first, with previous outpoints left unresolved (the core only
// needs output totals).
func (c *client) FetchRecentTransactions(ctx context.Context, address string, limit int) ([]ledger.Transaction, error) {
	var body []fullTransaction
	path := fmt.Sprintf("/addresses/%s/full-transactions?limit=%d&offset=0&resolve_previous_outpoints=no", url.PathEscape(address), limit)

	if err := c.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, 0, len(body))
	for _, tx := range body {
		txs = append(txs, tx.toLedgerTransaction())
	}

	return txs, nil
}

// FetchPrice returns the current USD price of one KAS.
func (c *client) FetchPrice(ctx context.Context) (decimal.Decimal, error) {
	var body priceResponse

	if err := c.getJSON(ctx, "/info/price", &body); err != nil {
		return decimal.Zero, err
	}

	return body.Price, nil
}
