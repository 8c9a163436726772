package kaspa

import (
	"github.com/gabapcia/kaswatch/internal/ledger"

	"github.com/shopspring/decimal"
)

// balanceResponse is the payload of GET /addresses/{address}/balance.
type balanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"` // sompi
}

// transactionCountResponse is the payload of
// GET /addresses/{address}/transactions-count.
type transactionCountResponse struct {
	Total         int64 `json:"total"`
	LimitExceeded bool  `json:"limit_exceeded"`
}

// priceResponse is the payload of GET /info/price.
type priceResponse struct {
	Price decimal.Decimal `json:"price"` // USD per KAS
}

// transactionOutput is one output entry of a full transaction.
type transactionOutput struct {
	Amount int64 `json:"amount"` // sompi
}

// fullTransaction is one entry of the payload of
// GET /addresses/{address}/full-transactions. Only the fields the monitoring
// core consumes are decoded.
type fullTransaction struct {
	TransactionID string              `json:"transaction_id"`
	BlockTime     int64               `json:"block_time"` // epoch milliseconds
	Outputs       []transactionOutput `json:"outputs"`
}

// toLedgerTransaction converts the API payload into the domain transaction,
// summing all output amounts.
func (t fullTransaction) toLedgerTransaction() ledger.Transaction {
	var total int64
	for _, output := range t.Outputs {
		total += output.Amount
	}

	return ledger.Transaction{
		ID:          t.TransactionID,
		TotalOutput: total,
		BlockTime:   t.BlockTime,
	}
}
