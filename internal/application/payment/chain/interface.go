// Package chain defines the on-chain capabilities the payment workflow
// consumes: balance queries and transfer submission, in regular and
// relay-sponsored modes. Implementations live in infrastructure.
package chain

import (
	"context"

	"github.com/shopspring/decimal"

	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
)

// TransferRequest describes a single token transfer.
type TransferRequest struct {
	From   string
	To     string
	Amount decimal.Decimal
	Token  vo.Token
}

// TransferResult carries the transaction hash of a submitted transfer.
type TransferResult struct {
	TxHash string
}

// BalanceReader queries the spendable balance of an address in a token.
type BalanceReader interface {
	GetBalance(ctx context.Context, address string, token vo.Token) (decimal.Decimal, error)
}

// TransferSubmitter submits token transfers and waits for confirmation.
// Transfer has the sender pay gas; SponsoredTransfer routes through the
// sponsorship relay so gas is paid by a third party. Both return once the
// transaction is confirmed or fail with an error.
type TransferSubmitter interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	SponsoredTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// Client bundles the capabilities a payment run needs.
type Client interface {
	BalanceReader
	TransferSubmitter
}
