// Package swap produces indicative conversion quotes between supported
// settlement tokens. Quotes are advisory only and never touch the chain.
package swap

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// PriceSource returns the reference USD price of a token. Implemented by the
// cache-backed price store in infrastructure; a static config table serves
// as the fallback.
type PriceSource interface {
	GetPriceUSD(ctx context.Context, token vo.Token) (decimal.Decimal, error)
}

// Config carries the quoting parameters.
type Config struct {
	// DefaultSlippage is applied when the caller passes zero, e.g. 0.005.
	DefaultSlippage decimal.Decimal
	// MaxSlippage bounds caller-supplied slippage.
	MaxSlippage decimal.Decimal
}

// priceImpactFor approximates how much a trade of the given USD value moves
// the price. The steps mirror typical pool depth for the supported pairs.
var impactSteps = []struct {
	minValueUSD decimal.Decimal
	impact      decimal.Decimal
}{
	{decimal.NewFromInt(10000), decimal.RequireFromString("0.02")},
	{decimal.NewFromInt(5000), decimal.RequireFromString("0.01")},
	{decimal.NewFromInt(1000), decimal.RequireFromString("0.005")},
}

var baseImpact = decimal.RequireFromString("0.001")

type Quote struct {
	FromToken    vo.Token
	ToToken      vo.Token
	FromAmount   decimal.Decimal
	ToAmount     decimal.Decimal
	MinAmountOut decimal.Decimal
	// PriceImpact is a fraction, e.g. 0.005 for 0.5%.
	PriceImpact decimal.Decimal
	// Rate is the toToken amount per one fromToken.
	Rate  decimal.Decimal
	Valid bool
}

type QuoteService struct {
	prices PriceSource
	cfg    Config
	logger logger.Interface
}

func NewQuoteService(prices PriceSource, cfg Config, logger logger.Interface) *QuoteService {
	return &QuoteService{prices: prices, cfg: cfg, logger: logger}
}

// GetQuote prices a conversion off the reference USD table. Same-token
// quotes are identity: the amount passes through unchanged with zero impact.
func (s *QuoteService) GetQuote(ctx context.Context, fromToken, toToken vo.Token, amount, slippage decimal.Decimal) (*Quote, error) {
	if !fromToken.IsValid() || !toToken.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported token pair %s/%s", fromToken, toToken))
	}
	if !amount.IsPositive() {
		return nil, errors.NewValidationError("amount must be positive")
	}

	if slippage.IsZero() {
		slippage = s.cfg.DefaultSlippage
	}
	if slippage.IsNegative() || slippage.GreaterThan(s.cfg.MaxSlippage) {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"slippage must be between 0 and %s", s.cfg.MaxSlippage))
	}

	if fromToken == toToken {
		return &Quote{
			FromToken:    fromToken,
			ToToken:      toToken,
			FromAmount:   amount,
			ToAmount:     amount,
			MinAmountOut: amount,
			PriceImpact:  decimal.Zero,
			Rate:         decimal.NewFromInt(1),
			Valid:        true,
		}, nil
	}

	fromPrice, err := s.prices.GetPriceUSD(ctx, fromToken)
	if err != nil {
		return nil, fmt.Errorf("failed to price %s: %w", fromToken, err)
	}
	toPrice, err := s.prices.GetPriceUSD(ctx, toToken)
	if err != nil {
		return nil, fmt.Errorf("failed to price %s: %w", toToken, err)
	}
	if !fromPrice.IsPositive() || !toPrice.IsPositive() {
		return nil, errors.NewBadRequestError("reference price unavailable")
	}

	rate := fromPrice.Div(toPrice)
	toAmount := amount.Mul(rate)
	minAmountOut := toAmount.Mul(decimal.NewFromInt(1).Sub(slippage))

	valueUSD := amount.Mul(fromPrice)
	impact := priceImpactFor(valueUSD)

	return &Quote{
		FromToken:    fromToken,
		ToToken:      toToken,
		FromAmount:   amount,
		ToAmount:     toAmount,
		MinAmountOut: minAmountOut,
		PriceImpact:  impact,
		Rate:         rate,
		Valid:        true,
	}, nil
}

func priceImpactFor(valueUSD decimal.Decimal) decimal.Decimal {
	for _, step := range impactSteps {
		if valueUSD.GreaterThan(step.minValueUSD) {
			return step.impact
		}
	}
	return baseImpact
}
