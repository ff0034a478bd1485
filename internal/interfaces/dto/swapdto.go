package dto

import (
	"github.com/waveline-inc/waveline/internal/application/swap"
)

// SwapQuoteRequest carries the query parameters of a quote request.
type SwapQuoteRequest struct {
	FromToken string `form:"from_token" binding:"required"`
	ToToken   string `form:"to_token" binding:"required"`
	Amount    string `form:"amount" binding:"required"`
	// Slippage is a fraction; empty means the configured default.
	Slippage string `form:"slippage"`
}

type SwapQuoteResponse struct {
	FromToken    string `json:"from_token"`
	ToToken      string `json:"to_token"`
	FromAmount   string `json:"from_amount"`
	ToAmount     string `json:"to_amount"`
	MinAmountOut string `json:"min_amount_out"`
	PriceImpact  string `json:"price_impact"`
	Rate         string `json:"rate"`
	Valid        bool   `json:"valid"`
}

func SwapQuoteToResponse(quote *swap.Quote) SwapQuoteResponse {
	return SwapQuoteResponse{
		FromToken:    quote.FromToken.String(),
		ToToken:      quote.ToToken.String(),
		FromAmount:   quote.FromAmount.String(),
		ToAmount:     quote.ToAmount.String(),
		MinAmountOut: quote.MinAmountOut.String(),
		PriceImpact:  quote.PriceImpact.String(),
		Rate:         quote.Rate.String(),
		Valid:        quote.Valid,
	}
}
