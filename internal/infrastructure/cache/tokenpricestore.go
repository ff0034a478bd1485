package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

const tokenPriceKeyPrefix = "swap:price:"

// TokenPriceStore serves reference USD token prices from redis with a static
// config table as the fallback. The redis entry is refreshed from the table
// on every miss, so an external price feed can overwrite it at will and the
// quote path keeps working when it does not.
type TokenPriceStore struct {
	client         *redis.Client
	fallbackPrices map[string]decimal.Decimal
	ttl            time.Duration
	logger         logger.Interface
}

func NewTokenPriceStore(
	client *redis.Client,
	fallbackPrices map[string]decimal.Decimal,
	ttl time.Duration,
	logger logger.Interface,
) *TokenPriceStore {
	return &TokenPriceStore{
		client:         client,
		fallbackPrices: fallbackPrices,
		ttl:            ttl,
		logger:         logger,
	}
}

// GetPriceUSD returns the cached price for a token, falling back to the
// static table when redis has no entry or is unreachable.
func (s *TokenPriceStore) GetPriceUSD(ctx context.Context, token vo.Token) (decimal.Decimal, error) {
	key := tokenPriceKeyPrefix + token.String()

	if s.client != nil {
		val, err := s.client.Get(ctx, key).Result()
		switch {
		case err == nil:
			price, parseErr := decimal.NewFromString(val)
			if parseErr == nil {
				return price, nil
			}
			s.logger.Warnw("invalid cached token price",
				"token", token,
				"value", val,
			)
		case err != redis.Nil:
			s.logger.Warnw("failed to read token price from cache",
				"token", token,
				"error", err,
			)
		}
	}

	price, ok := s.fallbackPrices[token.String()]
	if !ok {
		return decimal.Zero, fmt.Errorf("no reference price for token %s", token)
	}

	if s.client != nil {
		if err := s.client.Set(ctx, key, price.String(), s.ttl).Err(); err != nil {
			s.logger.Debugw("failed to cache token price",
				"token", token,
				"error", err,
			)
		}
	}

	return price, nil
}

// SetPriceUSD overwrites the cached price, for use by a price feed.
func (s *TokenPriceStore) SetPriceUSD(ctx context.Context, token vo.Token, price decimal.Decimal) error {
	if s.client == nil {
		return nil
	}
	key := tokenPriceKeyPrefix + token.String()
	if err := s.client.Set(ctx, key, price.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token price: %w", err)
	}
	return nil
}
