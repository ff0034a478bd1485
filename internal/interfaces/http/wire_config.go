package http

import (
	"time"

	"github.com/shopspring/decimal"

	paymentUsecases "github.com/waveline-inc/waveline/internal/application/payment/usecases"
	referralUsecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	sponsorshipUsecases "github.com/waveline-inc/waveline/internal/application/sponsorship/usecases"
	"github.com/waveline-inc/waveline/internal/application/swap"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/infrastructure/config"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// mustDecimal parses a decimal config value. Bad values abort startup:
// a payment service must not run with a misparsed fee or cap.
func mustDecimal(log logger.Interface, name, raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalw("invalid decimal config value", "key", name, "value", raw)
	}
	return value
}

func paymentConfig(cfg *config.Config, log logger.Interface) paymentUsecases.ExecutePaymentConfig {
	return paymentUsecases.ExecutePaymentConfig{
		PlatformWallet:       cfg.Payment.PlatformWallet,
		PlatformFee:          mustDecimal(log, "payment.platform_fee", cfg.Payment.PlatformFee),
		NativeGasEstimate:    mustDecimal(log, "payment.native_gas_estimate", cfg.Payment.NativeGasEstimate),
		SponsoredGasEstimate: mustDecimal(log, "payment.sponsored_gas_estimate", cfg.Payment.SponsoredGasEstimate),
	}
}

func sponsorshipConfig(cfg *config.Config, log logger.Interface) sponsorshipUsecases.Config {
	return sponsorshipUsecases.Config{
		DefaultMaxGasPerTx:    mustDecimal(log, "sponsorship.default_max_gas_per_tx", cfg.Sponsorship.DefaultMaxGasPerTx),
		MinGasPerTx:           mustDecimal(log, "sponsorship.min_gas_per_tx", cfg.Sponsorship.MinGasPerTx),
		MaxGasPerTx:           mustDecimal(log, "sponsorship.max_gas_per_tx", cfg.Sponsorship.MaxGasPerTx),
		AutoFavoriteThreshold: cfg.Sponsorship.AutoFavoriteThreshold,
	}
}

func referralConfig(cfg *config.Config, log logger.Interface) referralUsecases.Config {
	tiers := make([]referral.Tier, 0, len(cfg.Referral.Tiers))
	for _, tier := range cfg.Referral.Tiers {
		tiers = append(tiers, referral.Tier{
			Level:        tier.Level,
			Name:         tier.Name,
			MinReferrals: tier.MinReferrals,
			Multiplier:   decimal.NewFromFloat(tier.Multiplier),
			BonusReward:  mustDecimal(log, "referral.tiers.bonus_reward", tier.BonusReward),
		})
	}
	table, err := referral.NewTierTable(tiers)
	if err != nil {
		log.Fatalw("invalid referral tier configuration", "error", err)
	}

	return referralUsecases.Config{
		BaseReward:           mustDecimal(log, "referral.base_reward", cfg.Referral.BaseReward),
		RewardToken:          cfg.Referral.RewardToken,
		MinActivityThreshold: mustDecimal(log, "referral.min_activity_threshold", cfg.Referral.MinActivityThreshold),
		RewardDelay:          time.Duration(cfg.Referral.RewardDelayDays) * 24 * time.Hour,
		Tiers:                table,
	}
}

func swapConfig(cfg *config.Config, log logger.Interface) swap.Config {
	return swap.Config{
		DefaultSlippage: mustDecimal(log, "swap.default_slippage", cfg.Swap.DefaultSlippage),
		MaxSlippage:     mustDecimal(log, "swap.max_slippage", cfg.Swap.MaxSlippage),
	}
}

// fallbackPrices converts the configured USD price table for the price store.
func fallbackPrices(cfg *config.Config, log logger.Interface) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(cfg.Swap.PricesUSD))
	for symbol, raw := range cfg.Swap.PricesUSD {
		prices[symbol] = mustDecimal(log, "swap.prices_usd."+symbol, raw)
	}
	return prices
}

func priceTTL(cfg *config.Config) time.Duration {
	if cfg.Swap.PriceTTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(cfg.Swap.PriceTTL) * time.Second
}
