package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/waveline-inc/waveline/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Email       sharedConfig.EmailConfig       `mapstructure:"email"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Chain       sharedConfig.ChainConfig       `mapstructure:"chain"`
	Payment     sharedConfig.PaymentConfig     `mapstructure:"payment"`
	Sponsorship sharedConfig.SponsorshipConfig `mapstructure:"sponsorship"`
	Referral    sharedConfig.ReferralConfig    `mapstructure:"referral"`
	Reminder    sharedConfig.ReminderConfig    `mapstructure:"reminder"`
	Swap        sharedConfig.SwapConfig        `mapstructure:"swap"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("WAVELINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "waveline_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@waveline.local")
	viper.SetDefault("email.from_name", "Waveline")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Chain defaults
	viper.SetDefault("chain.rpc_url", "http://localhost:8545")
	viper.SetDefault("chain.relay_url", "")
	viper.SetDefault("chain.relay_api_key", "")
	viper.SetDefault("chain.native_symbol", "WVL")
	viper.SetDefault("chain.request_timeout", 30)

	// Payment defaults
	viper.SetDefault("payment.platform_wallet", "")
	viper.SetDefault("payment.platform_fee", "0.2")
	viper.SetDefault("payment.native_gas_estimate", "0.001")
	viper.SetDefault("payment.sponsored_gas_estimate", "0.001")

	// Sponsorship defaults
	viper.SetDefault("sponsorship.default_max_gas_per_tx", "0.01")
	viper.SetDefault("sponsorship.min_gas_per_tx", "0.001")
	viper.SetDefault("sponsorship.max_gas_per_tx", "0.1")
	viper.SetDefault("sponsorship.auto_favorite_threshold", 3)

	// Referral defaults
	viper.SetDefault("referral.base_reward", "50")
	viper.SetDefault("referral.reward_token", "USDC")
	viper.SetDefault("referral.min_activity_threshold", "100")
	viper.SetDefault("referral.reward_delay_days", 7)
	viper.SetDefault("referral.tiers", []map[string]any{
		{"level": 0, "name": "Starter", "min_referrals": 0, "multiplier": 1.0, "bonus_reward": "0"},
		{"level": 1, "name": "Bronze", "min_referrals": 5, "multiplier": 1.2, "bonus_reward": "100"},
		{"level": 2, "name": "Silver", "min_referrals": 15, "multiplier": 1.5, "bonus_reward": "300"},
		{"level": 3, "name": "Gold", "min_referrals": 30, "multiplier": 2.0, "bonus_reward": "500"},
	})

	// Reminder defaults
	viper.SetDefault("reminder.sweep_batch_size", 200)

	// Swap defaults
	viper.SetDefault("swap.default_slippage", "0.005")
	viper.SetDefault("swap.max_slippage", "0.05")
	viper.SetDefault("swap.price_ttl", 60)
	viper.SetDefault("swap.prices_usd", map[string]string{
		"WVL":  "0.15",
		"USDC": "1.0",
		"USDT": "1.0",
		"DAI":  "1.0",
	})
}
