package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig describes the settlement chain endpoints. The relay URL is the
// sponsored-transaction endpoint; when empty, sponsored transfers are disabled.
type ChainConfig struct {
	RPCURL         string `mapstructure:"rpc_url"`
	RelayURL       string `mapstructure:"relay_url"`
	RelayAPIKey    string `mapstructure:"relay_api_key"`
	NativeSymbol   string `mapstructure:"native_symbol"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

// PaymentConfig holds the invoice settlement parameters. Amounts are decimal
// strings denominated in the settlement token.
type PaymentConfig struct {
	PlatformWallet       string `mapstructure:"platform_wallet"`
	PlatformFee          string `mapstructure:"platform_fee"`
	NativeGasEstimate    string `mapstructure:"native_gas_estimate"`
	SponsoredGasEstimate string `mapstructure:"sponsored_gas_estimate"`
}

type SponsorshipConfig struct {
	DefaultMaxGasPerTx    string `mapstructure:"default_max_gas_per_tx"`
	MinGasPerTx           string `mapstructure:"min_gas_per_tx"`
	MaxGasPerTx           string `mapstructure:"max_gas_per_tx"`
	AutoFavoriteThreshold int    `mapstructure:"auto_favorite_threshold"`
}

type ReferralTierConfig struct {
	Level        int     `mapstructure:"level"`
	Name         string  `mapstructure:"name"`
	MinReferrals int     `mapstructure:"min_referrals"`
	Multiplier   float64 `mapstructure:"multiplier"`
	BonusReward  string  `mapstructure:"bonus_reward"`
}

type ReferralConfig struct {
	BaseReward           string               `mapstructure:"base_reward"`
	RewardToken          string               `mapstructure:"reward_token"`
	MinActivityThreshold string               `mapstructure:"min_activity_threshold"`
	RewardDelayDays      int                  `mapstructure:"reward_delay_days"`
	Tiers                []ReferralTierConfig `mapstructure:"tiers"`
}

type ReminderConfig struct {
	SweepBatchSize int `mapstructure:"sweep_batch_size"`
}

type SwapConfig struct {
	DefaultSlippage string            `mapstructure:"default_slippage"` // fraction, e.g. "0.005"
	MaxSlippage     string            `mapstructure:"max_slippage"`
	PriceTTL        int               `mapstructure:"price_ttl"` // seconds
	PricesUSD       map[string]string `mapstructure:"prices_usd"`
}
