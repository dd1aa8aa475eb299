package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Demo       DemoConfig       `mapstructure:"demo"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// EthereumConfig contains Ethereum node and transfer settings
type EthereumConfig struct {
	RPCURL string `mapstructure:"rpc_url" validate:"required,url"`
	// TokenAddress is the default ERC20 token; empty means native currency.
	TokenAddress string `mapstructure:"token_address" validate:"omitempty,eth_addr"`
	// TokenArtifact is the solc standard-JSON output holding Token.sol/Token.
	TokenArtifact       string        `mapstructure:"token_artifact"`
	GasCeiling          uint64        `mapstructure:"gas_ceiling" validate:"gt=0"`
	AuthorizationWindow time.Duration `mapstructure:"authorization_window" validate:"gt=0"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval" validate:"gt=0"`
}

// DemoConfig drives cmd/transfer-demo
type DemoConfig struct {
	FunderPrivateKey string `mapstructure:"funder_private_key"`
	FundAmountWei    string `mapstructure:"fund_amount_wei"`
	FundTokenAmount  string `mapstructure:"fund_token_amount"`
	TokenName        string `mapstructure:"token_name"`
	TokenSymbol      string `mapstructure:"token_symbol"`
	TokenSupply      string `mapstructure:"token_supply"`
	TokenDecimals    uint8  `mapstructure:"token_decimals"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables.
// Environment overrides use the upper-cased key path, e.g. ETHEREUM_RPC_URL.
// Only keys registered in setDefaults can be overridden from the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Ethereum defaults
	v.SetDefault("ethereum.rpc_url", "http://localhost:8545")
	v.SetDefault("ethereum.token_address", "")
	v.SetDefault("ethereum.token_artifact", "contracts/eip-3009-token.json")
	v.SetDefault("ethereum.gas_ceiling", 7000000)
	v.SetDefault("ethereum.authorization_window", "1h")
	v.SetDefault("ethereum.receipt_poll_interval", "1s")

	// Demo defaults
	v.SetDefault("demo.funder_private_key", "")
	v.SetDefault("demo.fund_amount_wei", "1000000000000000")
	v.SetDefault("demo.fund_token_amount", "1000000000")
	v.SetDefault("demo.token_name", "Test Token")
	v.SetDefault("demo.token_symbol", "TST")
	v.SetDefault("demo.token_supply", "1000000000000000000000000")
	v.SetDefault("demo.token_decimals", 18)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return err
	}
	return nil
}
