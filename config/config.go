package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	sdkecdsa "github.com/Layr-Labs/eigensdk-go/crypto/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultConfigPath     = "config.toml"
	DefaultEnvFile        = ".env"
	DefaultChainID        = 17000 // holesky
	DefaultDeploymentsDir = "contracts/deployments"
)

type Config struct {
	Provider         string `mapstructure:"provider"`
	WsProvider       string `mapstructure:"ws_provider"`
	PrivateKey       string `mapstructure:"private_key"`
	KeystorePath     string `mapstructure:"keystore_path"`
	KeystorePassword string `mapstructure:"keystore_password"`

	ChainID        uint64 `mapstructure:"chain_id"`
	DeploymentsDir string `mapstructure:"deployments_dir"`

	// Optional overrides, otherwise read from the deployment files.
	ContractAddress          string `mapstructure:"contract_address"`
	DelegationManagerAddress string `mapstructure:"delegation_manager_address"`
	StakeRegistryAddress     string `mapstructure:"stake_registry_address"`
	AvsDirectoryAddress      string `mapstructure:"avs_directory_address"`

	PollInterval       time.Duration `mapstructure:"poll_interval"`
	EligibilityDelay   time.Duration `mapstructure:"eligibility_delay"`
	PaymentDelay       time.Duration `mapstructure:"payment_delay"`
	RegistrationExpiry time.Duration `mapstructure:"registration_expiry"`

	MetricsAddress string `mapstructure:"metrics_address"`
	LogLevel       string `mapstructure:"log_level"`
}

// envAliases maps config keys to the environment variables read besides the
// automatic upper-cased key name.
var envAliases = map[string][]string{
	"provider":    {"RPC_URL"},
	"ws_provider": {"WS_URL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "")
	v.SetDefault("ws_provider", "")
	v.SetDefault("private_key", "")
	v.SetDefault("keystore_path", "")
	v.SetDefault("keystore_password", "")
	v.SetDefault("chain_id", DefaultChainID)
	v.SetDefault("deployments_dir", DefaultDeploymentsDir)
	v.SetDefault("contract_address", "")
	v.SetDefault("delegation_manager_address", "")
	v.SetDefault("stake_registry_address", "")
	v.SetDefault("avs_directory_address", "")
	v.SetDefault("poll_interval", 3*time.Second)
	v.SetDefault("eligibility_delay", time.Second)
	v.SetDefault("payment_delay", time.Second)
	v.SetDefault("registration_expiry", time.Hour)
	v.SetDefault("metrics_address", "")
	v.SetDefault("log_level", "development")
}

// LoadEnvFile loads a dotenv file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads the TOML config at configPath (if it exists) and overlays
// environment variables. The result is validated.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, aliases := range envAliases {
		if err := v.BindEnv(append([]string{key, strings.ToUpper(key)}, aliases...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		return errors.New("provider (RPC_URL) is required")
	}
	if c.PrivateKey == "" && c.KeystorePath == "" {
		return errors.New("one of private_key (PRIVATE_KEY) or keystore_path is required")
	}
	if c.PrivateKey != "" && c.KeystorePath != "" {
		return errors.New("private_key and keystore_path are mutually exclusive")
	}
	if c.ChainID == 0 {
		return errors.New("chain_id must be set")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.EligibilityDelay < 0 || c.PaymentDelay < 0 {
		return errors.New("eligibility_delay and payment_delay must not be negative")
	}
	if c.RegistrationExpiry <= 0 {
		return fmt.Errorf("registration_expiry must be positive, got %s", c.RegistrationExpiry)
	}

	overrides := map[string]string{
		"contract_address":           c.ContractAddress,
		"delegation_manager_address": c.DelegationManagerAddress,
		"stake_registry_address":     c.StakeRegistryAddress,
		"avs_directory_address":      c.AvsDirectoryAddress,
	}
	for key, addr := range overrides {
		if addr != "" && !common.IsHexAddress(addr) {
			return fmt.Errorf("%s is not a valid address: %q", key, addr)
		}
	}
	return nil
}

// LoadPrivateKey returns the operator key, either from the hex private key or
// from the encrypted keystore file.
func (c *Config) LoadPrivateKey() (*ecdsa.PrivateKey, error) {
	if c.PrivateKey != "" {
		privKey, err := crypto.HexToECDSA(strings.TrimPrefix(c.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		return privKey, nil
	}

	privKey, err := sdkecdsa.ReadKey(c.KeystorePath, c.KeystorePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore %s: %w", c.KeystorePath, err)
	}
	return privKey, nil
}
