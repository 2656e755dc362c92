package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anvil's first default account
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
provider = "http://localhost:8545"
private_key = "`+testPrivateKey+`"
chain_id = 31337
poll_interval = "5s"
contract_address = "0x0000000000000000000000000000000000000001"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.Provider)
	assert.Equal(t, uint64(31337), cfg.ChainID)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Second, cfg.EligibilityDelay)
	assert.Equal(t, time.Second, cfg.PaymentDelay)
	assert.Equal(t, time.Hour, cfg.RegistrationExpiry)
	assert.Equal(t, DefaultDeploymentsDir, cfg.DeploymentsDir)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", cfg.ContractAddress)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("RPC_URL", "https://holesky.example")
	t.Setenv("PRIVATE_KEY", "0x"+testPrivateKey)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "https://holesky.example", cfg.Provider)
	assert.Equal(t, "0x"+testPrivateKey, cfg.PrivateKey)
	assert.Equal(t, uint64(DefaultChainID), cfg.ChainID)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
provider = "http://from-file:8545"
private_key = "`+testPrivateKey+`"
`)
	t.Setenv("PROVIDER", "http://from-env:8545")
	t.Setenv("CHAIN_ID", "1")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8545", cfg.Provider)
	assert.Equal(t, uint64(1), cfg.ChainID)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "provider = [unterminated")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "absent.env")))
	assert.NoError(t, LoadEnvFile(""))

	path := filepath.Join(dir, ".env")
	writeFile(t, path, "PAYROLL_TEST_ONLY_VAR=from-dotenv\n")
	t.Setenv("PAYROLL_TEST_ONLY_VAR", "")
	require.NoError(t, os.Unsetenv("PAYROLL_TEST_ONLY_VAR"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-dotenv", os.Getenv("PAYROLL_TEST_ONLY_VAR"))
}

func validConfig() Config {
	return Config{
		Provider:           "http://localhost:8545",
		PrivateKey:         testPrivateKey,
		ChainID:            DefaultChainID,
		PollInterval:       time.Second,
		RegistrationExpiry: time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing provider", func(c *Config) { c.Provider = "" }, "provider"},
		{"missing key", func(c *Config) { c.PrivateKey = "" }, "private_key"},
		{"key and keystore", func(c *Config) { c.KeystorePath = "/tmp/key.json" }, "mutually exclusive"},
		{"zero chain id", func(c *Config) { c.ChainID = 0 }, "chain_id"},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, "poll_interval"},
		{"negative payment delay", func(c *Config) { c.PaymentDelay = -time.Second }, "payment_delay"},
		{"zero expiry", func(c *Config) { c.RegistrationExpiry = 0 }, "registration_expiry"},
		{"bad override", func(c *Config) { c.StakeRegistryAddress = "0x1234" }, "stake_registry_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_LoadPrivateKey_Hex(t *testing.T) {
	expected, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	for _, raw := range []string{testPrivateKey, "0x" + testPrivateKey} {
		cfg := validConfig()
		cfg.PrivateKey = raw
		key, err := cfg.LoadPrivateKey()
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(expected.PublicKey), crypto.PubkeyToAddress(key.PublicKey))
	}

	cfg := validConfig()
	cfg.PrivateKey = "not-hex"
	_, err = cfg.LoadPrivateKey()
	assert.Error(t, err)
}

func TestConfig_LoadPrivateKey_Keystore(t *testing.T) {
	expected, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	ks := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
	account, err := ks.ImportECDSA(expected, "s3cret")
	require.NoError(t, err)

	cfg := validConfig()
	cfg.PrivateKey = ""
	cfg.KeystorePath = account.URL.Path
	cfg.KeystorePassword = "s3cret"

	key, err := cfg.LoadPrivateKey()
	require.NoError(t, err)
	assert.Equal(t, account.Address, crypto.PubkeyToAddress(key.PublicKey))

	cfg.KeystorePassword = "wrong"
	_, err = cfg.LoadPrivateKey()
	assert.Error(t, err)
}
