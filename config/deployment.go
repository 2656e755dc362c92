package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

const (
	coreDeploymentDir = "core"
	avsDeploymentDir  = "hello-world"
)

// DeploymentFile returns <dir>/<name>/<chainID>.json.
func DeploymentFile(dir, name string, chainID uint64) string {
	return filepath.Join(dir, name, strconv.FormatUint(chainID, 10)+".json")
}

// readDeploymentAddresses reads "addresses.<key>" for every key of a
// deployment JSON file.
func readDeploymentAddresses(path string, keys ...string) (map[string]common.Address, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read deployment file %s: %w", path, err)
	}

	addresses := make(map[string]common.Address, len(keys))
	for _, key := range keys {
		raw := v.GetString("addresses." + key)
		if raw == "" {
			return nil, fmt.Errorf("deployment file %s: addresses.%s is missing", path, key)
		}
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("deployment file %s: addresses.%s is not a valid address: %q", path, key, raw)
		}
		addresses[key] = common.HexToAddress(raw)
	}
	return addresses, nil
}

// ResolveServiceAddresses fills the service manager and stake registry
// addresses from <deployments_dir>/hello-world/<chain_id>.json unless both
// are already configured.
func (c *Config) ResolveServiceAddresses() error {
	if c.ContractAddress != "" && c.StakeRegistryAddress != "" {
		return nil
	}
	addrs, err := readDeploymentAddresses(
		DeploymentFile(c.DeploymentsDir, avsDeploymentDir, c.ChainID),
		"helloWorldServiceManager", "stakeRegistry",
	)
	if err != nil {
		return err
	}
	if c.ContractAddress == "" {
		c.ContractAddress = addrs["helloWorldServiceManager"].Hex()
	}
	if c.StakeRegistryAddress == "" {
		c.StakeRegistryAddress = addrs["stakeRegistry"].Hex()
	}
	return nil
}

// ResolveServiceManagerAddress fills only the service manager address from
// <deployments_dir>/hello-world/<chain_id>.json unless it is configured.
func (c *Config) ResolveServiceManagerAddress() error {
	if c.ContractAddress != "" {
		return nil
	}
	addrs, err := readDeploymentAddresses(
		DeploymentFile(c.DeploymentsDir, avsDeploymentDir, c.ChainID),
		"helloWorldServiceManager",
	)
	if err != nil {
		return err
	}
	c.ContractAddress = addrs["helloWorldServiceManager"].Hex()
	return nil
}

// ResolveCoreAddresses fills the EigenLayer core contract addresses from
// <deployments_dir>/core/<chain_id>.json unless both are already configured.
func (c *Config) ResolveCoreAddresses() error {
	if c.DelegationManagerAddress != "" && c.AvsDirectoryAddress != "" {
		return nil
	}
	addrs, err := readDeploymentAddresses(
		DeploymentFile(c.DeploymentsDir, coreDeploymentDir, c.ChainID),
		"delegation", "avsDirectory",
	)
	if err != nil {
		return err
	}
	if c.DelegationManagerAddress == "" {
		c.DelegationManagerAddress = addrs["delegation"].Hex()
	}
	if c.AvsDirectoryAddress == "" {
		c.AvsDirectoryAddress = addrs["avsDirectory"].Hex()
	}
	return nil
}
