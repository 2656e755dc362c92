package chainio

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"payroll-avs-operator/logging"
)

// EthClient is the subset of ethclient.Client used by the bindings and for
// receipts. Both *ethclient.Client and the simulated backend client satisfy it.
type EthClient interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Client bundles an RPC connection with the operator's signing key.
type Client struct {
	EthClient  EthClient
	ChainID    *big.Int
	Address    common.Address
	privateKey *ecdsa.PrivateKey
	logger     logging.Logger
	closeFn    func()
}

// Dial connects to rpcURL (http(s) or ws(s)) and resolves the chain ID.
func Dial(ctx context.Context, rpcURL string, privKey *ecdsa.PrivateKey, logger logging.Logger) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rpc endpoint: %w", err)
	}
	client, err := NewClient(ctx, ethClient, privKey, logger)
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	client.closeFn = ethClient.Close
	return client, nil
}

func NewClient(ctx context.Context, ethClient EthClient, privKey *ecdsa.PrivateKey, logger logging.Logger) (*Client, error) {
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return &Client{
		EthClient:  ethClient,
		ChainID:    chainID,
		Address:    crypto.PubkeyToAddress(privKey.PublicKey),
		privateKey: privKey,
		logger:     logger,
	}, nil
}

// TransactOpts returns fresh signing options bound to ctx.
func (c *Client) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// WaitForReceipt blocks until tx is mined and fails if it reverted.
func (c *Client) WaitForReceipt(ctx context.Context, tx *gethtypes.Transaction) (*gethtypes.Receipt, error) {
	c.logger.Debug("Waiting for transaction to confirm", "txHash", tx.Hash().Hex())
	receipt, err := bind.WaitMined(ctx, c.EthClient, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for tx %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("tx %s failed: status %d", tx.Hash().Hex(), receipt.Status)
	}
	return receipt, nil
}

func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}
