package chainio

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"

	"payroll-avs-operator/logging"
)

// Tiny runtimes used as stand-ins for the real contracts.
var (
	// STOP: accepts any call
	acceptRuntime = []byte{0x00}
	// REVERT(0, 0)
	revertRuntime = []byte{0x60, 0x00, 0x60, 0x00, 0xfd}
	// MSTORE(0, 1) RETURN(0, 32): every view returns uint256(1)
	returnOneRuntime = []byte{0x60, 0x01, 0x60, 0x00, 0x52, 0x60, 0x20, 0x60, 0x00, 0xf3}
)

// logEmitterRuntime copies calldata to memory and emits it as the data of a
// LOG2 with the given topics.
func logEmitterRuntime(topic0 common.Hash, taskIndex byte) []byte {
	code := []byte{0x36, 0x60, 0x00, 0x60, 0x00, 0x37, 0x60, taskIndex, 0x7f}
	code = append(code, topic0.Bytes()...)
	return append(code, 0x36, 0x60, 0x00, 0xa2, 0x00)
}

// initCode returns creation code deploying runtime as-is.
func initCode(runtime []byte) []byte {
	n := byte(len(runtime))
	code := []byte{0x60, n, 0x60, 0x0c, 0x60, 0x00, 0x39, 0x60, n, 0x60, 0x00, 0xf3}
	return append(code, runtime...)
}

type testChain struct {
	sim    *simulated.Backend
	client *Client
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))
	sim := simulated.NewBackend(gethtypes.GenesisAlloc{
		crypto.PubkeyToAddress(key.PublicKey): {Balance: balance},
	})
	t.Cleanup(func() { _ = sim.Close() })

	client, err := NewClient(context.Background(), sim.Client(), key, logging.NewNopLogger())
	require.NoError(t, err)
	return &testChain{sim: sim, client: client}
}

// sendRaw signs and sends a legacy transaction with a fixed gas limit. A nil
// to creates a contract.
func (c *testChain) sendRaw(t *testing.T, to *common.Address, data []byte) *gethtypes.Transaction {
	t.Helper()
	ctx := context.Background()

	nonce, err := c.client.EthClient.PendingNonceAt(ctx, c.client.Address)
	require.NoError(t, err)
	gasPrice, err := c.client.EthClient.SuggestGasPrice(ctx)
	require.NoError(t, err)

	var tx *gethtypes.Transaction
	if to == nil {
		tx = gethtypes.NewContractCreation(nonce, big.NewInt(0), 300_000, gasPrice, data)
	} else {
		tx = gethtypes.NewTransaction(nonce, *to, big.NewInt(0), 300_000, gasPrice, data)
	}

	opts, err := c.client.TransactOpts(ctx)
	require.NoError(t, err)
	signed, err := opts.Signer(c.client.Address, tx)
	require.NoError(t, err)
	require.NoError(t, c.client.EthClient.SendTransaction(ctx, signed))
	return signed
}

func (c *testChain) deploy(t *testing.T, runtime []byte) common.Address {
	t.Helper()
	tx := c.sendRaw(t, nil, initCode(runtime))
	c.sim.Commit()

	receipt, err := c.client.WaitForReceipt(context.Background(), tx)
	require.NoError(t, err)
	return receipt.ContractAddress
}

// autoCommit mines a block every few milliseconds until the test ends, for
// calls that send and wait in one go.
func (c *testChain) autoCommit(t *testing.T) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.sim.Commit()
			}
		}
	}()
	t.Cleanup(func() { close(done) })
}
