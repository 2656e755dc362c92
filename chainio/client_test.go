package chainio

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_TransactOpts(t *testing.T) {
	chain := newTestChain(t)
	ctx := context.Background()

	opts, err := chain.client.TransactOpts(ctx)
	require.NoError(t, err)
	assert.Equal(t, chain.client.Address, opts.From)
	assert.Equal(t, ctx, opts.Context)
	require.NotNil(t, chain.client.ChainID)
	assert.Equal(t, 1, chain.client.ChainID.Sign())
}

func TestClient_WaitForReceipt(t *testing.T) {
	chain := newTestChain(t)

	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tx := chain.sendRaw(t, &to, nil)
	chain.sim.Commit()

	receipt, err := chain.client.WaitForReceipt(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, gethtypes.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, tx.Hash(), receipt.TxHash)
}

func TestClient_WaitForReceipt_Reverted(t *testing.T) {
	chain := newTestChain(t)
	reverter := chain.deploy(t, revertRuntime)

	tx := chain.sendRaw(t, &reverter, []byte{0x01, 0x02, 0x03, 0x04})
	chain.sim.Commit()

	receipt, err := chain.client.WaitForReceipt(context.Background(), tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 0")
	require.NotNil(t, receipt)
	assert.Equal(t, gethtypes.ReceiptStatusFailed, receipt.Status)
}

func TestClient_WaitForReceipt_ContextCancelled(t *testing.T) {
	chain := newTestChain(t)

	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tx := chain.sendRaw(t, &to, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := chain.client.WaitForReceipt(ctx, tx)
	assert.ErrorIs(t, err, context.Canceled)
}
