package chainio

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/types"
)

func sampleTask() types.Task {
	return types.Task{
		Name:             "HungryBear512",
		TaskCreatedBlock: 42,
		Amount:           big.NewInt(2_500_000_000_000_000_000),
		Recipient:        common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		DueDate:          big.NewInt(1_730_000_000),
	}
}

func TestNewAvsManagersBindings(t *testing.T) {
	chain := newTestChain(t)

	_, err := NewAvsManagersBindings(ContractAddresses{}, chain.client.EthClient)
	assert.Error(t, err)

	b, err := NewAvsManagersBindings(ContractAddresses{
		ServiceManager: common.HexToAddress("0x01"),
	}, chain.client.EthClient)
	require.NoError(t, err)
	assert.NotNil(t, b.ServiceManager)
	assert.Nil(t, b.StakeRegistry)
	assert.Nil(t, b.DelegationManager)
	assert.Nil(t, b.AvsDirectory)
}

func TestAvsReader(t *testing.T) {
	chain := newTestChain(t)
	returnsOne := chain.deploy(t, returnOneRuntime)

	clients, err := NewClients(chain.client, ContractAddresses{
		ServiceManager:    returnsOne,
		StakeRegistry:     returnsOne,
		DelegationManager: returnsOne,
		AvsDirectory:      returnsOne,
	}, logging.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	isOperator, err := clients.Reader.IsOperator(ctx, chain.client.Address)
	require.NoError(t, err)
	assert.True(t, isOperator)

	registered, err := clients.Reader.IsOperatorRegisteredWithAvs(ctx, chain.client.Address)
	require.NoError(t, err)
	assert.True(t, registered)

	latest, err := clients.Reader.LatestTaskNum(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), latest)

	digest, err := clients.Reader.CalculateOperatorAVSRegistrationDigestHash(ctx, chain.client.Address, returnsOne, [32]byte{1}, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, common.BigToHash(big.NewInt(1)), common.Hash(digest))

	block, err := clients.Reader.BlockNumber(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, block, uint64(1))
}

func TestAvsReader_MissingCoreContracts(t *testing.T) {
	chain := newTestChain(t)
	clients, err := NewClients(chain.client, ContractAddresses{
		ServiceManager: common.HexToAddress("0x01"),
	}, logging.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = clients.Reader.IsOperator(ctx, chain.client.Address)
	assert.ErrorContains(t, err, "delegation manager")
	_, err = clients.Reader.IsOperatorRegisteredWithAvs(ctx, chain.client.Address)
	assert.ErrorContains(t, err, "stake registry")
	_, err = clients.Reader.CalculateOperatorAVSRegistrationDigestHash(ctx, chain.client.Address, common.Address{}, [32]byte{}, big.NewInt(1))
	assert.ErrorContains(t, err, "avs directory")
}

func TestAvsWriter_SendsEachMethod(t *testing.T) {
	chain := newTestChain(t)
	sink := chain.deploy(t, acceptRuntime)
	chain.autoCommit(t)

	clients, err := NewClients(chain.client, ContractAddresses{
		ServiceManager:    sink,
		StakeRegistry:     sink,
		DelegationManager: sink,
		AvsDirectory:      sink,
	}, logging.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()
	w := clients.Writer

	psm, err := bindings.ContractMetaData.GetAbi()
	require.NoError(t, err)
	delegation, err := bindings.DelegationMetaData.GetAbi()
	require.NoError(t, err)
	registry, err := bindings.RegistryMetaData.GetAbi()
	require.NoError(t, err)

	task := sampleTask()
	tests := []struct {
		name     string
		send     func() (common.Hash, error)
		selector []byte
	}{
		{
			name: "registerAsOperator",
			send: func() (common.Hash, error) {
				r, err := w.RegisterAsOperator(ctx, bindings.IDelegationManagerOperatorDetails{
					DeprecatedEarningsReceiver: chain.client.Address,
				}, "")
				if err != nil {
					return common.Hash{}, err
				}
				return r.TxHash, nil
			},
			selector: delegation.Methods["registerAsOperator"].ID,
		},
		{
			name: "registerOperatorWithSignature",
			send: func() (common.Hash, error) {
				r, err := w.RegisterOperatorWithSignature(ctx, bindings.ISignatureUtilsSignatureWithSaltAndExpiry{
					Signature: make([]byte, 65),
					Expiry:    big.NewInt(1),
				}, chain.client.Address)
				if err != nil {
					return common.Hash{}, err
				}
				return r.TxHash, nil
			},
			selector: registry.Methods["registerOperatorWithSignature"].ID,
		},
		{
			name: "createNewTask",
			send: func() (common.Hash, error) {
				r, err := w.CreateNewTask(ctx, task)
				if err != nil {
					return common.Hash{}, err
				}
				return r.TxHash, nil
			},
			selector: psm.Methods["createNewTask"].ID,
		},
		{
			name: "respondToTask",
			send: func() (common.Hash, error) {
				r, err := w.RespondToTask(ctx, task, 3, []byte{0xde, 0xad})
				if err != nil {
					return common.Hash{}, err
				}
				return r.TxHash, nil
			},
			selector: psm.Methods["respondToTask"].ID,
		},
		{
			name: "markTaskAsPaid",
			send: func() (common.Hash, error) {
				r, err := w.MarkTaskAsPaid(ctx, 3)
				if err != nil {
					return common.Hash{}, err
				}
				return r.TxHash, nil
			},
			selector: psm.Methods["markTaskAsPaid"].ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txHash, err := tt.send()
			require.NoError(t, err)

			tx, _, err := chain.sim.Client().TransactionByHash(ctx, txHash)
			require.NoError(t, err)
			assert.Equal(t, tt.selector, tx.Data()[:4])
		})
	}

	// the signed bundle and index travel unchanged
	t.Run("respondToTask arguments", func(t *testing.T) {
		r, err := w.RespondToTask(ctx, task, 9, []byte{0xbe, 0xef})
		require.NoError(t, err)
		tx, _, err := chain.sim.Client().TransactionByHash(ctx, r.TxHash)
		require.NoError(t, err)

		args, err := psm.Methods["respondToTask"].Inputs.Unpack(tx.Data()[4:])
		require.NoError(t, err)
		require.Len(t, args, 3)
		assert.Equal(t, uint32(9), args[1])
		assert.Equal(t, []byte{0xbe, 0xef}, args[2])
	})
}

func TestAvsWriter_RevertIsReported(t *testing.T) {
	chain := newTestChain(t)
	reverter := chain.deploy(t, revertRuntime)

	clients, err := NewClients(chain.client, ContractAddresses{ServiceManager: reverter}, logging.NewNopLogger())
	require.NoError(t, err)

	_, err = clients.Writer.MarkTaskAsPaid(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markTaskAsPaid")

	_, err = clients.Writer.RegisterAsOperator(context.Background(), bindings.IDelegationManagerOperatorDetails{}, "")
	assert.ErrorContains(t, err, "delegation manager")
}

func TestAvsSubscriber_FilterNewTasks(t *testing.T) {
	chain := newTestChain(t)

	psm, err := bindings.ContractMetaData.GetAbi()
	require.NoError(t, err)
	newTaskCreated := psm.Events["NewTaskCreated"]

	emitter := chain.deploy(t, logEmitterRuntime(newTaskCreated.ID, 7))

	task := sampleTask()
	data, err := newTaskCreated.Inputs.NonIndexed().Pack(task.ToBinding())
	require.NoError(t, err)
	chain.sendRaw(t, &emitter, data)
	chain.sim.Commit()

	clients, err := NewClients(chain.client, ContractAddresses{ServiceManager: emitter}, logging.NewNopLogger())
	require.NoError(t, err)
	assert.False(t, clients.Subscriber.CanSubscribe())

	events, err := clients.Subscriber.FilterNewTasks(context.Background(), 0, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, uint32(7), got.TaskIndex)
	assert.Equal(t, task.Name, got.Task.Name)
	assert.Equal(t, task.TaskCreatedBlock, got.Task.TaskCreatedBlock)
	assert.Equal(t, 0, task.Amount.Cmp(got.Task.Amount))
	assert.Equal(t, task.Recipient, got.Task.Recipient)
	assert.Equal(t, 0, task.DueDate.Cmp(got.Task.DueDate))
	assert.False(t, got.Task.IsPaid)
	assert.Equal(t, emitter, got.Raw.Address)

	before := got.Raw.BlockNumber - 1
	events, err = clients.Subscriber.FilterNewTasks(context.Background(), 0, &before)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAvsSubscriber_SubscribeWithoutWebsocket(t *testing.T) {
	s := NewAvsSubscriber(nil, nil, logging.NewNopLogger())
	_, err := s.SubscribeToNewTasks(context.Background(), make(chan *bindings.ContractNewTaskCreated))
	assert.ErrorIs(t, err, ErrNoSubscriptionClient)
}
