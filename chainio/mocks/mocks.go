package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/mock"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/chainio"
	"payroll-avs-operator/types"
)

var (
	_ chainio.AvsReaderer     = (*MockAvsReader)(nil)
	_ chainio.AvsWriterer     = (*MockAvsWriter)(nil)
	_ chainio.AvsSubscriberer = (*MockAvsSubscriber)(nil)
)

type MockAvsReader struct {
	mock.Mock
}

func (m *MockAvsReader) IsOperator(ctx context.Context, operator common.Address) (bool, error) {
	args := m.Called(ctx, operator)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvsReader) IsOperatorRegisteredWithAvs(ctx context.Context, operator common.Address) (bool, error) {
	args := m.Called(ctx, operator)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvsReader) CalculateOperatorAVSRegistrationDigestHash(ctx context.Context, operator, avs common.Address, salt [32]byte, expiry *big.Int) ([32]byte, error) {
	args := m.Called(ctx, operator, avs, salt, expiry)
	return args.Get(0).([32]byte), args.Error(1)
}

func (m *MockAvsReader) LatestTaskNum(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockAvsReader) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

type MockAvsWriter struct {
	mock.Mock
}

func receipt(args mock.Arguments) *gethtypes.Receipt {
	if r := args.Get(0); r != nil {
		return r.(*gethtypes.Receipt)
	}
	return nil
}

func (m *MockAvsWriter) RegisterAsOperator(ctx context.Context, details bindings.IDelegationManagerOperatorDetails, metadataURI string) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, details, metadataURI)
	return receipt(args), args.Error(1)
}

func (m *MockAvsWriter) RegisterOperatorWithSignature(ctx context.Context, operatorSignature bindings.ISignatureUtilsSignatureWithSaltAndExpiry, signingKey common.Address) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, operatorSignature, signingKey)
	return receipt(args), args.Error(1)
}

func (m *MockAvsWriter) CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, task)
	return receipt(args), args.Error(1)
}

func (m *MockAvsWriter) RespondToTask(ctx context.Context, task types.Task, taskIndex uint32, signedTask []byte) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, task, taskIndex, signedTask)
	return receipt(args), args.Error(1)
}

func (m *MockAvsWriter) MarkTaskAsPaid(ctx context.Context, taskIndex uint32) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, taskIndex)
	return receipt(args), args.Error(1)
}

type MockAvsSubscriber struct {
	mock.Mock
}

func (m *MockAvsSubscriber) CanSubscribe() bool {
	return m.Called().Bool(0)
}

func (m *MockAvsSubscriber) SubscribeToNewTasks(ctx context.Context, sink chan<- *bindings.ContractNewTaskCreated) (event.Subscription, error) {
	args := m.Called(ctx, sink)
	if sub := args.Get(0); sub != nil {
		return sub.(event.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAvsSubscriber) FilterNewTasks(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]*bindings.ContractNewTaskCreated, error) {
	args := m.Called(ctx, fromBlock, toBlock)
	if events := args.Get(0); events != nil {
		return events.([]*bindings.ContractNewTaskCreated), args.Error(1)
	}
	return nil, args.Error(1)
}
