package taskgen

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payroll-avs-operator/chainio/mocks"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/metrics"
	"payroll-avs-operator/types"
)

func newTestGenerator() (*Generator, *mocks.MockAvsWriter) {
	writer := new(mocks.MockAvsWriter)
	g := NewGenerator(writer, logging.NewNopLogger())
	g.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return g, writer
}

func TestGenerator_CreateNewTask(t *testing.T) {
	g, writer := newTestGenerator()
	task := types.Task{
		Name:      "QuickFox1",
		Amount:    big.NewInt(1e18),
		Recipient: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		DueDate:   big.NewInt(1_700_604_800),
	}
	writer.On("CreateNewTask", mock.Anything, task).
		Return(&gethtypes.Receipt{Status: gethtypes.ReceiptStatusSuccessful, TxHash: common.Hash{1}}, nil)

	created := testutil.ToFloat64(metrics.TasksCreatedTotal.WithLabelValues("success"))
	require.NoError(t, g.CreateNewTask(context.Background(), task))
	writer.AssertExpectations(t)
	assert.Equal(t, created+1, testutil.ToFloat64(metrics.TasksCreatedTotal.WithLabelValues("success")))
}

func TestGenerator_CreateNewTaskFailure(t *testing.T) {
	g, writer := newTestGenerator()
	writer.On("CreateNewTask", mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted"))

	err := g.CreateNewTask(context.Background(), types.Task{Name: "LazyDog2"})
	assert.ErrorContains(t, err, "execution reverted")
}

func TestGenerator_RunCount(t *testing.T) {
	g, writer := newTestGenerator()

	var tasks []types.Task
	writer.On("CreateNewTask", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { tasks = append(tasks, args.Get(1).(types.Task)) }).
		Return(&gethtypes.Receipt{}, nil)

	require.NoError(t, g.Run(context.Background(), 3, time.Millisecond))
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Regexp(t, namePattern, task.Name)
		assert.Equal(t, int64(1_700_604_800), task.DueDate.Int64())
	}
}

func TestGenerator_RunContinuesAfterFailure(t *testing.T) {
	g, writer := newTestGenerator()
	writer.On("CreateNewTask", mock.Anything, mock.Anything).Return(nil, errors.New("nonce too low")).Once()
	writer.On("CreateNewTask", mock.Anything, mock.Anything).Return(&gethtypes.Receipt{}, nil)

	require.NoError(t, g.Run(context.Background(), 2, time.Millisecond))
	writer.AssertNumberOfCalls(t, "CreateNewTask", 2)
}

func TestGenerator_RunUntilCancelled(t *testing.T) {
	g, writer := newTestGenerator()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	calls := 0
	writer.On("CreateNewTask", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			calls++
			if calls == 4 {
				cancel()
			}
		}).
		Return(&gethtypes.Receipt{}, nil)

	require.NoError(t, g.Run(ctx, 0, time.Millisecond))
	assert.Equal(t, 4, calls)
}

func TestGenerator_RunCancelledBeforeStart(t *testing.T) {
	g, writer := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.Run(ctx, 5, time.Millisecond))
	writer.AssertNotCalled(t, "CreateNewTask", mock.Anything, mock.Anything)
}
