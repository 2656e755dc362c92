package chainio

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/types"
)

// AvsWriterer sends the operator's transactions. Every method waits for the
// receipt and fails if the transaction reverted.
type AvsWriterer interface {
	// DelegationManager
	RegisterAsOperator(ctx context.Context, details bindings.IDelegationManagerOperatorDetails, metadataURI string) (*gethtypes.Receipt, error)

	// ECDSAStakeRegistry
	RegisterOperatorWithSignature(ctx context.Context, operatorSignature bindings.ISignatureUtilsSignatureWithSaltAndExpiry, signingKey common.Address) (*gethtypes.Receipt, error)

	// PayrollServiceManager
	CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error)
	RespondToTask(ctx context.Context, task types.Task, taskIndex uint32, signedTask []byte) (*gethtypes.Receipt, error)
	MarkTaskAsPaid(ctx context.Context, taskIndex uint32) (*gethtypes.Receipt, error)
}

type AvsWriter struct {
	bindings *AvsManagersBindings
	client   *Client
	logger   logging.Logger
}

var _ AvsWriterer = (*AvsWriter)(nil)

func NewAvsWriter(avsBindings *AvsManagersBindings, client *Client, logger logging.Logger) *AvsWriter {
	return &AvsWriter{
		bindings: avsBindings,
		client:   client,
		logger:   logger,
	}
}

// send builds transact options, submits the call and waits for it to be mined.
func (w *AvsWriter) send(ctx context.Context, method string, submit func(opts *bind.TransactOpts) (*gethtypes.Transaction, error)) (*gethtypes.Receipt, error) {
	opts, err := w.client.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := submit(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", method, err)
	}
	w.logger.Debug("Transaction sent", "method", method, "txHash", tx.Hash().Hex())
	return w.client.WaitForReceipt(ctx, tx)
}

func (w *AvsWriter) RegisterAsOperator(ctx context.Context, details bindings.IDelegationManagerOperatorDetails, metadataURI string) (*gethtypes.Receipt, error) {
	if w.bindings.DelegationManager == nil {
		return nil, fmt.Errorf("delegation manager address not configured")
	}
	return w.send(ctx, "registerAsOperator", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return w.bindings.DelegationManager.RegisterAsOperator(opts, details, metadataURI)
	})
}

func (w *AvsWriter) RegisterOperatorWithSignature(ctx context.Context, operatorSignature bindings.ISignatureUtilsSignatureWithSaltAndExpiry, signingKey common.Address) (*gethtypes.Receipt, error) {
	if w.bindings.StakeRegistry == nil {
		return nil, fmt.Errorf("stake registry address not configured")
	}
	return w.send(ctx, "registerOperatorWithSignature", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return w.bindings.StakeRegistry.RegisterOperatorWithSignature(opts, operatorSignature, signingKey)
	})
}

func (w *AvsWriter) CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error) {
	b := task.ToBinding()
	return w.send(ctx, "createNewTask", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return w.bindings.ServiceManager.CreateNewTask(opts, b.Name, b.Amount, b.Recipient, b.DueDate)
	})
}

func (w *AvsWriter) RespondToTask(ctx context.Context, task types.Task, taskIndex uint32, signedTask []byte) (*gethtypes.Receipt, error) {
	return w.send(ctx, "respondToTask", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return w.bindings.ServiceManager.RespondToTask(opts, task.ToBinding(), taskIndex, signedTask)
	})
}

func (w *AvsWriter) MarkTaskAsPaid(ctx context.Context, taskIndex uint32) (*gethtypes.Receipt, error) {
	return w.send(ctx, "markTaskAsPaid", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return w.bindings.ServiceManager.MarkTaskAsPaid(opts, taskIndex)
	})
}
