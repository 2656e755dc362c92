package operator

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/chainio"
	"payroll-avs-operator/config"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/metrics"
	"payroll-avs-operator/types"
)

type Options struct {
	PollInterval       time.Duration
	EligibilityDelay   time.Duration
	PaymentDelay       time.Duration
	RegistrationExpiry time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PollInterval:       cfg.PollInterval,
		EligibilityDelay:   cfg.EligibilityDelay,
		PaymentDelay:       cfg.PaymentDelay,
		RegistrationExpiry: cfg.RegistrationExpiry,
	}
}

type Operator struct {
	reader     chainio.AvsReaderer
	writer     chainio.AvsWriterer
	subscriber chainio.AvsSubscriberer
	logger     logging.Logger

	address        common.Address
	privKey        *ecdsa.PrivateKey
	serviceManager common.Address
	opts           Options

	now   func() time.Time
	close func()
}

func NewOperator(
	reader chainio.AvsReaderer,
	writer chainio.AvsWriterer,
	subscriber chainio.AvsSubscriberer,
	privKey *ecdsa.PrivateKey,
	serviceManager common.Address,
	opts Options,
	logger logging.Logger,
) *Operator {
	return &Operator{
		reader:         reader,
		writer:         writer,
		subscriber:     subscriber,
		logger:         logger,
		address:        crypto.PubkeyToAddress(privKey.PublicKey),
		privKey:        privKey,
		serviceManager: serviceManager,
		opts:           opts,
		now:            time.Now,
		close:          func() {},
	}
}

// NewOperatorFromConfig loads the operator key, resolves the contract
// addresses and dials the configured endpoints.
func NewOperatorFromConfig(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Operator, error) {
	privKey, err := cfg.LoadPrivateKey()
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveServiceAddresses(); err != nil {
		return nil, err
	}
	if err := cfg.ResolveCoreAddresses(); err != nil {
		return nil, err
	}

	addrs := chainio.ContractAddresses{
		ServiceManager:    common.HexToAddress(cfg.ContractAddress),
		StakeRegistry:     common.HexToAddress(cfg.StakeRegistryAddress),
		DelegationManager: common.HexToAddress(cfg.DelegationManagerAddress),
		AvsDirectory:      common.HexToAddress(cfg.AvsDirectoryAddress),
	}
	clients, err := chainio.BuildClients(ctx, cfg.Provider, cfg.WsProvider, addrs, privKey, logger)
	if err != nil {
		return nil, err
	}

	o := NewOperator(clients.Reader, clients.Writer, clients.Subscriber, privKey, addrs.ServiceManager, OptionsFromConfig(cfg), logger)
	o.close = clients.Close
	o.logger.Info("Operator initialized",
		"address", o.address.Hex(),
		"serviceManager", addrs.ServiceManager.Hex(),
		"chainId", clients.Client.ChainID.String(),
	)
	return o, nil
}

func (o *Operator) Address() common.Address {
	return o.address
}

func (o *Operator) Close() {
	o.close()
}

// RegisterOperator registers the operator with the DelegationManager and
// then with the AVS stake registry. Steps already done on-chain are skipped.
func (o *Operator) RegisterOperator(ctx context.Context) error {
	if err := o.registerWithDelegationManager(ctx); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("delegation", "failed").Inc()
		return err
	}
	if err := o.registerWithAvs(ctx); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("avs", "failed").Inc()
		return err
	}
	return nil
}

func (o *Operator) registerWithDelegationManager(ctx context.Context) error {
	isOperator, err := o.reader.IsOperator(ctx, o.address)
	if err != nil {
		return fmt.Errorf("failed to check operator status: %w", err)
	}
	if isOperator {
		o.logger.Info("Operator already registered to Core EigenLayer contracts", "address", o.address.Hex())
		metrics.RegistrationsTotal.WithLabelValues("delegation", "skipped").Inc()
		return nil
	}

	receipt, err := o.writer.RegisterAsOperator(ctx, bindings.IDelegationManagerOperatorDetails{
		DeprecatedEarningsReceiver: o.address,
		DelegationApprover:         common.Address{},
		StakerOptOutWindowBlocks:   0,
	}, "")
	if err != nil {
		return fmt.Errorf("failed to register as operator: %w", err)
	}
	o.logger.Info("Operator registered to Core EigenLayer contracts", "txHash", receipt.TxHash.Hex())
	metrics.RegistrationsTotal.WithLabelValues("delegation", "registered").Inc()
	return nil
}

func (o *Operator) registerWithAvs(ctx context.Context) error {
	registered, err := o.reader.IsOperatorRegisteredWithAvs(ctx, o.address)
	if err != nil {
		return fmt.Errorf("failed to check avs registration: %w", err)
	}
	if registered {
		o.logger.Info("Operator already registered on AVS", "address", o.address.Hex())
		metrics.RegistrationsTotal.WithLabelValues("avs", "skipped").Inc()
		return nil
	}

	salt, err := generateRandomBytes()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	expiry := big.NewInt(o.now().Add(o.opts.RegistrationExpiry).Unix())

	digestHash, err := o.reader.CalculateOperatorAVSRegistrationDigestHash(ctx, o.address, o.serviceManager, salt, expiry)
	if err != nil {
		return fmt.Errorf("failed to calculate registration digest: %w", err)
	}
	o.logger.Debug("Operator digest hash", "digest", common.Hash(digestHash).Hex())

	sig, err := SignDigest(digestHash, o.privKey)
	if err != nil {
		return fmt.Errorf("failed to sign registration digest: %w", err)
	}

	o.logger.Info("Registering operator to AVS registry contract")
	receipt, err := o.writer.RegisterOperatorWithSignature(ctx, bindings.ISignatureUtilsSignatureWithSaltAndExpiry{
		Signature: sig,
		Salt:      salt,
		Expiry:    expiry,
	}, o.address)
	if err != nil {
		return fmt.Errorf("failed to register operator with avs: %w", err)
	}
	o.logger.Info("Operator registered on AVS successfully", "txHash", receipt.TxHash.Hex())
	metrics.RegistrationsTotal.WithLabelValues("avs", "registered").Inc()
	return nil
}

// SignAndRespondToTask signs the task message, responds on-chain and then
// settles the payment. Only failures up to the response are returned.
func (o *Operator) SignAndRespondToTask(ctx context.Context, taskIndex uint32, task types.Task) error {
	logger := o.logger.With("taskIndex", taskIndex)
	logger.Infof("Signing and responding to task %d", taskIndex)

	signature, err := SignTaskMessage(o.privKey, task.Name)
	if err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageSign).Inc()
		return fmt.Errorf("failed to sign task: %w", err)
	}

	logger.Info("Checking eligibility of withdrawal", "recipient", task.Recipient.Hex(), "amount", types.FormatEther(task.Amount))
	if err := sleepContext(ctx, o.opts.EligibilityDelay); err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageEligibility).Inc()
		return err
	}
	logger.Info("Eligibility check passed")

	latest, err := o.reader.BlockNumber(ctx)
	if err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageRespond).Inc()
		return fmt.Errorf("failed to get block number: %w", err)
	}
	var referenceBlock uint32
	if latest > 0 {
		referenceBlock = uint32(latest - 1)
	}
	signedTask, err := EncodeSignedTask([]common.Address{o.address}, [][]byte{signature}, referenceBlock)
	if err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageSign).Inc()
		return fmt.Errorf("failed to encode signed task: %w", err)
	}

	task.IsPaid = false
	receipt, err := o.writer.RespondToTask(ctx, task, taskIndex, signedTask)
	if err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageRespond).Inc()
		return fmt.Errorf("failed to respond to task %d: %w", taskIndex, err)
	}
	logger.Info("Responded to task", "txHash", receipt.TxHash.Hex())
	metrics.TasksRespondedTotal.Inc()

	if err := o.sendPayment(ctx, logger, task.Recipient, task.Amount); err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StagePayment).Inc()
		logger.Error("Error sending payment", "err", err)
	}
	if err := o.markTaskAsPaid(ctx, logger, taskIndex); err != nil {
		metrics.TaskFailuresTotal.WithLabelValues(metrics.StageMarkPaid).Inc()
		logger.Error("Error marking task as paid", "err", err)
	}
	return nil
}

// sendPayment stands in for the ETH transfer to the recipient.
func (o *Operator) sendPayment(ctx context.Context, logger logging.Logger, recipient common.Address, amount *big.Int) error {
	logger.Infof("Sending %s ETH to %s", types.FormatEther(amount), recipient.Hex())
	if err := sleepContext(ctx, o.opts.PaymentDelay); err != nil {
		return err
	}
	logger.Infof("Sent %s ETH to %s", types.FormatEther(amount), recipient.Hex())
	return nil
}

func (o *Operator) markTaskAsPaid(ctx context.Context, logger logging.Logger, taskIndex uint32) error {
	logger.Info("Marking task as paid")
	receipt, err := o.writer.MarkTaskAsPaid(ctx, taskIndex)
	if err != nil {
		return err
	}
	logger.Info("Task marked as paid", "txHash", receipt.TxHash.Hex())
	metrics.TasksPaidTotal.Inc()
	return nil
}

func (o *Operator) handleNewTask(ctx context.Context, ev *bindings.ContractNewTaskCreated) {
	metrics.TasksReceivedTotal.Inc()
	task := types.TaskFromBinding(ev.Task)
	o.logger.Info("New task detected", "taskIndex", ev.TaskIndex, "task", task.String())

	start := time.Now()
	if err := o.SignAndRespondToTask(ctx, ev.TaskIndex, task); err != nil {
		o.logger.Error("Error processing task", "taskIndex", ev.TaskIndex, "err", err)
		return
	}
	metrics.TaskDurationSeconds.Observe(time.Since(start).Seconds())
}

// MonitorNewTasks handles NewTaskCreated events one at a time until ctx is
// cancelled. It subscribes when a websocket client is configured and polls
// otherwise.
func (o *Operator) MonitorNewTasks(ctx context.Context) error {
	if latest, err := o.reader.LatestTaskNum(ctx); err != nil {
		o.logger.Warn("Failed to read latest task number", "err", err)
	} else {
		o.logger.Info("Latest task number", "latestTaskNum", latest)
	}

	if o.subscriber.CanSubscribe() {
		return o.watchNewTasks(ctx)
	}
	return o.pollNewTasks(ctx)
}

func (o *Operator) watchNewTasks(ctx context.Context) error {
	newTaskCreated := make(chan *bindings.ContractNewTaskCreated)
	sub, err := o.subscriber.SubscribeToNewTasks(ctx, newTaskCreated)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	o.logger.Info("Monitoring for new tasks...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sub.Err():
			if err == nil {
				return nil
			}
			return fmt.Errorf("new task subscription failed: %w", err)
		case ev := <-newTaskCreated:
			o.handleNewTask(ctx, ev)
		}
	}
}

func (o *Operator) pollNewTasks(ctx context.Context) error {
	head, err := o.reader.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block number: %w", err)
	}
	next := head + 1

	ticker := time.NewTicker(o.opts.PollInterval)
	defer ticker.Stop()

	o.logger.Info("Monitoring for new tasks...", "fromBlock", next)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		next, err = o.pollOnce(ctx, next)
		if err != nil {
			o.logger.Warn("Failed to poll for new tasks", "err", err)
		}
	}
}

// pollOnce handles the events in [from, head] and returns the next block to
// start from.
func (o *Operator) pollOnce(ctx context.Context, from uint64) (uint64, error) {
	head, err := o.reader.BlockNumber(ctx)
	if err != nil {
		return from, fmt.Errorf("failed to get block number: %w", err)
	}
	if head < from {
		return from, nil
	}

	events, err := o.subscriber.FilterNewTasks(ctx, from, &head)
	if err != nil {
		return from, err
	}
	for _, ev := range events {
		if ctx.Err() != nil {
			return from, nil
		}
		o.handleNewTask(ctx, ev)
	}
	return head + 1, nil
}
