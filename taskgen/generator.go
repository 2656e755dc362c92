package taskgen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"payroll-avs-operator/chainio"
	"payroll-avs-operator/config"
	"payroll-avs-operator/logging"
	"payroll-avs-operator/metrics"
	"payroll-avs-operator/types"
)

// Generator submits synthetic payroll tasks to the service manager.
type Generator struct {
	writer chainio.AvsWriterer
	logger logging.Logger
	rand   *rand.Rand
	now    func() time.Time
	close  func()
}

func NewGenerator(writer chainio.AvsWriterer, logger logging.Logger) *Generator {
	return &Generator{
		writer: writer,
		logger: logger,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		close:  func() {},
	}
}

// NewGeneratorFromConfig dials the RPC endpoint and binds the service
// manager only; the core contracts are not needed to create tasks.
func NewGeneratorFromConfig(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Generator, error) {
	privKey, err := cfg.LoadPrivateKey()
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveServiceManagerAddress(); err != nil {
		return nil, err
	}

	client, err := chainio.Dial(ctx, cfg.Provider, privKey, logger)
	if err != nil {
		return nil, err
	}
	addrs := chainio.ContractAddresses{ServiceManager: common.HexToAddress(cfg.ContractAddress)}
	clients, err := chainio.NewClients(client, addrs, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	g := NewGenerator(clients.Writer, logger)
	g.close = clients.Close
	return g, nil
}

func (g *Generator) Close() {
	g.close()
}

// CreateNewTask submits task and waits until it is mined.
func (g *Generator) CreateNewTask(ctx context.Context, task types.Task) error {
	g.logger.Info("Creating new task",
		"name", task.Name,
		"amount", types.FormatEther(task.Amount)+" ETH",
		"recipient", task.Recipient.Hex(),
		"dueDate", task.DueTime().Format(time.RFC3339),
	)
	receipt, err := g.writer.CreateNewTask(ctx, task)
	if err != nil {
		metrics.TasksCreatedTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to create new task: %w", err)
	}
	metrics.TasksCreatedTotal.WithLabelValues("success").Inc()
	g.logger.Info("Task created successfully", "txHash", receipt.TxHash.Hex())
	return nil
}

// Run creates count random tasks, waiting interval between them. A count of
// zero runs until ctx is cancelled. Failed tasks are logged and skipped.
func (g *Generator) Run(ctx context.Context, count int, interval time.Duration) error {
	for created := 0; count == 0 || created < count; created++ {
		if created > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}
		}
		if ctx.Err() != nil {
			return nil
		}

		task, err := NewRandomTask(g.rand, g.now())
		if err != nil {
			return err
		}
		if err := g.CreateNewTask(ctx, task); err != nil {
			g.logger.Error("Error creating new task", "err", err)
		}
	}
	return nil
}
