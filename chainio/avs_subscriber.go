package chainio

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/event"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/logging"
)

var ErrNoSubscriptionClient = errors.New("no websocket client configured")

type AvsSubscriberer interface {
	// CanSubscribe reports whether push subscriptions are available.
	CanSubscribe() bool
	SubscribeToNewTasks(ctx context.Context, sink chan<- *bindings.ContractNewTaskCreated) (event.Subscription, error)
	FilterNewTasks(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]*bindings.ContractNewTaskCreated, error)
}

type AvsSubscriber struct {
	filterer   *bindings.ContractFilterer
	wsFilterer *bindings.ContractFilterer
	logger     logging.Logger
}

var _ AvsSubscriberer = (*AvsSubscriber)(nil)

// NewAvsSubscriber polls through filterer and, if wsFilterer is not nil,
// subscribes through it.
func NewAvsSubscriber(filterer, wsFilterer *bindings.ContractFilterer, logger logging.Logger) *AvsSubscriber {
	return &AvsSubscriber{
		filterer:   filterer,
		wsFilterer: wsFilterer,
		logger:     logger,
	}
}

func (s *AvsSubscriber) CanSubscribe() bool {
	return s.wsFilterer != nil
}

func (s *AvsSubscriber) SubscribeToNewTasks(ctx context.Context, sink chan<- *bindings.ContractNewTaskCreated) (event.Subscription, error) {
	if s.wsFilterer == nil {
		return nil, ErrNoSubscriptionClient
	}
	sub, err := s.wsFilterer.WatchNewTaskCreated(&bind.WatchOpts{Context: ctx}, sink, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to NewTaskCreated events: %w", err)
	}
	s.logger.Info("Subscribed to NewTaskCreated events")
	return sub, nil
}

// FilterNewTasks returns every NewTaskCreated event in [fromBlock, toBlock].
// A nil toBlock means the latest block.
func (s *AvsSubscriber) FilterNewTasks(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]*bindings.ContractNewTaskCreated, error) {
	iter, err := s.filterer.FilterNewTaskCreated(&bind.FilterOpts{Start: fromBlock, End: toBlock, Context: ctx}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter NewTaskCreated events: %w", err)
	}
	defer iter.Close()

	var events []*bindings.ContractNewTaskCreated
	for iter.Next() {
		events = append(events, iter.Event)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate NewTaskCreated events: %w", err)
	}
	return events, nil
}
