package chainio

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"payroll-avs-operator/bindings"
	"payroll-avs-operator/logging"
)

type Clients struct {
	Client     *Client
	WsClient   *Client
	Reader     *AvsReader
	Writer     *AvsWriter
	Subscriber *AvsSubscriber
}

// BuildClients dials rpcURL (and wsURL when not empty) and wires the
// reader, writer and subscriber for addrs.
func BuildClients(ctx context.Context, rpcURL, wsURL string, addrs ContractAddresses, privKey *ecdsa.PrivateKey, logger logging.Logger) (*Clients, error) {
	client, err := Dial(ctx, rpcURL, privKey, logger)
	if err != nil {
		return nil, err
	}

	clients, err := NewClients(client, addrs, logger)
	if err != nil {
		client.Close()
		return nil, err
	}

	if wsURL != "" {
		wsClient, err := Dial(ctx, wsURL, privKey, logger)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to ws endpoint: %w", err)
		}
		wsFilterer, err := bindings.NewContractFilterer(addrs.ServiceManager, wsClient.EthClient)
		if err != nil {
			client.Close()
			wsClient.Close()
			return nil, fmt.Errorf("failed to instantiate ws contract filterer: %w", err)
		}
		clients.WsClient = wsClient
		clients.Subscriber = NewAvsSubscriber(&clients.Reader.bindings.ServiceManager.ContractFilterer, wsFilterer, logger)
	}
	return clients, nil
}

// NewClients wires the reader, writer and polling subscriber over an
// existing client.
func NewClients(client *Client, addrs ContractAddresses, logger logging.Logger) (*Clients, error) {
	avsBindings, err := NewAvsManagersBindings(addrs, client.EthClient)
	if err != nil {
		return nil, err
	}
	return &Clients{
		Client:     client,
		Reader:     NewAvsReader(avsBindings, client.EthClient, logger),
		Writer:     NewAvsWriter(avsBindings, client, logger),
		Subscriber: NewAvsSubscriber(&avsBindings.ServiceManager.ContractFilterer, nil, logger),
	}, nil
}

func (c *Clients) Close() {
	if c.WsClient != nil {
		c.WsClient.Close()
	}
	c.Client.Close()
}
