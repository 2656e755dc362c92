package chainio

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"payroll-avs-operator/logging"
)

type AvsReaderer interface {
	// DelegationManager
	IsOperator(ctx context.Context, operator common.Address) (bool, error)

	// ECDSAStakeRegistry
	IsOperatorRegisteredWithAvs(ctx context.Context, operator common.Address) (bool, error)

	// AVSDirectory
	CalculateOperatorAVSRegistrationDigestHash(ctx context.Context, operator, avs common.Address, salt [32]byte, expiry *big.Int) ([32]byte, error)

	// PayrollServiceManager
	LatestTaskNum(ctx context.Context) (uint32, error)

	BlockNumber(ctx context.Context) (uint64, error)
}

type AvsReader struct {
	bindings *AvsManagersBindings
	client   EthClient
	logger   logging.Logger
}

var _ AvsReaderer = (*AvsReader)(nil)

func NewAvsReader(avsBindings *AvsManagersBindings, client EthClient, logger logging.Logger) *AvsReader {
	return &AvsReader{
		bindings: avsBindings,
		client:   client,
		logger:   logger,
	}
}

func (r *AvsReader) IsOperator(ctx context.Context, operator common.Address) (bool, error) {
	if r.bindings.DelegationManager == nil {
		return false, fmt.Errorf("delegation manager address not configured")
	}
	return r.bindings.DelegationManager.IsOperator(&bind.CallOpts{Context: ctx}, operator)
}

func (r *AvsReader) IsOperatorRegisteredWithAvs(ctx context.Context, operator common.Address) (bool, error) {
	if r.bindings.StakeRegistry == nil {
		return false, fmt.Errorf("stake registry address not configured")
	}
	return r.bindings.StakeRegistry.OperatorRegistered(&bind.CallOpts{Context: ctx}, operator)
}

func (r *AvsReader) CalculateOperatorAVSRegistrationDigestHash(ctx context.Context, operator, avs common.Address, salt [32]byte, expiry *big.Int) ([32]byte, error) {
	if r.bindings.AvsDirectory == nil {
		return [32]byte{}, fmt.Errorf("avs directory address not configured")
	}
	return r.bindings.AvsDirectory.CalculateOperatorAVSRegistrationDigestHash(&bind.CallOpts{Context: ctx}, operator, avs, salt, expiry)
}

func (r *AvsReader) LatestTaskNum(ctx context.Context) (uint32, error) {
	return r.bindings.ServiceManager.LatestTaskNum(&bind.CallOpts{Context: ctx})
}

func (r *AvsReader) BlockNumber(ctx context.Context) (uint64, error) {
	return r.client.BlockNumber(ctx)
}
