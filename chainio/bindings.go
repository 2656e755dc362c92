package chainio

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"payroll-avs-operator/bindings"
)

// ContractAddresses of the deployment. The core addresses may be zero for
// callers that only talk to the service manager, e.g. the task generator.
type ContractAddresses struct {
	ServiceManager    common.Address
	StakeRegistry     common.Address
	DelegationManager common.Address
	AvsDirectory      common.Address
}

type AvsManagersBindings struct {
	ServiceManager    *bindings.Contract
	StakeRegistry     *bindings.Registry
	DelegationManager *bindings.Delegation
	AvsDirectory      *bindings.AvsDirectoryCaller
}

// NewAvsManagersBindings binds every non-zero address in addrs. The service
// manager address is mandatory.
func NewAvsManagersBindings(addrs ContractAddresses, backend bind.ContractBackend) (*AvsManagersBindings, error) {
	if addrs.ServiceManager == (common.Address{}) {
		return nil, fmt.Errorf("service manager address is required")
	}

	serviceManager, err := bindings.NewContract(addrs.ServiceManager, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate service manager contract: %w", err)
	}
	b := &AvsManagersBindings{ServiceManager: serviceManager}

	if addrs.StakeRegistry != (common.Address{}) {
		if b.StakeRegistry, err = bindings.NewRegistry(addrs.StakeRegistry, backend); err != nil {
			return nil, fmt.Errorf("failed to instantiate registry contract: %w", err)
		}
	}
	if addrs.DelegationManager != (common.Address{}) {
		if b.DelegationManager, err = bindings.NewDelegation(addrs.DelegationManager, backend); err != nil {
			return nil, fmt.Errorf("failed to instantiate delegation manager contract: %w", err)
		}
	}
	if addrs.AvsDirectory != (common.Address{}) {
		if b.AvsDirectory, err = bindings.NewAvsDirectoryCaller(addrs.AvsDirectory, backend); err != nil {
			return nil, fmt.Errorf("failed to instantiate AVS directory contract: %w", err)
		}
	}
	return b, nil
}
