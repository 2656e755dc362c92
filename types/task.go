package types

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"

	"payroll-avs-operator/bindings"
)

// Task mirrors IPayrollServiceManager.Task. Amount is in wei and DueDate is a
// unix timestamp in seconds.
type Task struct {
	Name             string
	TaskCreatedBlock uint32
	Amount           *big.Int
	Recipient        common.Address
	DueDate          *big.Int
	IsPaid           bool
}

func TaskFromBinding(t bindings.IPayrollServiceManagerTask) Task {
	return Task{
		Name:             t.Name,
		TaskCreatedBlock: t.TaskCreatedBlock,
		Amount:           t.Amount,
		Recipient:        t.Recipient,
		DueDate:          t.DueDate,
		IsPaid:           t.IsPaid,
	}
}

func (t Task) ToBinding() bindings.IPayrollServiceManagerTask {
	return bindings.IPayrollServiceManagerTask{
		Name:             t.Name,
		TaskCreatedBlock: t.TaskCreatedBlock,
		Amount:           orZero(t.Amount),
		Recipient:        t.Recipient,
		DueDate:          orZero(t.DueDate),
		IsPaid:           t.IsPaid,
	}
}

// DueTime returns the due date as a time.Time in the local zone.
func (t Task) DueTime() time.Time {
	if t.DueDate == nil || !t.DueDate.IsInt64() {
		return time.Time{}
	}
	return time.Unix(t.DueDate.Int64(), 0)
}

func (t Task) String() string {
	return fmt.Sprintf("Name: %s, Amount: %s ETH, Recipient: %s, Due Date: %s",
		t.Name, FormatEther(t.Amount), t.Recipient.Hex(), t.DueTime().Format(time.RFC1123))
}

// FormatEther renders a wei amount in ETH, dropping trailing zeros but
// keeping at least one decimal: 1.5e18 -> "1.5", 2e18 -> "2.0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	sign := ""
	abs := new(big.Int).Set(wei)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	whole, frac := new(big.Int).QuoRem(abs, big.NewInt(params.Ether), new(big.Int))
	fracStr := strings.TrimRight(fmt.Sprintf("%018s", frac.String()), "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return sign + whole.String() + "." + fracStr
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
