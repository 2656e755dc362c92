package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"payroll-avs-operator/bindings"
)

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0.0"},
		{"zero", big.NewInt(0), "0.0"},
		{"one ether", big.NewInt(1e18), "1.0"},
		{"two decimals", big.NewInt(2_350_000_000_000_000_000), "2.35"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"negative", big.NewInt(-1_500_000_000_000_000_000), "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEther(tt.wei))
		})
	}
}

func TestTask_BindingRoundTrip(t *testing.T) {
	task := Task{
		Name:             "QuickFox42",
		TaskCreatedBlock: 1234,
		Amount:           big.NewInt(3e18),
		Recipient:        common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		DueDate:          big.NewInt(1_700_000_000),
	}

	b := task.ToBinding()
	assert.Equal(t, bindings.IPayrollServiceManagerTask{
		Name:             "QuickFox42",
		TaskCreatedBlock: 1234,
		Amount:           big.NewInt(3e18),
		Recipient:        task.Recipient,
		DueDate:          big.NewInt(1_700_000_000),
		IsPaid:           false,
	}, b)
	assert.Equal(t, task, TaskFromBinding(b))
}

func TestTask_ToBindingFillsNilAmounts(t *testing.T) {
	b := Task{Name: "LazyDog1"}.ToBinding()
	assert.Equal(t, 0, b.Amount.Sign())
	assert.Equal(t, 0, b.DueDate.Sign())
}

func TestTask_DueTime(t *testing.T) {
	task := Task{DueDate: big.NewInt(1_700_000_000)}
	assert.Equal(t, time.Unix(1_700_000_000, 0), task.DueTime())
	assert.True(t, Task{}.DueTime().IsZero())
}

func TestTask_String(t *testing.T) {
	task := Task{
		Name:      "NoisyCat7",
		Amount:    big.NewInt(1_250_000_000_000_000_000),
		Recipient: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		DueDate:   big.NewInt(0),
	}
	s := task.String()
	assert.Contains(t, s, "Name: NoisyCat7")
	assert.Contains(t, s, "Amount: 1.25 ETH")
	assert.Contains(t, s, "Recipient: 0x00000000000000000000000000000000000000AA")
}
