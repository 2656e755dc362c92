package taskgen

import (
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"payroll-avs-operator/types"
)

const DueDateOffset = 7 * 24 * time.Hour

var (
	adjectives = []string{"Quick", "Lazy", "Sleepy", "Noisy", "Hungry"}
	nouns      = []string{"Fox", "Dog", "Cat", "Mouse", "Bear"}

	centWei = big.NewInt(1e16)
)

// GenerateRandomName combines a random adjective, a random noun and a random
// number between 0 and 999.
func GenerateRandomName(r *rand.Rand) string {
	adjective := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, r.Intn(1000))
}

// GenerateRandomAmount returns between 1.00 and 5.99 ETH in wei, in steps of
// 0.01 ETH.
func GenerateRandomAmount(r *rand.Rand) *big.Int {
	cents := int64(100 + r.Intn(500))
	return new(big.Int).Mul(big.NewInt(cents), centWei)
}

// GenerateRandomRecipient returns the address of a freshly generated key.
func GenerateRandomRecipient() (common.Address, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func GenerateDueDate(now time.Time) *big.Int {
	return big.NewInt(now.Add(DueDateOffset).Unix())
}

func NewRandomTask(r *rand.Rand, now time.Time) (types.Task, error) {
	recipient, err := GenerateRandomRecipient()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to generate recipient: %w", err)
	}
	return types.Task{
		Name:      GenerateRandomName(r),
		Amount:    GenerateRandomAmount(r),
		Recipient: recipient,
		DueDate:   GenerateDueDate(now),
	}, nil
}
