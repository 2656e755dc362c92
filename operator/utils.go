package operator

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// signedTaskArgs is the layout the service manager decodes in respondToTask:
// (address[] operators, bytes[] signatures, uint32 referenceBlock).
var signedTaskArgs = mustArguments("address[]", "bytes[]", "uint32")

func mustArguments(typeNames ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(typeNames))
	for _, name := range typeNames {
		typ, err := abi.NewType(name, "", nil)
		if err != nil {
			panic(fmt.Sprintf("invalid abi type %s: %v", name, err))
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// generateRandomBytes returns a random [32]byte array.
func generateRandomBytes() ([32]byte, error) {
	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return salt, err
	}
	return salt, nil
}

func TaskMessage(taskName string) string {
	return fmt.Sprintf("Hello, %s", taskName)
}

// SignTaskMessage signs keccak256("Hello, <name>") as an EIP-191 personal
// message, so the signer is recovered from TextHash(keccak256(message)).
func SignTaskMessage(privKey *ecdsa.PrivateKey, taskName string) ([]byte, error) {
	messageHash := crypto.Keccak256([]byte(TaskMessage(taskName)))
	return signHash(accounts.TextHash(messageHash), privKey)
}

// SignDigest signs a 32 byte digest as is.
func SignDigest(digest [32]byte, privKey *ecdsa.PrivateKey) ([]byte, error) {
	return signHash(digest[:], privKey)
}

// signHash returns r || s || v with v in {27, 28}.
func signHash(hash []byte, privKey *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(hash, privKey)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func EncodeSignedTask(operators []common.Address, signatures [][]byte, referenceBlock uint32) ([]byte, error) {
	if len(operators) != len(signatures) {
		return nil, fmt.Errorf("got %d operators and %d signatures", len(operators), len(signatures))
	}
	return signedTaskArgs.Pack(operators, signatures, referenceBlock)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
