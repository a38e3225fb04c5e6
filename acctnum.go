package bankapp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const acctNumDigits = 10

// AcctNumGen produces candidate account numbers. The generator knows
// nothing about existing accounts; collision handling belongs to the
// caller, which must re-draw until the number is free.
type AcctNumGen interface {
	Next() (string, error)
}

type randomAcctNumGen struct{}

func NewAcctNumGen() AcctNumGen {
	return randomAcctNumGen{}
}

var acctNumMax = new(big.Int).Exp(big.NewInt(10), big.NewInt(acctNumDigits), nil)

// Next returns a uniformly random, zero-padded 10-digit numeric string.
func (randomAcctNumGen) Next() (string, error) {
	n, err := rand.Int(rand.Reader, acctNumMax)
	if err != nil {
		return "", fmt.Errorf("drawing account number: %w", err)
	}
	return fmt.Sprintf("%0*d", acctNumDigits, n), nil
}
