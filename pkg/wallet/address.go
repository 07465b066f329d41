package wallet

import (
	"strings"

	"github.com/mr-tron/base58"
)

// base58Alphabet is the Bitcoin base58 alphabet used by Solana addresses.
// It excludes the visually ambiguous characters 0, I, O and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encoded address length bounds for a 32-byte public key.
const (
	addressMinLen = 32
	addressMaxLen = 44
)

// ValidateAddress reports whether address has the form of a Solana address:
// encoded length in [32, 44], base58 alphabet characters only, and decoding
// to exactly 32 raw bytes. It is a predicate meant to guard risk-bearing
// operations; every failure mode, including malformed input, yields false
// rather than an error.
func ValidateAddress(address string) bool {
	if len(address) < addressMinLen || len(address) > addressMaxLen {
		return false
	}
	for _, c := range address {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	raw, err := base58.Decode(address)
	if err != nil {
		return false
	}
	return len(raw) == PublicKeySize
}
