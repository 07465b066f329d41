package wallet

import (
	"fmt"

	slip10 "github.com/anyproto/go-slip10"
	"github.com/gagliardetto/solana-go"
)

// DerivationPath is the fixed SLIP-10 path for this chain's keys:
// purpose 44', coin type 501' (Solana), account 0', change 0'.
// Every hop is hardened, as ed25519 derivation requires.
const DerivationPath = "m/44'/501'/0'/0'"

// DeriveKeypair derives the keypair at DerivationPath from a 64-byte
// BIP-39 seed. The returned secret is the 64-byte ed25519 private key:
// the 32-byte derived seed followed by the 32-byte public key.
func DeriveKeypair(seed []byte) (solana.PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidInput, SeedSize, len(seed))
	}
	node, err := slip10.DeriveForPath(DerivationPath, seed)
	if err != nil {
		return nil, fmt.Errorf("derive path %s: %w", DerivationPath, err)
	}
	_, priv := node.Keypair()
	return solana.PrivateKey(priv), nil
}
