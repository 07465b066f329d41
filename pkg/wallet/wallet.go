package wallet

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ErrInvalidInput is returned for malformed caller-supplied material:
// a bad mnemonic, a wrong-length secret key, or undecodable base58.
// There is no recovery; the caller must supply corrected input.
var ErrInvalidInput = errors.New("invalid input")

// Key sizes in bytes.
const (
	// SecretKeySize is the ed25519 secret key length: the 32-byte seed
	// followed by the 32-byte public key.
	SecretKeySize = 64
	// PublicKeySize is the raw ed25519 public key length.
	PublicKeySize = 32
)

// Wallet is a Solana-compatible keypair. PublicKey is the base58 encoding
// of the 32-byte public key. Mnemonic carries the generating phrase only
// for freshly generated wallets and is empty otherwise. A Wallet is never
// mutated after construction and never persisted by this package.
type Wallet struct {
	PublicKey string
	SecretKey solana.PrivateKey
	Mnemonic  string
}

// Generate creates a wallet from fresh 256-bit entropy: a 24-word mnemonic,
// the BIP-39 seed with no passphrase, and the keypair at DerivationPath.
// The mnemonic is returned to the caller and never transmitted or logged.
func Generate() (*Wallet, error) {
	return GenerateWithEntropy(Entropy24Words)
}

// GenerateWithEntropy is Generate with a caller-chosen entropy size.
// 128 bits yields the 12-word lower-security variant.
func GenerateWithEntropy(bits int) (*Wallet, error) {
	mnemonic, err := GenerateMnemonicWithEntropy(bits)
	if err != nil {
		return nil, err
	}
	w, err := fromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	w.Mnemonic = mnemonic
	return w, nil
}

// ImportFromMnemonic derives the wallet for a previously generated phrase.
// Both 12-word and 24-word phrases are accepted. The returned wallet does
// not echo the mnemonic back.
func ImportFromMnemonic(phrase string) (*Wallet, error) {
	return fromMnemonic(phrase)
}

func fromMnemonic(phrase string) (*Wallet, error) {
	seed, err := SeedFromMnemonic(phrase, "")
	if err != nil {
		return nil, err
	}
	key, err := DeriveKeypair(seed)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PublicKey: key.PublicKey().String(),
		SecretKey: key,
	}, nil
}

// ImportFromSecretKey constructs the wallet directly from 64-byte secret
// material with no re-derivation.
func ImportFromSecretKey(key []byte) (*Wallet, error) {
	if len(key) != SecretKeySize {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidInput, SecretKeySize, len(key))
	}
	secret := solana.PrivateKey(key)
	return &Wallet{
		PublicKey: secret.PublicKey().String(),
		SecretKey: secret,
	}, nil
}

// ImportFromSecretKeyString decodes a base58-encoded secret key and
// imports it.
func ImportFromSecretKeyString(encoded string) (*Wallet, error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base58 secret key: %v", ErrInvalidInput, err)
	}
	return ImportFromSecretKey(raw)
}

// PublicKeyFromSecretKey reconstructs the keypair for a 64-byte secret key
// and returns only the base58 public half.
func PublicKeyFromSecretKey(key []byte) (string, error) {
	w, err := ImportFromSecretKey(key)
	if err != nil {
		return "", err
	}
	return w.PublicKey, nil
}
