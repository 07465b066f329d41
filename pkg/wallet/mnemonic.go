// Package wallet derives Solana-compatible keypairs from BIP-39 mnemonic
// phrases and validates wallet addresses.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// Entropy sizes for the supported mnemonic lengths.
const (
	// Entropy24Words is the entropy size for 24-word mnemonics.
	Entropy24Words = 256
	// Entropy12Words is the entropy size for 12-word mnemonics.
	Entropy12Words = 128
)

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	return GenerateMnemonicWithEntropy(Entropy24Words)
}

// GenerateMnemonicWithEntropy creates a new BIP-39 mnemonic from the given
// entropy size in bits. 256 bits yields 24 words, 128 bits yields 12.
func GenerateMnemonicWithEntropy(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
