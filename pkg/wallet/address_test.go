package wallet

import (
	"strings"
	"testing"

	"github.com/mr-tron/base58"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{
			name:    "system program",
			address: "11111111111111111111111111111111",
			valid:   true,
		},
		{
			name:    "USDC mint",
			address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			valid:   true,
		},
		{
			name:    "empty string",
			address: "",
			valid:   false,
		},
		{
			name:    "too short",
			address: strings.Repeat("1", 31),
			valid:   false,
		},
		{
			name:    "too long",
			address: strings.Repeat("1", 45),
			valid:   false,
		},
		{
			name:    "excluded character 0",
			address: "0" + strings.Repeat("1", 31),
			valid:   false,
		},
		{
			name:    "excluded character O",
			address: "O" + strings.Repeat("1", 31),
			valid:   false,
		},
		{
			name:    "excluded character I",
			address: "I" + strings.Repeat("1", 31),
			valid:   false,
		},
		{
			name:    "excluded character l",
			address: "l" + strings.Repeat("1", 31),
			valid:   false,
		},
		{
			name:    "punctuation",
			address: "not-base58!!not-base58!!not-base58!!",
			valid:   false,
		},
		{
			name:    "valid alphabet but decodes to 33 bytes",
			address: strings.Repeat("1", 33),
			valid:   false,
		},
		{
			name:    "embedded space",
			address: strings.Repeat("1", 16) + " " + strings.Repeat("1", 16),
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateAddress(tt.address); got != tt.valid {
				t.Errorf("ValidateAddress(%q) = %v, want %v", tt.address, got, tt.valid)
			}
		})
	}
}

func TestValidateAddress_Encoded32Bytes(t *testing.T) {
	// Any 32-byte value encodes to a valid address.
	tests := []struct {
		name string
		raw  []byte
	}{
		{"all zeros", make([]byte, 32)},
		{"all 0xff", []byte(strings.Repeat("\xff", 32))},
		{"ascending", func() []byte {
			b := make([]byte, 32)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := base58.Encode(tt.raw)
			if !ValidateAddress(addr) {
				t.Errorf("ValidateAddress(%q) = false, want true", addr)
			}
		})
	}
}

func TestValidateAddress_EncodedWrongLengths(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"31 bytes", []byte(strings.Repeat("\xff", 31))},
		{"33 bytes", []byte(strings.Repeat("\xff", 33))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := base58.Encode(tt.raw)
			if ValidateAddress(addr) {
				t.Errorf("ValidateAddress(%q) = true, want false", addr)
			}
		})
	}
}
