package wallet

import (
	"bytes"
	"errors"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestAddressQR(t *testing.T) {
	w, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	png, err := AddressQR(w.PublicKey, 256)
	if err != nil {
		t.Fatalf("AddressQR() error: %v", err)
	}

	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("output should be a PNG image")
	}
}

func TestAddressQR_DefaultSize(t *testing.T) {
	png, err := AddressQR("11111111111111111111111111111111", 0)
	if err != nil {
		t.Fatalf("AddressQR() error: %v", err)
	}
	if len(png) == 0 {
		t.Error("output should not be empty")
	}
}

func TestAddressQR_InvalidAddress(t *testing.T) {
	_, err := AddressQR("not-base58!!", 256)
	if err == nil {
		t.Fatal("expected error for invalid address")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
