package wallet

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the default QR code edge length in pixels.
const DefaultQRSize = 256

// AddressQR renders an address as a PNG QR code with the given edge length
// in pixels, for funding flows. A non-positive size falls back to
// DefaultQRSize. The address must pass ValidateAddress.
func AddressQR(address string, size int) ([]byte, error) {
	if !ValidateAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %q", ErrInvalidInput, address)
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	return png, nil
}
