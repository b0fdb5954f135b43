package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG encodes data (typically the customer quote page URL) as a QR
// code PNG, for printed quotes and counter signage.
func GeneratePNG(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
