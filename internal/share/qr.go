package share

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRPNG writes the link as a QR code PNG.
func QRPNG(content, path string) error {
	if err := qrcode.WriteFile(content, qrcode.Medium, 256, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}

// QRText renders the link as a terminal-friendly QR code.
func QRText(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}
