// Package qrcode renders QR codes that link to public product pages.
package qrcode

import (
	"fmt"
	"strings"

	"boutique/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	publicBaseURL        string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance. The codes encode
// plain storefront URLs so any phone camera opens the product page directly.
func NewQRCodeService(publicBaseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		publicBaseURL:        strings.TrimRight(publicBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductQR generates a QR code PNG encoding the product's public URL.
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	productURL := fmt.Sprintf("%s/products/%s", s.publicBaseURL, productID)

	qrCode, err := qrcode.New(productURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
