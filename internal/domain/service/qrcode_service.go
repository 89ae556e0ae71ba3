package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating QR codes that point at
// public product pages (used by the admin panel for printed material).
type QRCodeService interface {
	// GenerateProductQR generates a QR code PNG encoding the product's public URL.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
