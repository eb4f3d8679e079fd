package service

// QRCodeService renders payloads as QR code images
type QRCodeService interface {
	// GenerateURLQR renders a URL as a PNG QR code
	GenerateURLQR(url string) ([]byte, error)
}
