package service

// QRCodeService renders storefront QR codes pointing at published pages.
type QRCodeService interface {
	// GeneratePageQR returns a PNG QR code encoding url.
	GeneratePageQR(url string) ([]byte, error)
}
