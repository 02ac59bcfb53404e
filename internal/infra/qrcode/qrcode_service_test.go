package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"pagecast/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level)
			assert.Equal(t, tt.expected, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GeneratePageQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}}
	svc := NewQRCodeService(cfg)

	data, err := svc.GeneratePageQR("https://pages.example.com/seattle-wa/joes-pizza/best-pizza-restaurant/new-menu-3f2a9c4e")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePageQR_RejectsRelative(t *testing.T) {
	svc := newQRCodeService(128, "L")

	for _, in := range []string{"", "/seattle-wa/joes-pizza", "://broken"} {
		_, err := svc.GeneratePageQR(in)
		assert.Error(t, err, in)
	}
}
