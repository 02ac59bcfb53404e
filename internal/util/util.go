// Package util holds small formatting helpers shared by the pipeline and CLI.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// ContentChecksum returns the SHA256 hex digest of body.
func ContentChecksum(body []byte) string {
	sum := sha256.Sum256(body)

	return hex.EncodeToString(sum[:])
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	return `"` + ContentChecksum(body)[:32] + `"`
}

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a size in binary units with one decimal, "512 B" below 1 KB.
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	size := float64(n) / 1024
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	return strconv.FormatFloat(size, 'f', 1, 64) + " " + byteUnits[unit]
}

// FormatDuration renders d rounded to the second, dropping seconds once it
// reaches an hour: "45s", "20m0s", "26h5m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Hour {
		return d.String()
	}

	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute

	return strconv.FormatInt(int64(hours), 10) + "h" + strconv.FormatInt(int64(minutes), 10) + "m"
}
