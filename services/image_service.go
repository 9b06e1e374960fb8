package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxImageBytes caps decoded upload size at 5 MB.
const maxImageBytes = 5 << 20

// SaveHotelImage decodes a base64 data URL (or bare base64) and stores it
// under uploads/hotels/. Returns the path relative to the uploads root, which
// is what gets persisted on the hotel record and served via /uploads.
func SaveHotelImage(b64 string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	dir := filepath.Join("uploads", "hotels")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), extensionFor(data))
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return filepath.ToSlash(filepath.Join("hotels", filename)), nil
}

// extensionFor sniffs the image format from magic bytes, defaulting to .jpg.
func extensionFor(data []byte) string {
	switch {
	case len(data) > 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return ".png"
	case len(data) > 3 && string(data[:3]) == "GIF":
		return ".gif"
	case len(data) > 12 && string(data[8:12]) == "WEBP":
		return ".webp"
	default:
		return ".jpg"
	}
}
