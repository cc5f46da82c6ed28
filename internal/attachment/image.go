package attachment

import (
	"encoding/base64"
	"fmt"
	"os"
)

// EncodeImageFile base64-encodes the raw bytes of an image file. The bytes
// are sent as-is, without re-encoding. A read failure is the one extraction
// error that aborts the request: an image attachment with no derivable
// representation has nothing useful to send.
func EncodeImageFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}
	return base64.StdEncoding.EncodeToString(content), nil
}
