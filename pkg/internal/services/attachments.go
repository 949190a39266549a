package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

var ErrAttachmentMissing = errors.New("attachment file does not exist")

// SaveAttachmentFromBase64 decodes a data-url style payload, such as
// "data:image/png;base64,...", and writes it under a generated filename
// inside the configured media root. Returns the filename.
func SaveAttachmentFromBase64(encoded string) (string, error) {
	before, payload, found := strings.Cut(encoded, ";base64,")
	if !found {
		return "", fmt.Errorf("malformed base64 image payload")
	}

	ext := before[strings.LastIndex(before, "/")+1:]
	if len(ext) == 0 {
		return "", fmt.Errorf("unable to detect image format")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("unable to decode image payload: %v", err)
	}

	root := viper.GetString("media.root")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("unable to create media root: %v", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(root, filename), raw, 0o644); err != nil {
		return "", fmt.Errorf("unable to write image file: %v", err)
	}

	return filename, nil
}

func DeleteAttachment(filename string) error {
	path := filepath.Join(viper.GetString("media.root"), filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrAttachmentMissing
		}
		return err
	}

	return nil
}
