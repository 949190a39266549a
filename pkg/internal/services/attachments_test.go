package services_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/server/pkg/internal/services"
)

func TestSaveAttachmentFromBase64(t *testing.T) {
	raw := []byte("not really a png")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	filename, err := services.SaveAttachmentFromBase64(encoded)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".png"))

	stored, err := os.ReadFile(filepath.Join(viper.GetString("media.root"), filename))
	require.NoError(t, err)
	assert.Equal(t, raw, stored)

	require.NoError(t, services.DeleteAttachment(filename))
	assert.ErrorIs(t, services.DeleteAttachment(filename), services.ErrAttachmentMissing)
}

func TestSaveAttachmentMalformedPayload(t *testing.T) {
	_, err := services.SaveAttachmentFromBase64("just some text")
	assert.Error(t, err)

	_, err = services.SaveAttachmentFromBase64("data:image/png;base64,???")
	assert.Error(t, err)
}
