package share

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRText(t *testing.T) {
	text, err := QRText("invite.html?data=abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestQRPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invite.png")
	require.NoError(t, QRPNG("invite.html?data=abc123", path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}
