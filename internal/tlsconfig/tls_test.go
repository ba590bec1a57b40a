package tlsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPathsMeanPlaintext(t *testing.T) {
	cfg, err := ServerTLSConfig("", "")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = ClientTLSConfig("", "localhost")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	opt, err := ServerOption("", "")
	require.NoError(t, err)
	assert.Nil(t, opt)

	dial, err := DialOption("", "")
	require.NoError(t, err)
	assert.NotNil(t, dial)
}

func TestMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := ServerTLSConfig(filepath.Join(dir, "cert.pem"), filepath.Join(dir, "key.pem"))
	assert.Error(t, err)

	_, err = ClientTLSConfig(filepath.Join(dir, "ca.pem"), "localhost")
	assert.Error(t, err)
}

func TestCAFileWithoutCertificates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

	_, err := ClientTLSConfig(path, "localhost")
	assert.ErrorContains(t, err, "no certificates found")
}
