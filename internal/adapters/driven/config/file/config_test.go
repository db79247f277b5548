package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsdex/internal/fingerprint"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Feeds)
	assert.Equal(t, 100, cfg.Ingest.RecentWindow)
	assert.Equal(t, 4, cfg.Ingest.FetchWorkers)
	assert.Equal(t, fingerprint.DefaultShingleSize, cfg.Fingerprint.ShingleSize)
	assert.Equal(t, fingerprint.DefaultSignatureSize, cfg.Fingerprint.SignatureSize)
	assert.Equal(t, fingerprint.DefaultPunctuation, cfg.Fingerprint.Punctuation)
	assert.InDelta(t, 0.8, cfg.Fingerprint.Threshold, 1e-9)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
feeds = ["https://news.example.com/rss"]

[fingerprint]
shingle_size = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://news.example.com/rss"}, cfg.Feeds)
	assert.Equal(t, 5, cfg.Fingerprint.ShingleSize)
	// Unset values fall back to defaults.
	assert.Equal(t, fingerprint.DefaultSignatureSize, cfg.Fingerprint.SignatureSize)
	assert.Equal(t, 100, cfg.Ingest.RecentWindow)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("feeds = [not toml"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Feeds = []string{"https://news.example.com/rss", "https://other.example.com/atom"}
	cfg.DataDir = "/tmp/newsdex-test"
	cfg.Fingerprint.Threshold = 0.9

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Feeds, loaded.Feeds)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.InDelta(t, 0.9, loaded.Fingerprint.Threshold, 1e-9)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, ".newsdex")
	assert.Equal(t, "config.toml", filepath.Base(path))
}
