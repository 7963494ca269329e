package chambers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chambers.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0600))

	rc, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenRemoteDecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=ISO-8859-1")
		// "SOIRÉE" with É as a single Latin-1 byte
		_, _ = w.Write([]byte("SOIR\xc9E, swor'[=a], _n._ an evening party.\r\n"))
	}))
	defer server.Close()

	store := dictionary.NewStore()
	stats, err := LoadSource(context.Background(), server.URL, store)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Loaded)
	w, _ := store.WordAt(0)
	assert.Equal(t, "SOIRÉE", w)
}

func TestOpenRemoteBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Open(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestLoadSourceFileWithRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chambers.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0600))

	store := dictionary.NewStore()
	stats, err := LoadSource(context.Background(), path, store, WithRange("SAKE", "SAKE"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 1, store.Size())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("http://example.com/a.txt"))
	assert.True(t, isRemote("HTTPS://example.com/a.txt"))
	assert.False(t, isRemote("/tmp/a.txt"))
	assert.False(t, isRemote("chambers.txt"))
}
