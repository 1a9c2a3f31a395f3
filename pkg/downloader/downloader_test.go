package downloader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "the quick brown fox jumps over the lazy dog"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/file.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	mux.HandleFunc("/a/same.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a"))
	})
	mux.HandleFunc("/b/same.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("b"))
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new.bin", http.StatusFound)
	})
	mux.HandleFunc("/new.bin", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("redirected"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusInternalServerError)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("index"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func mustParse(t *testing.T, raw string) Downloadable {
	t.Helper()
	d, err := ParseDownloadable(raw)
	require.NoError(t, err)
	return d
}

func TestDownload(t *testing.T) {
	server := newTestServer(t)
	root := filepath.Join(t.TempDir(), "downloads")

	d := NewDownloader(mustParse(t, server.URL+"/file.zip"), &Config{RootPath: root})
	require.NoError(t, d.Download(context.Background()))

	assert.Equal(t, "file.zip", d.GetFilename())
	assert.Equal(t, filepath.Join(root, "file.zip"), d.GetPath())
	assert.Equal(t, int64(len(payload)), d.GetFileSize())
	assert.Equal(t, server.URL+"/file.zip", d.GetOriginUrl())

	b, err := os.ReadFile(d.GetPath())
	require.NoError(t, err)
	assert.Equal(t, payload, string(b))
}

func TestDownload_Overwrites(t *testing.T) {
	server := newTestServer(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.zip"), []byte(strings.Repeat("x", 1000)), 0o644))

	d := NewDownloader(mustParse(t, server.URL+"/file.zip"), &Config{RootPath: root})
	require.NoError(t, d.Download(context.Background()))

	b, err := os.ReadFile(filepath.Join(root, "file.zip"))
	require.NoError(t, err)
	assert.Equal(t, payload, string(b))
}

func TestDownload_UsesRedirectedName(t *testing.T) {
	server := newTestServer(t)
	root := t.TempDir()

	d := NewDownloader(mustParse(t, server.URL+"/old"), &Config{RootPath: root})
	require.NoError(t, d.Download(context.Background()))

	assert.Equal(t, "new.bin", d.GetFilename())
	assert.Equal(t, server.URL+"/new.bin", d.GetOriginUrl())
	b, err := os.ReadFile(filepath.Join(root, "new.bin"))
	require.NoError(t, err)
	assert.Equal(t, "redirected", string(b))
}

func TestDownload_FallbackName(t *testing.T) {
	server := newTestServer(t)
	root := t.TempDir()

	d := NewDownloader(mustParse(t, server.URL+"/"), &Config{RootPath: root})
	require.NoError(t, d.Download(context.Background()))

	assert.True(t, strings.HasPrefix(d.GetFilename(), "download_"), d.GetFilename())
	b, err := os.ReadFile(d.GetPath())
	require.NoError(t, err)
	assert.Equal(t, "index", string(b))
}

func TestDownload_HTTPErrors(t *testing.T) {
	server := newTestServer(t)

	for _, p := range []string{"/missing", "/broken"} {
		root := t.TempDir()
		d := NewDownloader(mustParse(t, server.URL+p), &Config{RootPath: root})
		err := d.Download(context.Background())
		require.Error(t, err, p)
		assert.Contains(t, err.Error(), "Failed to fetch "+server.URL+p)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), p)
		assert.GreaterOrEqual(t, statusErr.Code, 400)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries, "no file is written for %s", p)
		assert.Equal(t, "", d.GetPath())
	}
}

func TestDownload_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	target := mustParse(t, server.URL+"/file.zip")
	server.Close()

	d := NewDownloader(target, &Config{RootPath: t.TempDir()})
	err := d.Download(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch "+target.String())
}

func TestDownload_RootPathIsAFile(t *testing.T) {
	server := newTestServer(t)
	root := filepath.Join(t.TempDir(), "downloads")
	require.NoError(t, os.WriteFile(root, nil, 0o644))

	d := NewDownloader(mustParse(t, server.URL+"/file.zip"), &Config{RootPath: root})
	err := d.Download(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to create directory")
}

func TestDownload_HookSeesEveryChunk(t *testing.T) {
	server := newTestServer(t)
	root := t.TempDir()

	calls := 0
	var last int64
	d := NewDownloader(mustParse(t, server.URL+"/file.zip"), &Config{
		RootPath:       root,
		CopyBufferSize: 4,
	})
	d.SetHook(func(resp *http.Response, bar *progressbar.ProgressBar, err error) error {
		require.NoError(t, err)
		require.NotNil(t, bar)
		calls++
		assert.Greater(t, d.GetFileSize(), last, "chunks are written in order")
		last = d.GetFileSize()
		return nil
	})
	require.NoError(t, d.Download(context.Background()))

	assert.GreaterOrEqual(t, calls, len(payload)/4)
	assert.Equal(t, int64(len(payload)), last)
}

func TestDownload_HookAborts(t *testing.T) {
	server := newTestServer(t)
	stop := errors.New("stop")

	d := NewDownloader(mustParse(t, server.URL+"/file.zip"), &Config{
		RootPath:       t.TempDir(),
		CopyBufferSize: 4,
		Hook: func(resp *http.Response, bar *progressbar.ProgressBar, err error) error {
			return stop
		},
	})
	err := d.Download(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, stop))
	assert.Contains(t, err.Error(), "aborted")
}

func TestDownload_ZeroTarget(t *testing.T) {
	d := NewDownloader(Downloadable{}, nil)
	require.Error(t, d.Download(context.Background()))
}

func TestDownload_ReadErrorIgnoresHookResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.Write([]byte("short body"))
	}))
	t.Cleanup(server.Close)

	hookErr := errors.New("from hook")
	var seen error
	d := NewDownloader(mustParse(t, server.URL+"/short.bin"), &Config{
		RootPath: t.TempDir(),
		Hook: func(resp *http.Response, bar *progressbar.ProgressBar, err error) error {
			if err != nil {
				seen = err
				return hookErr
			}
			return nil
		},
	})
	err := d.Download(context.Background())
	require.Error(t, err)
	require.Error(t, seen, "hook is told about the failure")
	assert.True(t, errors.Is(err, seen))
	assert.False(t, errors.Is(err, hookErr))
	assert.Contains(t, err.Error(), "Failed to read body of")
}
