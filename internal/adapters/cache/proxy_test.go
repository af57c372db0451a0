package cache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/asset.css":
			w.Header().Set("Content-Type", "text/css")
			_, _ = w.Write([]byte("body { margin: 0 }"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestRoundTripServesSecondGetFromCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	proxy := New(Options{BasePath: t.TempDir()})
	client := proxy.Client()

	for range 2 {
		resp, err := client.Get(server.URL + "/asset.css")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "body { margin: 0 }", string(body))
	}

	assert.Equal(t, int64(1), hits.Load())
}

func TestRoundTripNeverCachesNonOK(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	client := New(Options{BasePath: t.TempDir()}).Client()

	for range 2 {
		resp, err := client.Get(server.URL + "/missing.css")
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, int64(2), hits.Load())
}

func TestRoundTripIgnoresNonGet(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	client := New(Options{BasePath: t.TempDir()}).Client()

	for range 2 {
		resp, err := client.Post(server.URL+"/asset.css", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	assert.Equal(t, int64(2), hits.Load())
}

func TestInstallWarmsManifestForOfflineUse(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	assetURL := server.URL + "/asset.css"
	proxy := New(Options{BasePath: t.TempDir(), Manifest: []string{assetURL}})

	require.NoError(t, proxy.Install(context.Background()))
	server.Close()

	resp, err := proxy.Client().Get(assetURL)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body { margin: 0 }", string(body))
	assert.Equal(t, int64(1), hits.Load())
}

func TestInstallStrictAbortsOnFailedAsset(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	proxy := New(Options{
		BasePath:      t.TempDir(),
		Manifest:      []string{server.URL + "/missing.css", server.URL + "/asset.css"},
		StrictInstall: true,
	})

	err := proxy.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.css")
	assert.Equal(t, int64(1), hits.Load())
}

func TestInstallBestEffortSkipsFailedAsset(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	proxy := New(Options{
		BasePath: t.TempDir(),
		Manifest: []string{server.URL + "/missing.css", server.URL + "/asset.css"},
	})

	require.NoError(t, proxy.Install(context.Background()))
	assert.Len(t, proxy.Keys(context.Background()), 1)
}

func TestActivatePurgesStaleVersions(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := newAssetServer(t, &hits)
	assetURL := server.URL + "/asset.css"
	base := t.TempDir()

	old := New(Options{BasePath: base, Version: "activador-cache-v0", Manifest: []string{assetURL}})
	require.NoError(t, old.Install(context.Background()))

	current := New(Options{BasePath: base, Version: "activador-cache-v1", Manifest: []string{assetURL}})
	require.NoError(t, current.Install(context.Background()))

	purged, err := current.Activate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Len(t, current.Keys(context.Background()), 1)
	assert.Empty(t, old.Keys(context.Background()))
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network is unreachable")
}

func TestRoundTripOfflineFallback(t *testing.T) {
	t.Parallel()

	proxy := New(Options{
		BasePath:        t.TempDir(),
		Transport:       failingTransport{},
		OfflineFallback: true,
	})

	resp, err := proxy.Client().Get("http://example.invalid/asset.css")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "Sin conexión")
}

func TestRoundTripWithoutFallbackSurfacesError(t *testing.T) {
	t.Parallel()

	proxy := New(Options{BasePath: t.TempDir(), Transport: failingTransport{}})

	_, err := proxy.Client().Get("http://example.invalid/asset.css")
	assert.ErrorContains(t, err, "network is unreachable")
}
