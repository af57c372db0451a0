// Package cache is the offline asset proxy: a versioned, disk-backed
// cache of full HTTP responses with a cache-first fetch policy.
package cache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/md5"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

const DefaultVersion = "activador-cache-v1"

//go:embed offline.html
var offlinePage []byte

type Options struct {
	// Version tags every key; Activate purges keys carrying another tag.
	Version  string
	BasePath string
	// Manifest lists the asset URLs Install warms the cache with.
	Manifest []string
	// StrictInstall aborts Install on the first manifest fetch failure
	// instead of logging and continuing.
	StrictInstall bool
	// OfflineFallback serves an embedded notice page when a cache miss
	// meets a network failure.
	OfflineFallback bool
	Transport       http.RoundTripper
	Logger          *zap.Logger
}

type Proxy struct {
	d         *diskv.Diskv
	version   string
	manifest  []string
	strict    bool
	offline   bool
	transport http.RoundTripper
	log       *zap.Logger
}

var _ http.RoundTripper = (*Proxy)(nil)

func New(opts Options) *Proxy {
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Proxy{
		d: diskv.New(diskv.Options{
			BasePath:     opts.BasePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		version:   version,
		manifest:  opts.Manifest,
		strict:    opts.StrictInstall,
		offline:   opts.OfflineFallback,
		transport: transport,
		log:       log,
	}
}

// Client returns an http.Client whose fetches go through the proxy.
func (p *Proxy) Client() *http.Client {
	return &http.Client{Transport: p}
}

// Install warms the cache with every manifest asset. In the default
// best-effort mode a failed fetch is logged and skipped.
func (p *Proxy) Install(ctx context.Context) error {
	for _, rawURL := range p.manifest {
		if err := p.warm(ctx, rawURL); err != nil {
			if p.strict {
				return fmt.Errorf("install cache asset %s: %w", rawURL, err)
			}
			p.log.Warn("failed to cache manifest asset", zap.String("url", rawURL), zap.Error(err))
		}
	}

	return nil
}

func (p *Proxy) warm(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := p.transport.RoundTrip(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return p.store(p.key(rawURL), resp)
}

// Activate deletes every cached entry tagged with a different version,
// purging stale caches after an upgrade. It returns the purge count.
func (p *Proxy) Activate(ctx context.Context) (int, error) {
	purged := 0
	prefix := p.version + "-"

	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			p.log.Warn("failed to purge stale cache entry", zap.String("key", key), zap.Error(err))
			continue
		}
		purged++
	}

	return purged, ctx.Err()
}

// Keys lists the cached entries under the current version.
func (p *Proxy) Keys(ctx context.Context) []string {
	var keys []string
	prefix := p.version + "-"

	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys
}

// RoundTrip intercepts GET requests with a cache-first policy: a hit is
// returned unconditionally, a miss goes to network and is stored only on
// a status-200 response. Everything else passes through untouched.
func (p *Proxy) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return p.transport.RoundTrip(req)
	}

	key := p.key(req.URL.String())
	if data, err := p.d.Read(key); err == nil {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), req)
		if err == nil {
			return resp, nil
		}
		p.log.Warn("evicting unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = p.d.Erase(key)
	}

	resp, err := p.transport.RoundTrip(req)
	if err != nil {
		if p.offline {
			p.log.Info("serving offline fallback", zap.String("url", req.URL.String()), zap.Error(err))
			return offlineResponse(req), nil
		}
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		if err := p.store(key, resp); err != nil {
			p.log.Warn("failed to cache response", zap.String("url", req.URL.String()), zap.Error(err))
		}
	}

	return resp, nil
}

func (p *Proxy) key(rawURL string) string {
	return fmt.Sprintf("%s-%x", p.version, md5.Sum([]byte(rawURL)))
}

// store serializes the full response. DumpResponse drains and restores
// the body, so the caller can still read it afterwards.
func (p *Proxy) store(key string, resp *http.Response) error {
	data, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return fmt.Errorf("serialize response: %w", err)
	}

	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}

	return nil
}

func offlineResponse(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)),
		StatusCode:    http.StatusServiceUnavailable,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:          io.NopCloser(bytes.NewReader(offlinePage)),
		ContentLength: int64(len(offlinePage)),
		Request:       req,
	}
}
