package pano

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	// Register decoders for the common panorama face formats.
	_ "image/jpeg"
	_ "image/png"
)

// ImageLoader resolves a face URL to decoded pixel data. Loads run on
// their own goroutines and must honor the context: a destroyed viewer
// cancels all in-flight loads.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// FileLoader loads face images from the local filesystem. An optional
// Root is prefixed to every path.
type FileLoader struct {
	Root string
}

// Load opens and decodes the image at path.
func (l FileLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Root != "" {
		path = l.Root + "/" + path
	}
	f, err := os.Open(path) //nolint:gosec // path comes from viewer config
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// HTTPLoader fetches face images over HTTP(S).
type HTTPLoader struct {
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
}

// Load fetches and decodes the image at url.
func (l HTTPLoader) Load(ctx context.Context, url string) (image.Image, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// schemeLoader routes http(s) URLs to an HTTPLoader and everything else
// to a FileLoader. It is the default loader used by New.
type schemeLoader struct {
	http HTTPLoader
	file FileLoader
}

// Load dispatches on the URL scheme.
func (l schemeLoader) Load(ctx context.Context, url string) (image.Image, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return l.http.Load(ctx, url)
	}
	return l.file.Load(ctx, url)
}

// DefaultLoader returns the loader used when none is injected: HTTP for
// http(s) URLs, filesystem for everything else.
func DefaultLoader() ImageLoader {
	return schemeLoader{}
}
