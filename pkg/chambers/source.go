package chambers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/entrhq/lexicon/pkg/dictionary"
	"golang.org/x/net/html/charset"
)

// defaultHTTPTimeout bounds a whole download of the dictionary text
const defaultHTTPTimeout = 2 * time.Minute

// HTTPClient is the client used for http and https sources.
var HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}

// Open returns a reader for source, which is either an http(s) URL or a
// local file path. Remote text is decoded to UTF-8 according to the
// charset in its Content-Type.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if isRemote(source) {
		return openRemote(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	return f, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func openRemote(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", url, resp.Status)
	}

	decoded, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}

	return &decodedBody{Reader: decoded, body: resp.Body}, nil
}

// decodedBody reads the charset-decoded stream and closes the raw body.
type decodedBody struct {
	io.Reader
	body io.Closer
}

func (d *decodedBody) Close() error {
	return d.body.Close()
}

// LoadSource opens source and loads it into store with a Loader built from opts.
func LoadSource(ctx context.Context, source string, store *dictionary.Store, opts ...LoaderOption) (Stats, error) {
	rc, err := Open(ctx, source)
	if err != nil {
		return Stats{}, err
	}
	defer rc.Close()

	return NewLoader(opts...).Load(ctx, rc, store)
}
