// Package fetch resolves document retrieval addresses to raw bytes.
//
// A retrieval address is either absolute (http://, https://, gs://) or a path
// relative to the configured content origin. Every failure mode collapses to
// ErrUnavailable: the assembler only ever needs to know "available" or not,
// and must never branch on error message text. The specific cause is logged
// for diagnostics.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
)

// ErrUnavailable is the single failure discriminant surfaced to callers.
// Wrap checks go through errors.Is.
var ErrUnavailable = errors.New("document unavailable")

// Config holds the fixed retrieval settings injected at construction.
type Config struct {
	// ContentOrigin is the base URL that relative addresses resolve against.
	ContentOrigin string
	// UserAgent identifies this client on outbound requests.
	UserAgent string
}

// Fetcher retrieves source documents. One network retrieval per call, no
// retries, no caching; context cancellation abandons in-flight work.
type Fetcher struct {
	httpClient    *http.Client
	storageClient *storage.Client
	config        Config
}

// New creates a Fetcher. httpClient may be nil to use http.DefaultClient.
// storageClient may be nil, in which case gs:// addresses are unavailable.
func New(config Config, httpClient *http.Client, storageClient *storage.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if config.UserAgent == "" {
		config.UserAgent = "submittalflow-packet-assembler/1.0"
	}
	return &Fetcher{
		httpClient:    httpClient,
		storageClient: storageClient,
		config:        config,
	}
}

// Fetch returns the raw bytes of the referenced document, or an error
// satisfying errors.Is(err, ErrUnavailable). It never returns any other
// error kind.
func (f *Fetcher) Fetch(ctx context.Context, address string) ([]byte, error) {
	logCtx := slog.With("address", address)

	if bucket, object, ok := splitGCSAddress(address); ok {
		return f.fetchGCS(ctx, logCtx, bucket, object)
	}

	target := f.Resolve(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logCtx.Warn("Could not build document request.", "error", err)
		return nil, fmt.Errorf("%w: bad address", ErrUnavailable)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logCtx.Warn("Document fetch failed.", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logCtx.Warn("Document fetch returned non-success status.", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logCtx.Warn("Failed reading document body.", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

// Resolve maps an address to the URL that will actually be requested.
// Absolute http(s) addresses pass through verbatim. Relative paths are
// percent-decoded of any leading separator, then each segment is
// percent-encoded individually (preserving the / separators) and appended to
// the content origin.
func (f *Fetcher) Resolve(address string) string {
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}

	p := address
	if strings.HasPrefix(p, "%2F") || strings.HasPrefix(p, "%2f") {
		p = "/" + p[3:]
	}
	p = strings.TrimPrefix(p, "/")

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimSuffix(f.config.ContentOrigin, "/") + "/" + strings.Join(segments, "/")
}

func (f *Fetcher) fetchGCS(ctx context.Context, logCtx *slog.Logger, bucket, object string) ([]byte, error) {
	if f.storageClient == nil {
		logCtx.Warn("gs:// address given but no storage client configured.")
		return nil, fmt.Errorf("%w: no storage client", ErrUnavailable)
	}
	reader, err := f.storageClient.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		logCtx.Warn("Failed to open GCS object reader.", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		logCtx.Warn("Failed reading GCS object.", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

func splitGCSAddress(address string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(address, "gs://")
	if !found {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}
