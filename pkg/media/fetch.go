package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/clueboard/pkg/httputil"
)

// maxAttachmentSize caps how much media is inlined into a single clue.
// Data URIs live inside the board snapshot, so runaway downloads would
// bloat every subsequent export.
const maxAttachmentSize = 32 << 20 // 32 MiB

// cachedFetch is the cached form of a URL download.
type cachedFetch struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Fetcher turns media sources (local files, http/https URLs) into data-URI
// content strings suitable for clue content.
//
// Fetching is the one asynchronous boundary around the board core: callers
// run DataURI off the editing path and hand the completed string to
// AddClue/UpdateClue when it arrives. Nothing orders an in-flight fetch
// against other board actions, and losing a result because the editing
// context went away first is acceptable.
type Fetcher struct {
	client     *http.Client
	cache      *httputil.Cache
	retryDelay time.Duration
}

// NewFetcher creates a Fetcher. cache may be nil to disable caching of URL
// downloads; when set, it is namespaced under "media:".
func NewFetcher(cache *httputil.Cache) *Fetcher {
	if cache != nil {
		cache = cache.Namespace("media:")
	}
	return &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		cache:      cache,
		retryDelay: time.Second,
	}
}

// DataURI resolves source into a data-URI content string.
//
//   - data: sources are returned unchanged
//   - http/https sources are downloaded (with retry and caching), typed by
//     the response Content-Type
//   - anything else is read as a local file path, typed by extension
func (f *Fetcher) DataURI(ctx context.Context, source string) (string, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		return source, nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return f.fromURL(ctx, source)
	default:
		return fromFile(source)
	}
}

func fromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxAttachmentSize {
		return "", fmt.Errorf("%s: %d bytes exceeds attachment limit", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return encodeDataURI(mimeType, data), nil
}

func (f *Fetcher) fromURL(ctx context.Context, url string) (string, error) {
	if f.cache != nil {
		var entry cachedFetch
		if ok, _ := f.cache.Get(ctx, url, &entry); ok {
			return encodeDataURI(entry.ContentType, entry.Body), nil
		}
	}

	var entry cachedFetch
	err := httputil.Retry(ctx, 3, f.retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
			return &httputil.RetryableError{Err: fmt.Errorf("GET %s: %s", url, resp.Status)}
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("GET %s: %s", url, resp.Status)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentSize+1))
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		if len(body) > maxAttachmentSize {
			return fmt.Errorf("%s: response exceeds attachment limit", url)
		}

		contentType := resp.Header.Get("Content-Type")
		if i := strings.IndexByte(contentType, ';'); i >= 0 {
			contentType = contentType[:i]
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		entry = cachedFetch{ContentType: contentType, Body: body}
		return nil
	})
	if err != nil {
		return "", err
	}

	if f.cache != nil {
		// Best effort: a failed cache write never fails the attachment.
		_ = f.cache.Set(ctx, url, entry)
	}
	return encodeDataURI(entry.ContentType, entry.Body), nil
}

func encodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
