// Package roster loads a gradebook CSV export and turns it into a clean,
// de-duplicated student roster.
package roster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/classware/gradeflow/internal/common"
	"github.com/schollz/progressbar/v3"
)

// Fetch retrieves the raw gradebook text from a local path or an http(s)
// URL. A failed fetch is terminal; callers surface it once and do not retry.
func Fetch(ctx context.Context, source string) ([]byte, error) {
	return fetch(ctx, source, false)
}

// FetchWithProgress behaves like Fetch but renders a byte progress bar for
// remote downloads, for interactive command use.
func FetchWithProgress(ctx context.Context, source string) ([]byte, error) {
	return fetch(ctx, source, true)
}

func fetch(ctx context.Context, source string, progress bool) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(ctx, source, progress)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}
	return data, nil
}

func fetchURL(ctx context.Context, url string, progress bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrFetch, resp.StatusCode)
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading gradebook")
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}
	return buf.Bytes(), nil
}
