package jobinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrLinkedIn is returned for LinkedIn URLs, which block automated fetching.
// Callers should ask the user to paste the posting text instead.
var ErrLinkedIn = errors.New("linkedin blocks automated fetching; paste the job description text or use a .txt file")

// Resolver normalizes job input (URL, .txt/.pdf/.docx path, or raw text) to plain text.
type Resolver struct {
	httpClient *http.Client
}

// NewResolver constructs a resolver with a default HTTP client.
func NewResolver() *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Resolve turns the given job input into the posting's plain text.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return r.fetchFromURL(ctx, trimmed)
	case strings.HasSuffix(trimmed, ".txt") && isFile(trimmed):
		data, err := os.ReadFile(trimmed)
		if err != nil {
			return "", fmt.Errorf("read job file %s: %w", trimmed, err)
		}
		return strings.TrimSpace(string(data)), nil
	case strings.HasSuffix(trimmed, ".pdf") && isFile(trimmed):
		data, err := os.ReadFile(trimmed)
		if err != nil {
			return "", fmt.Errorf("read job file %s: %w", trimmed, err)
		}
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf %s: %w", trimmed, err)
		}
		return strings.TrimSpace(text), nil
	case strings.HasSuffix(trimmed, ".docx") && isFile(trimmed):
		data, err := os.ReadFile(trimmed)
		if err != nil {
			return "", fmt.Errorf("read job file %s: %w", trimmed, err)
		}
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("extract docx %s: %w", trimmed, err)
		}
		return strings.TrimSpace(text), nil
	default:
		return trimmed, nil
	}
}

func (r *Resolver) fetchFromURL(ctx context.Context, url string) (string, error) {
	if strings.Contains(url, "linkedin.com") {
		return "", ErrLinkedIn
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; resume-automation)")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch job url %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("fetch job url %s: read: %w", url, err)
	}

	text := cleanHTML(string(body))
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("fetch job url %s: no text content", url)
	}
	return text, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
