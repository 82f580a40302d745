package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wordsaver/internal/domain"
)

// DefaultBaseURL is the public Google Translate endpoint used by browsers
const DefaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Translator translates a single word
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Client queries the Google Translate "gtx" endpoint.
// Every call is a fresh request: no retry, no timeout, no cache.
type Client struct {
	baseURL    string
	source     string
	target     string
	httpClient *http.Client
}

// NewClient creates a translation client for a fixed language pair
func NewClient(baseURL, source, target string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		source:     source,
		target:     target,
		httpClient: &http.Client{},
	}
}

// Translate returns the first translated segment for word
func (c *Client) Translate(ctx context.Context, word string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", c.source)
	params.Set("tl", c.target)
	params.Set("dt", "t")
	params.Set("q", word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslation, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP status %d", domain.ErrTranslation, resp.StatusCode)
	}

	var data []any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrTranslation, err)
	}

	translation, ok := firstSegment(data)
	if !ok {
		return "", fmt.Errorf("%w: unexpected response shape", domain.ErrTranslation)
	}
	return translation, nil
}

// firstSegment extracts data[0][0][0]
func firstSegment(data []any) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	sentences, ok := data[0].([]any)
	if !ok || len(sentences) == 0 {
		return "", false
	}
	segment, ok := sentences[0].([]any)
	if !ok || len(segment) == 0 {
		return "", false
	}
	text, ok := segment[0].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
