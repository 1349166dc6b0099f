// Package deepl is the adapter for the DeepL REST API, the machine
// translation provider behind the Translator output port.
package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	freeHost = "https://api-free.deepl.com"
	proHost  = "https://api.deepl.com"
)

// Client is a minimal DeepL v2 API client.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient builds a client for the given key. When baseURL is empty the
// host is picked from the key itself: free-plan keys end in ":fx".
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		if strings.HasSuffix(apiKey, ":fx") {
			baseURL = freeHost
		} else {
			baseURL = proHost
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// TranslateTexts translates a batch of plain-text strings. The result is
// index-aligned with texts.
func (c *Client) TranslateTexts(ctx context.Context, texts []string, sourceLang, targetLang, formality string) ([]string, error) {
	form := url.Values{}
	for _, t := range texts {
		form.Add("text", t)
	}
	form.Set("source_lang", strings.ToUpper(sourceLang))
	form.Set("target_lang", strings.ToUpper(targetLang))
	form.Set("preserve_formatting", "1")
	if formality != "" && formality != "default" {
		form.Set("formality", formality)
	}

	body, err := c.post(ctx, "/v2/translate", form)
	if err != nil {
		return nil, err
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("deepl: réponse illisible: %w", err)
	}
	out := make([]string, len(parsed.Translations))
	for i, tr := range parsed.Translations {
		out[i] = tr.Text
	}
	return out, nil
}

type usageResponse struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// AccountUsage returns the character consumption and limit of the account.
func (c *Client) AccountUsage(ctx context.Context) (count, limit int64, err error) {
	body, err := c.get(ctx, "/v2/usage")
	if err != nil {
		return 0, 0, err
	}
	var parsed usageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, 0, fmt.Errorf("deepl: réponse illisible: %w", err)
	}
	return parsed.CharacterCount, parsed.CharacterLimit, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	})
}

// do runs the request, retrying once after a short pause when the API is
// rate-limited or momentarily down (429 / 5xx).
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := build()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

		resp, err := c.httpc.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("deepl: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			continue
		default:
			return nil, fmt.Errorf("deepl: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}
	return nil, lastErr
}
