package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/internal/observability/metrics"
)

// maxErrorBodySize limits how much of a failed response ends up in the error
const maxErrorBodySize = 512

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Timeout time.Duration
	Path    string
	// TemplatePath is the path used as metrics label, it must not contain ids
	TemplatePath string
	Headers      map[string]string
}

// HttpError is returned for non 2xx responses.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed when sent again.
func (e *HttpError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// SendRequest encodes input as json body (when not nil), sends it and decodes the json response into R.
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := client.GetBaseURL() + opts.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	observe := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, opts.TemplatePath)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		observe(0)
		return nil, fmt.Errorf("failed to send request to %s: %w", opts.TemplatePath, err)
	}
	defer resp.Body.Close()
	observe(resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		log.Ctx(ctx).Debug().
			Int("status", resp.StatusCode).
			Str("path", opts.TemplatePath).
			Msg("request failed")
		return nil, &HttpError{
			StatusCode: resp.StatusCode,
			Body:       string(errBody),
		}
	}

	var result R
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", opts.TemplatePath, err)
	}

	return &result, nil
}
