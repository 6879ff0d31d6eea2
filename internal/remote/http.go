package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/avolkovs/staffdir/internal/logging"
	"github.com/avolkovs/staffdir/internal/models"
)

const (
	loadRetries      = 3
	loadBackoffStart = 200 * time.Millisecond
)

// HTTPClient talks to the remote resource with a retrieval GET and a
// full-replace PUT.
type HTTPClient struct {
	url      string
	hc       *http.Client
	exporter *Exporter
	log      logging.Logger
}

func NewHTTPClient(url string, timeout time.Duration, exporter *Exporter, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		url:      url,
		hc:       &http.Client{Timeout: timeout},
		exporter: exporter,
		log:      log,
	}
}

// LoadAll fetches and decodes the entire collection. Network errors and 5xx
// responses are retried with fibonacci backoff; other failures (bad status,
// undecodable payload) are permanent. All failures come back wrapped in
// ErrLoad.
func (c *HTTPClient) LoadAll(ctx context.Context) ([]models.Employee, error) {
	var list []models.Employee

	backoff := retry.WithMaxRetries(loadRetries, retry.NewFibonacci(loadBackoffStart))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		l, err := c.fetch(ctx)
		if err != nil {
			return err
		}
		list = l
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return list, nil
}

func (c *HTTPClient) fetch(ctx context.Context) ([]models.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return nil, retry.RetryableError(fmt.Errorf("unexpected status %s", res.Status))
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	var list []models.Employee
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return list, nil
}

// ReplaceAll writes the whole collection to the remote resource. When the
// write fails it exports the same payload to a local file instead and acks
// with Durable=false, so the caller's workflow can continue. An error is
// returned only when the export fallback fails too.
func (c *HTTPClient) ReplaceAll(ctx context.Context, list []models.Employee) (Ack, error) {
	body, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return Ack{}, fmt.Errorf("%w: encode payload: %w", ErrReplace, err)
	}

	if err := c.put(ctx, body); err != nil {
		c.log.Warn(ctx, "replace failed, exporting locally", "err", err)
		path, exportErr := c.exporter.Write(body)
		if exportErr != nil {
			return Ack{}, fmt.Errorf("%w: %w (export also failed: %w)", ErrReplace, err, exportErr)
		}
		return Ack{Durable: false, ExportPath: path}, nil
	}
	return Ack{Durable: true}, nil
}

func (c *HTTPClient) put(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %s", res.Status)
	}
	return nil
}
