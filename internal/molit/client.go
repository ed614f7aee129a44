package molit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// Observer receives the outcome of each upstream call, keyed by the
// dataset label. Used to feed call counters and duration histograms.
type Observer func(label string, success bool, duration time.Duration)

// Client performs signed GET calls against the data.go.kr gateway.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	observer   Observer
}

// SetObserver installs the call observer. Must be called before the
// client is shared across goroutines.
func (c *Client) SetObserver(obs Observer) { c.observer = obs }

func (c *Client) observe(label string, success bool, duration time.Duration) {
	if c.observer != nil {
		c.observer(label, success, duration)
	}
}

// NewClient builds a gateway client. A zero timeout falls back to a
// conservative default suited to the slower MOLIT endpoints.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BuildURL assembles the signed request URL. The service key is issued
// already percent-encoded, so it is appended verbatim ahead of the encoded
// parameters; routing it through url.Values would double-encode it and the
// gateway would reject the signature. Parameters are emitted in sorted key
// order.
func BuildURL(endpoint, serviceKey string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := url.Values{}
	for _, k := range keys {
		vals.Set(k, params[k])
	}
	u := endpoint + "?serviceKey=" + serviceKey
	if encoded := vals.Encode(); encoded != "" {
		u += "&" + encoded
	}
	return u
}

// Get fetches the signed URL and returns the raw response body. Any
// transport failure, including timeout or a non-2xx status, surfaces as a
// single error; the body of a failed response is never inspected.
func (c *Client) Get(ctx context.Context, endpoint, serviceKey string, params map[string]string) ([]byte, error) {
	target := BuildURL(endpoint, serviceKey, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "upstream request failed",
			slog.String("endpoint", endpoint),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "upstream returned non-2xx status",
			slog.String("endpoint", endpoint),
			slog.Int("status_code", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.DebugContext(ctx, "upstream response received",
		slog.String("endpoint", endpoint),
		slog.Int("status_code", resp.StatusCode),
		slog.Int("body_bytes", len(body)),
		slog.Duration("duration", time.Since(start)),
	)
	return body, nil
}
