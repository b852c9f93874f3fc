// Package nytimes fetches the "most popular" article list from the New York
// Times API and maps it to the domain model.
package nytimes

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tonyawino/News-App/internal/domain"
)

// The list is fixed to articles viewed in the last 7 days.
const (
	popularPath   = "/svc/mostpopular/v2/viewed/7.json"
	defaultPeriod = 7
)

// Config holds NYT client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// RequestsPerMinute caps outgoing calls; the API rate limits hard.
	RequestsPerMinute int
}

// Client calls the NYT most popular endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a new NYT client.
func New(cfg Config, logger *slog.Logger) *Client {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:  logger.With("source", "nytimes"),
	}
}

// FetchPopular performs exactly one fetch of the popular news list and maps
// the result to domain items. Failures are classified into the domain error
// taxonomy so the caller can surface them without inspecting HTTP details.
func (c *Client) FetchPopular(ctx context.Context) ([]domain.News, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s%s?api-key=%s", c.baseURL, popularPath, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsApp/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTLSHandshakeError(err) {
			return nil, domain.ErrNoConnectivity
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(body) > 0 {
			return nil, &domain.RemoteError{Message: strings.TrimSpace(string(body))}
		}
		return nil, &domain.RemoteError{Message: fmt.Sprintf("unexpected status: %d", resp.StatusCode)}
	}

	var apiResp *APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.RemoteError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	if apiResp == nil {
		return nil, &domain.RemoteError{}
	}

	return c.transform(apiResp.Results), nil
}

func (c *Client) transform(results []RawNews) []domain.News {
	items := make([]domain.News, 0, len(results))
	for _, raw := range results {
		item, err := ToDomain(raw)
		if err != nil {
			c.logger.Warn("failed to parse published date",
				"id", raw.ID,
				"published_date", raw.PublishedDate,
			)
			continue
		}
		items = append(items, item)
	}
	return items
}

// isTLSHandshakeError reports whether the transport error came from the TLS
// handshake. Those are treated like having no connectivity at all, which is
// what a captive portal or intercepting proxy looks like from here.
func isTLSHandshakeError(err error) bool {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &authErr) {
		return true
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &invalidErr)
}
