package basketapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/platform/resilience"
)

const maxBodyBytes = 8 << 20

var errUpstreamTransient = crerr.New("upstream transient failure")

// StatusError is a non-2xx answer from an origin.
type StatusError struct {
	Origin OriginID
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("origin %s status=%d body=%s", e.Origin, e.Status, e.Body)
}

// origin is one regional backend with its own limiter and breaker.
type origin struct {
	id      OriginID
	baseURL string
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
}

// fetcher issues authenticated GETs. It never retries; fallback is the
// router's job.
type fetcher struct {
	httpClient     *http.Client
	apiKey         string
	circuitEnabled bool
	logger         *logging.Logger
}

func (f *fetcher) get(ctx context.Context, o *origin, path string, query url.Values, timeout time.Duration) ([]byte, error) {
	if !f.circuitEnabled {
		return f.execute(ctx, o, path, query, timeout)
	}

	var raw []byte
	err := o.breaker.Execute(func() error {
		var err error
		raw, err = f.execute(ctx, o, path, query, timeout)
		return err
	}, isCircuitFailure)
	return raw, err
}

func (f *fetcher) execute(ctx context.Context, o *origin, path string, query url.Values, timeout time.Duration) ([]byte, error) {
	fullURL := o.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return f.getURL(ctx, o.id, o.limiter, fullURL, timeout)
}

func (f *fetcher) getURL(ctx context.Context, id OriginID, limiter *rate.Limiter, fullURL string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "origin %s rate limit wait", id), errUpstreamTransient)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-API-Key", f.apiKey)
	}

	started := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.DebugContext(ctx, "upstream request failed", "origin", id, "url", fullURL, "duration", time.Since(started), "error", err)
		return nil, crerr.Mark(crerr.Wrapf(err, "origin %s send request", id), errUpstreamTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	f.logger.DebugContext(ctx, "upstream request", "origin", id, "url", fullURL, "status", resp.StatusCode, "duration", time.Since(started))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "origin %s read response body", id), errUpstreamTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Origin: id, Status: resp.StatusCode, Body: abbreviateBody(raw)}
		if isRetryableStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errUpstreamTransient)
		}
		return nil, statusErr
	}

	return raw, nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errUpstreamTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func isNotFound(err error) bool {
	var statusErr *StatusError
	return crerr.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
