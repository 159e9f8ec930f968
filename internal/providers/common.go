package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while a provider's breaker refuses calls.
var ErrCircuitOpen = errors.New("circuit breaker open")

var (
	errServerError    = errors.New("server error")
	errCallerCanceled = errors.New("request canceled by caller")
)

// ClientConfig bundles the HTTP and breaker settings shared by both providers.
type ClientConfig struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
}

type rawResponse struct {
	status int
	body   []byte
}

func newBreaker(name string, cfg ClientConfig) *gobreaker.CircuitBreaker {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// The caller giving up says nothing about the provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerCanceled)
		},
	})
}

// doRequest performs a single GET through the breaker. Transport errors and
// 5xx responses count against the breaker; any other status is handed back
// to the caller together with the body. Returned errors never carry the
// request URL, since its query holds the API key.
func doRequest(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, target string) (rawResponse, error) {
	if err := ctx.Err(); err != nil {
		return rawResponse{}, err
	}

	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, errors.New("build request: invalid url")
		}

		resp, err := client.Do(req)
		if err != nil {
			err = stripURL(err)
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", errCallerCanceled, err)
			}
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status code %d", errServerError, resp.StatusCode)
		}

		return rawResponse{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return rawResponse{}, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return rawResponse{}, err
	}

	return result.(rawResponse), nil
}

func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
