// Package client implements the checkout submitter: it packages a cart
// and customer details into an order payload and posts it to the
// storefront's checkout endpoint. Submissions carry a client-generated
// request id so retries after a network failure cannot create a second
// order.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"kotibus/models"
)

var (
	// ErrEmptyCart is returned before any request is made when there is
	// nothing to submit.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrRejected wraps a 4xx response; retrying the same payload
	// cannot succeed.
	ErrRejected = errors.New("checkout rejected")

	// ErrUnavailable wraps a network failure or 5xx response that
	// persisted through every retry attempt.
	ErrUnavailable = errors.New("checkout unavailable")
)

type Submitter struct {
	baseURL  string
	http     *http.Client
	attempts int
	backoff  time.Duration
	token    string
}

type Option func(*Submitter)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Submitter) { s.http.Timeout = d }
}

// WithAttempts sets the total number of attempts, including the first.
func WithAttempts(n int) Option {
	return func(s *Submitter) {
		if n >= 1 {
			s.attempts = n
		}
	}
}

// WithBackoff sets the base delay between attempts.
func WithBackoff(d time.Duration) Option {
	return func(s *Submitter) { s.backoff = d }
}

// WithToken attaches a session bearer token to submissions, so the
// server applies the session's shipping policy and clears its cart.
func WithToken(token string) Option {
	return func(s *Submitter) { s.token = token }
}

func New(baseURL string, opts ...Option) *Submitter {
	s := &Submitter{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		backoff:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit posts the order and returns the assigned order id. The request
// id is generated once and reused across retries; the server returns the
// original order for a request id it has already seen, so a retry after
// an ambiguous failure never double-books.
func (s *Submitter) Submit(ctx context.Context, customer models.Customer, items []models.CheckoutItemRequest) (int64, error) {
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	payload, err := json.Marshal(models.CheckoutRequest{
		Customer: customer,
		Items:    items,
	})
	if err != nil {
		return 0, err
	}

	requestID := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt < s.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}

		orderID, retryable, err := s.post(ctx, requestID, payload)
		if err == nil {
			return orderID, nil
		}
		if !retryable {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

func (s *Submitter) post(ctx context.Context, requestID string, payload []byte) (int64, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkout", bytes.NewReader(payload))
	if err != nil {
		return 0, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return 0, true, fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return 0, false, fmt.Errorf("%w: server returned %d: %s", ErrRejected, resp.StatusCode, body)
	}

	var result models.CheckoutResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, false, err
	}
	if !result.OK {
		return 0, false, fmt.Errorf("%w: %s", ErrRejected, body)
	}
	return result.OrderID, false, nil
}
