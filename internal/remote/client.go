// Package remote is the client for the per-user document store. Each
// (user, key) pair maps to one JSON document; the store offers plain
// get/set, no querying or transactions.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Well-known document keys.
const (
	KeyTasks  = "tasks"
	KeyCohort = "cohort"
)

// Document is the store-level envelope around a logical value.
type Document struct {
	Value     json.RawMessage `json:"value"`
	UpdatedAt int64           `json:"updatedAt"` // unix milliseconds
}

// Store provides access to the per-user remote documents.
type Store interface {
	// Get fetches a document. A missing document is (nil, nil).
	Get(ctx context.Context, uid, key string) (*Document, error)

	// Set writes a document value, stamping the document timestamp.
	Set(ctx context.Context, uid, key string, value any) error

	// Available checks whether the store is reachable.
	Available(ctx context.Context) bool
}

// httpStore implements Store against the document store's HTTP API.
type httpStore struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPStore creates a Store that talks to the configured endpoint.
func NewHTTPStore(cfg Config, observer Observer) Store {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpStore{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (s *httpStore) docURL(uid, key string) string {
	return fmt.Sprintf("%s/users/%s/data/%s", s.cfg.Endpoint, uid, key)
}

func (s *httpStore) Get(ctx context.Context, uid, key string) (*Document, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + s.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		doc, err := s.doGet(ctx, uid, key)
		if err == nil {
			s.observe("get", key, start, nil)
			return doc, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	err := s.classify(ctx, lastErr)
	s.observe("get", key, start, err)
	return nil, err
}

func (s *httpStore) doGet(ctx context.Context, uid, key string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.docURL(uid, key), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	s.auth(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

func (s *httpStore) Set(ctx context.Context, uid, key string, value any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling document value: %w", err)
	}
	doc := Document{Value: raw, UpdatedAt: time.Now().UnixMilli()}

	var lastErr error
	attempts := 1 + s.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		err := s.doSet(ctx, uid, key, doc)
		if err == nil {
			s.observe("set", key, start, nil)
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	err = s.classify(ctx, lastErr)
	s.observe("set", key, start, err)
	return err
}

func (s *httpStore) doSet(ctx context.Context, uid, key string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.docURL(uid, key), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.auth(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (s *httpStore) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Endpoint+"/healthz", nil)
	if err != nil {
		return false
	}
	s.auth(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (s *httpStore) auth(req *http.Request) {
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}
}

func (s *httpStore) classify(ctx context.Context, lastErr error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (s *httpStore) observe(op, key string, start time.Time, err error) {
	s.observer.OnCallComplete(CallEvent{
		Op:        op,
		Key:       key,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
