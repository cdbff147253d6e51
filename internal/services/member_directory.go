package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"churchconnect/internal/collection"
	"churchconnect/internal/config"
	"churchconnect/internal/models"
)

const membersAPISource = "members api"

// RemoteError is a 4xx answer from the members API.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("members api %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func isClientError(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Status >= 400 && remote.Status < 500
}

// MemberDirectory talks to the members REST API
type MemberDirectory struct {
	config  *config.MembersAPIConfig
	client  *http.Client
	breaker *CircuitBreaker
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewMemberDirectory creates a members API client guarded by a circuit breaker
func NewMemberDirectory(
	cfg *config.MembersAPIConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *MemberDirectory {

	client := &http.Client{
		Transport: &jsonTransport{base: http.DefaultTransport},
		Timeout:   cfg.Timeout,
	}

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     cfg.FailureThreshold,
		ResetTimeout:    cfg.ResetTimeout,
		HalfOpenMaxSucc: 1,
	})
	breaker.OnStateChange(func(from, to CircuitState) {
		logger.Warn("members api circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		if metrics != nil {
			metrics.RecordGauge("circuit_breaker_state", float64(to), map[string]string{"service": "members_api"})
		}
	})

	return &MemberDirectory{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

type jsonTransport struct {
	base http.RoundTripper
}

func (t *jsonTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

func (d *MemberDirectory) Breaker() CircuitBreakerInterface {
	return d.breaker
}

func (d *MemberDirectory) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

// call sends one request through the breaker and decodes a 2xx body into out.
func (d *MemberDirectory) call(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	err := d.breaker.Execute(func() error {
		req, err := d.buildRequest(ctx, method, path, body)
		if err != nil {
			return err
		}

		resp, err := d.client.Do(req)
		if err != nil {
			d.logger.Error("members api request failed",
				"method", method,
				"url", req.URL.String(),
				"error", err,
			)
			if ctx.Err() != nil {
				return err
			}
			return unreachable(err)
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}

		switch {
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return &RemoteError{Method: method, Path: path, Status: resp.StatusCode, Body: string(payload)}
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return unreachable(fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode))
		}

		if out == nil || len(bytes.TrimSpace(payload)) == 0 {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
		return nil
	})

	status := "success"
	if err != nil {
		status = "failed"
	}
	if d.metrics != nil {
		d.metrics.IncrementCounter("members_api_request", map[string]string{"method": method, "status": status})
		d.metrics.RecordProcessingTime("members_api_request", time.Since(start))
	}
	return err
}

// unreachable marks a transport failure or 5xx answer as a collaborator
// failure rather than a rejected request.
func unreachable(err error) error {
	return &collection.LoadError{Kind: collection.LoadKindFetchFailed, Source: membersAPISource, Err: err}
}

func (d *MemberDirectory) ListMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := d.call(ctx, http.MethodGet, "/api/members", nil, &members); err != nil {
		return nil, err
	}
	if members == nil {
		members = []models.Member{}
	}
	return members, nil
}

func (d *MemberDirectory) WorkerCategories(ctx context.Context) (models.WorkerCategories, error) {
	categories := models.WorkerCategories{}
	if err := d.call(ctx, http.MethodGet, "/api/worker-categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateMember posts the member and returns the record the API stored.
func (d *MemberDirectory) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	var created models.Member
	if err := d.call(ctx, http.MethodPost, "/api/members", member.Payload(), &created); err != nil {
		return models.Member{}, err
	}
	if created.ID == 0 && created.Name == "" {
		return member, nil
	}
	return created, nil
}

func (d *MemberDirectory) UpdateMember(ctx context.Context, id int64, member models.Member) (models.Member, error) {
	var updated models.Member
	path := "/api/members/" + strconv.FormatInt(id, 10)
	if err := d.call(ctx, http.MethodPut, path, member.Payload(), &updated); err != nil {
		return models.Member{}, err
	}
	if updated.Name == "" {
		updated = member
	}
	updated.ID = id
	return updated, nil
}
