package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"
	domainPath    = "/api/users/{userID}/domains/{domainID}"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Every request carries a fresh X-Trace-ID header so client and
// server log lines can be joined.
//
// Returns an error wrapping [ErrInvalidURL] if adapterCfg.HTTPAddress is empty
// or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: adapter http address: %v", ErrInvalidURL, err)
	}

	client := utils.NewRestClient(baseURL, adapterCfg.RequestTimeout)

	a := &httpServerAdapter{
		client: client,
		logger: logger,
	}
	client.OnBeforeRequest(a.setTraceID)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) setTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(traceIDHeader) == "" {
		req.SetHeader(traceIDHeader, utils.NewTraceID())
	}
	return nil
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register and returns the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post("/api/auth/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}

	return tokenFromResponse(resp, "register")
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and returns the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	return tokenFromResponse(resp, "login")
}

// RefreshToken implements [ServerAdapter]. It POSTs to /api/auth/refresh
// authenticated with token.
func (h *httpServerAdapter) RefreshToken(ctx context.Context, token string) (string, error) {
	resp, err := h.authedRequest(ctx, token).Post("/api/auth/refresh")
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}

	return tokenFromResponse(resp, "refresh")
}

// Upsert implements [ServerAdapter]. It PUTs {"payload": ...} to
// /api/users/{userID}/domains/{domainID}.
func (h *httpServerAdapter) Upsert(ctx context.Context, userID int64, domainID string, payload models.Payload, token string) error {
	req, err := h.domainRequest(ctx, userID, domainID, token)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpsertRequest{Payload: payload}).
		Put(domainPath)
	if err != nil {
		return fmt.Errorf("upsert %s request: %w", domainID, err)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.Upsert").
		Str("domain", domainID).
		Int("status", resp.StatusCode()).
		Int("size", len(payload)).
		Send()

	return mapHTTPError(resp)
}

// Fetch implements [ServerAdapter]. It GETs /api/users/{userID}/domains/{domainID}.
// 404 and a null payload both mean "nothing stored".
func (h *httpServerAdapter) Fetch(ctx context.Context, userID int64, domainID string, token string) (models.Payload, error) {
	req, err := h.domainRequest(ctx, userID, domainID, token)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(domainPath)
	if err != nil {
		return nil, fmt.Errorf("fetch %s request: %w", domainID, err)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.Fetch").
		Str("domain", domainID).
		Int("status", resp.StatusCode()).
		Send()

	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.FetchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode fetch %s response: %v", ErrInvalidResponse, domainID, err)
	}
	if result.Payload.IsEmpty() {
		return nil, nil
	}

	return result.Payload, nil
}

func (h *httpServerAdapter) domainRequest(ctx context.Context, userID int64, domainID, token string) (*resty.Request, error) {
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("%w: empty domain id", ErrInvalidURL)
	}

	return h.authedRequest(ctx, token).SetPathParams(map[string]string{
		"userID":   strconv.FormatInt(userID, 10),
		"domainID": domainID,
	}), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func tokenFromResponse(resp *resty.Response, op string) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: %s parse bearer token: %v", ErrInvalidResponse, op, err)
	}

	return token, nil
}
