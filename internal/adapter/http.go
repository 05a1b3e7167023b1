package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-client/internal/config"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and installs hooks that tag every request with an X-Request-ID and
// log its outcome.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}

	h.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.tagRequest).
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
}

func (h *httpServerAdapter) tagRequest(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(requestIDHeader) == "" {
		req.SetHeader(requestIDHeader, h.ids.Generate())
	}
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request completed")
	return nil
}

func (h *httpServerAdapter) logError(req *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("request failed")
}

// CheckAuth implements [ServerAdapter]. It GETs /check-auth and decodes the
// authentication status. Returns an error if the request fails, the server
// returns a non-2xx status, or the body is not a status object.
func (h *httpServerAdapter) CheckAuth(ctx context.Context) (models.AuthStatusResponse, error) {
	var status models.AuthStatusResponse

	resp, err := h.client.R().SetContext(ctx).Get("/check-auth")
	if err != nil {
		return status, networkError("check auth", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.AuthStatusResponse{}, fmt.Errorf("decode check auth response: %w", err)
	}
	return status, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login; the
// session cookie set by the server lands in the client's cookie jar. When the
// response does not describe the user, the submitted username stands in.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login")
	if err != nil {
		return models.User{}, networkError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		h.logger.Debug().Err(err).Msg("login response has no user object")
	}
	if body.User.Username == "" {
		body.User.Username = creds.Username
	}

	return body.User, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to /register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/register")
	if err != nil {
		return networkError("register", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [ServerAdapter]. It POSTs to /logout. The local cookie
// jar is left alone; use ClearSession for that.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/logout")
	if err != nil {
		return networkError("logout", err)
	}

	return mapHTTPError(resp)
}

// ClearSession implements [ServerAdapter].
func (h *httpServerAdapter) ClearSession() {
	h.client.ResetCookies()
}

// ListPasswords implements [ServerAdapter]. It GETs /passwords and decodes the
// record array. A null body is an empty list.
func (h *httpServerAdapter) ListPasswords(ctx context.Context) ([]models.CredentialRecord, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/passwords")
	if err != nil {
		return nil, networkError("list passwords", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.CredentialRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode passwords response: %w", err)
	}
	if records == nil {
		records = []models.CredentialRecord{}
	}

	return records, nil
}

// CreatePassword implements [ServerAdapter]. It POSTs payload to /passwords.
func (h *httpServerAdapter) CreatePassword(ctx context.Context, payload models.RecordPayload) (models.CredentialRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/passwords")
	if err != nil {
		return models.CredentialRecord{}, networkError("create password", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CredentialRecord{}, err
	}

	return h.decodeRecord(resp), nil
}

// UpdatePassword implements [ServerAdapter]. It PUTs payload to
// /passwords/{id}; the id is path-escaped.
func (h *httpServerAdapter) UpdatePassword(ctx context.Context, id models.ID, payload models.RecordPayload) (models.CredentialRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id.String()).
		SetBody(payload).
		Put("/passwords/{id}")
	if err != nil {
		return models.CredentialRecord{}, networkError("update password", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CredentialRecord{}, err
	}

	return h.decodeRecord(resp), nil
}

// DeletePassword implements [ServerAdapter]. It sends DELETE /passwords/{id}.
func (h *httpServerAdapter) DeletePassword(ctx context.Context, id models.ID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Delete("/passwords/{id}")
	if err != nil {
		return networkError("delete password", err)
	}

	return mapHTTPError(resp)
}

// decodeRecord reads a record echoed by a write. The list is always
// refetched after a write, so an unexpected body is logged and ignored.
func (h *httpServerAdapter) decodeRecord(resp *resty.Response) models.CredentialRecord {
	var record models.CredentialRecord
	if len(resp.Body()) == 0 {
		return record
	}
	if err := json.Unmarshal(resp.Body(), &record); err != nil {
		h.logger.Debug().Err(err).Msg("write response is not a record")
		return models.CredentialRecord{}
	}
	return record
}
