package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/utils"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/JSON implementation of
// [BackendAdapter]. It normalises the base URL from cfg.HTTPAddress and
// applies the configured request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBackendAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
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

// VerifyPasscode implements [BackendAdapter].
func (h *httpBackendAdapter) VerifyPasscode(ctx context.Context, req models.VerifyPasscodeRequest) (models.VerifyPasscodeResponse, error) {
	var result models.VerifyPasscodeResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/verify-passcode")
	if err != nil {
		return models.VerifyPasscodeResponse{}, fmt.Errorf("verify passcode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyPasscodeResponse{}, err
	}

	return result, nil
}

// Register implements [BackendAdapter].
func (h *httpBackendAdapter) Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.request(ctx).
		SetBody(reg).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// CheckAadhaar implements [BackendAdapter].
func (h *httpBackendAdapter) CheckAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	resp, err := h.request(ctx).
		SetBody(models.AadhaarRequest{Aadhaar: aadhaar}).
		Post("/check-aadhar")
	if err != nil {
		return false, fmt.Errorf("check aadhaar request: %w", err)
	}

	err = mapHTTPError(resp)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// UserData implements [BackendAdapter].
func (h *httpBackendAdapter) UserData(ctx context.Context, token string) (models.UserDataResponse, error) {
	var result models.UserDataResponse

	resp, err := h.request(ctx).
		SetBody(models.UserDataRequest{Token: token}).
		SetResult(&result).
		Post("/userdata")
	if err != nil {
		return models.UserDataResponse{}, fmt.Errorf("userdata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDataResponse{}, err
	}

	return result, nil
}

// request prepares a JSON request tagged with a fresh request ID. The ID is
// taken from ctx when the caller already assigned one.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	h.logger.Debug().
		Str("func", "httpBackendAdapter.request").
		Str("request_id", requestID).
		Msg("sending backend request")

	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID)
}
