// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mignatov/authkeeper/models"
)

// HTTPClientConfig configures the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a REST [Client] for the authkeeper server.
func NewHTTPClient(cfg HTTPClientConfig) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}
}

func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClient) Register(ctx context.Context, request models.RegisterRequest) (models.StatusResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/register")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return decodeStatusResponse(resp, "register")
}

func (h *httpClient) Login(ctx context.Context, request models.LoginRequest) (models.StatusResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	h.SetToken(token)

	return decodeStatusResponse(resp, "login")
}

func (h *httpClient) Logout(ctx context.Context) (models.StatusResponse, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post("/api/auth/logout")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	h.SetToken("")

	return decodeStatusResponse(resp, "logout")
}

func (h *httpClient) Session(ctx context.Context) (models.SessionResponse, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Get("/api/auth/session")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	var session models.SessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.SessionResponse{}, fmt.Errorf("session decode response: %w", err)
	}

	return session, nil
}

func decodeStatusResponse(resp *resty.Response, operation string) (models.StatusResponse, error) {
	var status models.StatusResponse
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return models.StatusResponse{}, fmt.Errorf("%s decode response: %w", operation, err)
	}
	return status, nil
}

// parseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func parseBearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed Authorization header: %q", header)
	}
	return parts[1], nil
}
