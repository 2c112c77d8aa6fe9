package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"teamchat/domain"
)

// Validation is the server answer to a token check.
type Validation struct {
	Valid     bool             `json:"valid"`
	Email     string           `json:"email"`
	Username  string           `json:"username"`
	LastState domain.LastState `json:"last_state"`
}

type LoginResult struct {
	Token     string           `json:"token"`
	Email     string           `json:"email"`
	Username  string           `json:"username"`
	LastState domain.LastState `json:"last_state"`
}

// StatusError is returned for any non 2xx answer.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
}

// API is a thin HTTP client over the session endpoints.
type API struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewAPI(baseURL string, httpClient *http.Client, log *slog.Logger) *API {
	return &API{baseURL: baseURL, http: httpClient, log: log}
}

func (a *API) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	query := url.Values{"identifier": {identifier}, "password": {password}}
	var result LoginResult
	err := a.do(ctx, http.MethodGet, "/v0/login?"+query.Encode(), "", nil, &result)
	return result, err
}

func (a *API) ValidateToken(ctx context.Context, token string) (Validation, error) {
	var validation Validation
	err := a.do(ctx, http.MethodPost, "/v0/validate_token", token, nil, &validation)
	return validation, err
}

func (a *API) SaveState(ctx context.Context, token string, state domain.LastState) error {
	return a.do(ctx, http.MethodPost, "/v0/save_state", token, state, nil)
}

func (a *API) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}
	request, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, &payload)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := a.http.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			a.log.Debug("Failed to close response body", "error", err)
		}
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(response.Body).Decode(&failure)
		return &StatusError{Status: response.StatusCode, Message: failure.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}
