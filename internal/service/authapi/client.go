// Package authapi is the HTTP client for the remote auth service.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/seojinpark/talktemplate/client/internal/model/auth"
)

const (
	pathLogin      = "/api/auth/login"
	pathSignup     = "/api/auth/signup"
	pathOTPRequest = "/api/auth/email/otp/request"
	pathOTPVerify  = "/api/auth/email/otp/verify"
)

// APIError is a non-2xx rejection from the auth service. Message carries
// the service-provided user-displayable text when the payload had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth service rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("auth service rejected request (%d)", e.Status)
}

// Credentials bundles the identity and bearer token from a 2xx auth response.
type Credentials struct {
	User  auth.User
	Token string
}

// SignupRequest carries the fields of the signup call. VerificationToken
// comes from a prior successful OTP verification.
type SignupRequest struct {
	Email             string
	Password          string
	Name              string
	VerificationToken string
}

// Client calls the remote auth service with a bounded timeout per request.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for an identity and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.post(ctx, pathLogin, body, &payload); err != nil {
		return Credentials{}, err
	}
	return payload.credentials(), nil
}

// RequestOTP asks the service to email a one-time passcode.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	return c.post(ctx, pathOTPRequest, map[string]string{"email": email}, nil)
}

// VerifyOTP exchanges a passcode for a verification token gating signup.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	body := map[string]string{"email": email, "code": code}
	var payload struct {
		Data struct {
			VerificationToken string `json:"verificationToken"`
		} `json:"data"`
	}
	if err := c.post(ctx, pathOTPVerify, body, &payload); err != nil {
		return "", err
	}
	if payload.Data.VerificationToken == "" {
		return "", fmt.Errorf("otp verify response missing verification token")
	}
	return payload.Data.VerificationToken, nil
}

// Signup registers a new account using a verified email.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (Credentials, error) {
	body := map[string]string{
		"email":                  req.Email,
		"password":               req.Password,
		"name":                   req.Name,
		"emailVerificationToken": req.VerificationToken,
	}
	var payload authPayload
	if err := c.post(ctx, pathSignup, body, &payload); err != nil {
		return Credentials{}, err
	}
	return payload.credentials(), nil
}

// post issues a JSON POST and decodes the response into out (skipped for
// nil out or an empty body). Transport failures come back unwrapped in
// type, service rejections as *APIError.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read auth response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var rejection struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &rejection)
		return &APIError{Status: resp.StatusCode, Message: rejection.Message}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}
