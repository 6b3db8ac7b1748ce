// Package recaptcha verifies reCAPTCHA response tokens.
package recaptcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type Verifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func New(secret, verifyURL string) *Verifier {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Verifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify makes a single call to the verification service. Every failure,
// including a missing secret, counts as "not human".
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	if v.secret == "" || token == "" {
		return false
	}

	form := url.Values{"secret": {v.secret}, "response": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		slog.Warn("recaptcha request failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		slog.Warn("recaptcha request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("recaptcha returned non-2xx", "status", resp.StatusCode)
		return false
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("recaptcha response malformed", "error", err)
		return false
	}
	if !result.Success {
		slog.Info("recaptcha rejected token", "error_codes", result.ErrorCodes)
	}
	return result.Success
}
