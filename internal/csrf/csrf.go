// Package csrf guards form posts with a per-session token kept in a signed
// cookie.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// FieldName is the form field carrying the token.
	FieldName = "csrf_token"

	sessionName = "portfolio_session"
	sessionKey  = "csrf_token"
)

const (
	MsgMissing        = "The CSRF token is missing."
	MsgSessionMissing = "The CSRF session token is missing."
	MsgMismatch       = "The CSRF tokens do not match."
)

type Guard struct {
	store   sessions.Store
	enabled bool
}

// New returns a guard signing its cookie with secret. A disabled guard hands
// out empty tokens and accepts everything.
func New(secret []byte, enabled, secureCookie bool) *Guard {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 3600,
		HttpOnly: true,
		Secure:   secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	return &Guard{store: store, enabled: enabled}
}

func (g *Guard) Enabled() bool {
	return g.enabled
}

// Token returns the session's token, issuing a new one when the session has
// none yet.
func (g *Guard) Token(w http.ResponseWriter, r *http.Request) (string, error) {
	if !g.enabled {
		return "", nil
	}

	// an undecodable cookie still yields a fresh session
	session, _ := g.store.Get(r, sessionName)
	if tok, ok := session.Values[sessionKey].(string); ok && tok != "" {
		return tok, nil
	}

	tok, err := RandomToken()
	if err != nil {
		return "", err
	}
	session.Values[sessionKey] = tok
	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return tok, nil
}

// Check compares the submitted token with the session's. It returns an empty
// string when they match, otherwise the reason they do not.
func (g *Guard) Check(r *http.Request, submitted string) string {
	if !g.enabled {
		return ""
	}
	if submitted == "" {
		return MsgMissing
	}

	session, _ := g.store.Get(r, sessionName)
	tok, _ := session.Values[sessionKey].(string)
	if tok == "" {
		return MsgSessionMissing
	}
	if subtle.ConstantTimeCompare([]byte(tok), []byte(submitted)) != 1 {
		return MsgMismatch
	}
	return ""
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
