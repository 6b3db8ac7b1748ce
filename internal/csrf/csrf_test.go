package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(t *testing.T, g *Guard) (string, []*http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	tok, err := g.Token(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.NoError(t, err)
	return tok, rec.Result().Cookies()
}

func withCookies(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	g := New([]byte("0123456789abcdef0123456789abcdef"), true, false)

	tok, cookies := issue(t, g)
	require.Len(t, tok, 64)
	require.NotEmpty(t, cookies)

	assert.Empty(t, g.Check(withCookies(cookies), tok))
	assert.Equal(t, MsgMismatch, g.Check(withCookies(cookies), "forged"))
	assert.Equal(t, MsgMissing, g.Check(withCookies(cookies), ""))
	assert.Equal(t, MsgSessionMissing, g.Check(withCookies(nil), tok))
}

func TestTokenIsStablePerSession(t *testing.T) {
	g := New([]byte("0123456789abcdef0123456789abcdef"), true, false)
	tok, cookies := issue(t, g)

	rec := httptest.NewRecorder()
	again, err := g.Token(rec, withCookies(cookies))
	require.NoError(t, err)
	assert.Equal(t, tok, again)
}

func TestCookieFromOtherSecretRejected(t *testing.T) {
	tok, cookies := issue(t, New([]byte("first-secret-first-secret-first!"), true, false))
	g := New([]byte("other-secret-other-secret-other!"), true, false)
	assert.Equal(t, MsgSessionMissing, g.Check(withCookies(cookies), tok))
}

func TestDisabledGuard(t *testing.T) {
	g := New([]byte("secret"), false, false)
	tok, cookies := issue(t, g)
	assert.Empty(t, tok)
	assert.Empty(t, cookies)
	assert.Empty(t, g.Check(withCookies(nil), ""))
}
