package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		gotSecret = r.PostForm.Get("secret")
		gotResponse = r.PostForm.Get("response")
		if gotResponse == "good" {
			w.Write([]byte(`{"success": true}`))
			return
		}
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := New("s3cret", srv.URL)
	assert.True(t, v.Verify(context.Background(), "good"))
	assert.Equal(t, "s3cret", gotSecret)
	assert.Equal(t, "good", gotResponse)

	assert.False(t, v.Verify(context.Background(), "bad"))
}

func TestVerifyFailuresAreFalse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success": true}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}},
		{"missing field", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			assert.False(t, New("secret", srv.URL).Verify(context.Background(), "token"))
		})
	}
}

func TestVerifyWithoutSecret(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	assert.False(t, New("", srv.URL).Verify(context.Background(), "token"))
	assert.Zero(t, calls)
}

func TestVerifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.False(t, New("secret", url).Verify(context.Background(), "token"))
}
