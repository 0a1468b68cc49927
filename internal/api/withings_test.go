package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wellsync/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWithingsClient(srv *httptest.Server) *WithingsClient {
	return &WithingsClient{
		base:         srv.URL,
		hc:           srv.Client(),
		logger:       &testutil.MockLogger{},
		clientID:     "cid",
		clientSecret: "secret",
		redirectURI:  "https://example.com/callback",
	}
}

func TestWithingsClient_RequestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "requesttoken", q.Get("action"))
		assert.Equal(t, "authorization_code", q.Get("grant_type"))
		assert.Equal(t, "code123", q.Get("code"))
		assert.Equal(t, "cid", q.Get("client_id"))
		assert.Equal(t, "secret", q.Get("client_secret"))
		assert.Equal(t, "https://example.com/callback", q.Get("redirect_uri"))
		w.Write([]byte(`{"status":0,"body":{"access_token":"at","refresh_token":"rt","expires_in":10800,"userid":7}}`))
	}))
	defer srv.Close()

	rec, err := newTestWithingsClient(srv).RequestToken(context.Background(), "code123")
	require.NoError(t, err)
	assert.Equal(t, "at", rec.AccessToken)
	assert.Equal(t, "rt", rec.RefreshToken)
	assert.Contains(t, string(rec.Raw), `"userid":7`)
}

func TestWithingsClient_RefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "requesttoken", q.Get("action"))
		assert.Equal(t, "refresh_token", q.Get("grant_type"))
		assert.Equal(t, "rt-old", q.Get("refresh_token"))
		w.Write([]byte(`{"status":0,"body":{"access_token":"at-new","refresh_token":"rt-new"}}`))
	}))
	defer srv.Close()

	rec, err := newTestWithingsClient(srv).RefreshToken(context.Background(), "rt-old")
	require.NoError(t, err)
	assert.Equal(t, "at-new", rec.AccessToken)
	assert.Equal(t, "rt-new", rec.RefreshToken)
}

func TestWithingsClient_ProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":503,"error":"Invalid params"}`))
	}))
	defer srv.Close()

	_, err := newTestWithingsClient(srv).RefreshToken(context.Background(), "rt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestWithingsClient_GetMeasurements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/measure", r.URL.Path)
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "getmeas", q.Get("action"))
		assert.Equal(t, "1,6,9,10,71,73,76", q.Get("meastypes"))
		assert.Equal(t, "1", q.Get("category"))
		assert.Equal(t, "1700000000", q.Get("lastupdate"))
		w.Write([]byte(`{"status":0,"body":{"measuregrps":[{"date":1700001234,"measures":[{"type":1,"value":705,"unit":-1}]}]}}`))
	}))
	defer srv.Close()

	groups, err := newTestWithingsClient(srv).GetMeasurements(context.Background(), "at", time.Unix(1700000000, 0))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(1700001234), groups[0].Date)
	require.Len(t, groups[0].Measures, 1)
	assert.Equal(t, 1, groups[0].Measures[0].Type)
	assert.Equal(t, 705, groups[0].Measures[0].Value)
	assert.Equal(t, -1, groups[0].Measures[0].Unit)
}

func TestWithingsClient_GetMeasurementsMissingGroupsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0,"body":{"updatetime":1700000000}}`))
	}))
	defer srv.Close()

	_, err := newTestWithingsClient(srv).GetMeasurements(context.Background(), "at", time.Unix(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "measuregrps")
}

func TestWithingsClient_GetMeasurementsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestWithingsClient(srv).GetMeasurements(context.Background(), "at", time.Unix(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
