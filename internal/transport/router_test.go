package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/lookup"
	"github.com/heartmarshall/wordlookup/internal/provider"
	"github.com/heartmarshall/wordlookup/internal/session"
)

type stubDict struct{}

func (stubDict) FetchEntries(_ context.Context, word string) ([]provider.Entry, error) {
	if word != "hello" {
		return []provider.Entry{}, nil
	}
	return []provider.Entry{{
		Phonetics: []provider.Phonetic{{Audio: "https://x/hello.mp3"}},
		Meanings:  []provider.Meaning{{Definitions: []provider.Definition{{Definition: "used as a greeting"}}}},
	}}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client, *session.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessCfg := config.SessionConfig{CookieName: "sid", TTL: time.Minute, CleanupInterval: time.Hour}
	store := session.NewStore(sessCfg, func() *lookup.Widget {
		return lookup.New(logger, stubDict{}, nil)
	}, logger)
	t.Cleanup(store.Stop)

	srv := httptest.NewServer(NewRouter(RouterDeps{
		Logger:   logger,
		Sessions: store,
		Session:  sessCfg,
		CORS: config.CORSConfig{
			AllowedOrigins: "https://example.com",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
		Version: "test",
	}))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}, store
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRouter_PageFlow(t *testing.T) {
	t.Parallel()

	srv, client, store := newTestServer(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Contains(t, readBody(t, resp), "Dictionary App")
	assert.Equal(t, 1, store.Len())

	// The client follows the 303 back to the page.
	resp, err = client.PostForm(srv.URL+"/search", url.Values{"word": {"hello"}})
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "used as a greeting")
	assert.Contains(t, body, "https://x/hello.mp3")
	assert.Equal(t, 1, store.Len(), "cookie should keep the same session")

	resp, err = client.PostForm(srv.URL+"/clear", url.Values{})
	require.NoError(t, err)
	assert.NotContains(t, readBody(t, resp), "used as a greeting")
}

func TestRouter_APISharesSessionWithPage(t *testing.T) {
	t.Parallel()

	srv, client, _ := newTestServer(t)

	resp, err := client.PostForm(srv.URL+"/search", url.Values{"word": {"zzzxcv"}})
	require.NoError(t, err)
	readBody(t, resp)

	resp, err = client.Get(srv.URL + "/api/lookup")
	require.NoError(t, err)
	var v struct {
		State        string  `json:"state"`
		ErrorMessage *string `json:"errorMessage"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	resp.Body.Close()

	assert.Equal(t, "error", v.State)
	require.NotNil(t, v.ErrorMessage)
	assert.Equal(t, "Sorry, No Data Found", *v.ErrorMessage)
}

func TestRouter_APISearch(t *testing.T) {
	t.Parallel()

	srv, client, _ := newTestServer(t)

	resp, err := client.Post(srv.URL+"/api/lookup/search", "application/json", strings.NewReader(`{"word":"hello"}`))
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"definitionText":"used as a greeting"`)
	assert.Contains(t, body, `"state":"success"`)
}

func TestRouter_Preflight(t *testing.T) {
	t.Parallel()

	srv, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/lookup/search", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/live")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/health")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"version":"test"`)
	assert.Empty(t, resp.Cookies(), "probes must not mount sessions")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/search")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
