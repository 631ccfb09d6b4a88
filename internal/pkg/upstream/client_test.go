package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONForwardsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx := WithToken(context.Background(), "token-123")

	var out struct {
		Value string `json:"value"`
	}
	err := client.GetJSON(ctx, "/ping", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "ok", out.Value)
}

func TestGetJSONOmitsAuthWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	require.NoError(t, client.GetJSON(context.Background(), "/ping", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestGetJSONEncodesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	query := url.Values{}
	query.Set("start", "2024-03-01")
	query.Set("end", "2024-03-31")

	require.NoError(t, client.GetJSON(context.Background(), "/range", query, nil))
	assert.Equal(t, "2024-03-01", gotQuery.Get("start"))
	assert.Equal(t, "2024-03-31", gotQuery.Get("end"))
}

func TestNonSuccessBecomesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("store not found"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.GetJSON(context.Background(), "/store", nil, nil)

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusUnauthorized))
	assert.Contains(t, err.Error(), "store not found")
}

func TestPostJSONSendsBody(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PostJSON(context.Background(), "/create", map[string]string{"name": "x"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestPostRawReturnsResponseText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Imported 42 rows"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	text, err := client.PostRaw(context.Background(), "/upload", "text/plain", nil)

	require.NoError(t, err)
	assert.Equal(t, "Imported 42 rows", text)
}
