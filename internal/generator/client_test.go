package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		} else if assert.Len(t, req.Messages, 1) {
			assert.Equal(t, "system", req.Messages[0].Role)
		}

		if status != http.StatusOK {
			http.Error(w, "quota exceeded", status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(baseURL string) *Client {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return NewClient(cfg)
}

func TestGenerateReturnsTrimmedContent(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "\n  SELECT * FROM tracks;  \n")
	defer srv.Close()

	got, err := testClient(srv.URL).Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM tracks;", got)
}

func TestGenerateAPIError(t *testing.T) {
	srv := completionServer(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "quota exceeded")
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerateNetworkError(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "SELECT 1;")
	srv.Close() // connection refused from here on

	_, err := testClient(srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion request")
}
