package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeImage(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [{"text": "  A wool coat in good condition.  "}]}
			}]
		}`))
	}))
	defer server.Close()

	analyzer := NewGeminiAnalyzerWithOptions(server.URL, server.Client())

	text, err := analyzer.AnalyzeImage(context.Background(), "https://img/coat.jpg")
	require.NoError(t, err)
	assert.Equal(t, "A wool coat in good condition.", text)

	contents, ok := gotBody["contents"].([]interface{})
	require.True(t, ok)
	require.Len(t, contents, 1)
}

func TestAnalyzeImageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	analyzer := NewGeminiAnalyzerWithOptions(server.URL, server.Client())

	_, err := analyzer.AnalyzeImage(context.Background(), "https://img/coat.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyzeImageNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	analyzer := NewGeminiAnalyzerWithOptions(server.URL, server.Client())

	_, err := analyzer.AnalyzeImage(context.Background(), "https://img/coat.jpg")
	assert.Error(t, err)
}
