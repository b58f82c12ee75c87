// canvas/genai/genai_service_test.go
package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "draw a cat", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "a cat made of streets"}}}},
			},
		})
	}))
	defer upstream.Close()

	svc := NewGenAIService(upstream.URL, "secret", "test-model", 5*time.Second)
	text, err := svc.Complete(context.Background(), "draw a cat")
	require.NoError(t, err)
	assert.Equal(t, "a cat made of streets", text)
}

func TestCompleteUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewGenAIService(upstream.URL, "secret", "test-model", 5*time.Second)
	_, err := svc.Complete(context.Background(), "draw a cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestCompleteNoCandidates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer upstream.Close()

	svc := NewGenAIService(upstream.URL, "secret", "test-model", 5*time.Second)
	_, err := svc.Complete(context.Background(), "draw a cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
