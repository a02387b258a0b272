package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsightRepos() (repositories.BookingRepository, repositories.ViewingRepository) {
	s := store.NewSeeded()
	return repositories.NewBookingRepository(s), repositories.NewViewingRepository(s)
}

func TestOwnerInsights_ReturnsGeneratedText(t *testing.T) {
	br, vr := newInsightRepos()

	var gotPath, gotKey string
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := generateResponse{}
		resp.Candidates = []struct {
			Content generateContent `json:"content"`
		}{
			{Content: generateContent{Parts: []generatePart{{Text: "  Two pending approvals need attention.  "}}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := NewInsightService(br, vr, server.URL, "test-key", "gemini-3-flash-preview")
	text := svc.OwnerInsights(context.Background())

	assert.Equal(t, "Two pending approvals need attention.", text)
	assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Sarah & James")
	assert.Contains(t, prompt, "Emma Watson")
	assert.Contains(t, prompt, "Revenue projection")
}

func TestOwnerInsights_MissingKeySkipsNetworkCall(t *testing.T) {
	br, vr := newInsightRepos()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewInsightService(br, vr, server.URL, "", "gemini-3-flash-preview")
	text := svc.OwnerInsights(context.Background())

	assert.Equal(t, InsightFallbackMessage, text)
	assert.False(t, called)
}

func TestOwnerInsights_FallsBackOnServerError(t *testing.T) {
	br, vr := newInsightRepos()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewInsightService(br, vr, server.URL, "test-key", "gemini-3-flash-preview")
	assert.Equal(t, InsightFallbackMessage, svc.OwnerInsights(context.Background()))
}

func TestOwnerInsights_FallsBackOnEmptyCandidates(t *testing.T) {
	br, vr := newInsightRepos()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := NewInsightService(br, vr, server.URL, "test-key", "gemini-3-flash-preview")
	assert.Equal(t, InsightFallbackMessage, svc.OwnerInsights(context.Background()))
}

func TestOwnerInsights_FallsBackOnUnreachableHost(t *testing.T) {
	br, vr := newInsightRepos()

	// Port 0 is never routable; the client error path must degrade gracefully.
	svc := NewInsightService(br, vr, "http://127.0.0.1:0", "test-key", "gemini-3-flash-preview")
	assert.Equal(t, InsightFallbackMessage, svc.OwnerInsights(context.Background()))
}

func TestOwnerInsights_TrimsTrailingSlashInBaseURL(t *testing.T) {
	br, vr := newInsightRepos()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	svc := NewInsightService(br, vr, server.URL+"/", "test-key", "gemini-3-flash-preview")
	svc.OwnerInsights(context.Background())

	assert.False(t, strings.Contains(gotPath, "//"))
}
