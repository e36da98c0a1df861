package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCareerServiceForTest(baseURL string) *CareerService {
	return NewCareerService(&CareerConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.5-flash",
	})
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Ravi", "switching trades", "en")
	assert.Contains(t, p, "Ravi")
	assert.Contains(t, p, "switching trades")
	assert.Contains(t, p, "English")

	p = BuildPrompt("Ravi", "wages", "hi")
	assert.Contains(t, p, "Hindi")
}

func TestAdvise_ReturnsModelReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Sita")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Keep learning every day.  "}]}}]}`))
	}))
	defer server.Close()

	cs := newCareerServiceForTest(server.URL)
	reply := cs.Advise("Sita", "upskilling", "en")
	assert.Equal(t, "Keep learning every day.", reply)
}

func TestAdvise_FallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cs := newCareerServiceForTest(server.URL)
	assert.Equal(t, FallbackReply, cs.Advise("Sita", "upskilling", "en"))
}

func TestAdvise_FallsBackWhenUnreachable(t *testing.T) {
	cs := newCareerServiceForTest("http://127.0.0.1:1")
	assert.Equal(t, FallbackReply, cs.Advise("Sita", "upskilling", "hi"))
}

func TestAdvise_FallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	cs := newCareerServiceForTest(server.URL)
	assert.Equal(t, FallbackReply, cs.Advise("Sita", "upskilling", "en"))
}
