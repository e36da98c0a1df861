package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udyogsaathi/udyog-saathi/models"
)

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  true,
		"message": "ok",
		"data":    data,
	})
}

func TestFetchJobsDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs", r.URL.Path)
		writeEnvelope(w, []models.Job{{ID: 1, Title: "Electrician Needed"}})
	}))
	defer server.Close()

	c := New(server.URL)
	jobs, err := c.FetchJobs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Electrician Needed", jobs[0].Title)
}

func TestFetchSurfacesServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "boom",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.FetchJobs(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestFeedTicksDropWhileRefreshInFlight(t *testing.T) {
	var jobRequests atomic.Int32
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/jobs":
			jobRequests.Add(1)
			<-release // hold the first refresh open across many ticks
			writeEnvelope(w, []models.Job{})
		default:
			writeEnvelope(w, []models.Application{})
		}
	}))
	defer server.Close()

	done := make(chan struct{})
	p := NewPoller(New(server.URL), "me@example.com", func(FeedUpdate) {
		close(done)
	}, nil)
	p.FeedInterval = 5 * time.Millisecond
	p.Start()
	defer p.Stop()

	// Let well over a dozen ticks fire while the refresh is blocked.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), jobRequests.Load())

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OnFeeds was never called after the refresh unblocked")
	}
}

func TestFeedTicksSkippedWhenNotVisible(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeEnvelope(w, []models.Job{})
	}))
	defer server.Close()

	p := NewPoller(New(server.URL), "me@example.com", func(FeedUpdate) {}, nil)
	p.FeedInterval = 5 * time.Millisecond
	p.Visible = func() bool { return false }
	p.Start()
	defer p.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), requests.Load())
}

func TestChatLoopDeliversOpenThreadOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []models.Message{
			{SenderEmail: "me@example.com", ReceiverEmail: "peer@example.com", Text: "hello"},
		})
	}))
	defer server.Close()

	got := make(chan string, 1)
	p := NewPoller(New(server.URL), "me@example.com", nil, func(peer string, history []models.Message) {
		select {
		case got <- fmt.Sprintf("%s:%s", peer, history[0].Text):
		default:
		}
	})
	p.ChatInterval = 5 * time.Millisecond
	p.Start()
	defer p.Stop()

	// No thread open yet: nothing should arrive.
	select {
	case v := <-got:
		t.Fatalf("chat delivered before OpenChat: %s", v)
	case <-time.After(50 * time.Millisecond):
	}

	p.OpenChat("peer@example.com")
	select {
	case v := <-got:
		assert.Equal(t, "peer@example.com:hello", v)
	case <-time.After(2 * time.Second):
		t.Fatal("chat history never delivered")
	}

	// After CloseChat the loop goes quiet again.
	p.CloseChat()
	time.Sleep(20 * time.Millisecond)
	for len(got) > 0 {
		<-got
	}
	select {
	case v := <-got:
		t.Fatalf("chat delivered after CloseChat: %s", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStopEndsBothLoops(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeEnvelope(w, []models.Job{})
	}))
	defer server.Close()

	p := NewPoller(New(server.URL), "me@example.com", func(FeedUpdate) {}, nil)
	p.FeedInterval = 5 * time.Millisecond
	p.Start()

	time.Sleep(30 * time.Millisecond)
	p.Stop()
	p.Stop() // idempotent

	time.Sleep(30 * time.Millisecond)
	after := requests.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, requests.Load())
}
