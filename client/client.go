// Package client is the Go API client for the Udyog Saathi backend,
// including the polling synchronization used in place of any push
// transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/udyogsaathi/udyog-saathi/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client against baseURL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// envelope matches utils.JSONResponse on the server side.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	if !env.Status {
		return fmt.Errorf("server rejected %s: %s", req.URL.Path, env.Message)
	}
	if out == nil || env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) FetchJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := c.getJSON(ctx, "/api/jobs", &jobs)
	return jobs, err
}

func (c *Client) FetchWorkerProfiles(ctx context.Context) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := c.getJSON(ctx, "/api/worker-profiles", &profiles)
	return profiles, err
}

func (c *Client) FetchInstantServices(ctx context.Context) ([]models.InstantService, error) {
	var list []models.InstantService
	err := c.getJSON(ctx, "/api/instant-services", &list)
	return list, err
}

func (c *Client) FetchNotifications(ctx context.Context, email string) ([]models.Application, error) {
	var apps []models.Application
	err := c.getJSON(ctx, "/api/notifications/"+url.PathEscape(email), &apps)
	return apps, err
}

func (c *Client) FetchChat(ctx context.Context, userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	path := "/api/chat/" + url.PathEscape(userA) + "/" + url.PathEscape(userB)
	err := c.getJSON(ctx, path, &messages)
	return messages, err
}

func (c *Client) SendMessage(ctx context.Context, sender, receiver, text string) (models.Message, error) {
	body := map[string]string{
		"senderEmail":   sender,
		"receiverEmail": receiver,
		"text":          text,
	}
	var msg models.Message
	err := c.postJSON(ctx, "/api/send-message", body, &msg)
	return msg, err
}
