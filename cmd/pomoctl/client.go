package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pomo-lab/domain"
	"pomo-lab/domain/event"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%d): %v", e.Message, e.Status, e.Fields)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type StartRequest struct {
	OwnerID           string `json:"ownerId"`
	SpaceID           string `json:"spaceId"`
	WorkMinutes       *int   `json:"workMinutes,omitempty"`
	ShortBreakMinutes *int   `json:"shortBreakMinutes,omitempty"`
	LongBreakMinutes  *int   `json:"longBreakMinutes,omitempty"`
	LongBreakInterval *int   `json:"longBreakInterval,omitempty"`
}

type MembersResponse struct {
	OwnerID string   `json:"ownerId"`
	Members []string `json:"members"`
}

type PresenceResponse struct {
	UserID string `json:"userId"`
	Left   string `json:"left,omitempty"`
}

func (c *Client) Start(ctx context.Context, req StartRequest) (domain.Snapshot, error) {
	var out domain.Snapshot
	err := c.do(ctx, http.MethodPost, "/sessions", req, &out)
	return out, err
}

func (c *Client) List(ctx context.Context) ([]domain.Snapshot, error) {
	var out []domain.Snapshot
	err := c.do(ctx, http.MethodGet, "/sessions", nil, &out)
	return out, err
}

func (c *Client) Status(ctx context.Context, userID string) (domain.Snapshot, error) {
	var out domain.Snapshot
	err := c.do(ctx, http.MethodGet, "/sessions/status?user="+url.QueryEscape(userID), nil, &out)
	return out, err
}

// Control sends pause, resume or stop to the owner's session.
func (c *Client) Control(ctx context.Context, ownerID, action string) error {
	return c.do(ctx, http.MethodPost, "/sessions/"+url.PathEscape(ownerID)+"/"+action, nil, nil)
}

func (c *Client) Join(ctx context.Context, ownerID, userID string) (MembersResponse, error) {
	var out MembersResponse
	err := c.do(ctx, http.MethodPost, "/sessions/"+url.PathEscape(ownerID)+"/members",
		map[string]string{"userId": userID}, &out)
	return out, err
}

func (c *Client) Leave(ctx context.Context, ownerID, userID string) error {
	return c.do(ctx, http.MethodDelete,
		"/sessions/"+url.PathEscape(ownerID)+"/members/"+url.PathEscape(userID), nil, nil)
}

func (c *Client) Timeline(ctx context.Context, ownerID string) ([]event.Notification, error) {
	var out []event.Notification
	err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(ownerID)+"/timeline", nil, &out)
	return out, err
}

func (c *Client) Presence(ctx context.Context, spaceID, userID string, present bool) (PresenceResponse, error) {
	var out PresenceResponse
	err := c.do(ctx, http.MethodPost, "/presence",
		map[string]any{"spaceId": spaceID, "userId": userID, "present": present}, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context, userID string) (domain.StatsRecord, error) {
	var out domain.StatsRecord
	err := c.do(ctx, http.MethodGet, "/stats/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *Client) ResetStats(ctx context.Context, userID string) (domain.StatsRecord, error) {
	var out domain.StatsRecord
	err := c.do(ctx, http.MethodDelete, "/stats/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach server at %s: %w", c.base, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var decoded struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		if json.NewDecoder(resp.Body).Decode(&decoded) == nil && decoded.Message != "" {
			apiErr.Message = decoded.Message
			apiErr.Fields = decoded.Errors
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
