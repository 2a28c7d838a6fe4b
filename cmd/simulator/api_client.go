package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dom/prodle/internal/domain"
)

var errPlayerNotFound = errors.New("player not found")

// APIClient handles HTTP communication with the game server
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type DailyInfo struct {
	Date              string    `json:"date"`
	NextReset         time.Time `json:"next_reset"`
	SecondsUntilReset int64     `json:"seconds_until_reset"`
	Players           int       `json:"players"`
	Overridden        bool      `json:"overridden"`
}

type RerollResult struct {
	Message   string `json:"message"`
	NewPlayer string `json:"new_player"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *APIClient) Suggest(ctx context.Context, query string) ([]domain.Suggestion, error) {
	var out []domain.Suggestion
	err := c.get(ctx, "/suggestions?q="+url.QueryEscape(query), &out)
	return out, err
}

// Guess submits username. An unknown player yields errPlayerNotFound.
func (c *APIClient) Guess(ctx context.Context, username string) (*domain.GuessResult, error) {
	var out domain.GuessResult
	if err := c.post(ctx, "/guess", map[string]string{"username": username}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Daily(ctx context.Context) (*DailyInfo, error) {
	var out DailyInfo
	if err := c.get(ctx, "/daily", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Reroll(ctx context.Context) (*RerollResult, error) {
	var out RerollResult
	if err := c.post(ctx, "/reroll", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) post(ctx context.Context, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && strings.HasSuffix(req.URL.Path, "/guess") {
		return errPlayerNotFound
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %d %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
