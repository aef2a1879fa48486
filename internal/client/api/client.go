// Package api is a thin client for the AuditKeeper HTTP API. It keeps the
// access token obtained at login and attaches it to every subsequent call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// apiError carries the detail string the server attached to a non-2xx
// response.
type apiError struct {
	StatusCode int
	Detail     string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// do sends a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses are turned into *apiError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		detail := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			detail = e.Detail
		}
		return &apiError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account and stores the returned access token on the
// client.
func (c *Client) Register(ctx context.Context, email, password, name string) error {
	in := map[string]string{"email": email, "password": password, "name": name}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return err
	}
	c.token = out.AccessToken
	return nil
}

// Login authenticates and stores the returned access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return err
	}
	c.token = out.AccessToken
	return nil
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (models.Project, error) {
	in := models.Project{Name: name, Description: description}
	var out models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", in, &out); err != nil {
		return models.Project{}, err
	}
	return out, nil
}

// PresignUpload asks the server for a fresh storage key and a presigned PUT
// URL for it.
func (c *Client) PresignUpload(ctx context.Context) (string, string, error) {
	var out struct {
		Key       string `json:"key"`
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/storage/upload-url", nil, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.UploadURL, nil
}

func (c *Client) CreateDocument(ctx context.Context, d models.Document) (models.Document, error) {
	var out models.Document
	if err := c.do(ctx, http.MethodPost, "/documents", d, &out); err != nil {
		return models.Document{}, err
	}
	return out, nil
}

// Health calls the unauthenticated health endpoint and returns its raw body.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/test", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
