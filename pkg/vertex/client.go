package vertex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	defaultLocation = "us-central1"
	defaultModel    = "gemini-2.5-pro"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// Client is a Vertex AI generateContent client authenticated with a
// Google service-account credentials file.
type Client struct {
	projectID  string
	location   string
	model      string
	apiURL     string
	httpClient *http.Client
}

// serviceAccountKey is the subset of the credentials JSON we read directly.
type serviceAccountKey struct {
	ProjectID string `json:"project_id"`
}

// NewClient builds a client around an already-authenticated HTTP client.
// Prefer NewClientFromCredentialsFile in production wiring.
func NewClient(hc *http.Client, projectID, location, model string) *Client {
	if location == "" {
		location = defaultLocation
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		projectID:  projectID,
		location:   location,
		model:      model,
		apiURL:     fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1", location),
		httpClient: hc,
	}
}

// NewClientFromCredentialsFile builds a client from a service-account JSON file.
// When projectID is empty it is taken from the credentials file.
func NewClientFromCredentialsFile(ctx context.Context, path, projectID, location, model string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	if projectID == "" {
		var key serviceAccountKey
		if err := json.Unmarshal(data, &key); err == nil {
			projectID = key.ProjectID
		}
	}
	if projectID == "" {
		projectID = creds.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("project id not found in config or credentials file")
	}

	if location == "" {
		location = defaultLocation
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		projectID:  projectID,
		location:   location,
		model:      model,
		apiURL:     fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1", location),
		httpClient: oauth2.NewClient(ctx, creds.TokenSource),
	}, nil
}

// SetAPIURL overrides the API base URL (used in tests).
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetHTTPClient overrides the underlying HTTP client (used in tests).
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// Model returns the model identifier in use.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a content generation request to Vertex AI.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		c.apiURL, c.projectID, c.location, c.model)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call vertex API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vertex API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode vertex response: %w", err)
	}

	return &result, nil
}
