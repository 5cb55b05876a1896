package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"folio/internal/models"
)

// ProjectsPath is the fixed relative path of the project data file on the
// portfolio site.
const ProjectsPath = "/api/projects.json"

// Client handles communication with the portfolio site
type Client struct {
	// Base URL of the portfolio site
	BaseURL string

	// HTTP client with a timeout
	client *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProjects performs the one-shot GET of the project data file and
// decodes it into the ordered project collection. Any non-200 status,
// transport error, or malformed body is returned as an error; retry policy
// is the caller's concern (there is none).
func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+ProjectsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Printf("Warning: Failed to close response body: %v\n", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch projects with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var projects []models.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return projects, nil
}
