package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/metrics"
	"github.com/sirupsen/logrus"
)

// ErrNoResult is returned when OMDb answers with Response "False"
var ErrNoResult = errors.New("omdb: no result")

// Rating is one entry of the Ratings array
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Title is the subset of an OMDb title record the details view uses
type Title struct {
	Response   string   `json:"Response"`
	Error      string   `json:"Error"`
	Title      string   `json:"Title"`
	Rated      string   `json:"Rated"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Language   string   `json:"Language"`
	Awards     string   `json:"Awards"`
	Metascore  string   `json:"Metascore"`
	IMDbRating string   `json:"imdbRating"`
	IMDbID     string   `json:"imdbID"`
	Ratings    []Rating `json:"Ratings"`
}

// RatingFrom returns the value reported by source, or "" when absent
func (t *Title) RatingFrom(source string) string {
	for _, r := range t.Ratings {
		if r.Source == source {
			return r.Value
		}
	}
	return ""
}

// Client wraps direct OMDb API HTTP calls
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new OMDb client
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    cfg.OMDBBaseURL,
		apiKey:     cfg.OMDBAPIKey,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GetByIMDbID looks a title up by its IMDb identifier
func (c *Client) GetByIMDbID(ctx context.Context, imdbID string) (*Title, error) {
	apiURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OMDb URL: %w", err)
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	apiURL.RawQuery = params.Encode()

	c.logger.WithField("imdb_id", imdbID).Debug("Making OMDb API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("omdb", "error").Inc()
		msg := err.Error()
		if c.apiKey != "" {
			msg = strings.ReplaceAll(msg, c.apiKey, "REDACTED")
		}
		return nil, fmt.Errorf("OMDb request failed: %s", msg)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("omdb", "error").Inc()
		return nil, fmt.Errorf("OMDb API returned status %d", resp.StatusCode)
	}

	var title Title
	if err := json.NewDecoder(resp.Body).Decode(&title); err != nil {
		metrics.ProviderRequests.WithLabelValues("omdb", "error").Inc()
		return nil, fmt.Errorf("failed to decode OMDb response: %w", err)
	}
	if title.Response == "False" {
		metrics.ProviderRequests.WithLabelValues("omdb", "not_found").Inc()
		return nil, fmt.Errorf("%w: %s", ErrNoResult, title.Error)
	}

	metrics.ProviderRequests.WithLabelValues("omdb", "ok").Inc()
	return &title, nil
}
