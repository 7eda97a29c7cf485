package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	movieAppend = "credits,external_ids,release_dates,videos,keywords,recommendations"
	tvAppend    = "credits,external_ids,videos,keywords,recommendations,content_ratings"
)

// ErrNotFound is returned when TMDB reports the requested resource as unknown
var ErrNotFound = errors.New("tmdb: resource not found")

// ErrInvalidPage is returned when TMDB rejects a request parameter, notably a
// search page past its last page (status_code 22)
var ErrInvalidPage = errors.New("tmdb: invalid request parameters")

// Client wraps direct TMDB v3 API HTTP calls
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new TMDB client. The API key may be empty; callers check
// it before issuing requests.
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.TMDBBaseURL, "/"),
		apiKey:     cfg.TMDBAPIKey,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// SearchMulti searches movies, series and people in one call
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/search/multi", params, &resp); err != nil {
		return nil, fmt.Errorf("multi search failed: %w", err)
	}
	return &resp, nil
}

// GetMovie fetches a movie with every block the details view needs
func (c *Client) GetMovie(ctx context.Context, id string) (*Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", movieAppend)

	var movie Movie
	if err := c.get(ctx, "/movie/"+url.PathEscape(id), params, &movie); err != nil {
		return nil, fmt.Errorf("movie %s: %w", id, err)
	}
	return &movie, nil
}

// GetTV fetches a series with every block the details view needs
func (c *Client) GetTV(ctx context.Context, id string) (*TV, error) {
	params := url.Values{}
	params.Set("append_to_response", tvAppend)

	var tv TV
	if err := c.get(ctx, "/tv/"+url.PathEscape(id), params, &tv); err != nil {
		return nil, fmt.Errorf("tv %s: %w", id, err)
	}
	return &tv, nil
}

// GetCollection fetches a movie collection and its parts
func (c *Client) GetCollection(ctx context.Context, id int) (*Collection, error) {
	var collection Collection
	if err := c.get(ctx, "/collection/"+strconv.Itoa(id), url.Values{}, &collection); err != nil {
		return nil, fmt.Errorf("collection %d: %w", id, err)
	}
	return &collection, nil
}

// get performs a GET against path and decodes the JSON body into result
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	c.logger.WithFields(logrus.Fields{
		"path":   path,
		"params": params.Encode(),
	}).Debug("Making TMDB API request")

	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("tmdb", "error").Inc()
		return fmt.Errorf("request failed: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.ProviderRequests.WithLabelValues("tmdb", "not_found").Inc()
		return ErrNotFound
	}
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
		metrics.ProviderRequests.WithLabelValues("tmdb", "invalid").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrInvalidPage, resp.StatusCode, string(body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ProviderRequests.WithLabelValues("tmdb", "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		metrics.ProviderRequests.WithLabelValues("tmdb", "error").Inc()
		return fmt.Errorf("failed to decode response: %w", err)
	}

	metrics.ProviderRequests.WithLabelValues("tmdb", "ok").Inc()
	return nil
}

// redact strips the API key from transport errors, which embed the request URL
func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), secret, "REDACTED"))
}
