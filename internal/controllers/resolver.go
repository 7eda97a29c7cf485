package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
	"github.com/amaumene/mellab/internal/shaper"
	"github.com/sirupsen/logrus"
)

// candidatesPerPage is the size of a logical page; two fit in one provider page
const candidatesPerPage = 10

// Resolver turns a free-text title into one entity or a page of candidates
type Resolver struct {
	tmdb   MetadataProvider
	shaper *shaper.Shaper
	logger *logrus.Logger
}

// NewResolver creates a new candidate resolver
func NewResolver(tmdbClient MetadataProvider, s *shaper.Shaper, logger *logrus.Logger) *Resolver {
	return &Resolver{
		tmdb:   tmdbClient,
		shaper: s,
		logger: logger,
	}
}

// Resolution is the outcome of a paginated search: exactly one of Match and Page is set
type Resolution struct {
	Match *tmdb.SearchResult
	Page  *models.CandidatePage
}

// BestMatch returns the result whose title equals the query (trimmed,
// case-insensitive), scanning in provider order, or the first result otherwise.
// results must not be empty.
func BestMatch(results []tmdb.SearchResult, query string) tmdb.SearchResult {
	want := strings.ToLower(strings.TrimSpace(query))
	for _, r := range results {
		if strings.ToLower(strings.TrimSpace(r.DisplayTitle())) == want {
			return r
		}
	}
	return results[0]
}

// PageWindow maps a logical page to the provider page holding it and the
// half of that page's results it covers
func PageWindow(page int) (providerPage, start, end int) {
	providerPage = (page-1)/2 + 1
	if page%2 == 0 {
		return providerPage, candidatesPerPage, 2 * candidatesPerPage
	}
	return providerPage, 0, candidatesPerPage
}

// Resolve searches title and picks the best movie or series match
func (r *Resolver) Resolve(ctx context.Context, title string) (*tmdb.SearchResult, error) {
	resp, err := r.tmdb.SearchMulti(ctx, title, 1)
	if err != nil {
		return nil, err
	}

	results := shaper.FilterMedia(resp.Results)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no results for %q", ErrNotFound, title)
	}

	match := BestMatch(results, title)
	r.logger.WithFields(logrus.Fields{
		"query":      title,
		"results":    len(results),
		"match_id":   match.ID,
		"match_type": match.MediaType,
	}).Debug("Resolved title")

	return &match, nil
}

// Search runs the paginated list flow for a logical page
func (r *Resolver) Search(ctx context.Context, title string, page int) (*Resolution, error) {
	providerPage, start, end := PageWindow(page)

	resp, err := r.tmdb.SearchMulti(ctx, title, providerPage)
	if err != nil {
		if page > 1 && errors.Is(err, tmdb.ErrInvalidPage) {
			r.logger.WithError(err).WithField("page", page).Debug("Page beyond provider range")
			return &Resolution{Page: &models.CandidatePage{
				Candidates: []models.Candidate{},
				Page:       page,
			}}, nil
		}
		return nil, err
	}

	results := shaper.FilterMedia(resp.Results)
	shaper.SortByPopularity(results)

	r.logger.WithFields(logrus.Fields{
		"query":         title,
		"page":          page,
		"provider_page": providerPage,
		"results":       len(results),
	}).Debug("Search page fetched")

	if page == 1 {
		switch len(results) {
		case 0:
			return nil, fmt.Errorf("%w: no results for %q", ErrNotFound, title)
		case 1:
			return &Resolution{Match: &results[0]}, nil
		}
	}

	if start > len(results) {
		start = len(results)
	}
	if end > len(results) {
		end = len(results)
	}

	return &Resolution{Page: &models.CandidatePage{
		Candidates: r.shaper.Candidates(results[start:end]),
		Page:       page,
		TotalPages: resp.TotalPages * 2,
	}}, nil
}
