package shaper

import (
	"sort"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

// FilterMedia keeps movie and series results, dropping people and anything else
func FilterMedia(results []tmdb.SearchResult) []tmdb.SearchResult {
	kept := make([]tmdb.SearchResult, 0, len(results))
	for _, r := range results {
		if r.MediaType == string(models.MediaTypeMovie) || r.MediaType == string(models.MediaTypeTV) {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortByPopularity orders results by descending popularity, keeping provider order on ties
func SortByPopularity(results []tmdb.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Popularity > results[j].Popularity
	})
}

// Candidate shapes one search result as a disambiguation entry
func (s *Shaper) Candidate(r tmdb.SearchResult) models.Candidate {
	mediaType := models.MediaTypeMovie
	if r.MediaType == string(models.MediaTypeTV) {
		mediaType = models.MediaTypeTV
	}

	return models.Candidate{
		ID:        r.ID,
		Title:     r.DisplayTitle(),
		Year:      Year(r.Date()),
		MediaType: mediaType,
		Poster:    s.ImageURL(ThumbnailSize, r.PosterPath),
		Overview:  r.Overview,
	}
}

// Candidates shapes a slice of search results
func (s *Shaper) Candidates(results []tmdb.SearchResult) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, s.Candidate(r))
	}
	return candidates
}
