package controllers

import (
	"context"
	"errors"

	"github.com/amaumene/mellab/internal/services/gemini"
	"github.com/amaumene/mellab/internal/services/omdb"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

// ErrNotFound is returned when the subject of a request cannot be resolved
var ErrNotFound = errors.New("subject not found")

// MetadataProvider is the search/detail API (TMDB)
type MetadataProvider interface {
	SearchMulti(ctx context.Context, query string, page int) (*tmdb.SearchResponse, error)
	GetMovie(ctx context.Context, id string) (*tmdb.Movie, error)
	GetTV(ctx context.Context, id string) (*tmdb.TV, error)
	GetCollection(ctx context.Context, id int) (*tmdb.Collection, error)
}

// RatingsProvider is the secondary ratings API (OMDb)
type RatingsProvider interface {
	Configured() bool
	GetByIMDbID(ctx context.Context, imdbID string) (*omdb.Title, error)
}

// TextGenerator is the generative text API (Gemini)
type TextGenerator interface {
	Generate(ctx context.Context, r gemini.Request) (string, error)
}

// notFound converts the provider's not-found sentinel into ErrNotFound
func notFound(err error) error {
	if errors.Is(err, tmdb.ErrNotFound) {
		return errors.Join(ErrNotFound, err)
	}
	return err
}
