package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/gemini"
	"github.com/amaumene/mellab/internal/services/omdb"
	"github.com/amaumene/mellab/internal/services/tmdb"
	"github.com/amaumene/mellab/internal/shaper"
	"github.com/amaumene/mellab/internal/utils"
	"github.com/sirupsen/logrus"
)

type fakeTMDB struct {
	pages       map[int]*tmdb.SearchResponse
	movies      map[string]*tmdb.Movie
	tvs         map[string]*tmdb.TV
	collections map[int]*tmdb.Collection
	searchErr   error
	maxPage     int
	searches    []int
}

func (f *fakeTMDB) SearchMulti(ctx context.Context, query string, page int) (*tmdb.SearchResponse, error) {
	f.searches = append(f.searches, page)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.maxPage > 0 && page > f.maxPage {
		return nil, fmt.Errorf("multi search failed: %w: status 400", tmdb.ErrInvalidPage)
	}
	if resp, ok := f.pages[page]; ok {
		return resp, nil
	}
	return &tmdb.SearchResponse{Page: page}, nil
}

func (f *fakeTMDB) GetMovie(ctx context.Context, id string) (*tmdb.Movie, error) {
	if m, ok := f.movies[id]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("movie %s: %w", id, tmdb.ErrNotFound)
}

func (f *fakeTMDB) GetTV(ctx context.Context, id string) (*tmdb.TV, error) {
	if t, ok := f.tvs[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("tv %s: %w", id, tmdb.ErrNotFound)
}

func (f *fakeTMDB) GetCollection(ctx context.Context, id int) (*tmdb.Collection, error) {
	if c, ok := f.collections[id]; ok {
		return c, nil
	}
	return nil, errors.New("collection unavailable")
}

type fakeRatings struct {
	configured bool
	titles     map[string]*omdb.Title
	calls      int
}

func (f *fakeRatings) Configured() bool { return f.configured }

func (f *fakeRatings) GetByIMDbID(ctx context.Context, imdbID string) (*omdb.Title, error) {
	f.calls++
	if t, ok := f.titles[imdbID]; ok {
		return t, nil
	}
	return nil, omdb.ErrNoResult
}

type fakeGenerator struct {
	text     string
	err      error
	requests []gemini.Request
}

func (f *fakeGenerator) Generate(ctx context.Context, r gemini.Request) (string, error) {
	f.requests = append(f.requests, r)
	return f.text, f.err
}

type mapCache struct {
	entries map[string][]byte
	modes   map[string]models.Mode
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, modes: map[string]models.Mode{}}
}

func (m *mapCache) Get(key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mapCache) Set(key string, mode models.Mode, payload []byte) {
	m.entries[key] = payload
	m.modes[key] = mode
}

func testLogger() *logrus.Logger {
	return utils.NewLoggerTo(io.Discard, "error")
}

func testShaper() *shaper.Shaper {
	return shaper.New("https://image.tmdb.org/t/p")
}

func movieResult(id int, title, date string, popularity float64) tmdb.SearchResult {
	return tmdb.SearchResult{ID: id, MediaType: "movie", Title: title, ReleaseDate: date, Popularity: popularity}
}
