package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

func newAnalysisController(gen *fakeGenerator, cache AnalysisCache) (*AnalysisController, *fakeTMDB) {
	fake := &fakeTMDB{
		pages: map[int]*tmdb.SearchResponse{1: {Results: []tmdb.SearchResult{
			{ID: 1396, MediaType: "tv", Name: "Breaking Bad", FirstAirDate: "2008-01-20"},
			movieResult(27205, "Inception", "2010-07-15", 80),
		}}},
		movies: map[string]*tmdb.Movie{"27205": inception()},
		tvs: map[string]*tmdb.TV{"1396": {
			ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20",
			Genres: []tmdb.NamedEntry{{ID: 18, Name: "Drama"}},
		}},
	}
	logger := testLogger()
	resolver := NewResolver(fake, testShaper(), logger)
	return NewAnalysisController(fake, gen, resolver, cache, logger), fake
}

func inceptionContext() models.EntityContext {
	return models.EntityContext{
		TMDBID: 27205, MediaType: models.MediaTypeMovie, Name: "Inception", Year: "2010",
		SearchContext: "Movie", Genres: "Action, Science Fiction", VoteAverage: 8.369, VoteCount: 35000,
	}
}

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	return string(data)
}

func TestContextByID(t *testing.T) {
	c, _ := newAnalysisController(&fakeGenerator{}, nil)

	ec, err := c.Context(context.Background(), models.Query{ID: "27205", MediaType: models.MediaTypeMovie})
	if err != nil {
		t.Fatalf("Context failed: %v", err)
	}
	if ec.Name != "Inception" || ec.Year != "2010" || ec.SearchContext != "Movie" {
		t.Errorf("Context mismatch: %+v", ec)
	}
	if ec.Genres != "Action, Science Fiction" {
		t.Errorf("Genres mismatch: %s", ec.Genres)
	}
}

func TestContextByTitleTakesMatchType(t *testing.T) {
	c, _ := newAnalysisController(&fakeGenerator{}, nil)

	ec, err := c.Context(context.Background(), models.Query{Title: " breaking bad ", MediaType: models.MediaTypeMovie})
	if err != nil {
		t.Fatalf("Context failed: %v", err)
	}
	if ec.MediaType != models.MediaTypeTV || ec.SearchContext != "TV Series" || ec.TMDBID != 1396 {
		t.Errorf("Expected the series match, got %+v", ec)
	}
}

func TestContextNotFound(t *testing.T) {
	c, _ := newAnalysisController(&fakeGenerator{}, nil)

	if _, err := c.Context(context.Background(), models.Query{ID: "1", MediaType: models.MediaTypeTV}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeScore(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n{\"popcorn_score\": \"91%\"}\n```"}
	c, _ := newAnalysisController(gen, nil)

	got, err := c.Analyze(context.Background(), inceptionContext(), models.ModeScore, "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if s := marshal(t, got); s != `{"popcorn_score":"91%"}` {
		t.Errorf("Unexpected payload %s", s)
	}
	if len(gen.requests) != 1 || !gen.requests[0].Grounded {
		t.Fatal("Score must use a grounded request")
	}
	if !strings.Contains(gen.requests[0].Prompt, "site:rottentomatoes.com popcornmeter for 'Inception' (2010)") {
		t.Errorf("Prompt is missing the grounding query:\n%s", gen.requests[0].Prompt)
	}
}

func TestAnalyzeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		mode models.Mode
		gen  *fakeGenerator
		want string
	}{
		{"score error", models.ModeScore, &fakeGenerator{err: errors.New("quota")}, `{"popcorn_score":"N/A"}`},
		{"score garbage", models.ModeScore, &fakeGenerator{text: "I could not find it."}, `{"popcorn_score":"N/A"}`},
		{"score null", models.ModeScore, &fakeGenerator{text: "null"}, `{"popcorn_score":"N/A"}`},
		{"score empty object", models.ModeScore, &fakeGenerator{text: "{}"}, `{"popcorn_score":"N/A"}`},
		{"score says N/A", models.ModeScore, &fakeGenerator{text: `{"popcorn_score":"N/A"}`}, `{"popcorn_score":"N/A"}`},
		{"composition empty object", models.ModeComposition, &fakeGenerator{text: "```json\n{}\n```"}, `{}`},
		{"synopsis error", models.ModeSynopsis, &fakeGenerator{err: errors.New("blocked")}, `{"full_plot":"Data Restricted.","detailed_ending":"Redacted."}`},
		{"composition error", models.ModeComposition, &fakeGenerator{err: errors.New("timeout")}, `{}`},
		{"composition floats", models.ModeComposition, &fakeGenerator{text: `{"emotional":{"thrill":8.5}}`}, `{}`},
		{
			"report error", models.ModeReport, &fakeGenerator{err: errors.New("quota")},
			`{"facts":{"tmdb_score":"8.4/10","tmdb_votes":"35,000 Votes","popcorn_score":"N/A","popcorn_votes":"N/A"},"result":{"verdict":"Analysis Failed","suggestion":"N/A"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMapCache()
			c, _ := newAnalysisController(tt.gen, cache)

			got, err := c.Analyze(context.Background(), inceptionContext(), tt.mode, "")
			if err != nil {
				t.Fatalf("Fallbacks must not error: %v", err)
			}
			if s := marshal(t, got); s != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, s)
			}
			if len(cache.entries) != 0 {
				t.Error("Fallback payloads must not be cached")
			}
		})
	}
}

func TestAnalyzeCompositionClamps(t *testing.T) {
	gen := &fakeGenerator{text: `{"emotional":{"thrill":140,"glee":-3,"love":20,"terror":50},"technical":{"cinematography":95,"score":99,"performance":90,"immersion":100}}`}
	c, _ := newAnalysisController(gen, nil)

	got, err := c.Analyze(context.Background(), inceptionContext(), models.ModeComposition, "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	report := got.(models.CompositionReport)
	if report.Emotional.Thrill != 100 || report.Emotional.Glee != 0 {
		t.Errorf("Intensities must be clamped: %+v", report.Emotional)
	}
	if report.Narrative != nil || report.Technical == nil {
		t.Error("Categories should be kept exactly as generated")
	}
}

func TestAnalyzeReport(t *testing.T) {
	gen := &fakeGenerator{text: `{"popcorn_score":"91%","popcorn_votes":"250,000+ Ratings","verdict":"Certified mind-bender","suggestion":"Watch it twice."}`}
	c, _ := newAnalysisController(gen, nil)

	got, err := c.Analyze(context.Background(), inceptionContext(), models.ModeReport, "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	report := got.(models.LabReport)
	if report.Facts.TMDBScore != "8.4/10" || report.Facts.TMDBVotes != "35,000 Votes" {
		t.Errorf("Provider facts mismatch: %+v", report.Facts)
	}
	if report.Facts.PopcornScore != "91%" || report.Result.Verdict != "Certified mind-bender" {
		t.Errorf("Generated facts mismatch: %+v", report)
	}
}

func TestAnalyzeSynopsisSeason(t *testing.T) {
	gen := &fakeGenerator{text: `{"full_plot":"**PHASE ONE:** ...","detailed_ending":"**FILE CLOSED:** ..."}`}
	c, _ := newAnalysisController(gen, nil)

	ec := models.EntityContext{TMDBID: 1396, MediaType: models.MediaTypeTV, Name: "Breaking Bad", Year: "2008", SearchContext: "TV Series", Genres: "Drama"}
	if _, err := c.Analyze(context.Background(), ec, models.ModeSynopsis, "Season 5"); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	prompt := gen.requests[0].Prompt
	if !strings.Contains(prompt, "Season 5 of the TV Series 'Breaking Bad'") {
		t.Errorf("Season must retarget the prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, ToneFor("Drama")) {
		t.Error("Drama tone expected")
	}
	if gen.requests[0].Grounded {
		t.Error("Synopsis must not be grounded")
	}
}

func TestAnalyzeCachesSuccess(t *testing.T) {
	gen := &fakeGenerator{text: `{"popcorn_score":"91%"}`}
	cache := newMapCache()
	c, _ := newAnalysisController(gen, cache)
	ec := inceptionContext()

	first, err := c.Analyze(context.Background(), ec, models.ModeScore, "ignored for movies")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if _, ok := cache.entries["movie:27205:score:"]; !ok {
		t.Fatalf("Expected cache entry, have %v", cache.entries)
	}

	second, err := c.Analyze(context.Background(), ec, models.ModeScore, "")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(gen.requests) != 1 {
		t.Errorf("Cached result must not regenerate, got %d requests", len(gen.requests))
	}
	if marshal(t, first) != marshal(t, second) {
		t.Errorf("Cached payload differs: %s vs %s", marshal(t, first), marshal(t, second))
	}
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		genres string
		want   string
	}{
		{"Comedy, Drama", tones[0].guide},
		{"Horror", tones[1].guide},
		{"Science Fiction, Adventure", tones[2].guide},
		{"Romance", tones[3].guide},
		{"Documentary", defaultTone},
		{"Unknown Genre", defaultTone},
	}

	for _, tt := range tests {
		if got := ToneFor(tt.genres); got != tt.want {
			t.Errorf("ToneFor(%q) = %q, want %q", tt.genres, got, tt.want)
		}
	}
}
