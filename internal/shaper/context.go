package shaper

import (
	"strings"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

const unknownGenre = "Unknown Genre"

func genreList(genres []tmdb.NamedEntry) string {
	if len(genres) == 0 {
		return unknownGenre
	}
	return strings.Join(Names(genres, 0), ", ")
}

// MovieContext reduces a movie to what the analyses need
func MovieContext(m *tmdb.Movie) models.EntityContext {
	return models.EntityContext{
		TMDBID:        m.ID,
		MediaType:     models.MediaTypeMovie,
		Name:          m.Title,
		Year:          Year(m.ReleaseDate),
		SearchContext: "Movie",
		Genres:        genreList(m.Genres),
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
	}
}

// TVContext reduces a series to what the analyses need
func TVContext(t *tmdb.TV) models.EntityContext {
	return models.EntityContext{
		TMDBID:        t.ID,
		MediaType:     models.MediaTypeTV,
		Name:          t.Name,
		Year:          Year(t.FirstAirDate),
		SearchContext: "TV Series",
		Genres:        genreList(t.Genres),
		VoteAverage:   t.VoteAverage,
		VoteCount:     t.VoteCount,
	}
}

// ClampComposition bounds every intensity to 0..100
func ClampComposition(c models.CompositionReport) models.CompositionReport {
	if c.Emotional != nil {
		e := *c.Emotional
		e.Thrill, e.Glee, e.Love, e.Terror = clamp(e.Thrill), clamp(e.Glee), clamp(e.Love), clamp(e.Terror)
		c.Emotional = &e
	}
	if c.Narrative != nil {
		n := *c.Narrative
		n.Twist, n.Complexity, n.Pacing, n.Novelty = clamp(n.Twist), clamp(n.Complexity), clamp(n.Pacing), clamp(n.Novelty)
		c.Narrative = &n
	}
	if c.Content != nil {
		ct := *c.Content
		ct.Gore, ct.Nudity, ct.Profanity, ct.Substance = clamp(ct.Gore), clamp(ct.Nudity), clamp(ct.Profanity), clamp(ct.Substance)
		c.Content = &ct
	}
	if c.Technical != nil {
		t := *c.Technical
		t.Cinematography, t.Score, t.Performance, t.Immersion = clamp(t.Cinematography), clamp(t.Score), clamp(t.Performance), clamp(t.Immersion)
		c.Technical = &t
	}
	return c
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// LabFacts combines the provider's vote figures with generated audience figures
func LabFacts(ctx models.EntityContext, popcornScore, popcornVotes string) models.LabFacts {
	return models.LabFacts{
		TMDBScore:    Score(ctx.VoteAverage),
		TMDBVotes:    Votes(ctx.VoteCount),
		PopcornScore: popcornScore,
		PopcornVotes: popcornVotes,
	}
}
