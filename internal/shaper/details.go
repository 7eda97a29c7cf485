package shaper

import (
	"strconv"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/omdb"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

const seasonManifest = "Season Manifest"

// ratings flattens the optional OMDb record; nil yields "N/A" everywhere
type ratings struct {
	rated, director, writer, awards string
	imdb, metacritic, rotten        string
}

func ratingsFrom(t *omdb.Title) ratings {
	if t == nil {
		return ratings{
			rated: models.NotAvailable, director: models.NotAvailable, writer: models.NotAvailable,
			awards: models.NotAvailable, imdb: models.NotAvailable, metacritic: models.NotAvailable,
			rotten: models.NotAvailable,
		}
	}
	return ratings{
		rated:      OrNA(t.Rated),
		director:   OrNA(t.Director),
		writer:     OrNA(t.Writer),
		awards:     OrNA(t.Awards),
		imdb:       OrNA(t.IMDbRating),
		metacritic: OrNA(t.Metascore),
		rotten:     OrNA(t.RatingFrom("Rotten Tomatoes")),
	}
}

// Movie shapes a movie. ratings and collection may be nil when their lookups
// were skipped or failed.
func (s *Shaper) Movie(m *tmdb.Movie, rt *omdb.Title, collection *tmdb.Collection) models.EntityDetails {
	r := ratingsFrom(rt)
	director := r.director

	details := models.EntityDetails{
		TMDBID:         m.ID,
		MediaType:      models.MediaTypeMovie,
		Title:          m.Title,
		Tagline:        m.Tagline,
		Year:           Year(m.ReleaseDate),
		Rated:          r.rated,
		RuntimeMinutes: m.Runtime,
		Plot:           m.Overview,
		Poster:         s.ImageURL(PosterSize, m.PosterPath),
		VoteAverage:    m.VoteAverage,
		VoteCount:      m.VoteCount,
		Scores: models.Scores{
			IMDb:                 r.imdb,
			Metacritic:           r.metacritic,
			RottenTomatoesCritic: r.rotten,
		},
		Awards:           r.awards,
		Language:         Language(m.OriginalLanguage),
		Budget:           Currency(m.Budget),
		Revenue:          Currency(m.Revenue),
		Director:         &director,
		Writer:           r.writer,
		Production:       Names(m.ProductionCompanies, maxCompanies),
		Producers:        CrewByJob(m.Credits.Crew, "Producer", maxCrewPerRole),
		Cinematographers: CrewByJob(m.Credits.Crew, "Director of Photography", maxCrewPerRole),
		Composers:        Composers(m.Credits.Crew),
		Cast:             s.Cast(m.Credits.Cast),
		Genres:           Names(m.Genres, 0),
		TrailerKey:       Trailer(m.Videos.Results),
		Keywords:         Names(m.Keywords.Keywords, maxKeywords),
		Recommendations:  s.recommendations(m.Recommendations.Results, models.MediaTypeMovie),
	}

	if m.BelongsToCollection != nil && collection != nil {
		details.Collection = s.Collection(m.BelongsToCollection.Name, collection)
	}

	return details
}

// TV shapes a series. ratings may be nil.
func (s *Shaper) TV(t *tmdb.TV, rt *omdb.Title) models.EntityDetails {
	r := ratingsFrom(rt)

	rated := r.rated
	if rated == models.NotAvailable {
		rated = usRating(t.ContentRatings.Results)
	}

	return models.EntityDetails{
		TMDBID:    t.ID,
		MediaType: models.MediaTypeTV,
		Title:     t.Name,
		Tagline:   t.Tagline,
		Year:      Timeline(t.FirstAirDate, t.LastAirDate, t.Status),
		Rated:     rated,
		Status:    t.Status,
		Plot:      t.Overview,
		Poster:    s.ImageURL(PosterSize, t.PosterPath),

		VoteAverage: t.VoteAverage,
		VoteCount:   t.VoteCount,
		Scores: models.Scores{
			IMDb:                 r.imdb,
			Metacritic:           models.NotAvailable,
			RottenTomatoesCritic: r.rotten,
		},
		Awards:   r.awards,
		Language: Language(t.OriginalLanguage),
		Budget:   models.NotAvailable,
		Revenue:  models.NotAvailable,

		Director:   nil,
		Creators:   Names(t.CreatedBy, 0),
		Writer:     r.writer,
		Networks:   Names(t.Networks, 0),
		Production: Names(t.ProductionCompanies, maxCompanies),
		Producers:  CrewByJob(t.Credits.Crew, "Executive Producer", maxExecProducers),

		Cast:            s.Cast(t.Credits.Cast),
		Genres:          Names(t.Genres, 0),
		Collection:      &models.Collection{Name: seasonManifest, Parts: s.Seasons(t.Seasons)},
		TrailerKey:      Trailer(t.Videos.Results),
		Keywords:        Names(t.Keywords.Results, maxKeywords),
		Recommendations: s.recommendations(t.Recommendations.Results, models.MediaTypeTV),
	}
}

// Timeline renders a series run as "2008 - 2013", or "2019 - Present" unless it has ended
func Timeline(firstAirDate, lastAirDate, status string) string {
	end := "Present"
	if status == "Ended" {
		end = Year(lastAirDate)
	}
	return Year(firstAirDate) + " - " + end
}

// Cast keeps the first billed performers with thumbnail portraits
func (s *Shaper) Cast(cast []tmdb.CastCredit) []models.CastMember {
	n := len(cast)
	if n > maxCast {
		n = maxCast
	}

	members := make([]models.CastMember, 0, n)
	for _, c := range cast[:n] {
		members = append(members, models.CastMember{
			Name:        c.Name,
			ProfilePath: s.ImageURL(ThumbnailSize, c.ProfilePath),
		})
	}
	return members
}

// Collection shapes a movie collection with its parts sorted by release year
func (s *Shaper) Collection(name string, c *tmdb.Collection) *models.Collection {
	parts := make([]models.Related, 0, len(c.Parts))
	for _, p := range c.Parts {
		parts = append(parts, models.Related{
			ID:        p.ID,
			Title:     p.Title,
			Year:      Year(p.ReleaseDate),
			Poster:    s.ImageURL(ThumbnailSize, p.PosterPath),
			MediaType: models.MediaTypeMovie,
		})
	}
	SortByYear(parts)

	return &models.Collection{Name: name, Parts: parts}
}

// Seasons builds the season manifest, dropping specials (season 0 and below)
func (s *Shaper) Seasons(seasons []tmdb.Season) []models.Related {
	parts := make([]models.Related, 0, len(seasons))
	for _, season := range seasons {
		if season.SeasonNumber <= 0 {
			continue
		}
		parts = append(parts, models.Related{
			ID:        season.ID,
			Title:     season.Name,
			Year:      Year(season.AirDate) + " | " + strconv.Itoa(season.EpisodeCount) + " Eps",
			Poster:    s.ImageURL(ThumbnailSize, season.PosterPath),
			MediaType: models.MediaTypeTVSeason,
		})
	}
	SortByYear(parts)

	return parts
}

func (s *Shaper) recommendations(recs []tmdb.Recommendation, mediaType models.MediaType) []models.Related {
	n := len(recs)
	if n > maxRecommendations {
		n = maxRecommendations
	}

	related := make([]models.Related, 0, n)
	for _, r := range recs[:n] {
		title, date := r.Title, r.ReleaseDate
		if mediaType == models.MediaTypeTV {
			title, date = r.Name, r.FirstAirDate
		}
		related = append(related, models.Related{
			ID:        r.ID,
			Title:     title,
			Year:      Year(date),
			Poster:    s.ImageURL(ThumbnailSize, r.PosterPath),
			MediaType: mediaType,
		})
	}
	return related
}

func usRating(ratings []tmdb.ContentRating) string {
	for _, r := range ratings {
		if r.ISO31661 == "US" && r.Rating != "" {
			return r.Rating
		}
	}
	return models.NotAvailable
}
