package controllers

import (
	"context"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/omdb"
	"github.com/amaumene/mellab/internal/services/tmdb"
	"github.com/amaumene/mellab/internal/shaper"
	"github.com/sirupsen/logrus"
)

// DetailsController assembles the full EntityDetails of one movie or series
type DetailsController struct {
	tmdb    MetadataProvider
	ratings RatingsProvider
	shaper  *shaper.Shaper
	logger  *logrus.Logger
}

// NewDetailsController creates a new details controller
func NewDetailsController(tmdbClient MetadataProvider, ratings RatingsProvider, s *shaper.Shaper, logger *logrus.Logger) *DetailsController {
	return &DetailsController{
		tmdb:    tmdbClient,
		ratings: ratings,
		shaper:  s,
		logger:  logger,
	}
}

// Details fetches and shapes the entity identified by id
func (c *DetailsController) Details(ctx context.Context, id string, mediaType models.MediaType) (*models.EntityDetails, error) {
	if mediaType == models.MediaTypeTV {
		return c.tvDetails(ctx, id)
	}
	return c.movieDetails(ctx, id)
}

func (c *DetailsController) movieDetails(ctx context.Context, id string) (*models.EntityDetails, error) {
	movie, err := c.tmdb.GetMovie(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	rt := c.lookupRatings(ctx, movie.ExternalIDs.IMDbID)

	var collection *tmdb.Collection
	if movie.BelongsToCollection != nil {
		collection, err = c.tmdb.GetCollection(ctx, movie.BelongsToCollection.ID)
		if err != nil {
			c.logger.WithError(err).WithField("collection_id", movie.BelongsToCollection.ID).Warn("Collection lookup failed, omitting collection")
			collection = nil
		}
	}

	details := c.shaper.Movie(movie, rt, collection)
	return &details, nil
}

func (c *DetailsController) tvDetails(ctx context.Context, id string) (*models.EntityDetails, error) {
	tv, err := c.tmdb.GetTV(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	rt := c.lookupRatings(ctx, tv.ExternalIDs.IMDbID)

	details := c.shaper.TV(tv, rt)
	return &details, nil
}

// lookupRatings is secondary enrichment: every failure degrades to nil
func (c *DetailsController) lookupRatings(ctx context.Context, imdbID string) *omdb.Title {
	if imdbID == "" {
		return nil
	}
	if !c.ratings.Configured() {
		c.logger.Debug("OMDb not configured, skipping ratings")
		return nil
	}

	rt, err := c.ratings.GetByIMDbID(ctx, imdbID)
	if err != nil {
		c.logger.WithError(err).WithField("imdb_id", imdbID).Warn("Ratings lookup failed, using N/A")
		return nil
	}
	return rt
}
