package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/controllers"
	"github.com/amaumene/mellab/internal/models"
	"github.com/sirupsen/logrus"
)

// SearchHandler serves entity details, or a candidate list for ambiguous titles
type SearchHandler struct {
	cfg      *config.Config
	resolver *controllers.Resolver
	details  *controllers.DetailsController
	logger   *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(cfg *config.Config, resolver *controllers.Resolver, details *controllers.DetailsController, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		cfg:      cfg,
		resolver: resolver,
		details:  details,
		logger:   logger,
	}
}

// Invoke runs one search invocation
func (h *SearchHandler) Invoke(ctx context.Context, params map[string]string) (resp models.Response) {
	defer recoverResponse(&resp, h.logger)

	q := models.ParseQuery(params)
	if msg, ok := validationMessage(q, "Title", "ID"); !ok {
		return models.NewErrorResponse(http.StatusBadRequest, msg)
	}

	if h.cfg.TMDBAPIKey == "" {
		h.logger.Error("TMDB API key is not configured")
		return models.NewErrorResponse(http.StatusInternalServerError, msgConfiguration)
	}

	log := h.logger.WithFields(logrus.Fields{
		"title": q.Title,
		"id":    q.ID,
		"type":  q.MediaType,
		"page":  q.Page,
	})

	if q.ID != "" {
		log.Info("Fetching details")
		details, err := h.details.Details(ctx, q.ID, q.MediaType)
		if err != nil {
			return errorResponse(err, h.logger)
		}
		return models.NewResponse(http.StatusOK, details)
	}

	log.Info("Searching")
	res, err := h.resolver.Search(ctx, q.Title, q.Page)
	if err != nil {
		return errorResponse(err, h.logger)
	}

	if res.Match == nil {
		return models.NewResponse(http.StatusOK, res.Page)
	}

	details, err := h.details.Details(ctx, strconv.Itoa(res.Match.ID), models.ParseMediaType(res.Match.MediaType))
	if err != nil {
		return errorResponse(err, h.logger)
	}
	return models.NewResponse(http.StatusOK, details)
}

// ServeHTTP handles the search endpoint
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Serve(w, r, h)
}
