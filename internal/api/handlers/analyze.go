package handlers

import (
	"context"
	"net/http"

	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/controllers"
	"github.com/amaumene/mellab/internal/models"
	"github.com/sirupsen/logrus"
)

// AnalyzeHandler serves generated analyses of one entity
type AnalyzeHandler struct {
	cfg      *config.Config
	analysis *controllers.AnalysisController
	logger   *logrus.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(cfg *config.Config, analysis *controllers.AnalysisController, logger *logrus.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:      cfg,
		analysis: analysis,
		logger:   logger,
	}
}

// Invoke runs one analyze invocation
func (h *AnalyzeHandler) Invoke(ctx context.Context, params map[string]string) (resp models.Response) {
	defer recoverResponse(&resp, h.logger)

	q := models.ParseQuery(params)
	if msg, ok := validationMessage(q); !ok {
		return models.NewErrorResponse(http.StatusBadRequest, msg)
	}

	if h.cfg.TMDBAPIKey == "" || h.cfg.GeminiAPIKey == "" {
		h.logger.Error("TMDB or Gemini API key is not configured")
		return models.NewErrorResponse(http.StatusInternalServerError, msgConfiguration)
	}

	ec, err := h.analysis.Context(ctx, q)
	if err != nil {
		return errorResponse(err, h.logger)
	}

	h.logger.WithFields(logrus.Fields{
		"tmdb_id": ec.TMDBID,
		"type":    ec.MediaType,
		"name":    ec.Name,
		"mode":    q.Mode,
		"season":  q.Season,
	}).Info("Running analysis")

	report, err := h.analysis.Analyze(ctx, ec, q.Mode, q.Season)
	if err != nil {
		return errorResponse(err, h.logger)
	}
	return models.NewResponse(http.StatusOK, report)
}

// ServeHTTP handles the analyze endpoint
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Serve(w, r, h)
}
