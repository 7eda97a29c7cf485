package main

import (
	"fmt"

	"github.com/amaumene/mellab/internal/api/handlers"
	"github.com/amaumene/mellab/internal/cache"
	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/controllers"
	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/scheduler"
	"github.com/amaumene/mellab/internal/services/gemini"
	"github.com/amaumene/mellab/internal/services/omdb"
	"github.com/amaumene/mellab/internal/services/tmdb"
	"github.com/amaumene/mellab/internal/shaper"
	"github.com/sirupsen/logrus"
)

// app holds the wired handlers and whatever must be released on exit
type app struct {
	search  *handlers.SearchHandler
	analyze *handlers.AnalyzeHandler
	health  *handlers.HealthHandler

	db        *models.Database
	scheduler *scheduler.Scheduler
}

// newApp wires services, controllers and handlers. withScheduler starts the
// bolt cache prune job; one-shot invocations skip it.
func newApp(cfg *config.Config, logger *logrus.Logger, withScheduler bool) (*app, error) {
	a := &app{}

	// 1. Initialize services
	tmdbClient := tmdb.NewClient(cfg, logger)
	omdbClient := omdb.NewClient(cfg, logger)
	geminiClient := gemini.NewClient(cfg, logger)
	if !omdbClient.Configured() {
		logger.Warn("OMDB_API_KEY not set, external ratings will be N/A")
	}

	// 2. Initialize analysis cache
	var analysisCache controllers.AnalysisCache
	switch cfg.AnalysisCache {
	case config.CacheMemory:
		analysisCache = cache.NewMemory(cfg.AnalysisCacheTTL, logger)
		logger.Info("In-memory analysis cache enabled")
	case config.CacheBolt:
		db, err := models.NewDatabase(cfg.CacheFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize analysis cache: %w", err)
		}
		a.db = db
		bolt := cache.NewBolt(db, cfg.AnalysisCacheTTL, logger)
		analysisCache = bolt
		logger.WithField("file", cfg.CacheFile).Info("On-disk analysis cache enabled")

		if withScheduler {
			a.scheduler = scheduler.NewScheduler(bolt, logger)
			if err := a.scheduler.Start(); err != nil {
				a.close()
				return nil, fmt.Errorf("failed to start scheduler: %w", err)
			}
		}
	}

	// 3. Initialize controllers
	s := shaper.New(cfg.TMDBImageBaseURL)
	resolver := controllers.NewResolver(tmdbClient, s, logger)
	detailsCtrl := controllers.NewDetailsController(tmdbClient, omdbClient, s, logger)
	analysisCtrl := controllers.NewAnalysisController(tmdbClient, geminiClient, resolver, analysisCache, logger)

	// 4. Initialize handlers
	a.search = handlers.NewSearchHandler(cfg, resolver, detailsCtrl, logger)
	a.analyze = handlers.NewAnalyzeHandler(cfg, analysisCtrl, logger)
	a.health = handlers.NewHealthHandler(logger)

	return a, nil
}

func (a *app) close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func (a *app) invoker(name string) (handlers.Invoker, error) {
	switch name {
	case "search":
		return a.search, nil
	case "analyze":
		return a.analyze, nil
	case "health":
		return a.health, nil
	}
	return nil, fmt.Errorf("unknown handler %q (want search, analyze or health)", name)
}
