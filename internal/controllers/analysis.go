package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/amaumene/mellab/internal/metrics"
	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/gemini"
	"github.com/amaumene/mellab/internal/shaper"
	"github.com/sirupsen/logrus"
)

const analysisFailed = "Analysis Failed"

// AnalysisCache stores successful analysis payloads. Implementations log and
// swallow their own failures.
type AnalysisCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, mode models.Mode, payload []byte)
}

// AnalysisController resolves an entity and runs one generative analysis on it
type AnalysisController struct {
	tmdb      MetadataProvider
	generator TextGenerator
	resolver  *Resolver
	cache     AnalysisCache
	logger    *logrus.Logger
}

// NewAnalysisController creates a new analysis controller. cache may be nil.
func NewAnalysisController(tmdbClient MetadataProvider, generator TextGenerator, resolver *Resolver, cache AnalysisCache, logger *logrus.Logger) *AnalysisController {
	return &AnalysisController{
		tmdb:      tmdbClient,
		generator: generator,
		resolver:  resolver,
		cache:     cache,
		logger:    logger,
	}
}

// CacheKey identifies one analysis result
func CacheKey(ec models.EntityContext, mode models.Mode, season string) string {
	return fmt.Sprintf("%s:%d:%s:%s", ec.MediaType, ec.TMDBID, mode, season)
}

// Context resolves the entity named by q. An explicit id wins over the title.
func (c *AnalysisController) Context(ctx context.Context, q models.Query) (models.EntityContext, error) {
	id, mediaType := q.ID, q.MediaType

	if id == "" {
		match, err := c.resolver.Resolve(ctx, q.Title)
		if err != nil {
			return models.EntityContext{}, err
		}
		id = strconv.Itoa(match.ID)
		mediaType = models.ParseMediaType(match.MediaType)
	}

	if mediaType == models.MediaTypeTV {
		tv, err := c.tmdb.GetTV(ctx, id)
		if err != nil {
			return models.EntityContext{}, notFound(err)
		}
		return shaper.TVContext(tv), nil
	}

	movie, err := c.tmdb.GetMovie(ctx, id)
	if err != nil {
		return models.EntityContext{}, notFound(err)
	}
	return shaper.MovieContext(movie), nil
}

// Analyze runs mode against ec. Generation faults never fail the call: the
// mode's fallback payload is returned instead.
func (c *AnalysisController) Analyze(ctx context.Context, ec models.EntityContext, mode models.Mode, season string) (interface{}, error) {
	if mode != models.ModeSynopsis || ec.MediaType != models.MediaTypeTV {
		season = ""
	}
	key := CacheKey(ec, mode, season)

	if c.cache != nil {
		if payload, ok := c.cache.Get(key); ok {
			c.logger.WithField("key", key).Debug("Analysis cache hit")
			return json.RawMessage(payload), nil
		}
	}

	switch mode {
	case models.ModeScore:
		fallback := models.ScoreReport{PopcornScore: models.NotAvailable}
		return analyze(ctx, c, key, mode, gemini.Request{Prompt: scorePrompt(ec), Grounded: true}, fallback, untrusted(fallback)), nil

	case models.ModeSynopsis:
		fallback := models.SynopsisReport{FullPlot: "Data Restricted.", DetailedEnding: "Redacted."}
		return analyze(ctx, c, key, mode, gemini.Request{Prompt: synopsisPrompt(ec, season)}, fallback, untrusted(fallback)), nil

	case models.ModeComposition:
		parse := func(text string) (models.CompositionReport, error) {
			report, err := shaper.ParseUntrusted(text, models.CompositionReport{})
			return shaper.ClampComposition(report), err
		}
		return analyze(ctx, c, key, mode, gemini.Request{Prompt: compositionPrompt(ec)}, models.CompositionReport{}, parse), nil

	case models.ModeReport:
		fallback := models.LabReport{
			Facts:  shaper.LabFacts(ec, models.NotAvailable, models.NotAvailable),
			Result: models.LabResult{Verdict: analysisFailed, Suggestion: models.NotAvailable},
		}
		return analyze(ctx, c, key, mode, gemini.Request{Prompt: reportPrompt(ec), Grounded: true}, fallback, labParser(ec)), nil
	}

	return nil, fmt.Errorf("unsupported analysis mode %q", mode)
}

// labPayload is the flat shape the report prompt asks for
type labPayload struct {
	PopcornScore string `json:"popcorn_score"`
	PopcornVotes string `json:"popcorn_votes"`
	Verdict      string `json:"verdict"`
	Suggestion   string `json:"suggestion"`
}

func untrusted[T any](fallback T) func(string) (T, error) {
	return func(text string) (T, error) {
		return shaper.ParseUntrusted(text, fallback)
	}
}

// labParser nests the flat generated payload under the provider's own figures
func labParser(ec models.EntityContext) func(string) (models.LabReport, error) {
	return func(text string) (models.LabReport, error) {
		flat, err := shaper.ParseUntrusted(text, labPayload{
			PopcornScore: models.NotAvailable,
			PopcornVotes: models.NotAvailable,
			Verdict:      analysisFailed,
			Suggestion:   models.NotAvailable,
		})
		if err != nil {
			return models.LabReport{}, err
		}
		return models.LabReport{
			Facts:  shaper.LabFacts(ec, flat.PopcornScore, flat.PopcornVotes),
			Result: models.LabResult{Verdict: flat.Verdict, Suggestion: flat.Suggestion},
		}, nil
	}
}

// analyze generates, parses and caches one payload of type T
func analyze[T any](ctx context.Context, c *AnalysisController, key string, mode models.Mode, req gemini.Request, fallback T, parse func(string) (T, error)) T {
	log := c.logger.WithFields(logrus.Fields{"mode": mode, "key": key})

	text, err := c.generator.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Warn("Generation failed, using fallback")
		metrics.AnalysisFallbacks.WithLabelValues(string(mode)).Inc()
		return fallback
	}

	result, err := parse(text)
	if err != nil {
		log.WithError(err).Warn("Unparsable generated payload, using fallback")
		metrics.AnalysisFallbacks.WithLabelValues(string(mode)).Inc()
		return fallback
	}

	if reflect.DeepEqual(result, fallback) {
		log.Warn("Generated payload carries no data, using fallback")
		metrics.AnalysisFallbacks.WithLabelValues(string(mode)).Inc()
		return fallback
	}

	if c.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			c.cache.Set(key, mode, payload)
		}
	}
	return result
}
