package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"spidergraph/internal/domain"
	"spidergraph/internal/llm"
)

// ErrNoActivities indica que no hay evidencia para analizar. Se chequea
// antes de gastar una llamada externa al LLM.
var ErrNoActivities = errors.New("no reviews or vouches found for analysis")

// AnalysisService corre el pipeline de scoring: prompt -> LLM -> parse ->
// agregacion. Secuencial y sin estado compartido entre requests.
type AnalysisService struct {
	llmClient llm.LLMClient
	cfg       AnalysisConfig
	builder   AnalysisPromptBuilder
	logger    *zap.Logger
	now       func() time.Time
}

func NewAnalysisService(llmClient llm.LLMClient, cfg AnalysisConfig, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		llmClient: llmClient,
		cfg:       cfg,
		builder:   AnalysisPromptBuilder{},
		logger:    logger,
		now:       time.Now,
	}
}

// Analyze puntua las actividades contra el taxonomy configurado y devuelve
// el ProfileAnalysis completo. Falla con ErrNoActivities si la lista viene
// vacia, antes de tocar el LLM.
func (s *AnalysisService) Analyze(ctx context.Context, userkey string, activities []domain.Activity) (domain.ProfileAnalysis, error) {
	if len(activities) == 0 {
		return domain.ProfileAnalysis{}, ErrNoActivities
	}

	systemPrompt, userPrompt, err := s.builder.BuildPrompts(activities, s.cfg)
	if err != nil {
		return domain.ProfileAnalysis{}, err
	}

	s.logger.Info("analysis started",
		zap.String("userkey", userkey),
		zap.Int("activities", len(activities)),
		zap.String("model", s.cfg.OpenRouter.Model),
	)

	raw, err := s.llmClient.ChatCompletion(ctx, systemPrompt, userPrompt, llm.Params{
		Model:       s.cfg.OpenRouter.Model,
		MaxTokens:   s.cfg.OpenRouter.MaxTokens,
		Temperature: s.cfg.OpenRouter.Temperature,
	})
	if err != nil {
		return domain.ProfileAnalysis{}, fmt.Errorf("llm chat completion: %w", err)
	}

	results, err := extractAnalysisResult(raw)
	if err != nil {
		s.logger.Warn("analysis parse failed", zap.String("userkey", userkey), zap.Error(err))
		return domain.ProfileAnalysis{}, err
	}

	analysis := s.aggregate(userkey, activities, results)

	s.logger.Info("analysis finished",
		zap.String("userkey", userkey),
		zap.Int("total_reviews", analysis.TotalReviews),
		zap.Int("total_vouches", analysis.TotalVouches),
	)

	return analysis, nil
}

// aggregate combina conteos y promedio de credibilidad con los scores del
// LLM. El promedio se calcula sobre TODAS las actividades recibidas (el
// caller ya las filtro a review/vouch en el flujo de referencia).
func (s *AnalysisService) aggregate(userkey string, activities []domain.Activity, results domain.AnalysisResult) domain.ProfileAnalysis {
	totalReviews := 0
	totalVouches := 0
	sumAuthorScore := 0.0
	for _, a := range activities {
		switch a.Type {
		case domain.ActivityKindReview:
			totalReviews++
		case domain.ActivityKindVouch:
			totalVouches++
		}
		sumAuthorScore += a.Author.Score
	}

	return domain.ProfileAnalysis{
		Userkey:        userkey,
		Timestamp:      s.now().UTC(),
		TotalReviews:   totalReviews,
		TotalVouches:   totalVouches,
		AvgAuthorScore: int(math.Round(sumAuthorScore / float64(len(activities)))),
		Model:          s.cfg.OpenRouter.Model,
		Results:        results,
	}
}
