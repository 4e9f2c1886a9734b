package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"spidergraph/internal/domain"
)

// AnalysisPromptBuilder arma el par (system, user) a partir de actividades
// y la configuracion estatica. Transformacion pura y determinista.
type AnalysisPromptBuilder struct{}

// NormalizeActivities proyecta cada Activity a su forma plana para el
// prompt. Siempre devuelve exactamente una entrada por actividad.
func (AnalysisPromptBuilder) NormalizeActivities(activities []domain.Activity) []domain.NormalizedActivity {
	normalized := make([]domain.NormalizedActivity, 0, len(activities))
	for _, a := range activities {
		authorName := a.Author.Name
		if authorName == "" {
			authorName = a.Author.Username
		}
		if authorName == "" {
			authorName = "Anonymous"
		}

		// Metadata es un blob no confiable; un parse fallido nunca
		// aborta el pipeline, solo deja description vacio.
		description := ""
		if a.Data.Metadata != "" {
			var meta struct {
				Description string `json:"description"`
			}
			if err := json.Unmarshal([]byte(a.Data.Metadata), &meta); err == nil {
				description = meta.Description
			}
		}

		normalized = append(normalized, domain.NormalizedActivity{
			Type:            a.Type,
			AuthorScore:     a.Author.Score,
			AuthorName:      authorName,
			Content:         a.Data.Comment,
			Description:     description,
			Score:           a.Data.Score,
			Timestamp:       a.Timestamp,
			LLMQualityScore: a.LLMQualityScore,
		})
	}
	return normalized
}

// BuildPrompts interpola categorias, multiplicadores y actividades
// normalizadas en los templates configurados.
func (b AnalysisPromptBuilder) BuildPrompts(activities []domain.Activity, cfg AnalysisConfig) (systemPrompt, userPrompt string, err error) {
	normalized := b.NormalizeActivities(activities)

	activitiesJSON, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal normalized activities: %w", err)
	}

	var categories strings.Builder
	for i, cat := range cfg.Categories {
		if i > 0 {
			categories.WriteString("\n")
		}
		categories.WriteString(fmt.Sprintf("- %s: %s", cat.Name, cat.Description))
	}

	userPrompt = cfg.Prompt.User
	userPrompt = strings.Replace(userPrompt, "{categories}", categories.String(), 1)
	userPrompt = strings.Replace(userPrompt, "{vouchMultiplier}", formatMultiplier(cfg.Multipliers.Vouch), 1)
	userPrompt = strings.Replace(userPrompt, "{reviewMultiplier}", formatMultiplier(cfg.Multipliers.Review), 1)
	userPrompt = strings.Replace(userPrompt, "{activities}", string(activitiesJSON), 1)

	return cfg.Prompt.System, userPrompt, nil
}

func formatMultiplier(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
