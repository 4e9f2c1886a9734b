package domain

import "time"

// NormalizedActivity es la proyeccion plana de una Activity que se
// serializa dentro del prompt. Proyeccion 1:1, sin drops ni merges.
type NormalizedActivity struct {
	Type            string  `json:"type"`
	AuthorScore     float64 `json:"authorScore"`
	AuthorName      string  `json:"authorName"`
	Content         string  `json:"content"`
	Description     string  `json:"description"`
	Score           string  `json:"score"`
	Timestamp       int64   `json:"timestamp"`
	LLMQualityScore float64 `json:"llmQualityScore"`
}

// AnalysisResult mapea nombre de categoria a confianza [0.0, 1.0].
// El rango es un contrato con el LLM, no se valida en codigo.
type AnalysisResult map[string]float64

// ProfileAnalysis es el resultado final de analizar un perfil.
type ProfileAnalysis struct {
	Userkey        string         `json:"userkey"`
	Timestamp      time.Time      `json:"timestamp"`
	TotalReviews   int            `json:"totalReviews"`
	TotalVouches   int            `json:"totalVouches"`
	AvgAuthorScore int            `json:"avgAuthorScore"`
	Model          string         `json:"model"`
	Results        AnalysisResult `json:"results"`
}
