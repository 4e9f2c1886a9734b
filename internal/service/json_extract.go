package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"spidergraph/internal/domain"
)

// ErrUnparsableAnalysis indica que la respuesta del LLM no contiene un
// objeto JSON extraible. Fatal para ese analisis; no se reintenta.
var ErrUnparsableAnalysis = errors.New("could not parse llm analysis result")

// extractAnalysisResult toma el texto crudo del LLM (posiblemente envuelto
// en prosa) y parsea el substring entre el primer '{' y el ultimo '}'.
// El objeto parseado pasa sin validar claves ni rangos: el contrato de
// scoring con el modelo es advisory, no se refuerza aca.
func extractAnalysisResult(raw string) (domain.AnalysisResult, error) {
	text := strings.TrimSpace(raw)

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no json object in %q", ErrUnparsableAnalysis, truncate(text, 120))
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableAnalysis, err)
	}

	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
