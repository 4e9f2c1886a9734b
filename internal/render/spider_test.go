package render

import (
	"fmt"
	"strings"
	"testing"

	"spidergraph/internal/domain"
)

var testOrder = []string{"Degen", "Builder", "Influencer", "Founders", "Artists", "Farmers", "Shitposters", "Scammers", "Marketers", "Developers"}

func TestTopCategories_DropsZeroScores(t *testing.T) {
	results := domain.AnalysisResult{"Degen": 0, "Builder": 0.5, "Artists": 0}
	got := TopCategories(results, testOrder)
	if len(got) != 1 || got[0].Name != "Builder" {
		t.Fatalf("expected only Builder, got %+v", got)
	}
}

func TestTopCategories_TopEightByScore(t *testing.T) {
	results := domain.AnalysisResult{}
	for i, name := range testOrder {
		results[name] = 0.1 + float64(i)*0.05
	}
	got := TopCategories(results, testOrder)
	if len(got) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(got))
	}
	// Developers (0.55) y Marketers (0.5) son los mas altos.
	if got[0].Name != "Developers" || got[1].Name != "Marketers" {
		t.Fatalf("expected descending order by score, got %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not descending at %d: %+v", i, got)
		}
	}
}

func TestTopCategories_TiesKeepCanonicalOrder(t *testing.T) {
	results := domain.AnalysisResult{"Builder": 0.4, "Degen": 0.4, "Founders": 0.4}
	got := TopCategories(results, testOrder)
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got))
	}
	if got[0].Name != "Degen" || got[1].Name != "Builder" || got[2].Name != "Founders" {
		t.Fatalf("expected stable canonical order on ties, got %+v", got)
	}
}

func TestTopCategories_UnknownKeysAfterCanonical(t *testing.T) {
	results := domain.AnalysisResult{"Zeta": 0.4, "Builder": 0.4, "Alpha": 0.4}
	got := TopCategories(results, testOrder)
	if got[0].Name != "Builder" || got[1].Name != "Alpha" || got[2].Name != "Zeta" {
		t.Fatalf("expected canonical keys first, then lexical, got %+v", got)
	}
}

func TestSpiderGraphSVG_AllZeroScoresFallsBack(t *testing.T) {
	results := domain.AnalysisResult{"Degen": 0, "Builder": 0}
	svg := SpiderGraphSVG("alice", "Alice", results, testOrder)
	if !strings.Contains(svg, "Profile analysis coming soon...") {
		t.Fatalf("expected fallback layout for all-zero scores")
	}
	if strings.Contains(svg, "<path") {
		t.Fatalf("fallback must not contain a chart polygon")
	}
}

func TestSpiderGraphSVG_RendersChartElements(t *testing.T) {
	results := domain.AnalysisResult{"Degen": 0.9, "Builder": 0.6, "Artists": 0.3}
	svg := SpiderGraphSVG("alice", "Alice", results, testOrder)

	if !strings.HasPrefix(svg, `<svg width="800" height="600"`) {
		t.Fatalf("expected fixed 800x600 canvas")
	}
	if !strings.Contains(svg, `<path d="M `) || !strings.Contains(svg, " Z\"") {
		t.Fatalf("expected closed polygon path")
	}
	// Circulos de referencia en 20/40/60/80/100 por ciento del radio maximo.
	for _, r := range []string{"24.00", "48.00", "72.00", "96.00", "120.00"} {
		if !strings.Contains(svg, fmt.Sprintf(`r="%s"`, r)) {
			t.Fatalf("expected grid circle with radius %s", r)
		}
	}
	if got := strings.Count(svg, "<line "); got != 3 {
		t.Fatalf("expected one axis line per category, got %d", got)
	}
	for _, label := range []string{">Degen</text>", ">Builder</text>", ">Artists</text>"} {
		if !strings.Contains(svg, label) {
			t.Fatalf("expected label %s", label)
		}
	}
	if !strings.Contains(svg, ">@alice</text>") || !strings.Contains(svg, ">Alice</text>") {
		t.Fatalf("expected user header")
	}
}

func TestSpiderGraphSVG_TenNonzeroRendersTopEightLabels(t *testing.T) {
	results := domain.AnalysisResult{}
	for i, name := range testOrder {
		results[name] = 0.1 + float64(i)*0.05
	}
	svg := SpiderGraphSVG("alice", "Alice", results, testOrder)

	if got := strings.Count(svg, "<line "); got != 8 {
		t.Fatalf("expected 8 axes, got %d", got)
	}
	// Degen (0.1) y Builder (0.15) quedan afuera del top 8.
	if strings.Contains(svg, ">Degen</text>") || strings.Contains(svg, ">Builder</text>") {
		t.Fatalf("expected lowest two categories excluded")
	}
}

func TestSpiderGraphSVG_Deterministic(t *testing.T) {
	results := domain.AnalysisResult{"Degen": 0.42, "Builder": 0.42, "Artists": 0.7, "Farmers": 0.1}
	a := SpiderGraphSVG("alice", "Alice", results, testOrder)
	b := SpiderGraphSVG("alice", "Alice", results, testOrder)
	if a != b {
		t.Fatalf("expected byte-identical output for identical input")
	}
}

func TestSpiderGraphSVG_FirstCategoryPointsUp(t *testing.T) {
	results := domain.AnalysisResult{"Degen": 1.0, "Builder": 0.5, "Artists": 0.5, "Farmers": 0.5}
	svg := SpiderGraphSVG("alice", "Alice", results, testOrder)
	// Angulo inicial -90°: el primer vertice queda en (400, 300-120).
	if !strings.Contains(svg, `<path d="M 400.00 180.00`) {
		t.Fatalf("expected first vertex straight up from center")
	}
}

func TestFallbackSVG_EscapesMarkup(t *testing.T) {
	svg := FallbackSVG("a<b", `Alice & "Bob"`)
	if strings.Contains(svg, "a<b") {
		t.Fatalf("expected username escaped")
	}
	if !strings.Contains(svg, "Alice &amp; &quot;Bob&quot;") {
		t.Fatalf("expected name escaped, got %s", svg)
	}
}
