package service

import (
	"strings"
	"testing"

	"spidergraph/internal/domain"
)

func TestNormalizeActivities_MalformedMetadataYieldsEmptyDescription(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	activities := []domain.Activity{
		{
			Type: "review",
			Data: domain.ActivityData{Metadata: "not json", Comment: "solid builder"},
		},
	}

	got := builder.NormalizeActivities(activities)
	if len(got) != 1 {
		t.Fatalf("expected 1 normalized activity, got %d", len(got))
	}
	if got[0].Description != "" {
		t.Fatalf("expected empty description for malformed metadata, got %q", got[0].Description)
	}
	if got[0].Content != "solid builder" {
		t.Fatalf("expected comment preserved, got %q", got[0].Content)
	}
}

func TestNormalizeActivities_ExtractsMetadataDescription(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	activities := []domain.Activity{
		{
			Type: "vouch",
			Data: domain.ActivityData{Metadata: `{"description":"ships every week"}`},
		},
	}

	got := builder.NormalizeActivities(activities)
	if got[0].Description != "ships every week" {
		t.Fatalf("expected metadata description, got %q", got[0].Description)
	}
}

func TestNormalizeActivities_AuthorNameFallbackChain(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	activities := []domain.Activity{
		{Type: "review", Author: domain.ActorSummary{Name: "Alice", Username: "alice_x"}},
		{Type: "review", Author: domain.ActorSummary{Username: "bob_x"}},
		{Type: "review", Author: domain.ActorSummary{}},
	}

	got := builder.NormalizeActivities(activities)
	if got[0].AuthorName != "Alice" {
		t.Fatalf("expected name preferred, got %q", got[0].AuthorName)
	}
	if got[1].AuthorName != "bob_x" {
		t.Fatalf("expected username fallback, got %q", got[1].AuthorName)
	}
	if got[2].AuthorName != "Anonymous" {
		t.Fatalf("expected Anonymous fallback, got %q", got[2].AuthorName)
	}
}

func TestNormalizeActivities_OneToOneProjection(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	activities := []domain.Activity{
		{Type: "review", Data: domain.ActivityData{Metadata: "garbage"}},
		{Type: "vouch"},
		{Type: "review", Data: domain.ActivityData{Metadata: `{"description":"x"}`}},
	}

	got := builder.NormalizeActivities(activities)
	if len(got) != len(activities) {
		t.Fatalf("expected %d normalized activities, got %d", len(activities), len(got))
	}
}

func TestBuildPrompts_SubstitutesAllPlaceholders(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	cfg := DefaultAnalysisConfig()
	activities := []domain.Activity{
		{
			Type:      "review",
			Timestamp: 1700000000,
			Author:    domain.ActorSummary{Name: "Alice", Score: 1800},
			Data:      domain.ActivityData{Comment: "great dev", Score: "positive"},
		},
	}

	systemPrompt, userPrompt, err := builder.BuildPrompts(activities, cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if systemPrompt != cfg.Prompt.System {
		t.Fatalf("expected system prompt passed through unchanged")
	}

	for _, placeholder := range []string{"{categories}", "{vouchMultiplier}", "{reviewMultiplier}", "{activities}"} {
		if strings.Contains(userPrompt, placeholder) {
			t.Fatalf("placeholder %s not substituted", placeholder)
		}
	}
	if !strings.Contains(userPrompt, "- Degen: High-risk, high-reward mentality") {
		t.Fatalf("expected category block in user prompt")
	}
	if !strings.Contains(userPrompt, "Additional 2x multiplier") {
		t.Fatalf("expected vouch multiplier interpolated")
	}
	if !strings.Contains(userPrompt, `"authorName": "Alice"`) {
		t.Fatalf("expected normalized activities serialized as indented JSON")
	}
}

func TestBuildPrompts_CategoriesInConfiguredOrder(t *testing.T) {
	builder := AnalysisPromptBuilder{}
	cfg := DefaultAnalysisConfig()

	_, userPrompt, err := builder.BuildPrompts([]domain.Activity{{Type: "review"}}, cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lastIdx := -1
	for _, cat := range cfg.Categories {
		idx := strings.Index(userPrompt, "- "+cat.Name+": ")
		if idx == -1 {
			t.Fatalf("category %q missing from prompt", cat.Name)
		}
		if idx <= lastIdx {
			t.Fatalf("category %q out of configured order", cat.Name)
		}
		lastIdx = idx
	}
}
