package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-bot/models"
)

func fullTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	responses := make(map[string]string, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		responses[string(cat)] = "canned answer for " + string(cat)
	}

	catalog, err := NewCatalog(responses)
	require.NoError(t, err)
	return catalog
}

func TestClassifyAcceptsCatalogLabel(t *testing.T) {
	catalog := fullTestCatalog(t)

	tests := []struct {
		name     string
		aiAnswer string
		want     models.Category
	}{
		{
			name:     "clean label",
			aiAnswer: "MARKETING_ASSISTANCE",
			want:     models.CategoryMarketingAssistance,
		},
		{
			name:     "label with whitespace and case noise",
			aiAnswer: "  marketing_assistance\n",
			want:     models.CategoryMarketingAssistance,
		},
		{
			name:     "explicit other",
			aiAnswer: "OTHER",
			want:     models.CategoryOther,
		},
		{
			name:     "label outside the catalog is coerced",
			aiAnswer: "PRICING_DETAILS",
			want:     models.CategoryOther,
		},
		{
			name:     "chatty answer is coerced",
			aiAnswer: "The best category is MARKETING_ASSISTANCE.",
			want:     models.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(fixedGenerator(tt.aiAnswer))
			got := classifier.Classify(context.Background(), "some question", catalog)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyPromptEnumeratesCatalog(t *testing.T) {
	catalog := fullTestCatalog(t)

	var seenPrompt string
	gen := &stubGenerator{fn: func(prompt string) (string, error) {
		seenPrompt = prompt
		return "OTHER", nil
	}}

	NewClassifier(gen).Classify(context.Background(), "how do I begin?", catalog)

	require.NotEmpty(t, seenPrompt)
	for _, cat := range catalog.Members() {
		assert.Contains(t, seenPrompt, string(cat))
	}
	assert.Contains(t, seenPrompt, "how do I begin?")
	assert.Contains(t, seenPrompt, "return 'OTHER'")
}

func TestClassifyFallbackRules(t *testing.T) {
	catalog := fullTestCatalog(t)
	classifier := NewClassifier(failingGenerator())

	tests := []struct {
		name     string
		question string
		want     models.Category
	}{
		{
			name:     "what is rule",
			question: "what is RealtyPlus exactly?",
			want:     models.CategoryWhatIsRealtyPlus,
		},
		{
			name:     "spanish what is rule",
			question: "¿qué es RealtyPlus?",
			want:     models.CategoryWhatIsRealtyPlus,
		},
		{
			name:     "countries rule",
			question: "which countries are you in?",
			want:     models.CategoryCountriesOperatingIn,
		},
		{
			name:     "inclusions rule",
			question: "tell me what's included",
			want:     models.CategoryFranchiseInclusions,
		},
		{
			name:     "getting started rule",
			question: "how do I get started?",
			want:     models.CategoryStepsToGetStarted,
		},
		{
			name:     "contact rule",
			question: "I want to contact someone",
			want:     models.CategoryContactExpansionTeam,
		},
		{
			name:     "first rule wins over later rules",
			question: "what is RealtyPlus and what countries do you cover?",
			want:     models.CategoryWhatIsRealtyPlus,
		},
		{
			name:     "no rule matches",
			question: "do you sell ice cream?",
			want:     models.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(context.Background(), tt.question, catalog)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAlwaysReturnsCatalogMemberOrOther(t *testing.T) {
	catalog := fullTestCatalog(t)
	questions := []string{"what is this", "países", "zzz", ""}

	for _, gen := range []*stubGenerator{failingGenerator(), fixedGenerator("GARBAGE"), fixedGenerator("OTHER")} {
		classifier := NewClassifier(gen)
		for _, q := range questions {
			got := classifier.Classify(context.Background(), q, catalog)
			if got != models.CategoryOther {
				assert.True(t, catalog.Contains(got), "question %q produced non-member %q", q, got)
			}
		}
	}
}

func TestClassifyFallbackRespectsCatalogMembership(t *testing.T) {
	// Catalog without the category the matching rule would pick.
	catalog, err := NewCatalog(map[string]string{
		"SUPPORT_RECEIVED": "You receive full support.",
	})
	require.NoError(t, err)

	classifier := NewClassifier(failingGenerator())
	got := classifier.Classify(context.Background(), "what is RealtyPlus", catalog)
	assert.Equal(t, models.CategoryOther, got)
}

func TestClassifyEmptyCatalog(t *testing.T) {
	classifier := NewClassifier(failingGenerator())
	got := classifier.Classify(context.Background(), "what is RealtyPlus", EmptyCatalog())
	assert.Equal(t, models.CategoryOther, got)

	// Primary path over an empty catalog can only ever coerce to OTHER too
	classifier = NewClassifier(fixedGenerator("WHAT_IS_REALTYPLUS"))
	got = classifier.Classify(context.Background(), "what is RealtyPlus", EmptyCatalog())
	assert.Equal(t, models.CategoryOther, got)
}

func TestBuildClassificationPromptStable(t *testing.T) {
	catalog := fullTestCatalog(t)
	first := buildClassificationPrompt("hello", catalog)
	second := buildClassificationPrompt("hello", catalog)
	assert.Equal(t, first, second)
	assert.True(t, strings.Contains(first, "franchise support system"))
}
