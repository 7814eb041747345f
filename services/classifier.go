package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"franchise-bot/models"
)

const (
	classifyMaxTokens   = 50
	classifyTemperature = 0.0
)

// Classifier assigns one catalog category to a free-text question. The
// primary path asks the AI capability for exactly one label; when that fails
// it degrades to a short list of phrase rules.
type Classifier struct {
	gen TextGenerator
}

func NewClassifier(gen TextGenerator) *Classifier {
	return &Classifier{gen: gen}
}

// Classify returns a member of catalog, or CategoryOther when nothing
// matches. It never returns an error: any AI failure is absorbed by the
// fallback matcher.
func (c *Classifier) Classify(ctx context.Context, question string, catalog *Catalog) models.Category {
	prompt := buildClassificationPrompt(question, catalog)

	raw, err := c.gen.Generate(ctx, prompt, classifyMaxTokens, classifyTemperature)
	if err != nil {
		slog.Warn("AI classification failed, using fallback matcher", "error", err)
		return fallbackClassify(question, catalog)
	}

	label := models.Category(strings.ToUpper(strings.TrimSpace(raw)))
	if catalog.Contains(label) {
		slog.Debug("Question classified", "category", label)
		return label
	}

	if label != models.CategoryOther {
		slog.Debug("AI returned a label outside the catalog", "label", label)
	}
	return models.CategoryOther
}

func buildClassificationPrompt(question string, catalog *Catalog) string {
	var sb strings.Builder
	for _, cat := range catalog.Members() {
		sb.WriteString(fmt.Sprintf("- %s: (%s)\n", cat, catalog.Hints(cat)))
	}

	return fmt.Sprintf(`You are a question classifier for a franchise support system.
Analyze the user's question (it may be in Spanish or English) and return ONLY the category keyword that best matches.

Strict Rules:
1. Return ONLY ONE keyword from the list below
2. Return it in UPPERCASE with no extra text or explanation
3. If no category matches well, return 'OTHER'

Categories with example keywords:
%s
User Question: %s

Return only the category keyword:`, sb.String(), question)
}

// fallbackRule is one ordered phrase rule of the degraded matcher.
type fallbackRule struct {
	phrases  []string
	category models.Category
}

// fallbackRules deliberately covers only a handful of the most common
// categories. First match wins.
var fallbackRules = []fallbackRule{
	{phrases: []string{"qué es", "what is"}, category: models.CategoryWhatIsRealtyPlus},
	{phrases: []string{"países", "countries"}, category: models.CategoryCountriesOperatingIn},
	{phrases: []string{"incluye", "included"}, category: models.CategoryFranchiseInclusions},
	{phrases: []string{"empezar", "started"}, category: models.CategoryStepsToGetStarted},
	{phrases: []string{"contactar", "contact"}, category: models.CategoryContactExpansionTeam},
}

// fallbackClassify is the deterministic stand-in used when the AI capability
// is unreachable.
func fallbackClassify(question string, catalog *Catalog) models.Category {
	lower := strings.ToLower(question)
	for _, rule := range fallbackRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				if catalog.Contains(rule.category) {
					return rule.category
				}
				return models.CategoryOther
			}
		}
	}
	return models.CategoryOther
}
