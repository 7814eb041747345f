package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"franchise-bot/models"
)

const (
	translateMaxTokens   = 500
	translateTemperature = 0.3
)

// Responder turns a resolved category into the reply text for the user's
// language. Canned responses are authored in English; Spanish goes through
// the AI translation capability.
type Responder struct {
	gen TextGenerator
}

func NewResponder(gen TextGenerator) *Responder {
	return &Responder{gen: gen}
}

// Resolve returns the localized canned response for a member category. A
// translation failure falls back to the untranslated English text; it never
// fails the turn.
func (r *Responder) Resolve(ctx context.Context, cat models.Category, lang models.Language, catalog *Catalog) (string, bool) {
	base, ok := catalog.Response(cat)
	if !ok {
		return "", false
	}

	if lang != models.LanguageSpanish {
		return base, true
	}

	prompt := fmt.Sprintf(`Translate the following text to Spanish. Keep it professional and natural.
Do not add any extra explanation, just provide the translation.

Text to translate:
%s

Translation:`, base)

	translated, err := r.gen.Generate(ctx, prompt, translateMaxTokens, translateTemperature)
	if err != nil {
		slog.Warn("Translation failed, returning English text", "category", cat, "error", err)
		return base, true
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return base, true
	}
	return translated, true
}
