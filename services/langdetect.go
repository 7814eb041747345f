package services

import (
	"strings"

	"franchise-bot/models"
)

// Indicator words that strongly suggest one language over the other. Matching
// is case-insensitive substring containment, so accented forms only hit when
// the user actually typed them.
var spanishIndicators = []string{
	"qué", "cómo", "cuándo", "dónde", "por qué", "cuál", "cuáles",
	"puedo", "necesito", "quiero", "ayuda", "información",
	"países", "incluye", "recibo", "apoyo", "empezar", "contactar",
	"hola", "gracias", "favor", "más", "sí", "no", "bueno",
	"también", "esto", "eso", "aquí", "allí", "ahora", "después",
}

var englishIndicators = []string{
	"what", "how", "when", "where", "why", "which", "who",
	"can", "need", "want", "help", "information", "the", "is",
	"are", "this", "that", "here", "there", "now", "later",
}

// DetectLanguage classifies text as Spanish or English by counting indicator
// words. Spanish wins only on a strict majority; anything else, including
// empty or indicator-free input, resolves to English.
func DetectLanguage(text string) models.Language {
	lower := strings.ToLower(text)

	spanishCount := 0
	for _, indicator := range spanishIndicators {
		if strings.Contains(lower, indicator) {
			spanishCount++
		}
	}

	englishCount := 0
	for _, indicator := range englishIndicators {
		if strings.Contains(lower, indicator) {
			englishCount++
		}
	}

	if spanishCount > englishCount {
		return models.LanguageSpanish
	}
	if englishCount > 0 {
		return models.LanguageEnglish
	}
	return models.LanguageEnglish
}
