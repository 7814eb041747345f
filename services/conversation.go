package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"franchise-bot/models"
)

// defaultTopN is how many suggestions the disambiguation list offers.
const defaultTopN = 3

// TurnResult is the outcome of one conversation turn: the replies to send,
// the session language, and the category that produced the answer
// (CategoryOther when the turn did not resolve one).
type TurnResult struct {
	Replies  []string
	Language models.Language
	Category models.Category
}

// Conversation owns every user session and runs the per-turn state machine:
// detect language on the first message, classify, answer or suggest, and
// resolve numeric selections from an earlier suggestion list.
//
// Turns for the same user are serialized on the session's own lock; turns for
// different users proceed in parallel.
type Conversation struct {
	classifier *Classifier
	responder  *Responder
	catalog    atomic.Pointer[Catalog]
	topN       int

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session models.UserSession
}

func NewConversation(gen TextGenerator, catalog *Catalog) *Conversation {
	c := &Conversation{
		classifier: NewClassifier(gen),
		responder:  NewResponder(gen),
		topN:       defaultTopN,
		sessions:   make(map[string]*sessionEntry),
	}
	c.catalog.Store(catalog)
	return c
}

// Catalog returns the current catalog snapshot.
func (c *Conversation) Catalog() *Catalog {
	return c.catalog.Load()
}

// SwapCatalog replaces the catalog atomically. In-flight turns keep the
// snapshot they loaded; new turns see the replacement.
func (c *Conversation) SwapCatalog(catalog *Catalog) {
	c.catalog.Store(catalog)
}

// SessionCount returns the number of live user sessions.
func (c *Conversation) SessionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

func (c *Conversation) entry(userID string) *sessionEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sessions[userID]
	if !ok {
		e = &sessionEntry{session: models.UserSession{UserID: userID}}
		c.sessions[userID] = e
	}
	return e
}

// HandleTurn processes one inbound message for a user and returns the replies
// to send. It blocks while a previous turn for the same user is still in
// flight.
func (c *Conversation) HandleTurn(ctx context.Context, userID, text string) TurnResult {
	e := c.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.session
	if !s.LanguageSet {
		s.Language = DetectLanguage(text)
		s.LanguageSet = true
		slog.Info("Detected session language", "userID", userID, "language", s.Language)
	}

	catalog := c.catalog.Load()

	if s.AwaitingConfirmation {
		if choice, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			if choice < 1 || choice > len(s.PendingSuggestions) {
				return TurnResult{
					Replies:  []string{invalidSelectionMessage(s.Language)},
					Language: s.Language,
					Category: models.CategoryOther,
				}
			}
			selected := s.PendingSuggestions[choice-1]
			s.AwaitingConfirmation = false
			s.PendingSuggestions = nil
			return c.answer(ctx, s, selected, catalog)
		}

		// Not a number: forget the suggestions and treat it as a new question.
		s.AwaitingConfirmation = false
		s.PendingSuggestions = nil
	}

	return c.classifyAndAnswer(ctx, s, text, catalog)
}

func (c *Conversation) classifyAndAnswer(ctx context.Context, s *models.UserSession, text string, catalog *Catalog) TurnResult {
	category := c.classifier.Classify(ctx, text, catalog)
	if category != models.CategoryOther {
		return c.answer(ctx, s, category, catalog)
	}

	suggestions := RankSimilar(text, catalog, c.topN)
	if len(suggestions) > 0 {
		s.PendingSuggestions = suggestions
		s.AwaitingConfirmation = true
		return TurnResult{
			Replies:  []string{suggestionMessage(suggestions, s.Language, catalog)},
			Language: s.Language,
			Category: models.CategoryOther,
		}
	}

	return TurnResult{
		Replies:  []string{defaultUnmatchedMessage(s.Language)},
		Language: s.Language,
		Category: models.CategoryOther,
	}
}

func (c *Conversation) answer(ctx context.Context, s *models.UserSession, category models.Category, catalog *Catalog) TurnResult {
	text, ok := c.responder.Resolve(ctx, category, s.Language, catalog)
	if !ok {
		return TurnResult{
			Replies:  []string{defaultUnmatchedMessage(s.Language)},
			Language: s.Language,
			Category: models.CategoryOther,
		}
	}

	return TurnResult{
		Replies:  []string{text, followUpMessage(s.Language)},
		Language: s.Language,
		Category: category,
	}
}

func followUpMessage(lang models.Language) string {
	if lang == models.LanguageSpanish {
		return "¿Tienes otra pregunta? Pregúntame lo que quieras."
	}
	return "Do you have another question? Feel free to ask me anything."
}

func invalidSelectionMessage(lang models.Language) string {
	if lang == models.LanguageSpanish {
		return "Por favor selecciona un número válido de la lista."
	}
	return "Please select a valid number from the list."
}

func defaultUnmatchedMessage(lang models.Language) string {
	if lang == models.LanguageSpanish {
		return "Lo siento, no tengo una respuesta específica para esa pregunta. Por favor contacta a nuestro equipo de expansión para más información, o intenta reformular tu pregunta."
	}
	return "I'm sorry, I don't have a specific answer for that question. Please contact our expansion team for more information, or try rephrasing your question."
}

func suggestionMessage(suggestions []models.Category, lang models.Language, catalog *Catalog) string {
	var sb strings.Builder
	if lang == models.LanguageSpanish {
		sb.WriteString("No estoy seguro de haber entendido tu pregunta. ¿Te refieres a alguna de estas opciones?\n\n")
	} else {
		sb.WriteString("I'm not sure I understood your question. Did you mean one of these options?\n\n")
	}

	for i, cat := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, catalog.DisplayName(cat, lang)))
	}

	if lang == models.LanguageSpanish {
		sb.WriteString("\nEscribe el número de la opción que te interesa, o reformula tu pregunta.")
	} else {
		sb.WriteString("\nType the number of the option you're interested in, or rephrase your question.")
	}
	return sb.String()
}
