package services

import (
	"context"
	"errors"
)

// stubGenerator scripts the AI capability for tests. The fn gets the full
// prompt so a single stub can answer classification and translation calls
// differently.
type stubGenerator struct {
	fn    func(prompt string) (string, error)
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	s.calls++
	if s.fn == nil {
		return "", errors.New("generator not scripted")
	}
	return s.fn(prompt)
}

// failingGenerator simulates an unreachable AI capability.
func failingGenerator() *stubGenerator {
	return &stubGenerator{fn: func(string) (string, error) {
		return "", errors.New("capability unreachable")
	}}
}

// fixedGenerator always answers with the same text.
func fixedGenerator(response string) *stubGenerator {
	return &stubGenerator{fn: func(string) (string, error) {
		return response, nil
	}}
}
