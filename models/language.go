package models

// Language is the conversation language for a user session. Detection always
// resolves to one of the two; there is no "unknown".
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)
