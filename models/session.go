package models

// UserSession is the in-memory conversation state for one user. It is created
// lazily on the user's first message and lives for the process lifetime.
//
// Invariant: PendingSuggestions is non-empty if and only if
// AwaitingConfirmation is true.
type UserSession struct {
	UserID               string
	Language             Language
	LanguageSet          bool
	AwaitingConfirmation bool
	PendingSuggestions   []Category
}
