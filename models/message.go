package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one transcript record, either a user question or a bot reply.
// The transcript is an audit log only; conversation state never reads it back.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID    string             `bson:"chat_id" json:"chat_id"`
	SenderID  string             `bson:"sender_id" json:"sender_id"`
	Message   string             `bson:"message" json:"message"`
	Language  Language           `bson:"language" json:"language"`
	Category  Category           `bson:"category,omitempty" json:"category,omitempty"`
	IsBot     bool               `bson:"is_bot" json:"is_bot"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
