// Package domain contains core concepts of the car chat.
// This file defines Message records and related rules.
// Messages are immutable once created.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one immutable chat message exchanged about a car.
type Message struct {
	ID        uuid.UUID
	SenderID  string
	Text      string
	ContextID string
	CreatedAt time.Time
}

func NewMessage(senderID, text, contextID string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		SenderID:  senderID,
		Text:      text,
		ContextID: contextID,
		CreatedAt: at,
	}
}

// MessageView is a message as seen by one reader.
type MessageView struct {
	ID           string `json:"id"`
	SenderID     string `json:"senderId"`
	Text         string `json:"text"`
	ContextID    string `json:"contextId"`
	IsOwnMessage bool   `json:"isOwnMessage"`
	Timestamp    string `json:"timestamp"`
}

func (m Message) ViewFor(readerID string) MessageView {
	return MessageView{
		ID:           m.ID.String(),
		SenderID:     m.SenderID,
		Text:         m.Text,
		ContextID:    m.ContextID,
		IsOwnMessage: m.SenderID == readerID,
		Timestamp:    m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
