package domain

import "time"

// Conversation points one user at an ongoing exchange with a counterparty about a car.
type Conversation struct {
	CounterpartyID string
	ContextID      string
	LastActivityAt time.Time
}

type ConversationSummary struct {
	UserID          string `json:"userId"`
	CarID           string `json:"carId"`
	LastMessageTime string `json:"lastMessageTime"`
}

func (c Conversation) Summary() ConversationSummary {
	return ConversationSummary{
		UserID:          c.CounterpartyID,
		CarID:           c.ContextID,
		LastMessageTime: c.LastActivityAt.UTC().Format(time.RFC3339Nano),
	}
}

// ConversationDetail is what a user sees when opening one conversation.
type ConversationDetail struct {
	CarID          string        `json:"carId"`
	OtherUserID    string        `json:"otherUserId"`
	IsUserOnline   bool          `json:"isUserOnline"`
	RecentMessages []MessageView `json:"recentMessages"`
	GroupName      string        `json:"groupName"`
}
