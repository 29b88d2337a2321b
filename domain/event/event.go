// Package event defines the push events delivered to live connections.
// Each kind has one fixed shape; clients never guess field names.
package event

import (
	"time"
	"unicode/utf8"
)

type Kind string

const (
	KindMessage        Kind = "ReceiveMessage"
	KindNotification   Kind = "NewMessageNotification"
	KindSystem         Kind = "ReceiveSystemMessage"
	KindSupportMessage Kind = "ReceiveSupportMessage"
	KindAdminMessage   Kind = "ReceiveAdminMessage"
)

type Category string

const (
	CategoryCarInquiry Category = "CarInquiry"
	CategorySupport    Category = "Support"
	CategoryAdminReply Category = "AdminReply"
	CategoryTest       Category = "Test"
)

// SystemNoticeTTL is how long clients keep an informational notice on screen.
const SystemNoticeTTL = 5 * time.Second

const (
	previewLimit = 50
	previewKeep  = 47
)

type Event interface {
	Kind() Kind
}

type MessageReceived struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	ContextID string    `json:"contextId"`
	At        time.Time `json:"timestamp"`
}

func (MessageReceived) Kind() Kind { return KindMessage }

type Notification struct {
	SenderID  string    `json:"senderId"`
	Preview   string    `json:"preview"`
	ContextID string    `json:"contextId,omitempty"`
	Category  Category  `json:"category"`
	At        time.Time `json:"timestamp"`
}

func (Notification) Kind() Kind { return KindNotification }

type SystemNotice struct {
	Text        string `json:"text"`
	ExpiresInMs int64  `json:"expiresInMs"`
}

func (SystemNotice) Kind() Kind { return KindSystem }

func NewSystemNotice(text string) SystemNotice {
	return SystemNotice{Text: text, ExpiresInMs: SystemNoticeTTL.Milliseconds()}
}

type SupportMessage struct {
	SenderID string    `json:"senderId"`
	Text     string    `json:"text"`
	At       time.Time `json:"timestamp"`
}

func (SupportMessage) Kind() Kind { return KindSupportMessage }

type AdminMessage struct {
	SenderID     string    `json:"senderId"`
	Text         string    `json:"text"`
	TargetUserID string    `json:"targetUserId"`
	At           time.Time `json:"timestamp"`
}

func (AdminMessage) Kind() Kind { return KindAdminMessage }

// Preview shortens text for notifications: anything over 50 runes keeps
// its first 47 runes followed by "...".
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}
	return string([]rune(text)[:previewKeep]) + "..."
}
