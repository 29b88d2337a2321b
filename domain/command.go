package domain

// Commands carry the payload of each hub invocation.
// Field names follow the wire protocol used by the web client.

type SendMessageCommand struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	ContextID  string `json:"carId" validate:"required"`
	Text       string `json:"message" validate:"required"`
}

type ReplyCommand struct {
	OtherUserID string `json:"otherUserId" validate:"required"`
	ContextID   string `json:"carId" validate:"required"`
	Text        string `json:"message" validate:"required"`
}

func (c ReplyCommand) AsSend() SendMessageCommand {
	return SendMessageCommand{ReceiverID: c.OtherUserID, ContextID: c.ContextID, Text: c.Text}
}

type RecentMessagesQuery struct {
	ContextID string `json:"carId" validate:"required"`
}

type ConversationDetailQuery struct {
	OtherUserID string `json:"otherUserId" validate:"required"`
	ContextID   string `json:"carId" validate:"required"`
}

type SupportCommand struct {
	Text string `json:"message" validate:"required"`
}

type AdminReplyCommand struct {
	TargetUserID string `json:"userId" validate:"required"`
	Text         string `json:"message" validate:"required"`
}

type TestNotificationCommand struct {
	TargetUserID string `json:"userId" validate:"required"`
	Text         string `json:"message" validate:"required"`
}
