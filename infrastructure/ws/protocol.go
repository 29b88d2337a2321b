package ws

import (
	"car-chat/errors"
	"encoding/json"
)

// Operations a client can invoke on the hub.
const (
	OpSendCarInquiry      = "SendCarInquiryMessage"
	OpRecentCarMessages   = "GetRecentCarMessages"
	OpUserConversations   = "GetUserConversations"
	OpConversationDetails = "GetConversationDetails"
	OpReplyToConversation = "ReplyToConversation"
	OpSendSupportMessage  = "SendSupportMessage"
	OpSendAdminReply      = "SendAdminReply"
	OpPing                = "Ping"
)

const (
	frameResult = "result"
	frameError  = "error"
)

// Invocation is a client frame.
type Invocation struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Frame is anything the server writes: a result, an error or a pushed event.
type Frame struct {
	Type      string      `json:"type"`
	RequestID string      `json:"requestId,omitempty"`
	Data      any         `json:"data,omitempty"`
	Error     *FrameError `json:"error,omitempty"`
}

type FrameError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func resultFrame(requestID string, data any) Frame {
	return Frame{Type: frameResult, RequestID: requestID, Data: data}
}

func errorFrame(requestID string, err error) Frame {
	st := errors.ToStatus(err)
	return Frame{Type: frameError, RequestID: requestID, Error: &FrameError{
		Code:    st.Code().String(),
		Message: st.Message(),
	}}
}
