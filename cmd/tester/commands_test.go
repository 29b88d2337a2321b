package main

import (
	"car-chat/infrastructure/ws"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		op   string
		data string
	}{
		{"send owner-1 car-9 is it free friday?", ws.OpSendCarInquiry, `{"carId":"car-9","message":"is it free friday?","receiverId":"owner-1"}`},
		{"reply renter-2 car-9 yes", ws.OpReplyToConversation, `{"carId":"car-9","message":"yes","otherUserId":"renter-2"}`},
		{"history car-9", ws.OpRecentCarMessages, `{"carId":"car-9"}`},
		{"detail renter-2 car-9", ws.OpConversationDetails, `{"carId":"car-9","otherUserId":"renter-2"}`},
		{"support my payment failed", ws.OpSendSupportMessage, `{"message":"my payment failed"}`},
		{"admin renter-2 refunded", ws.OpSendAdminReply, `{"message":"refunded","userId":"renter-2"}`},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req := require.New(t)
			inv, err := parseCommand(tt.line, "7")
			req.NoError(err)
			req.Equal(tt.op, inv.Type)
			req.Equal("7", inv.RequestID)
			req.JSONEq(tt.data, string(inv.Data))
		})
	}
}

func TestParseCommand_NoData(t *testing.T) {
	req := require.New(t)
	inv, err := parseCommand("convos", "1")
	req.NoError(err)
	req.Equal(ws.OpUserConversations, inv.Type)
	req.Empty(inv.Data)
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{"", "send owner-1 car-9", "history", "fly away"} {
		_, err := parseCommand(line, "1")
		require.Error(t, err, line)
	}
}

func TestHubAddress(t *testing.T) {
	req := require.New(t)

	addr, err := hubAddress("https://chat.example.com/", "abc")
	req.NoError(err)
	req.Equal("wss://chat.example.com/hubs/chat?access_token=abc", addr)

	addr, err = hubAddress("http://localhost:8080", "abc")
	req.NoError(err)
	req.Equal("ws://localhost:8080/hubs/chat?access_token=abc", addr)
}
