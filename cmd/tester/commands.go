package main

import (
	"car-chat/infrastructure/ws"
	"encoding/json"
	"fmt"
	"strings"
)

const usage = `commands:
  send <receiverId> <carId> <message>    ask about a car
  reply <otherUserId> <carId> <message>  answer in a conversation
  history <carId>                        messages kept for a car
  convos                                 your conversations
  detail <otherUserId> <carId>           one conversation
  support <message>                      write to the admins
  admin <userId> <message>               admin reply to a user
  ping
  quit`

// parseCommand turns a console line into a hub invocation.
func parseCommand(line string, requestID string) (ws.Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ws.Invocation{}, fmt.Errorf("empty command")
	}
	rest := func(from int) string { return strings.Join(fields[from:], " ") }
	need := func(n int) error {
		if len(fields) < n {
			return fmt.Errorf("%s: missing arguments\n%s", fields[0], usage)
		}
		return nil
	}

	var op string
	var data any
	switch fields[0] {
	case "send", "reply":
		if err := need(4); err != nil {
			return ws.Invocation{}, err
		}
		if fields[0] == "send" {
			op = ws.OpSendCarInquiry
			data = map[string]string{"receiverId": fields[1], "carId": fields[2], "message": rest(3)}
		} else {
			op = ws.OpReplyToConversation
			data = map[string]string{"otherUserId": fields[1], "carId": fields[2], "message": rest(3)}
		}
	case "history":
		if err := need(2); err != nil {
			return ws.Invocation{}, err
		}
		op, data = ws.OpRecentCarMessages, map[string]string{"carId": fields[1]}
	case "convos":
		op = ws.OpUserConversations
	case "detail":
		if err := need(3); err != nil {
			return ws.Invocation{}, err
		}
		op, data = ws.OpConversationDetails, map[string]string{"otherUserId": fields[1], "carId": fields[2]}
	case "support":
		if err := need(2); err != nil {
			return ws.Invocation{}, err
		}
		op, data = ws.OpSendSupportMessage, map[string]string{"message": rest(1)}
	case "admin":
		if err := need(3); err != nil {
			return ws.Invocation{}, err
		}
		op, data = ws.OpSendAdminReply, map[string]string{"userId": fields[1], "message": rest(2)}
	case "ping":
		op = ws.OpPing
	default:
		return ws.Invocation{}, fmt.Errorf("unknown command %q\n%s", fields[0], usage)
	}

	inv := ws.Invocation{Type: op, RequestID: requestID}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return ws.Invocation{}, err
		}
		inv.Data = raw
	}
	return inv, nil
}
