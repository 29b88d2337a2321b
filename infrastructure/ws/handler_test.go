package ws

import (
	"car-chat/auth"
	"car-chat/domain"
	"car-chat/runtime"
	"car-chat/services"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const testSecret = "ws-test-secret"

type testHub struct {
	server  *httptest.Server
	tokens  *auth.TokenManager
	handler *Handler
}

func newTestHub(t *testing.T) *testHub {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := runtime.NewOrchestrator(log,
		runtime.NewRegistry(), runtime.NewTopics(),
		runtime.NewHistory(runtime.DefaultHistoryLimit), runtime.NewConversations(),
		nil, time.Second, runtime.DefaultDetailMessages)
	service := services.NewChatService(log, orchestrator, nil, 2000)
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	handler := NewHandler(log, service, tokens, Options{BufferSize: 32})
	mux := http.NewServeMux()
	mux.Handle("GET /hubs/chat", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return &testHub{server: server, tokens: tokens, handler: handler}
}

type client struct {
	t    *testing.T
	conn *websocket.Conn
	seq  int
}

// dial connects as userID and waits for a Ping round trip, so the
// connection is registered when dial returns.
func (h *testHub) dial(t *testing.T, userID string, role domain.Role) *client {
	t.Helper()
	token, err := h.tokens.Generate(userID, role)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/hubs/chat?access_token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c := &client{t: t, conn: conn}
	id := c.invoke(OpPing, nil)
	c.expectResult(id)
	return c
}

func (c *client) invoke(op string, data any) string {
	c.t.Helper()
	c.seq++
	id := op + "-" + string(rune('a'+c.seq))
	raw, err := json.Marshal(data)
	require.NoError(c.t, err)
	require.NoError(c.t, c.conn.WriteJSON(map[string]any{"type": op, "requestId": id, "data": json.RawMessage(raw)}))
	return id
}

type received struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId"`
	Data      json.RawMessage `json:"data"`
	Error     *FrameError     `json:"error"`
}

func (c *client) next() received {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame received
	require.NoError(c.t, c.conn.ReadJSON(&frame))
	return frame
}

func (c *client) expectResult(requestID string) received {
	c.t.Helper()
	frame := c.next()
	require.Equal(c.t, frameResult, frame.Type, "error=%+v", frame.Error)
	require.Equal(c.t, requestID, frame.RequestID)
	return frame
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)

	resp, err := http.Get(hub.server.URL + "/hubs/chat")
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusUnauthorized, resp.StatusCode)

	url := "ws" + strings.TrimPrefix(hub.server.URL, "http") + "/hubs/chat?access_token=forged"
	_, resp, err = websocket.DefaultDialer.Dial(url, nil)
	req.Error(err)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CarInquiryRoundTrip(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	x := hub.dial(t, "X", domain.RoleRenter)
	y := hub.dial(t, "Y", domain.RoleCarOwner)

	// When X asks Y about car-1
	id := x.invoke(OpSendCarInquiry, map[string]string{"receiverId": "Y", "carId": "car-1", "message": "Still free on Friday?"})

	// Then X gets its echo before the result
	echo := x.next()
	req.Equal("ReceiveMessage", echo.Type)
	var message struct {
		SenderID  string `json:"senderId"`
		Text      string `json:"text"`
		ContextID string `json:"contextId"`
	}
	req.NoError(json.Unmarshal(echo.Data, &message))
	req.Equal("X", message.SenderID)
	req.Equal("car-1", message.ContextID)
	x.expectResult(id)

	// And Y gets the message then the notification
	req.Equal("ReceiveMessage", y.next().Type)
	notification := y.next()
	req.Equal("NewMessageNotification", notification.Type)
	req.Contains(string(notification.Data), `"category":"CarInquiry"`)

	// And Y can read the history and its conversations
	id = y.invoke(OpRecentCarMessages, map[string]string{"carId": "car-1"})
	var views []domain.MessageView
	req.NoError(json.Unmarshal(y.expectResult(id).Data, &views))
	req.Len(views, 1)
	req.False(views[0].IsOwnMessage)

	id = y.invoke(OpUserConversations, nil)
	var summaries []domain.ConversationSummary
	req.NoError(json.Unmarshal(y.expectResult(id).Data, &summaries))
	req.Len(summaries, 1)
	req.Equal("X", summaries[0].UserID)
}

func TestHandler_OfflineReceiverGetsSystemNotice(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	x := hub.dial(t, "X", domain.RoleRenter)

	id := x.invoke(OpSendCarInquiry, map[string]string{"receiverId": "nobody", "carId": "car-9", "message": "hello"})

	req.Equal("ReceiveMessage", x.next().Type)
	notice := x.next()
	req.Equal("ReceiveSystemMessage", notice.Type)
	req.Contains(string(notice.Data), `"expiresInMs":5000`)
	x.expectResult(id)
}

func TestHandler_ErrorFrames(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	x := hub.dial(t, "X", domain.RoleRenter)

	id := x.invoke(OpSendAdminReply, map[string]string{"userId": "Y", "message": "nope"})
	frame := x.next()
	req.Equal(frameError, frame.Type)
	req.Equal(id, frame.RequestID)
	req.Equal("PermissionDenied", frame.Error.Code)

	id = x.invoke(OpSendCarInquiry, map[string]string{"carId": "car-1"})
	frame = x.next()
	req.Equal(id, frame.RequestID)
	req.Equal("InvalidArgument", frame.Error.Code)

	id = x.invoke("DoSomethingElse", nil)
	frame = x.next()
	req.Equal(id, frame.RequestID)
	req.Equal("InvalidArgument", frame.Error.Code)
}

func TestHandler_SupportReachesAdmins(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	admin := hub.dial(t, "A", domain.RoleAdmin)
	user := hub.dial(t, "U", domain.RoleRenter)

	id := user.invoke(OpSendSupportMessage, map[string]string{"message": "Payment failed"})

	req.Equal("ReceiveSupportMessage", user.next().Type)
	req.Equal("ReceiveSystemMessage", user.next().Type)
	user.expectResult(id)

	req.Equal("ReceiveSupportMessage", admin.next().Type)
	req.Equal("NewMessageNotification", admin.next().Type)

	// When the admin answers
	id = admin.invoke(OpSendAdminReply, map[string]string{"userId": "U", "message": "Refunded"})
	req.Equal("ReceiveAdminMessage", admin.next().Type)
	req.Equal("ReceiveSystemMessage", admin.next().Type)
	admin.expectResult(id)

	req.Equal("ReceiveAdminMessage", user.next().Type)
	req.Equal("NewMessageNotification", user.next().Type)
}

func TestHandler_ReconnectReplacesOldSession(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	x := hub.dial(t, "X", domain.RoleRenter)
	first := hub.dial(t, "Y", domain.RoleCarOwner)
	second := hub.dial(t, "Y", domain.RoleCarOwner)

	// When the first Y socket goes away after the second one registered
	_ = first.conn.Close()

	id := x.invoke(OpSendCarInquiry, map[string]string{"receiverId": "Y", "carId": "car-1", "message": "hi"})
	req.Equal("ReceiveMessage", x.next().Type)
	x.expectResult(id)

	// Then the newest socket is the one reached
	req.Equal("ReceiveMessage", second.next().Type)
	req.Equal("NewMessageNotification", second.next().Type)
}

func TestHandler_CloseAllSendsNormalClosure(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t)
	c := hub.dial(t, "X", domain.RoleRenter)

	// When the server shuts down
	hub.handler.CloseAll()

	// Then the client reads a normal close
	req.NoError(c.conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := c.conn.ReadMessage()
	req.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "err=%v", err)
}
