// Package ws serves the chat hub over websocket: it authenticates the
// upgrade, turns client frames into service calls and writes results,
// errors and pushed events back as JSON frames.
package ws

import (
	"car-chat/auth"
	"car-chat/contract"
	"car-chat/domain"
	"car-chat/errors"
	"car-chat/services"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"
)

type Options struct {
	BufferSize     int
	AllowedOrigins []string
}

type Handler struct {
	log        *slog.Logger
	service    services.IChatService
	tokens     *auth.TokenManager
	upgrader   websocket.Upgrader
	bufferSize int
	sessions   sync.Map
}

func NewHandler(log *slog.Logger, service services.IChatService, tokens *auth.TokenManager, opts Options) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tokens:  tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(opts.AllowedOrigins),
		},
		bufferSize: opts.BufferSize,
	}
}

// originChecker allows every origin when the list is empty or holds "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

// ServeHTTP handles GET /hubs/chat.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.tokens.Authenticate(r)
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		http.Error(w, "invalid or missing token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("Upgrade failed", "user_id", identity.UserID, "error", err)
		return
	}

	session := newSession(conn, identity.UserID, h.bufferSize, h.log)
	caller := contract.Caller{UserID: identity.UserID, Role: identity.Role, Conn: session}
	if err := h.service.Connect(caller); err != nil {
		h.log.Warn("Connect rejected", "user_id", identity.UserID, "error", err)
		_ = conn.Close()
		return
	}
	h.sessions.Store(session.ID(), session)
	h.log.Info("Hub connection opened", "user_id", identity.UserID, "role", identity.Role, "conn_id", session.ID())

	go session.writePump()

	// Bound to the socket lifetime: cancelled when the read loop ends.
	ctx, cancel := context.WithCancel(context.Background())
	session.readPump(func(payload []byte) {
		h.handle(ctx, caller, session, payload)
	})
	cancel()

	h.service.Disconnect(caller)
	h.sessions.Delete(session.ID())
	session.close()
	h.log.Info("Hub connection closed", "user_id", identity.UserID, "conn_id", session.ID())
}

// CloseAll sends a close frame to every open session. Hijacked sockets are
// not tracked by http.Server, so this runs from RegisterOnShutdown.
func (h *Handler) CloseAll() {
	h.sessions.Range(func(_, value any) bool {
		value.(*Session).close()
		return true
	})
}

func (h *Handler) handle(ctx context.Context, caller contract.Caller, session *Session, payload []byte) {
	var inv Invocation
	if err := json.Unmarshal(payload, &inv); err != nil {
		h.reply(ctx, session, errorFrame("", fmt.Errorf("%w: malformed frame", errors.ErrInvalidPayload)))
		return
	}

	data, err := h.dispatch(ctx, caller, inv)
	if err != nil {
		h.log.Debug("Invocation failed", "user_id", caller.UserID, "op", inv.Type, "error", err)
		h.reply(ctx, session, errorFrame(inv.RequestID, err))
		return
	}
	h.reply(ctx, session, resultFrame(inv.RequestID, data))
}

func (h *Handler) reply(ctx context.Context, session *Session, frame Frame) {
	if err := session.enqueue(ctx, frame); err != nil {
		h.log.Warn("Reply dropped", "conn_id", session.ID(), "request_id", frame.RequestID, "error", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, caller contract.Caller, inv Invocation) (any, error) {
	switch inv.Type {
	case OpSendCarInquiry:
		var cmd domain.SendMessageCommand
		if err := decode(inv.Data, &cmd); err != nil {
			return nil, err
		}
		return nil, h.service.SendCarInquiry(ctx, caller, cmd)
	case OpReplyToConversation:
		var cmd domain.ReplyCommand
		if err := decode(inv.Data, &cmd); err != nil {
			return nil, err
		}
		return nil, h.service.Reply(ctx, caller, cmd)
	case OpRecentCarMessages:
		var query domain.RecentMessagesQuery
		if err := decode(inv.Data, &query); err != nil {
			return nil, err
		}
		return h.service.RecentMessages(caller, query)
	case OpUserConversations:
		return h.service.ListConversations(caller)
	case OpConversationDetails:
		var query domain.ConversationDetailQuery
		if err := decode(inv.Data, &query); err != nil {
			return nil, err
		}
		return h.service.ConversationDetail(caller, query)
	case OpSendSupportMessage:
		var cmd domain.SupportCommand
		if err := decode(inv.Data, &cmd); err != nil {
			return nil, err
		}
		return nil, h.service.SendSupport(ctx, caller, cmd)
	case OpSendAdminReply:
		var cmd domain.AdminReplyCommand
		if err := decode(inv.Data, &cmd); err != nil {
			return nil, err
		}
		return nil, h.service.SendAdminReply(ctx, caller, cmd)
	case OpPing:
		return map[string]string{"pong": caller.UserID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", errors.ErrInvalidPayload, inv.Type)
	}
}

// decode accepts a missing data member as an empty payload.
func decode(data json.RawMessage, into any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
