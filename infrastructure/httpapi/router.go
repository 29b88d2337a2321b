// Package httpapi exposes the REST side of the hub: account sign up and
// login, chat status and the admin test notification.
package httpapi

import (
	"car-chat/auth"
	"car-chat/contract"
	"car-chat/domain"
	"car-chat/errors"
	"car-chat/services"
	"encoding/json"
	"log/slog"
	"net/http"

	"google.golang.org/grpc/codes"
)

const (
	HubPath        = "/hubs/chat"
	connectionInfo = "Use the websocket hub at " + HubPath + " with your JWT token for real-time communication"
	maxBodyBytes   = 1 << 20
)

type Router struct {
	log    *slog.Logger
	chat   services.IChatService
	auth   services.IAuthService
	tokens *auth.TokenManager
}

func NewRouter(log *slog.Logger, chat services.IChatService, authService services.IAuthService, tokens *auth.TokenManager) *Router {
	return &Router{log: log, chat: chat, auth: authService, tokens: tokens}
}

// Mount registers every REST route plus the hub handler on mux. hub may be
// nil. Debug endpoints are never mounted here; they have their own listener.
func (rt *Router) Mount(mux *http.ServeMux, hub http.Handler) {
	mux.HandleFunc("GET /healthz", rt.health)
	mux.HandleFunc("POST /api/auth/register", rt.register)
	mux.HandleFunc("POST /api/auth/login", rt.login)
	mux.Handle("GET /api/chat/status", rt.tokens.Middleware(http.HandlerFunc(rt.status)))
	mux.Handle("POST /api/chat/test-notification", rt.tokens.Middleware(http.HandlerFunc(rt.testNotification)))
	if hub != nil {
		mux.Handle("GET "+HubPath, hub)
	}
}

func (rt *Router) Handler(hub http.Handler) http.Handler {
	mux := http.NewServeMux()
	rt.Mount(mux, hub)
	return mux
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (rt *Router) register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if !rt.decode(w, r, &req) {
		return
	}
	token, err := rt.auth.Register(req)
	if err != nil {
		rt.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{Token: string(token)})
}

func (rt *Router) login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !rt.decode(w, r, &req) {
		return
	}
	token, err := rt.auth.Login(req)
	if err != nil {
		rt.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
}

type statusResponse struct {
	contract.Status
	ConnectionInfo string `json:"connectionInfo"`
}

func (rt *Router) status(w http.ResponseWriter, r *http.Request) {
	st, err := rt.chat.Status(callerOf(r))
	if err != nil {
		rt.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: st, ConnectionInfo: connectionInfo})
}

type testNotificationResponse struct {
	Message   string `json:"message"`
	Delivered bool   `json:"delivered"`
}

func (rt *Router) testNotification(w http.ResponseWriter, r *http.Request) {
	var cmd domain.TestNotificationCommand
	if !rt.decode(w, r, &cmd) {
		return
	}
	delivered, err := rt.chat.SendTestNotification(r.Context(), callerOf(r), cmd)
	if err != nil {
		rt.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, testNotificationResponse{Message: "Test notification sent", Delivered: delivered})
}

// callerOf builds the caller of an authenticated REST request. It has no
// live connection.
func callerOf(r *http.Request) contract.Caller {
	id, _ := auth.IdentityFromContext(r.Context())
	return contract.Caller{UserID: id.UserID, Role: id.Role}
}

func (rt *Router) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(into); err != nil {
		rt.fail(w, errors.ErrInvalidPayload)
		return false
	}
	return true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (rt *Router) fail(w http.ResponseWriter, err error) {
	st := errors.ToStatus(err)
	code := HTTPStatus(st.Code())
	if code >= http.StatusInternalServerError {
		rt.log.Error("Request failed", "error", err)
	}
	writeJSON(w, code, errorResponse{Code: st.Code().String(), Message: st.Message()})
}

// HTTPStatus converts a status code into its HTTP counterpart.
func HTTPStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
