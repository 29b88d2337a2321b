package internal

import (
	"car-chat/observability"
	"car-chat/repositories"
	"encoding/json"
	"net/http"
	"time"

	"github.com/samber/lo"
)

type StatsProvider func() observability.HubStats

// AccountRow is what /debug/accounts shows of an account. Password hashes
// never leave the repository through this path.
type AccountRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// NewDebugServer builds the debug listener. It is kept apart from the hub
// listener so account data is only reachable on addr, loopback by default.
func NewDebugServer(addr string, stats StatsProvider, users repositories.IUserRepository) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           DebugHandler(stats, users),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// DebugHandler serves /debug/stats and /debug/accounts.
func DebugHandler(stats StatsProvider, users repositories.IUserRepository) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /debug/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stats())
	})

	mux.HandleFunc("GET /debug/accounts", func(w http.ResponseWriter, r *http.Request) {
		list, err := users.ListUsers()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, lo.Map(list, func(u repositories.User, _ int) AccountRow {
			return ToAccountRow(u)
		}))
	})

	return mux
}

func ToAccountRow(u repositories.User) AccountRow {
	return AccountRow{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
