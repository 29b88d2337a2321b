//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"car-chat/domain"
	"car-chat/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// Connection is one live, authenticated client link.
type Connection interface {
	EventSink
	ID() string
	UserID() string
}

// Caller is the verified identity behind an invocation, plus the
// connection it arrived on. Conn may be nil for REST calls.
type Caller struct {
	UserID string
	Role   domain.Role
	Conn   Connection
}

func (c Caller) Authenticated() bool { return c.UserID != "" }

type IRegistry interface {
	Register(userID string, conn Connection, role domain.Role) (Connection, bool)
	Unregister(userID string, conn Connection, role domain.Role)
	Resolve(userID string) (Connection, bool)
	IsLive(conn Connection) bool
	GroupMembers(group string) []Connection
	OnlineCount() int
}

type ITopics interface {
	EnsureMembership(topic domain.TopicKey, conn Connection, at time.Time) bool
	Members(topic domain.TopicKey) []Connection
	Prune(topic domain.TopicKey, connID string)
	Idle(cutoff time.Time) []domain.TopicKey
	DropIfIdle(topic domain.TopicKey, cutoff time.Time) bool
	Count() int
}

type IHistory interface {
	Append(topic domain.TopicKey, msg domain.Message) int
	Recent(topic domain.TopicKey, limit int) []domain.Message
	All(topic domain.TopicKey) []domain.Message
	ForgetIfIdle(topic domain.TopicKey, cutoff time.Time) bool
}

type IConversations interface {
	Touch(ownerID, counterpartyID, contextID string, at time.Time)
	List(ownerID string) []domain.Conversation
}

type IOrchestrator interface {
	Connect(caller Caller) error
	Disconnect(caller Caller)
	SendDirectedMessage(ctx context.Context, caller Caller, cmd domain.SendMessageCommand) error
	RecentMessages(caller Caller, contextID string) ([]domain.MessageView, error)
	FetchConversationDetail(caller Caller, counterpartyID, contextID string) (domain.ConversationDetail, error)
	ListConversations(caller Caller) ([]domain.ConversationSummary, error)
	SendSupportMessage(ctx context.Context, caller Caller, text string) error
	SendAdminReply(ctx context.Context, caller Caller, targetUserID, text string) error
	SendTestNotification(ctx context.Context, caller Caller, targetUserID, text string) (bool, error)
	EvictIdleTopics(ttl time.Duration) int
	Status(caller Caller) (Status, error)
}

type Status struct {
	Status      string `json:"status"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	IsConnected bool   `json:"isConnected"`
	Online      int    `json:"online"`
}
