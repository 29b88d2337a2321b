//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"car-chat/contract"
	"car-chat/domain"
	"car-chat/errors"
	"car-chat/moderation"
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// IChatService is what the transports call. Every method checks the caller
// first, then the payload, then hands over to the orchestrator.
type IChatService interface {
	Connect(caller contract.Caller) error
	Disconnect(caller contract.Caller)
	SendCarInquiry(ctx context.Context, caller contract.Caller, cmd domain.SendMessageCommand) error
	Reply(ctx context.Context, caller contract.Caller, cmd domain.ReplyCommand) error
	RecentMessages(caller contract.Caller, query domain.RecentMessagesQuery) ([]domain.MessageView, error)
	ConversationDetail(caller contract.Caller, query domain.ConversationDetailQuery) (domain.ConversationDetail, error)
	ListConversations(caller contract.Caller) ([]domain.ConversationSummary, error)
	SendSupport(ctx context.Context, caller contract.Caller, cmd domain.SupportCommand) error
	SendAdminReply(ctx context.Context, caller contract.Caller, cmd domain.AdminReplyCommand) error
	SendTestNotification(ctx context.Context, caller contract.Caller, cmd domain.TestNotificationCommand) (bool, error)
	Status(caller contract.Caller) (contract.Status, error)
}

type ChatService struct {
	log              *slog.Logger
	orchestrator     contract.IOrchestrator
	moderator        *moderation.Moderator
	validate         *validator.Validate
	maxContentLength int
}

// NewChatService wires the façade. A nil moderator leaves text untouched
// and a non-positive maxContentLength disables the length check.
func NewChatService(log *slog.Logger, orchestrator contract.IOrchestrator,
	moderator *moderation.Moderator, maxContentLength int) *ChatService {
	return &ChatService{
		log:              log,
		orchestrator:     orchestrator,
		moderator:        moderator,
		validate:         validator.New(),
		maxContentLength: maxContentLength,
	}
}

func (s *ChatService) Connect(caller contract.Caller) error {
	return s.orchestrator.Connect(caller)
}

func (s *ChatService) Disconnect(caller contract.Caller) {
	s.orchestrator.Disconnect(caller)
}

func (s *ChatService) SendCarInquiry(ctx context.Context, caller contract.Caller, cmd domain.SendMessageCommand) error {
	if err := s.check(caller, cmd); err != nil {
		return err
	}
	text, err := s.prepareText(caller, cmd.Text)
	if err != nil {
		return err
	}
	cmd.Text = text
	return s.orchestrator.SendDirectedMessage(ctx, caller, cmd)
}

// Reply is a car inquiry addressed back to the other party.
func (s *ChatService) Reply(ctx context.Context, caller contract.Caller, cmd domain.ReplyCommand) error {
	if err := s.check(caller, cmd); err != nil {
		return err
	}
	return s.SendCarInquiry(ctx, caller, cmd.AsSend())
}

func (s *ChatService) RecentMessages(caller contract.Caller, query domain.RecentMessagesQuery) ([]domain.MessageView, error) {
	if err := s.check(caller, query); err != nil {
		return nil, err
	}
	return s.orchestrator.RecentMessages(caller, query.ContextID)
}

func (s *ChatService) ConversationDetail(caller contract.Caller, query domain.ConversationDetailQuery) (domain.ConversationDetail, error) {
	if err := s.check(caller, query); err != nil {
		return domain.ConversationDetail{}, err
	}
	return s.orchestrator.FetchConversationDetail(caller, query.OtherUserID, query.ContextID)
}

func (s *ChatService) ListConversations(caller contract.Caller) ([]domain.ConversationSummary, error) {
	return s.orchestrator.ListConversations(caller)
}

func (s *ChatService) SendSupport(ctx context.Context, caller contract.Caller, cmd domain.SupportCommand) error {
	if err := s.check(caller, cmd); err != nil {
		return err
	}
	text, err := s.prepareText(caller, cmd.Text)
	if err != nil {
		return err
	}
	return s.orchestrator.SendSupportMessage(ctx, caller, text)
}

func (s *ChatService) SendAdminReply(ctx context.Context, caller contract.Caller, cmd domain.AdminReplyCommand) error {
	if err := s.check(caller, cmd); err != nil {
		return err
	}
	text, err := s.prepareText(caller, cmd.Text)
	if err != nil {
		return err
	}
	return s.orchestrator.SendAdminReply(ctx, caller, cmd.TargetUserID, text)
}

func (s *ChatService) SendTestNotification(ctx context.Context, caller contract.Caller, cmd domain.TestNotificationCommand) (bool, error) {
	if err := s.check(caller, cmd); err != nil {
		return false, err
	}
	return s.orchestrator.SendTestNotification(ctx, caller, cmd.TargetUserID, cmd.Text)
}

func (s *ChatService) Status(caller contract.Caller) (contract.Status, error) {
	return s.orchestrator.Status(caller)
}

// check rejects anonymous callers before looking at the payload.
func (s *ChatService) check(caller contract.Caller, payload any) error {
	if !caller.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}

func (s *ChatService) prepareText(caller contract.Caller, text string) (string, error) {
	if s.maxContentLength > 0 && utf8.RuneCountInString(text) > s.maxContentLength {
		return "", fmt.Errorf("%w: message longer than %d characters", errors.ErrInvalidPayload, s.maxContentLength)
	}
	censored, words := s.moderator.Censor(text)
	if len(words) > 0 {
		s.log.Info("Message censored", "user_id", caller.UserID, "matches", len(words))
	}
	return censored, nil
}
