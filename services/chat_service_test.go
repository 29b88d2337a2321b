package services_test

import (
	"car-chat/contract"
	"car-chat/domain"
	"car-chat/errors"
	"car-chat/mocks"
	"car-chat/moderation"
	"car-chat/services"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newChatService(t *testing.T, maxLength int) (*services.ChatService, *mocks.MockIOrchestrator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := mocks.NewMockIOrchestrator(ctrl)
	moderator, err := moderation.NewModerator([]string{"scam"}, '*', log)
	require.NoError(t, err)
	return services.NewChatService(log, orchestrator, moderator, maxLength), orchestrator
}

var renter = contract.Caller{UserID: "X", Role: domain.RoleRenter}

func TestChatService_SendCarInquiry(t *testing.T) {
	ctx := context.Background()

	t.Run("should censor and delegate a valid message", func(t *testing.T) {
		req := require.New(t)
		svc, orchestrator := newChatService(t, 100)
		orchestrator.EXPECT().
			SendDirectedMessage(ctx, renter, domain.SendMessageCommand{ReceiverID: "Y", ContextID: "car-1", Text: "no **** please"}).
			Return(nil)

		err := svc.SendCarInquiry(ctx, renter, domain.SendMessageCommand{ReceiverID: "Y", ContextID: "car-1", Text: "no scam please"})

		req.NoError(err)
	})

	t.Run("should reject an anonymous caller before validating", func(t *testing.T) {
		svc, orchestrator := newChatService(t, 100)
		orchestrator.EXPECT().SendDirectedMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.SendCarInquiry(ctx, contract.Caller{}, domain.SendMessageCommand{})

		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("should reject a missing field", func(t *testing.T) {
		svc, orchestrator := newChatService(t, 100)
		orchestrator.EXPECT().SendDirectedMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.SendCarInquiry(ctx, renter, domain.SendMessageCommand{ReceiverID: "Y", Text: "hi"})

		require.ErrorIs(t, err, errors.ErrInvalidPayload)
	})

	t.Run("should reject an oversized message", func(t *testing.T) {
		svc, orchestrator := newChatService(t, 10)
		orchestrator.EXPECT().SendDirectedMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.SendCarInquiry(ctx, renter, domain.SendMessageCommand{ReceiverID: "Y", ContextID: "car-1", Text: strings.Repeat("é", 11)})

		require.ErrorIs(t, err, errors.ErrInvalidPayload)
	})
}

func TestChatService_ReplyIsAnInquiryBack(t *testing.T) {
	ctx := context.Background()
	svc, orchestrator := newChatService(t, 0)
	owner := contract.Caller{UserID: "Y", Role: domain.RoleCarOwner}
	orchestrator.EXPECT().
		SendDirectedMessage(ctx, owner, domain.SendMessageCommand{ReceiverID: "X", ContextID: "car-1", Text: "Yes it is"}).
		Return(nil)

	require.NoError(t, svc.Reply(ctx, owner, domain.ReplyCommand{OtherUserID: "X", ContextID: "car-1", Text: "Yes it is"}))
}

func TestChatService_Queries(t *testing.T) {
	req := require.New(t)
	svc, orchestrator := newChatService(t, 0)

	orchestrator.EXPECT().RecentMessages(renter, "car-1").Return([]domain.MessageView{{ID: "m1"}}, nil)
	views, err := svc.RecentMessages(renter, domain.RecentMessagesQuery{ContextID: "car-1"})
	req.NoError(err)
	req.Len(views, 1)

	_, err = svc.RecentMessages(renter, domain.RecentMessagesQuery{})
	req.ErrorIs(err, errors.ErrInvalidPayload)

	orchestrator.EXPECT().FetchConversationDetail(renter, "Y", "car-1").Return(domain.ConversationDetail{CarID: "car-1"}, nil)
	detail, err := svc.ConversationDetail(renter, domain.ConversationDetailQuery{OtherUserID: "Y", ContextID: "car-1"})
	req.NoError(err)
	req.Equal("car-1", detail.CarID)
}

func TestChatService_SupportAndAdmin(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, orchestrator := newChatService(t, 0)
	admin := contract.Caller{UserID: "A", Role: domain.RoleAdmin}

	orchestrator.EXPECT().SendSupportMessage(ctx, renter, "help, a ****").Return(nil)
	req.NoError(svc.SendSupport(ctx, renter, domain.SupportCommand{Text: "help, a scam"}))

	orchestrator.EXPECT().SendAdminReply(ctx, admin, "X", "on it").Return(nil)
	req.NoError(svc.SendAdminReply(ctx, admin, domain.AdminReplyCommand{TargetUserID: "X", Text: "on it"}))

	orchestrator.EXPECT().SendTestNotification(ctx, admin, "X", "ping").Return(true, nil)
	delivered, err := svc.SendTestNotification(ctx, admin, domain.TestNotificationCommand{TargetUserID: "X", Text: "ping"})
	req.NoError(err)
	req.True(delivered)
}
