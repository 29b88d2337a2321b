// Package runtime holds the live state of the hub: who is connected, which
// connections share a car topic, recent history and conversation pointers.
// The Orchestrator routes every operation through them.
package runtime

import (
	"car-chat/contract"
	"car-chat/domain"
	"car-chat/domain/event"
	"car-chat/errors"
	"car-chat/observability"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

const (
	DefaultDetailMessages = 10

	recipientOfflineNotice = "The recipient is currently offline but will receive your message when they connect."
	supportSentNotice      = "Your support message has been sent to our admin team."
	userOfflineNotice      = "The user is currently offline. They will receive your message when they connect."
	replySentNotice        = "Your reply has been sent to user %s."
)

type Orchestrator struct {
	log             *slog.Logger
	registry        contract.IRegistry
	topics          contract.ITopics
	history         contract.IHistory
	conversations   contract.IConversations
	metrics         *observability.Metrics
	deliveryTimeout time.Duration
	detailMessages  int
	now             func() time.Time
}

func NewOrchestrator(log *slog.Logger,
	registry contract.IRegistry, topics contract.ITopics,
	history contract.IHistory, conversations contract.IConversations,
	metrics *observability.Metrics, deliveryTimeout time.Duration, detailMessages int) *Orchestrator {
	if detailMessages <= 0 {
		detailMessages = DefaultDetailMessages
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &Orchestrator{
		log:             log,
		registry:        registry,
		topics:          topics,
		history:         history,
		conversations:   conversations,
		metrics:         metrics,
		deliveryTimeout: deliveryTimeout,
		detailMessages:  detailMessages,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source, mostly for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Gauges exposes live sizes to the monitoring manager.
func (o *Orchestrator) Gauges() (online, topics int) {
	return o.registry.OnlineCount(), o.topics.Count()
}

func (o *Orchestrator) Connect(caller contract.Caller) error {
	if !caller.Authenticated() || caller.Conn == nil {
		return errors.ErrUnauthenticated
	}
	previous, replaced := o.registry.Register(caller.UserID, caller.Conn, caller.Role)
	o.metrics.IncrConnects()
	if replaced {
		o.metrics.IncrTakeovers()
		o.log.Info("Connection replaced by a newer one",
			"user_id", caller.UserID,
			"previous_conn_id", previous.ID(),
			"conn_id", caller.Conn.ID())
	}
	o.log.Debug("User connected", "user_id", caller.UserID, "role", caller.Role, "conn_id", caller.Conn.ID())
	return nil
}

func (o *Orchestrator) Disconnect(caller contract.Caller) {
	if !caller.Authenticated() || caller.Conn == nil {
		return
	}
	o.registry.Unregister(caller.UserID, caller.Conn, caller.Role)
	o.metrics.IncrDisconnects()
	o.log.Debug("User disconnected", "user_id", caller.UserID, "conn_id", caller.Conn.ID())
}

// SendDirectedMessage stores a message about a car and routes it.
// The sender always gets its echo first. An offline receiver is a normal
// outcome reported to the sender with a system notice.
func (o *Orchestrator) SendDirectedMessage(ctx context.Context, caller contract.Caller, cmd domain.SendMessageCommand) error {
	if !caller.Authenticated() {
		return errors.ErrUnauthenticated
	}
	now := o.now()
	topic := domain.NewTopicKey(cmd.ContextID)

	if caller.Conn != nil {
		o.topics.EnsureMembership(topic, caller.Conn, now)
	}

	msg := domain.NewMessage(caller.UserID, cmd.Text, cmd.ContextID, now)
	size := o.history.Append(topic, msg)

	o.conversations.Touch(caller.UserID, cmd.ReceiverID, cmd.ContextID, now)
	o.conversations.Touch(cmd.ReceiverID, caller.UserID, cmd.ContextID, now)
	o.metrics.IncrMessagesSent()

	received := toMessageEvent(msg)
	o.deliver(ctx, caller.Conn, received)

	receiver, online := o.registry.Resolve(cmd.ReceiverID)
	if online {
		o.topics.EnsureMembership(topic, receiver, now)
		o.fanOut(ctx, topic, received, connID(caller.Conn))
		o.deliver(ctx, receiver, event.Notification{
			SenderID:  caller.UserID,
			Preview:   event.Preview(cmd.Text),
			ContextID: cmd.ContextID,
			Category:  event.CategoryCarInquiry,
			At:        now,
		})
	} else {
		o.metrics.IncrOfflineNotices()
		o.deliver(ctx, caller.Conn, event.NewSystemNotice(recipientOfflineNotice))
		o.fanOut(ctx, topic, received, connID(caller.Conn))
	}

	o.log.Debug("Car inquiry routed",
		"sender_id", caller.UserID,
		"receiver_id", cmd.ReceiverID,
		"topic", topic,
		"receiver_online", online,
		"history_size", size)
	return nil
}

// RecentMessages returns every retained message of the car topic, oldest first.
func (o *Orchestrator) RecentMessages(caller contract.Caller, contextID string) ([]domain.MessageView, error) {
	if !caller.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}
	messages := o.history.All(domain.NewTopicKey(contextID))
	return toViews(messages, caller.UserID), nil
}

func (o *Orchestrator) FetchConversationDetail(caller contract.Caller, counterpartyID, contextID string) (domain.ConversationDetail, error) {
	if !caller.Authenticated() {
		return domain.ConversationDetail{}, errors.ErrUnauthenticated
	}
	topic := domain.NewTopicKey(contextID)
	_, online := o.registry.Resolve(counterpartyID)
	return domain.ConversationDetail{
		CarID:          contextID,
		OtherUserID:    counterpartyID,
		IsUserOnline:   online,
		RecentMessages: toViews(o.history.Recent(topic, o.detailMessages), caller.UserID),
		GroupName:      topic.String(),
	}, nil
}

func (o *Orchestrator) ListConversations(caller contract.Caller) ([]domain.ConversationSummary, error) {
	if !caller.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}
	return lo.Map(o.conversations.List(caller.UserID), func(c domain.Conversation, _ int) domain.ConversationSummary {
		return c.Summary()
	}), nil
}

// SendSupportMessage broadcasts a user's message to every connected admin.
func (o *Orchestrator) SendSupportMessage(ctx context.Context, caller contract.Caller, text string) error {
	if !caller.Authenticated() {
		return errors.ErrUnauthenticated
	}
	now := o.now()
	msg := event.SupportMessage{SenderID: caller.UserID, Text: text, At: now}
	o.metrics.IncrSupportMessages()

	o.deliver(ctx, caller.Conn, msg)

	// A replaced session stays in its group until it disconnects.
	admins := lo.Filter(o.registry.GroupMembers(domain.AdminsGroup), func(c contract.Connection, _ int) bool {
		return o.registry.IsLive(c)
	})
	for _, admin := range admins {
		o.deliver(ctx, admin, msg)
	}
	notification := event.Notification{
		SenderID: caller.UserID,
		Preview:  event.Preview(text),
		Category: event.CategorySupport,
		At:       now,
	}
	for _, admin := range admins {
		o.deliver(ctx, admin, notification)
	}

	o.deliver(ctx, caller.Conn, event.NewSystemNotice(supportSentNotice))
	o.log.Debug("Support message routed", "sender_id", caller.UserID, "admins", len(admins))
	return nil
}

// SendAdminReply lets an admin answer one user directly.
func (o *Orchestrator) SendAdminReply(ctx context.Context, caller contract.Caller, targetUserID, text string) error {
	if !caller.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if !caller.Role.IsPrivileged() {
		return fmt.Errorf("admin reply: %w", errors.ErrForbidden)
	}
	now := o.now()
	o.metrics.IncrAdminReplies()

	reply := event.AdminMessage{SenderID: caller.UserID, Text: text, TargetUserID: targetUserID, At: now}
	o.deliver(ctx, caller.Conn, reply)

	target, online := o.registry.Resolve(targetUserID)
	if !online {
		o.metrics.IncrOfflineNotices()
		o.deliver(ctx, caller.Conn, event.NewSystemNotice(userOfflineNotice))
		return nil
	}

	o.deliver(ctx, target, reply)
	o.deliver(ctx, target, event.Notification{
		SenderID: caller.UserID,
		Preview:  event.Preview(text),
		Category: event.CategoryAdminReply,
		At:       now,
	})
	o.deliver(ctx, caller.Conn, event.NewSystemNotice(fmt.Sprintf(replySentNotice, targetUserID)))
	return nil
}

// SendTestNotification pushes a test notification to a user. It reports
// whether the user was online to receive it.
func (o *Orchestrator) SendTestNotification(ctx context.Context, caller contract.Caller, targetUserID, text string) (bool, error) {
	if !caller.Authenticated() {
		return false, errors.ErrUnauthenticated
	}
	if !caller.Role.IsPrivileged() {
		return false, fmt.Errorf("test notification: %w", errors.ErrForbidden)
	}
	target, online := o.registry.Resolve(targetUserID)
	if !online {
		return false, nil
	}
	return o.deliver(ctx, target, event.Notification{
		SenderID: caller.UserID,
		Preview:  event.Preview(text),
		Category: event.CategoryTest,
		At:       o.now(),
	}), nil
}

// EvictIdleTopics drops membership and history of topics idle for longer
// than ttl. A non-positive ttl keeps every topic. Each candidate is checked
// again at removal, so a send racing the scan keeps its topic.
func (o *Orchestrator) EvictIdleTopics(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := o.now().Add(-ttl)
	evicted := 0
	for _, topic := range o.topics.Idle(cutoff) {
		if !o.topics.DropIfIdle(topic, cutoff) {
			continue
		}
		o.history.ForgetIfIdle(topic, cutoff)
		evicted++
	}
	if evicted > 0 {
		o.metrics.AddEvictedTopics(uint64(evicted))
		o.log.Info("Idle topics evicted", "count", evicted)
	}
	return evicted
}

func (o *Orchestrator) Status(caller contract.Caller) (contract.Status, error) {
	if !caller.Authenticated() {
		return contract.Status{}, errors.ErrUnauthenticated
	}
	_, connected := o.registry.Resolve(caller.UserID)
	return contract.Status{
		Status:      "Active",
		UserID:      caller.UserID,
		Role:        string(caller.Role),
		IsConnected: connected,
		Online:      o.registry.OnlineCount(),
	}, nil
}

// fanOut delivers evt to every live member of topic except the excluded
// connection. Members whose user has since reconnected or left are pruned.
func (o *Orchestrator) fanOut(ctx context.Context, topic domain.TopicKey, evt event.Event, exceptConnID string) {
	for _, member := range o.topics.Members(topic) {
		if member.ID() == exceptConnID {
			continue
		}
		if !o.registry.IsLive(member) {
			o.topics.Prune(topic, member.ID())
			continue
		}
		o.deliver(ctx, member, evt)
	}
}

// deliver is best effort: a failed push is logged and counted, never returned.
func (o *Orchestrator) deliver(ctx context.Context, conn contract.Connection, evt event.Event) bool {
	if conn == nil {
		return false
	}
	if o.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.deliveryTimeout)
		defer cancel()
	}
	if err := conn.Consume(ctx, evt); err != nil {
		o.metrics.IncrDropped()
		o.log.Warn("Delivery failed",
			"conn_id", conn.ID(),
			"user_id", conn.UserID(),
			"kind", evt.Kind(),
			"error", err)
		return false
	}
	o.metrics.IncrDelivered()
	return true
}

func connID(conn contract.Connection) string {
	if conn == nil {
		return ""
	}
	return conn.ID()
}

func toMessageEvent(msg domain.Message) event.MessageReceived {
	return event.MessageReceived{
		ID:        msg.ID.String(),
		SenderID:  msg.SenderID,
		Text:      msg.Text,
		ContextID: msg.ContextID,
		At:        msg.CreatedAt,
	}
}

func toViews(messages []domain.Message, readerID string) []domain.MessageView {
	return lo.Map(messages, func(m domain.Message, _ int) domain.MessageView {
		return m.ViewFor(readerID)
	})
}
