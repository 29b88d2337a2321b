package runtime

import (
	"car-chat/domain"
	"sort"
	"sync"
	"time"
)

// DefaultHistoryLimit is the number of messages kept per topic.
const DefaultHistoryLimit = 50

type topicHistory struct {
	mu       sync.Mutex
	messages []domain.Message // ascending by CreatedAt
}

// History keeps a bounded, time-ordered window of recent messages per topic.
// Appends to one topic are serialized; distinct topics never share a lock
// beyond the shard lookup.
type History struct {
	limit  int
	topics *Shards[domain.TopicKey, *topicHistory]
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		limit:  limit,
		topics: NewShards[domain.TopicKey, *topicHistory](defaultShardCount),
	}
}

// Append stores msg in timestamp order and evicts the oldest entries beyond
// the limit. It returns the resulting size.
func (h *History) Append(topic domain.TopicKey, msg domain.Message) int {
	size := 0
	h.topics.Compute(topic, func(th *topicHistory, exists bool) (*topicHistory, bool) {
		if !exists {
			th = &topicHistory{messages: make([]domain.Message, 0, h.limit+1)}
		}
		th.mu.Lock()
		defer th.mu.Unlock()

		// Equal timestamps keep insertion order.
		idx := sort.Search(len(th.messages), func(i int) bool {
			return th.messages[i].CreatedAt.After(msg.CreatedAt)
		})
		th.messages = append(th.messages, domain.Message{})
		copy(th.messages[idx+1:], th.messages[idx:])
		th.messages[idx] = msg

		if overflow := len(th.messages) - h.limit; overflow > 0 {
			th.messages = append(th.messages[:0], th.messages[overflow:]...)
		}
		size = len(th.messages)
		return th, true
	})
	return size
}

// Recent returns the newest limit messages in ascending order.
// A non-positive limit returns everything retained.
func (h *History) Recent(topic domain.TopicKey, limit int) []domain.Message {
	th, ok := h.topics.Load(topic)
	if !ok {
		return []domain.Message{}
	}
	th.mu.Lock()
	defer th.mu.Unlock()

	start := 0
	if limit > 0 && len(th.messages) > limit {
		start = len(th.messages) - limit
	}
	out := make([]domain.Message, len(th.messages)-start)
	copy(out, th.messages[start:])
	return out
}

func (h *History) All(topic domain.TopicKey) []domain.Message {
	return h.Recent(topic, 0)
}

// ForgetIfIdle clears topic only when its newest message is older than
// cutoff. A message appended after the topic went idle is kept.
func (h *History) ForgetIfIdle(topic domain.TopicKey, cutoff time.Time) bool {
	forgotten := false
	h.topics.Compute(topic, func(th *topicHistory, exists bool) (*topicHistory, bool) {
		if !exists {
			return th, false
		}
		th.mu.Lock()
		defer th.mu.Unlock()
		n := len(th.messages)
		forgotten = n == 0 || th.messages[n-1].CreatedAt.Before(cutoff)
		return th, !forgotten
	})
	return forgotten
}
