package runtime

import (
	"car-chat/domain"
	"sort"
	"sync"
	"time"
)

type conversationKey struct {
	counterpartyID string
	contextID      string
}

type conversationSet struct {
	mu      sync.Mutex
	entries map[conversationKey]domain.Conversation
}

// Conversations indexes, per user, who they talk to about which car.
// Entries are upserted on every message and never removed.
type Conversations struct {
	owners *Shards[string, *conversationSet]
}

func NewConversations() *Conversations {
	return &Conversations{owners: NewShards[string, *conversationSet](defaultShardCount)}
}

func (c *Conversations) Touch(ownerID, counterpartyID, contextID string, at time.Time) {
	set := c.owners.LoadOrCreate(ownerID, func() *conversationSet {
		return &conversationSet{entries: make(map[conversationKey]domain.Conversation)}
	})
	set.mu.Lock()
	defer set.mu.Unlock()
	set.entries[conversationKey{counterpartyID: counterpartyID, contextID: contextID}] = domain.Conversation{
		CounterpartyID: counterpartyID,
		ContextID:      contextID,
		LastActivityAt: at,
	}
}

// List returns the conversations of ownerID, most recent first.
func (c *Conversations) List(ownerID string) []domain.Conversation {
	set, ok := c.owners.Load(ownerID)
	if !ok {
		return []domain.Conversation{}
	}
	set.mu.Lock()
	out := make([]domain.Conversation, 0, len(set.entries))
	for _, e := range set.entries {
		out = append(out, e)
	}
	set.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastActivityAt.Equal(out[j].LastActivityAt) {
			return out[i].LastActivityAt.After(out[j].LastActivityAt)
		}
		if out[i].ContextID != out[j].ContextID {
			return out[i].ContextID < out[j].ContextID
		}
		return out[i].CounterpartyID < out[j].CounterpartyID
	})
	return out
}
