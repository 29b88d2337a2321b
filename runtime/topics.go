package runtime

import (
	"car-chat/contract"
	"car-chat/domain"
	"sync"
	"time"
)

type topicMembers struct {
	mu         sync.RWMutex
	members    connSet
	lastActive time.Time
}

// Topics groups connections by car. Topics are created on first use and only
// removed by DropIfIdle, which the idle janitor calls when a TTL is configured.
// Creation, membership updates and removal all happen under the shard lock,
// so a removed topic is never written to afterwards.
// Stale connections stay listed until delivery notices them and prunes them.
type Topics struct {
	topics *Shards[domain.TopicKey, *topicMembers]
}

func NewTopics() *Topics {
	return &Topics{topics: NewShards[domain.TopicKey, *topicMembers](defaultShardCount)}
}

// EnsureMembership adds conn to topic and reports whether it was new.
func (t *Topics) EnsureMembership(topic domain.TopicKey, conn contract.Connection, at time.Time) bool {
	added := false
	t.topics.Compute(topic, func(tm *topicMembers, exists bool) (*topicMembers, bool) {
		if !exists {
			tm = &topicMembers{members: make(connSet)}
		}
		tm.mu.Lock()
		defer tm.mu.Unlock()
		if at.After(tm.lastActive) {
			tm.lastActive = at
		}
		if _, ok := tm.members[conn.ID()]; !ok {
			tm.members[conn.ID()] = conn
			added = true
		}
		return tm, true
	})
	return added
}

func (t *Topics) Members(topic domain.TopicKey) []contract.Connection {
	tm, ok := t.topics.Load(topic)
	if !ok {
		return nil
	}
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	out := make([]contract.Connection, 0, len(tm.members))
	for _, c := range tm.members {
		out = append(out, c)
	}
	return out
}

func (t *Topics) Prune(topic domain.TopicKey, connID string) {
	tm, ok := t.topics.Load(topic)
	if !ok {
		return
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	delete(tm.members, connID)
}

// Idle lists topics with no activity since cutoff.
func (t *Topics) Idle(cutoff time.Time) []domain.TopicKey {
	var idle []domain.TopicKey
	t.topics.Range(func(key domain.TopicKey, tm *topicMembers) bool {
		tm.mu.RLock()
		if tm.lastActive.Before(cutoff) {
			idle = append(idle, key)
		}
		tm.mu.RUnlock()
		return true
	})
	return idle
}

// DropIfIdle removes topic only if it is still idle at cutoff. Activity
// recorded after an Idle scan keeps the topic alive.
func (t *Topics) DropIfIdle(topic domain.TopicKey, cutoff time.Time) bool {
	dropped := false
	t.topics.Compute(topic, func(tm *topicMembers, exists bool) (*topicMembers, bool) {
		if !exists {
			return tm, false
		}
		tm.mu.RLock()
		dropped = tm.lastActive.Before(cutoff)
		tm.mu.RUnlock()
		return tm, !dropped
	})
	return dropped
}

func (t *Topics) Count() int {
	return t.topics.Len()
}
