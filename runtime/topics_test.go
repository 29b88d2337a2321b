package runtime

import (
	"car-chat/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTopics_EnsureMembership(t *testing.T) {
	req := require.New(t)
	topics := NewTopics()
	topic := domain.NewTopicKey("car-1")
	conn := newConn("x")

	// Given no topic exists
	req.Empty(topics.Members(topic))
	req.Zero(topics.Count())

	// When a connection joins twice
	req.True(topics.EnsureMembership(topic, conn, origin))
	req.False(topics.EnsureMembership(topic, conn, origin))

	// Then it is listed once
	req.Len(topics.Members(topic), 1)
	req.Equal(1, topics.Count())

	// When it is pruned
	topics.Prune(topic, conn.ID())
	req.Empty(topics.Members(topic))
}

func TestTopics_IdleAndDrop(t *testing.T) {
	req := require.New(t)
	topics := NewTopics()
	old := domain.NewTopicKey("old")
	fresh := domain.NewTopicKey("fresh")

	topics.EnsureMembership(old, newConn("a"), origin)
	topics.EnsureMembership(fresh, newConn("b"), origin.Add(time.Hour))

	idle := topics.Idle(origin.Add(30 * time.Minute))
	req.Equal([]domain.TopicKey{old}, idle)

	req.False(topics.DropIfIdle(fresh, origin.Add(30*time.Minute)))
	req.True(topics.DropIfIdle(old, origin.Add(30*time.Minute)))
	req.Equal(1, topics.Count())
	req.Empty(topics.Members(old))
	req.False(topics.DropIfIdle(old, origin.Add(30*time.Minute)))
}

func TestTopics_DropIfIdleKeepsTopicTouchedAfterScan(t *testing.T) {
	req := require.New(t)
	topics := NewTopics()
	topic := domain.NewTopicKey("car-1")
	cutoff := origin.Add(30 * time.Minute)
	topics.EnsureMembership(topic, newConn("a"), origin)
	req.Equal([]domain.TopicKey{topic}, topics.Idle(cutoff))

	// When a new member arrives after the scan
	fresh := newConn("b")
	topics.EnsureMembership(topic, fresh, cutoff.Add(time.Second))

	// Then the drop is refused
	req.False(topics.DropIfIdle(topic, cutoff))
	req.Len(topics.Members(topic), 2)
}
