package runtime

import (
	"car-chat/domain/event"
	"context"
	"sync"

	"github.com/google/uuid"
)

// recordingConn is an in-memory connection keeping every pushed event.
type recordingConn struct {
	id     string
	userID string

	mu     sync.Mutex
	events []event.Event
}

func newConn(userID string) *recordingConn {
	return &recordingConn{id: uuid.NewString(), userID: userID}
}

func (c *recordingConn) ID() string     { return c.id }
func (c *recordingConn) UserID() string { return c.userID }

func (c *recordingConn) Consume(_ context.Context, e event.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

func (c *recordingConn) Events() []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]event.Event(nil), c.events...)
}

func eventsOf[T event.Event](c *recordingConn) []T {
	var out []T
	for _, e := range c.Events() {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
