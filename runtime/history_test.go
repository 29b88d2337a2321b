package runtime

import (
	"car-chat/domain"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var origin = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestHistory_CapKeepsMostRecent(t *testing.T) {
	topic := domain.NewTopicKey("car-1")

	for _, n := range []int{0, 1, 49, 50, 51, 120} {
		t.Run(fmt.Sprintf("%d appends", n), func(t *testing.T) {
			req := require.New(t)
			history := NewHistory(DefaultHistoryLimit)

			// When n messages are appended
			for i := 0; i < n; i++ {
				history.Append(topic, domain.NewMessage("x", fmt.Sprint(i), "car-1", origin.Add(time.Duration(i)*time.Second)))
			}

			// Then min(n, 50) remain, the newest ones, in ascending order
			all := history.All(topic)
			req.Len(all, min(n, DefaultHistoryLimit))
			for i, msg := range all {
				req.Equal(fmt.Sprint(n-len(all)+i), msg.Text)
			}
		})
	}
}

func TestHistory_OutOfOrderTimestamps(t *testing.T) {
	req := require.New(t)
	history := NewHistory(3)
	topic := domain.NewTopicKey("car-2")

	// Given messages arriving out of timestamp order
	history.Append(topic, domain.NewMessage("x", "t3", "car-2", origin.Add(3*time.Second)))
	history.Append(topic, domain.NewMessage("x", "t1", "car-2", origin.Add(1*time.Second)))
	history.Append(topic, domain.NewMessage("x", "t4", "car-2", origin.Add(4*time.Second)))
	history.Append(topic, domain.NewMessage("x", "t2", "car-2", origin.Add(2*time.Second)))

	// Then the oldest by timestamp is evicted and the rest are sorted
	texts := []string{}
	for _, m := range history.All(topic) {
		texts = append(texts, m.Text)
	}
	req.Equal([]string{"t2", "t3", "t4"}, texts)
}

func TestHistory_RecentIsLastNChronological(t *testing.T) {
	req := require.New(t)
	history := NewHistory(DefaultHistoryLimit)
	topic := domain.NewTopicKey("car-3")
	for i := 0; i < 15; i++ {
		history.Append(topic, domain.NewMessage("x", fmt.Sprint(i), "car-3", origin.Add(time.Duration(i)*time.Minute)))
	}

	recent := history.Recent(topic, 10)

	req.Len(recent, 10)
	req.Equal("5", recent[0].Text)
	req.Equal("14", recent[9].Text)
	req.True(recent[0].CreatedAt.Before(recent[9].CreatedAt))
}

func TestHistory_MissingTopicIsEmpty(t *testing.T) {
	req := require.New(t)
	history := NewHistory(DefaultHistoryLimit)

	req.NotNil(history.All("car-nope-chat"))
	req.Empty(history.All("car-nope-chat"))
	req.Empty(history.Recent("car-nope-chat", 10))
}

func TestHistory_ConcurrentAppendsSameTopic(t *testing.T) {
	req := require.New(t)
	history := NewHistory(DefaultHistoryLimit)
	topic := domain.NewTopicKey("busy")
	var wg sync.WaitGroup

	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			size := history.Append(topic, domain.NewMessage("x", fmt.Sprint(i), "busy", origin.Add(time.Duration(i)*time.Millisecond)))
			if size > DefaultHistoryLimit {
				t.Errorf("history grew to %d", size)
			}
		}(i)
	}
	wg.Wait()

	all := history.All(topic)
	req.Len(all, DefaultHistoryLimit)
	// The retained window is exactly the 50 latest timestamps
	req.Equal(origin.Add(450*time.Millisecond), all[0].CreatedAt)
	req.Equal(origin.Add(499*time.Millisecond), all[49].CreatedAt)
}

func TestHistory_ForgetIfIdle(t *testing.T) {
	req := require.New(t)
	history := NewHistory(DefaultHistoryLimit)
	topic := domain.NewTopicKey("car-4")
	history.Append(topic, domain.NewMessage("x", "hi", "car-4", origin))

	// A newer message keeps the topic
	req.False(history.ForgetIfIdle(topic, origin))
	req.Len(history.All(topic), 1)

	req.True(history.ForgetIfIdle(topic, origin.Add(time.Minute)))
	req.Empty(history.All(topic))
	req.False(history.ForgetIfIdle(domain.NewTopicKey("missing"), origin))
}
