package domain

// TopicKey names the group of connections discussing one car.
type TopicKey string

// NewTopicKey derives the topic from the car identifier only.
// Two unrelated pairs talking about the same car share the topic.
func NewTopicKey(contextID string) TopicKey {
	return TopicKey("car-" + contextID + "-chat")
}

func (k TopicKey) String() string { return string(k) }
