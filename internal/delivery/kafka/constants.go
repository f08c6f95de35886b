package kafka

const (
	TopicQueueJoined   = "queue.joined"
	TopicQueueAdmitted = "queue.admitted"

	TopicAllowRequested = "queue.allow.requested"
)
