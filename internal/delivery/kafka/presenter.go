package kafka

import "time"

// Events published BY docqueue

type QueueJoinedEvent struct {
	ID        string    `json:"id"`
	Queue     string    `json:"queue"`
	UserID    string    `json:"user_id"`
	Rank      int64     `json:"rank"`
	JoinedAt  time.Time `json:"joined_at"`
	Timestamp time.Time `json:"timestamp"`
}

type QueueAdmittedEvent struct {
	ID         string    `json:"id"`
	Queue      string    `json:"queue"`
	UserIDs    []string  `json:"user_ids"`
	Count      int64     `json:"count"`
	AdmittedAt time.Time `json:"admitted_at"`
	Timestamp  time.Time `json:"timestamp"`
}

// Events consumed BY docqueue

type AllowRequestedEvent struct {
	Queue     string    `json:"queue"`
	Count     int64     `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
