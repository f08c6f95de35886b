package models

// QueueStatus is the read model a waiting user polls.
//
// Progress is 100/UserRank, and 100 when the user has no rank. A rank of 0 means
// "not in the wait set" (never registered, or already admitted), not "done waiting".
type QueueStatus struct {
	UserRank       int64   `json:"userRank"`
	TotalQueueSize int64   `json:"totalQueueSize"`
	Progress       float64 `json:"progress"`
}

func NewQueueStatus(rank, total int64) QueueStatus {
	return QueueStatus{
		UserRank:       rank,
		TotalQueueSize: total,
		Progress:       CalculateProgress(rank),
	}
}

func CalculateProgress(rank int64) float64 {
	if rank <= 0 {
		return 100.0
	}
	return 100.0 / float64(rank)
}

// QueueFront is the number of users ahead in the wait set.
func (s QueueStatus) QueueFront() int64 {
	if s.UserRank > 0 {
		return s.UserRank - 1
	}
	return 0
}

// QueueBack is the number of tracked users behind this one, admitted users included.
func (s QueueStatus) QueueBack() int64 {
	return s.TotalQueueSize - s.UserRank
}

// QueueAdmission reports one batch-admit run over a single queue.
type QueueAdmission struct {
	Queue    string `json:"queue"`
	Admitted int64  `json:"admitted"`
}
