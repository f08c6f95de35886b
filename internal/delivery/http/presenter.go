package http

import (
	"strings"

	"github.com/vogiaan1904/docqueue/internal/models"
)

type statusResponse struct {
	UserRank       int64   `json:"userRank"`
	TotalQueueSize int64   `json:"totalQueueSize"`
	Progress       float64 `json:"progress"`
	QueueFront     int64   `json:"queueFront"`
	QueueBack      int64   `json:"queueBack"`
}

func newStatusResponse(s models.QueueStatus) statusResponse {
	return statusResponse{
		UserRank:       s.UserRank,
		TotalQueueSize: s.TotalQueueSize,
		Progress:       s.Progress,
		QueueFront:     s.QueueFront(),
		QueueBack:      s.QueueBack(),
	}
}

type gateResponse struct {
	statusResponse
	IsAllowed bool `json:"isAllowed"`
}

type validationErrorDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// isRelativeRedirect rejects absolute and scheme-relative urls.
func isRelativeRedirect(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") && !strings.HasPrefix(u, "/\\")
}
