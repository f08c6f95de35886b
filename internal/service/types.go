package service

// DefaultQueueName is used by transports when a request names no queue.
const DefaultQueueName = "default"

func QueueOrDefault(queue string) string {
	if queue == "" {
		return DefaultQueueName
	}
	return queue
}

type UserInput struct {
	Queue  string `json:"queue"`
	UserID string `json:"userId" validate:"required"`
}

type AllowInput struct {
	Queue string `json:"queue"`
	Count int64  `json:"count" validate:"gte=0"`
}

type ValidateTokenInput struct {
	Queue  string `json:"queue"`
	UserID string `json:"userId" validate:"required"`
	Token  string `json:"token" validate:"required"`
}

type RegisterOutput struct {
	Rank int64 `json:"rank"`
}

type AllowOutput struct {
	Requested int64 `json:"requested"`
	Admitted  int64 `json:"admitted"`
}

type AllowedOutput struct {
	IsAllowed bool `json:"isAllowed"`
}

type TokenOutput struct {
	Token string `json:"token"`
}
