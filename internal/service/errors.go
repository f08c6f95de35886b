package service

import "errors"

var (
	ErrAlreadyRegistered = errors.New("user already registered in queue")
	ErrInvalidToken      = errors.New("invalid queue token")

	ErrInvalidQueueName = errors.New("queue name is required")
	ErrInvalidUserID    = errors.New("user id is required")
	ErrInvalidCount     = errors.New("count must not be negative")
)

func validateIdentifiers(queue, userID string) error {
	if queue == "" {
		return ErrInvalidQueueName
	}
	if userID == "" {
		return ErrInvalidUserID
	}
	return nil
}
