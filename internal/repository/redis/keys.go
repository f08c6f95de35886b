package repository

import (
	"fmt"
	"strings"
)

// Key layout shared with every other process serving the same queues. Do not change.
const (
	waitKeyFormat  = "users:queue:%s:wait"
	allowKeyFormat = "users:queue:%s:allow"
	tokenKeyFormat = "queue:%s:token"

	waitKeyPrefix  = "users:queue:"
	waitKeySuffix  = ":wait"
	waitKeyPattern = "users:queue:*:wait"
)

func waitKey(queue string) string {
	return fmt.Sprintf(waitKeyFormat, queue)
}

func allowKey(queue string) string {
	return fmt.Sprintf(allowKeyFormat, queue)
}

func tokenKey(queue string) string {
	return fmt.Sprintf(tokenKeyFormat, queue)
}

// queueFromWaitKey extracts the queue name, which may itself contain ':'.
func queueFromWaitKey(key string) (string, bool) {
	if len(key) <= len(waitKeyPrefix)+len(waitKeySuffix) {
		return "", false
	}
	if !strings.HasPrefix(key, waitKeyPrefix) || !strings.HasSuffix(key, waitKeySuffix) {
		return "", false
	}

	q := key[len(waitKeyPrefix) : len(key)-len(waitKeySuffix)]
	if q == "" {
		return "", false
	}
	return q, true
}
