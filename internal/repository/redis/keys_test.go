package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFromWaitKey(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "users:queue:default:wait", want: "default", wantOK: true},
		{key: "users:queue:a:b:wait", want: "a:b", wantOK: true},
		{key: "users:queue::wait", wantOK: false},
		{key: "users:queue:default:allow", wantOK: false},
		{key: "queue:default:token", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := queueFromWaitKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
