package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafka "github.com/vogiaan1904/docqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

func TestProducer_PublishQueueJoined(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, kafka.TopicQueueJoined, msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "default", string(key))

		val, err := msg.Value.Encode()
		require.NoError(t, err)

		var e kafka.QueueJoinedEvent
		require.NoError(t, json.Unmarshal(val, &e))
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, int64(4), e.Rank)
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Timestamp.IsZero())
		return nil
	})

	p := NewProducer(mp, logger.InitializeTestZapLogger())
	err := p.PublishQueueJoined(context.Background(), kafka.QueueJoinedEvent{
		Queue:  "default",
		UserID: "u1",
		Rank:   4,
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestProducer_PublishQueueAdmitted(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != kafka.TopicQueueAdmitted {
			return errors.New("unexpected topic " + msg.Topic)
		}
		return nil
	})

	p := NewProducer(mp, logger.InitializeTestZapLogger())
	err := p.PublishQueueAdmitted(context.Background(), kafka.QueueAdmittedEvent{
		Queue:   "vip",
		UserIDs: []string{"a", "b"},
		Count:   2,
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestProducer_SendFailure(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(mp, logger.InitializeTestZapLogger())
	err := p.PublishQueueJoined(context.Background(), kafka.QueueJoinedEvent{Queue: "q", UserID: "u"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}
