package consumer

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/IBM/sarama"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/docqueue/internal/service"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

type messageHandler func(ctx context.Context, msg *sarama.ConsumerMessage) error

type Consumer struct {
	consGr   sarama.ConsumerGroup
	qSvc     service.QueueService
	l        logger.Logger
	handlers map[string]messageHandler
	wg       sync.WaitGroup
}

func NewConsumer(
	consGr sarama.ConsumerGroup,
	qSvc service.QueueService,
	l logger.Logger,
) *Consumer {
	c := &Consumer{
		consGr: consGr,
		qSvc:   qSvc,
		l:      l,
	}
	c.handlers = map[string]messageHandler{
		kafka.TopicAllowRequested: c.HandleAllowRequested,
	}

	return c
}

func (c *Consumer) topics() []string {
	return slices.Sorted(maps.Keys(c.handlers))
}

func (c *Consumer) processMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	h, ok := c.handlers[msg.Topic]
	if !ok {
		c.l.Warnf(ctx, "Unknown topic: %s", msg.Topic)
		return nil
	}

	ctx = c.l.WithFields(ctx, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
	return h(ctx, msg)
}

// Start joins the consumer group in the background. Consume is re-entered after every
// rebalance until ctx is done.
func (c *Consumer) Start(ctx context.Context) error {
	topics := c.topics()
	c.wg.Go(func() {
		for {
			if err := c.consGr.Consume(ctx, topics, c); err != nil {
				c.l.Errorf(ctx, "delivery.kafka.consumer.Start: %v", err)
			}

			if ctx.Err() != nil {
				c.l.Infof(ctx, "delivery.kafka.consumer.Start: %v", ctx.Err())
				return
			}
		}
	})

	c.wg.Go(func() {
		for err := range c.consGr.Errors() {
			c.l.Errorf(ctx, "delivery.kafka.consumer.Start: %v", err)
		}
	})

	c.l.Infof(ctx, "Consumer is consuming topics: %v", topics)
	return nil
}

func (c *Consumer) Close() error {
	if err := c.consGr.Close(); err != nil {
		return err
	}

	c.wg.Wait()
	return nil
}

func (c *Consumer) Setup(ss sarama.ConsumerGroupSession) error {
	c.l.Debugf(ss.Context(), "Consumer group generation %d claimed %v", ss.GenerationID(), ss.Claims())
	return nil
}

func (c *Consumer) Cleanup(ss sarama.ConsumerGroupSession) error {
	c.l.Debugf(ss.Context(), "Consumer group generation %d released", ss.GenerationID())
	return nil
}

func (c *Consumer) ConsumeClaim(ss sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			if err := c.processMessage(ss.Context(), message); err != nil {
				c.l.Errorf(ss.Context(), "delivery.kafka.consumer.ConsumeClaim: topic=%s offset=%d: %v",
					message.Topic,
					message.Offset,
					err,
				)
				continue
			}

			ss.MarkMessage(message, "")

		case <-ss.Context().Done():
			return nil
		}
	}
}
