package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/vogiaan1904/docqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/docqueue/internal/service"
)

// HandleAllowRequested admits users on behalf of an external admin or scheduler.
func (c *Consumer) HandleAllowRequested(ctx context.Context, message *sarama.ConsumerMessage) error {
	c.l.Debug(ctx, "HandleAllowRequested consumed")

	var e kafka.AllowRequestedEvent
	if err := json.Unmarshal(message.Value, &e); err != nil {
		c.l.Errorf(ctx, "delivery.kafka.consumer.handlers.HandleAllowRequested: %v", err)
		return err
	}

	queue := service.QueueOrDefault(e.Queue)
	admitted, err := c.qSvc.AllowUsers(ctx, queue, e.Count)
	if err != nil {
		c.l.Errorf(ctx, "delivery.kafka.consumer.handlers.HandleAllowRequested: %v", err)
		return err
	}

	c.l.Infof(ctx, "Allow request for queue %s: requested=%d admitted=%d", queue, e.Count, admitted)

	return nil
}
