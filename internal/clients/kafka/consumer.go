package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type userProvider interface {
	CurrentUser() *session.User
}

type refreshSignal interface {
	Bump() int64
}

// Consumer bumps the local refresh signal when another device of the signed-in
// user changed its expenses.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	device        string
	users         userProvider
	signal        refreshSignal
}

// NewConsumer joins a group of its own per device so every device sees every event.
func NewConsumer(cfg consumerConfig, device string, users userProvider, signal refreshSignal) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup()+"-"+device, config)
	if err != nil {
		return nil, errors.Wrap(err, "create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ChangesTopic(),
		device:        device,
		users:         users,
		signal:        signal,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handleMessage(message.Value)
		session.MarkMessage(message, "")
	}
	return nil
}

// handleMessage reports whether the message bumped the signal.
func (c *Consumer) handleMessage(raw []byte) bool {
	event, err := decodeEvent(raw)
	if err != nil {
		logger.Error("cannot decode kafka message", zap.Error(err))
		return false
	}
	if event.Device == c.device {
		return false
	}
	user := c.users.CurrentUser()
	if user == nil || user.ID != event.UserID {
		return false
	}
	logger.Info("received change from another device",
		zap.String("device", event.Device),
		zap.String("op", string(event.Op)),
	)
	c.signal.Bump()
	return true
}
