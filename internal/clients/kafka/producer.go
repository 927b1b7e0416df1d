package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/change"
	"max.ks1230/expense-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ChangesTopic() string
}

// Producer publishes change events of this device, keyed by user.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	device   string
}

func NewProducer(cfg producerConfig, device string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create producer")
	}
	return newProducer(producer, cfg.ChangesTopic(), device), nil
}

func newProducer(producer sarama.SyncProducer, topic, device string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		device:   device,
	}
}

func (p *Producer) Publish(ctx context.Context, event change.Event) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishChange")
	defer span.Finish()

	event.Device = p.device
	raw, err := encodeEvent(event)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(raw),
	})
	if err != nil {
		return errors.Wrap(err, "send change event")
	}
	logger.Debug("change event published", zap.String("op", string(event.Op)), zap.Int("ids", len(event.IDs)))
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
