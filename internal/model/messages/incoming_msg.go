package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const somethingWrongMessage = "Sorry, something wrong happened..."

type messageSender interface {
	SendMessage(text string) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

type Service struct {
	sender   messageSender
	handler  MessageHandler
	notifier notifier
}

func NewService(sender messageSender, deps Deps) *Service {
	return &Service{
		sender:   sender,
		handler:  newHandler(deps),
		notifier: deps.Notifier,
	}
}

type Message struct {
	Text string
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	cmd, _ := parseCommand(msg.Text)
	observeResponse(metricLabel(cmd), elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

// handle reports failures as error toasts; successful answers go to the sender.
func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		if resp == "" {
			resp = somethingWrongMessage
		}
		s.notifier.ShowError(resp)
		logger.Error("command failed", zap.String("text", msg.Text), zap.Error(err))
		return err
	}
	if resp == "" {
		return nil
	}
	return s.sender.SendMessage(resp)
}
