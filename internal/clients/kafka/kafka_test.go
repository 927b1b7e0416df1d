package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/change"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/signal"
)

type fixedUser struct {
	user *session.User
}

func (u fixedUser) CurrentUser() *session.User { return u.user }

func Test_OnEncodeEvent_ShouldUseSnakeCaseKeys(t *testing.T) {
	at := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	raw, err := encodeEvent(change.Event{UserID: "u1", Device: "laptop", Op: change.OpCreate, IDs: []string{"e1", "e2"}, At: at})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"user_id":"u1","device":"laptop","op":"create","ids":["e1","e2"],"at":"2025-10-13T10:00:00Z"}`,
		string(raw))

	decoded, err := decodeEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, decoded.IDs)
	assert.True(t, decoded.At.Equal(at))
}

func Test_OnPublish_ShouldSendKeyedEventWithDevice(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, sarama.NewConfig())
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		event, err := decodeEvent(val)
		if err != nil {
			return err
		}
		assert.Equal(t, "phone", event.Device)
		assert.Equal(t, change.OpDelete, event.Op)
		return nil
	})
	producer := newProducer(mockProducer, "changes", "phone")

	err := producer.Publish(context.Background(), change.Event{UserID: "u1", Op: change.OpDelete, IDs: []string{"e1"}})

	require.NoError(t, err)
	producer.Close()
}

func Test_OnHandleMessage_ShouldBumpOnlyForOtherDevicesOfCurrentUser(t *testing.T) {
	refresh := signal.NewRefresh()
	consumer := &Consumer{
		device: "laptop",
		users:  fixedUser{user: &session.User{ID: "u1"}},
		signal: refresh,
	}
	event := func(user, device string) []byte {
		raw, err := encodeEvent(change.Event{UserID: user, Device: device, Op: change.OpCreate})
		require.NoError(t, err)
		return raw
	}

	assert.True(t, consumer.handleMessage(event("u1", "phone")))
	assert.False(t, consumer.handleMessage(event("u1", "laptop")))
	assert.False(t, consumer.handleMessage(event("u2", "phone")))
	assert.False(t, consumer.handleMessage([]byte("not json")))

	assert.Equal(t, int64(1), refresh.Value())
}

func Test_OnHandleMessageSignedOut_ShouldIgnore(t *testing.T) {
	refresh := signal.NewRefresh()
	consumer := &Consumer{device: "laptop", users: fixedUser{}, signal: refresh}
	raw, err := encodeEvent(change.Event{UserID: "u1", Device: "phone", Op: change.OpUpdate})
	require.NoError(t, err)

	assert.False(t, consumer.handleMessage(raw))
	assert.Equal(t, int64(0), refresh.Value())
}
