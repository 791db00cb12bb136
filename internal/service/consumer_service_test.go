package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Op        string
	UserID    int64
	Text      string
	Selection string
}

type recordingDialog struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (d *recordingDialog) Start(ctx context.Context, user dto.UserMeta) error {
	d.record(recordedCall{Op: "start", UserID: user.ID})
	return nil
}

func (d *recordingDialog) HandleSelection(ctx context.Context, user dto.UserMeta, selection string) error {
	d.record(recordedCall{Op: "selection", UserID: user.ID, Selection: selection})
	return nil
}

func (d *recordingDialog) HandleMessage(ctx context.Context, user dto.UserMeta, text string) error {
	d.record(recordedCall{Op: "message", UserID: user.ID, Text: text})
	return nil
}

func (d *recordingDialog) record(c recordedCall) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, c)
}

func (d *recordingDialog) snapshot() []recordedCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]recordedCall(nil), d.calls...)
}

type recordingAdmin struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (a *recordingAdmin) Execute(ctx context.Context, callerID int64, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, recordedCall{Op: "admin", UserID: callerID, Text: text})
	return nil
}

func (a *recordingAdmin) snapshot() []recordedCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recordedCall(nil), a.calls...)
}

func TestConsumerRoutesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	dialog := &recordingDialog{}
	admin := &recordingAdmin{}
	consumer := NewConsumerService(pubSub, "INBOUND_EVENTS", memory.NewUserLocks(), dialog, admin, nopLogger{})
	publisher := NewPublisherService("INBOUND_EVENTS", pubSub)

	require.NoError(t, consumer.Consume(ctx))

	events := []*dto.InboundEvent{
		{Kind: dto.EventKindMessage, UserID: 42, Text: "/start"},
		{Kind: dto.EventKindSelection, UserID: 42, Selection: "ask_question"},
		{Kind: dto.EventKindMessage, UserID: 42, Text: "what is a fuzz test?"},
		{Kind: dto.EventKindMessage, UserID: 100, Text: "/list_projects"},
		{Kind: dto.EventKindMessage, UserID: 0, Text: "dropped"},
	}
	for _, e := range events {
		require.NoError(t, publisher.PublishInbound(ctx, e))
	}

	assert.Eventually(t, func() bool {
		return len(dialog.snapshot()) == 3 && len(admin.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	dialogCalls := dialog.snapshot()
	require.Len(t, dialogCalls, 3)
	assert.Equal(t, recordedCall{Op: "start", UserID: 42}, dialogCalls[0])
	assert.Equal(t, recordedCall{Op: "selection", UserID: 42, Selection: "ask_question"}, dialogCalls[1])
	assert.Equal(t, recordedCall{Op: "message", UserID: 42, Text: "what is a fuzz test?"}, dialogCalls[2])

	adminCalls := admin.snapshot()
	require.Len(t, adminCalls, 1)
	assert.Equal(t, recordedCall{Op: "admin", UserID: 100, Text: "/list_projects"}, adminCalls[0])
}

func TestConsumerPreservesPerUserOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	dialog := &recordingDialog{}
	consumer := NewConsumerService(pubSub, "INBOUND_EVENTS", memory.NewUserLocks(), dialog, &recordingAdmin{}, nopLogger{})
	publisher := NewPublisherService("INBOUND_EVENTS", pubSub)

	require.NoError(t, consumer.Consume(ctx))

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, publisher.PublishInbound(ctx, &dto.InboundEvent{
			Kind:   dto.EventKindSelection,
			UserID: 42,
			Selection: []string{
				"ask_question", "back_to_main",
			}[i%2],
		}))
	}

	require.Eventually(t, func() bool {
		return len(dialog.snapshot()) == n
	}, 2*time.Second, 10*time.Millisecond)

	calls := dialog.snapshot()
	for i, c := range calls {
		want := []string{"ask_question", "back_to_main"}[i%2]
		assert.Equal(t, want, c.Selection, "event %d out of order", i)
	}
}
