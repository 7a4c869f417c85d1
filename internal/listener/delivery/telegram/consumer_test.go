package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listener-srv/internal/model"
	pkgLog "listener-srv/pkg/log"
)

type fakeSource struct {
	ch       chan tgbotapi.Update
	stopOnce sync.Once
	cfg      tgbotapi.UpdateConfig
	// closeDelay mimics a long poll still in flight when stopping.
	closeDelay time.Duration
}

func (f *fakeSource) GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	f.cfg = cfg
	return f.ch
}

func (f *fakeSource) StopReceivingUpdates() {
	f.stopOnce.Do(func() {
		if f.closeDelay == 0 {
			close(f.ch)
			return
		}
		go func() {
			time.Sleep(f.closeDelay)
			close(f.ch)
		}()
	})
}

type recordingUseCase struct {
	mu   sync.Mutex
	msgs []model.ChatMessage
}

func (r *recordingUseCase) Ingest(ctx context.Context, msg model.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestConsumerForwardsMessages(t *testing.T) {
	source := &fakeSource{ch: make(chan tgbotapi.Update, 4)}
	uc := &recordingUseCase{}
	c := New(source, uc, pkgLog.NewNop(), Options{SelfID: 1, PollTimeout: 30})

	require.NoError(t, c.Start())
	assert.Equal(t, 30, source.cfg.Timeout)

	source.ch <- tgbotapi.Update{UpdateID: 1}
	source.ch <- tgbotapi.Update{UpdateID: 2, Message: &tgbotapi.Message{
		MessageID: 9,
		From:      &tgbotapi.User{ID: 2, FirstName: "Bo"},
		Chat:      &tgbotapi.Chat{ID: -77, Type: "group"},
		Text:      "hello",
	}}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(ctx))

	uc.mu.Lock()
	defer uc.mu.Unlock()
	require.Len(t, uc.msgs, 1)
	assert.Equal(t, int64(9), uc.msgs[0].ID)
	assert.Equal(t, "hello", uc.msgs[0].Content())
}

type blockingUseCase struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingUseCase) Ingest(ctx context.Context, msg model.ChatMessage) {
	select {
	case b.started <- struct{}{}:
	default:
	}
	select {
	case <-b.release:
	case <-ctx.Done():
	}
}

func groupUpdate(id int) tgbotapi.Update {
	return tgbotapi.Update{UpdateID: id, Message: &tgbotapi.Message{
		MessageID: id,
		From:      &tgbotapi.User{ID: 2, FirstName: "Bo"},
		Chat:      &tgbotapi.Chat{ID: -77, Type: "group"},
		Text:      "hello",
	}}
}

func TestConsumerShutdownHonoursContextWhenPollOutlivesIt(t *testing.T) {
	source := &fakeSource{ch: make(chan tgbotapi.Update), closeDelay: 2 * time.Second}
	c := New(source, &recordingUseCase{}, pkgLog.NewNop(), Options{})
	require.NoError(t, c.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestConsumerDrainsUpdatesAfterShutdownTimeout(t *testing.T) {
	source := &fakeSource{ch: make(chan tgbotapi.Update), closeDelay: 2 * time.Second}
	uc := &blockingUseCase{started: make(chan struct{}, 1), release: make(chan struct{})}
	defer close(uc.release)
	c := New(source, uc, pkgLog.NewNop(), Options{MaxInFlight: 1})
	require.NoError(t, c.Start())

	source.ch <- groupUpdate(1)
	<-uc.started
	// the loop now waits for a free slot while holding this update
	source.ch <- groupUpdate(2)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Shutdown(ctx), context.DeadlineExceeded)

	select {
	case source.ch <- groupUpdate(3):
	case <-time.After(time.Second):
		t.Fatal("update channel is no longer read after shutdown")
	}
}
