package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *consumer) Start() error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = c.opts.PollTimeout
	cfg.AllowedUpdates = []string{"message"}

	updates := c.source.GetUpdatesChan(cfg)

	c.wg.Add(1)
	go c.listen(updates)

	c.logger.Infof(c.ctx, "Telegram consumer started (self id %d)", c.opts.SelfID)
	return nil
}

func (c *consumer) listen(updates tgbotapi.UpdatesChannel) {
	defer c.wg.Done()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := toChatMessage(update.Message, c.opts.SelfID)

		if err := c.sem.Acquire(c.ctx, 1); err != nil {
			// Keep reading so the poller is never stuck on a send.
			for range updates {
			}
			return
		}
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			defer c.sem.Release(1)
			c.uc.Ingest(c.ctx, msg)
		}()
	}
}

// Shutdown stops polling and waits for the poll loop and in-flight messages
// until ctx is done. The current long poll may outlive ctx; on timeout the
// loop keeps draining updates in the background until the source closes.
func (c *consumer) Shutdown(ctx context.Context) error {
	c.source.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.cancel()
		return ctx.Err()
	}

	c.cancel()
	c.logger.Infof(ctx, "Telegram consumer stopped")
	return nil
}
