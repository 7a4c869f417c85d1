package redis

import (
	"context"
	"fmt"
)

func (s *subscriber) Start() error {
	s.pubsub = s.redis.Subscribe(s.ctx, s.channel)

	// Wait for confirmation that subscription is created
	if _, err := s.pubsub.Receive(s.ctx); err != nil {
		_ = s.pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	s.wg.Add(1)
	go s.listen()

	s.logger.Infof(s.ctx, "Redis inbound subscriber started on channel: %s", s.channel)
	return nil
}

func (s *subscriber) listen() {
	defer s.wg.Done()

	ch := s.pubsub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(s.ctx, "redis pubsub channel closed")
				return
			}
			s.dispatch(msg.Payload)
		case <-s.quit:
			return
		}
	}
}

// Shutdown stops receiving and waits for in-flight messages until ctx is done.
func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "failed to close pubsub: %v", err)
		}
	}
	s.wg.Wait()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}

	s.cancel()
	s.logger.Infof(ctx, "Redis inbound subscriber stopped")
	return nil
}
