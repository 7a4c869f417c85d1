package redis

import (
	"encoding/json"

	"listener-srv/internal/listener"
)

// dispatch decodes one payload and hands it to the pipeline on its own
// goroutine, bounded by the semaphore.
func (s *subscriber) dispatch(payload string) {
	var in listener.InboundMessage
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		s.logger.Warnf(s.ctx, "inbound message decode failed: channel=%s err=%v", s.channel, err)
		return
	}
	if err := in.Validate(); err != nil {
		s.logger.Warnf(s.ctx, "inbound message rejected: channel=%s id=%d err=%v", s.channel, in.ID, err)
		return
	}

	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer s.sem.Release(1)
		s.uc.Ingest(s.ctx, in.ToChatMessage())
	}()
}
