package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"listener-srv/internal/alert"
)

func (uc *implUseCase) DispatchStoreFailure(ctx context.Context, input alert.StoreFailureInput) error {
	if input.Operation == "" || input.Err == nil {
		return alert.ErrInvalidInput
	}

	prev, ok := uc.reserve(input.Operation)
	if !ok {
		uc.logger.Debugf(ctx, "alert.usecase.DispatchStoreFailure: suppressed %s alert", input.Operation)
		return nil
	}

	if err := uc.discord.ReportBug(ctx, buildStoreFailure(input)); err != nil {
		uc.release(input.Operation, prev)
		uc.logger.Errorf(ctx, "alert.usecase.DispatchStoreFailure: %v", err)
		return fmt.Errorf("%w: %v", alert.ErrDispatchFailed, err)
	}
	return nil
}

// reserve claims the cooldown slot for op unless a send happened inside
// the window. It returns the previous send time for release.
func (uc *implUseCase) reserve(op string) (time.Time, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	last, ok := uc.lastSent[op]
	if ok && now.Sub(last) < uc.cooldown {
		return time.Time{}, false
	}
	uc.lastSent[op] = now
	return last, true
}

// release gives back a slot claimed by reserve after a failed send.
func (uc *implUseCase) release(op string, prev time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if prev.IsZero() {
		delete(uc.lastSent, op)
		return
	}
	uc.lastSent[op] = prev
}

func buildStoreFailure(input alert.StoreFailureInput) string {
	var b strings.Builder
	b.WriteString("**LISTENER STORE FAILURE**\n")
	b.WriteString(fmt.Sprintf("Operation: `%s`\n", input.Operation))
	b.WriteString(fmt.Sprintf("Message: %d in chat %d\n", input.MessageID, input.ChatID))
	if input.Recipient != "" {
		b.WriteString(fmt.Sprintf("Recipient: %s\n", input.Recipient))
	}
	if !input.OccurredAt.IsZero() {
		b.WriteString(fmt.Sprintf("At: %s\n", input.OccurredAt.UTC().Format("2006-01-02 15:04:05 MST")))
	}
	b.WriteString(fmt.Sprintf("Error: %s", truncateText(input.Err.Error(), 1024)))
	return b.String()
}
