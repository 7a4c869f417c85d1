package usecase

import (
	"context"
	"errors"
	"time"

	"listener-srv/internal/alert"
	"listener-srv/internal/model"
	notificationRepo "listener-srv/internal/notification/repository"
	pkgLog "listener-srv/pkg/log"
)

func (uc *implUseCase) Ingest(ctx context.Context, msg model.ChatMessage) {
	ctx = pkgLog.WithFields(ctx, "trace_id", uc.traceID(), "message_id", msg.ID, "chat_id", msg.ChatID)

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "listener.usecase.Ingest: recovered panic on message %d: %v", msg.ID, r)
		}
	}()

	if reason, drop := uc.shouldDrop(msg); drop {
		uc.l.Debugf(ctx, "listener.usecase.Ingest: dropped message %d: %s", msg.ID, reason)
		return
	}

	text := msg.Content()
	uc.l.Infof(ctx, "Received message from %s [%d] (%s): %.50s",
		msg.SenderUsername.String, msg.SenderID, msg.SenderFullName, text)

	rules, err := uc.loadRules(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "listener.usecase.Ingest: load rules for message %d: %v", msg.ID, err)
		uc.alertStoreFailure(ctx, alert.StoreFailureInput{
			Operation: "load_rules",
			MessageID: msg.ID,
			ChatID:    msg.ChatID,
			Err:       err,
		})
		return
	}
	if len(rules) == 0 {
		return
	}

	match, ok := uc.matcher.Evaluate(msg, rules)
	if !ok {
		return
	}

	recipient := match.Rule.OwnerUserID
	err = uc.push(ctx, recipient, model.NewNotification(msg, match.Rule))
	if errors.Is(err, notificationRepo.ErrRecipientRequired) {
		uc.l.Warnf(ctx, "listener.usecase.Ingest: rule %q matched message %d but has no user_id", match.Keyword, msg.ID)
		return
	}
	if err != nil {
		uc.l.Errorf(ctx, "listener.usecase.Ingest: push message %d to user %s: %v", msg.ID, recipient, err)
		uc.alertStoreFailure(ctx, alert.StoreFailureInput{
			Operation: "push",
			MessageID: msg.ID,
			ChatID:    msg.ChatID,
			Recipient: recipient,
			Err:       err,
		})
		return
	}

	uc.l.Infof(ctx, "Pushed message %d to user %s (keyword %q)", msg.ID, recipient, match.Keyword)
}

func (uc *implUseCase) loadRules(ctx context.Context) ([]model.KeywordRule, error) {
	ctx, cancel := uc.storeContext(ctx)
	defer cancel()
	return uc.rules.Load(ctx)
}

func (uc *implUseCase) push(ctx context.Context, recipient string, n model.Notification) error {
	ctx, cancel := uc.storeContext(ctx)
	defer cancel()
	return uc.queue.Push(ctx, recipient, n)
}

func (uc *implUseCase) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.opts.StoreTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.opts.StoreTimeout)
}

// alertStoreFailure hands the failure to the alerter without blocking Ingest.
func (uc *implUseCase) alertStoreFailure(ctx context.Context, in alert.StoreFailureInput) {
	if uc.opts.Alerts == nil {
		return
	}
	in.OccurredAt = time.Now()
	ctx = context.WithoutCancel(ctx)
	go func() {
		_ = uc.opts.Alerts.DispatchStoreFailure(ctx, in)
	}()
}
