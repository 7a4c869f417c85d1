package usecase

import (
	"listener-srv/internal/listener"
	"listener-srv/internal/model"
)

// shouldDrop applies the cheap pre-filter. Order matters only for the
// reason reported in logs.
func (uc *implUseCase) shouldDrop(msg model.ChatMessage) (listener.DropReason, bool) {
	switch {
	case !msg.HasSender():
		return listener.DropNoSender, true
	case msg.SenderIsSelf || (uc.opts.SelfID != 0 && msg.SenderID == uc.opts.SelfID):
		return listener.DropSelf, true
	case msg.Content() == "":
		return listener.DropEmptyText, true
	case msg.ChatType == model.ChatTypePrivate:
		return listener.DropPrivate, true
	case msg.SenderIsBot:
		return listener.DropBot, true
	}
	return "", false
}
