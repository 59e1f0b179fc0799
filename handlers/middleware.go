package handlers

import (
	"slices"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// MiddlewareCleanupAccess rejects users outside the configured allow-list and
// channels that already have a cleanup in flight. An empty allow-list lets
// everyone who can see the commands through.
func (h *Handler) MiddlewareCleanupAccess() handler.Middleware {
	return func(next handler.Handler) handler.Handler {
		return func(event *handler.InteractionEvent) error {
			messageBuilder := discord.NewMessageCreateBuilder().SetEphemeral(true)
			if len(h.authorized) > 0 && !slices.Contains(h.authorized, event.User().ID) {
				return event.CreateMessage(messageBuilder.
					SetContent("You are not allowed to run cleanups.").
					Build())
			}
			if run := h.tracker.Run(event.Channel().ID()); run != nil {
				return event.CreateMessage(messageBuilder.
					SetContentf("This channel already has a cleanup running, started by <@%d>.", run.UserID).
					Build())
			}
			return next(event)
		}
	}
}
