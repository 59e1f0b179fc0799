package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/djdarcy/discord-cleanup/cleanup"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

func (h *Handler) HandleClean(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	messageBuilder := discord.NewMessageCreateBuilder().SetEphemeral(true)
	switch *data.SubCommandName {
	case "count":
		amount := data.Int("amount")
		if amount < 1 || amount > 100 {
			return event.CreateMessage(messageBuilder.
				SetContent("Provide a number between 1 and 100.").
				Build())
		}
		return h.startRun(event, false, func() cleanup.Result {
			return h.engine.DeleteRecent(event.Channel().ID(), amount)
		})
	case "until":
		targetID, err := snowflake.Parse(data.String("message-id"))
		if err != nil {
			return event.CreateMessage(messageBuilder.
				SetContent("Provide a valid message ID.").
				Build())
		}
		return h.startRun(event, true, func() cleanup.Result {
			return h.engine.DeleteUntil(event.Channel().ID(), targetID)
		})
	}
	return nil
}

func (h *Handler) HandleCleanUpToHere(data discord.MessageCommandInteractionData, event *handler.CommandEvent) error {
	targetID := data.TargetID()
	return h.startRun(event, true, func() cleanup.Result {
		return h.engine.DeleteUntil(event.Channel().ID(), targetID)
	})
}

// startRun registers the run with the tracker, kicks the engine off in a
// goroutine and replies right away; the summary arrives as a follow-up once
// the engine is done. Deletion can take well over the interaction window.
func (h *Handler) startRun(event *handler.CommandEvent, targetBound bool, run func() cleanup.Result) error {
	channelID := event.Channel().ID()
	current, ok := h.tracker.Begin(channelID, event.User().ID)
	if !ok {
		return event.CreateMessage(discord.NewMessageCreateBuilder().
			SetEphemeral(true).
			SetContentf("This channel already has a cleanup running, started by <@%d>.", current.UserID).
			Build())
	}
	go func() {
		defer h.tracker.End(channelID)
		result := run()
		if result.Err != nil {
			slog.Error("error while running a cleanup", slog.Any("channel.id", channelID), tint.Err(result.Err))
		}
		if _, err := event.CreateFollowupMessage(discord.NewMessageCreateBuilder().
			SetContent(summarize(result, targetBound)).
			Build()); err != nil {
			slog.Error("error while responding with a cleanup summary", tint.Err(err))
		}
	}()
	return event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent("Running cleanup..").
		Build())
}

func summarize(result cleanup.Result, targetBound bool) string {
	if result.Err != nil {
		if errors.Is(result.Err, cleanup.ErrAmountRange) {
			return "Provide a number between 1 and 100."
		}
		return fmt.Sprintf("Deleted **%d** messages before failing: **%s**.", result.Deleted, result.Err.Error())
	}
	if !targetBound {
		return fmt.Sprintf("Deleted **%d** messages.", result.Deleted)
	}
	if result.TargetFound {
		return fmt.Sprintf("Deleted **%d** messages down to the target message.", result.Deleted)
	}
	return fmt.Sprintf("The target message was never found; deleted all **%d** reachable messages.", result.Deleted)
}
