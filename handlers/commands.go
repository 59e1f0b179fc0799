package handlers

import (
	"github.com/djdarcy/discord-cleanup/cleanup"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

var Commands = []discord.ApplicationCommandCreate{
	discord.SlashCommandCreate{
		Name:        "clean",
		Description: "Bulk delete messages in this channel",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionSubCommand{
				Name:        "count",
				Description: "Delete the most recent messages",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionInt{
						Name:        "amount",
						Description: "How many messages to delete (1-100)",
						Required:    true,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "until",
				Description: "Delete every message newer than a given message",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:        "message-id",
						Description: "ID of the newest message to keep",
						Required:    true,
					},
				},
			},
		},
	},
	discord.MessageCommandCreate{
		Name: "Clean up to here",
	},
}

func NewHandler(engine *cleanup.Engine, authorizedUserIDs []snowflake.ID) *Handler {
	mux := handler.New()
	handlers := &Handler{
		engine:     engine,
		tracker:    cleanup.NewTracker(),
		authorized: authorizedUserIDs,
		Router:     mux,
	}

	mux.Group(func(r handler.Router) {
		r.Use(handlers.MiddlewareCleanupAccess())

		r.SlashCommand("/clean", handlers.HandleClean)
		r.MessageCommand("/Clean up to here", handlers.HandleCleanUpToHere)
	})
	return handlers
}

type Handler struct {
	engine     *cleanup.Engine
	tracker    *cleanup.Tracker
	authorized []snowflake.ID
	handler.Router
}
