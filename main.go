package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/djdarcy/discord-cleanup/cleanup"
	"github.com/djdarcy/discord-cleanup/config"
	"github.com/djdarcy/discord-cleanup/handlers"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", tint.Err(err))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
	})))

	client, err := disgo.New(cfg.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)))
	if err != nil {
		slog.Error("error while creating the bot client", tint.Err(err))
		os.Exit(1)
	}
	defer client.Close(context.TODO())

	engine := cleanup.NewEngine(cleanup.NewRestClient(client.Rest()))
	client.AddEventListeners(handlers.NewHandler(engine, cfg.AuthorizedUserIDs))

	var guildIDs []snowflake.ID
	if cfg.GuildID != 0 {
		guildIDs = append(guildIDs, cfg.GuildID)
	}
	if err := handler.SyncCommands(client, handlers.Commands, guildIDs); err != nil {
		slog.Error("error while syncing commands", tint.Err(err))
		os.Exit(1)
	}

	if err := client.OpenGateway(context.TODO()); err != nil {
		slog.Error("error while connecting to the gateway", tint.Err(err))
		os.Exit(1)
	}
	slog.Info("discord-cleanup is running. Press CTRL-C to exit.")

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
}
