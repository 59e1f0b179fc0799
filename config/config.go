package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
)

type Config struct {
	Token string

	// GuildID scopes command registration to one guild when set; commands
	// register globally otherwise.
	GuildID snowflake.ID

	// AuthorizedUserIDs limits who may run cleanups. Empty means no
	// user-level restriction beyond the command permissions themselves.
	AuthorizedUserIDs []snowflake.ID

	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Token:    os.Getenv("DISCORD_TOKEN"),
		LogLevel: slog.LevelInfo,
	}
	if cfg.Token == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if raw := os.Getenv("GUILD_ID"); raw != "" {
		id, err := snowflake.Parse(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parsing GUILD_ID: %w", err)
		}
		cfg.GuildID = id
	}
	if raw := os.Getenv("AUTHORIZED_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := snowflake.Parse(strings.TrimSpace(part))
			if err != nil {
				return Config{}, fmt.Errorf("parsing AUTHORIZED_USER_IDS entry %q: %w", part, err)
			}
			cfg.AuthorizedUserIDs = append(cfg.AuthorizedUserIDs, id)
		}
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}
