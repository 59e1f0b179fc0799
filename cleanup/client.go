package cleanup

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// MessageClient is the slice of the platform REST surface the engine drives.
// Messages come back newest-first within a page.
type MessageClient interface {
	GetMessages(channelID snowflake.ID, before snowflake.ID, limit int) ([]discord.Message, error)
	BulkDeleteMessages(channelID snowflake.ID, messageIDs []snowflake.ID) error
	DeleteMessage(channelID snowflake.ID, messageID snowflake.ID) error
}

// NewRestClient wraps the bot's REST client as a MessageClient.
func NewRestClient(r rest.Rest) MessageClient {
	return restClient{rest: r}
}

type restClient struct {
	rest rest.Rest
}

func (c restClient) GetMessages(channelID snowflake.ID, before snowflake.ID, limit int) ([]discord.Message, error) {
	return c.rest.GetMessages(channelID, 0, before, 0, limit)
}

func (c restClient) BulkDeleteMessages(channelID snowflake.ID, messageIDs []snowflake.ID) error {
	return c.rest.BulkDeleteMessages(channelID, messageIDs)
}

func (c restClient) DeleteMessage(channelID snowflake.ID, messageID snowflake.ID) error {
	return c.rest.DeleteMessage(channelID, messageID)
}
