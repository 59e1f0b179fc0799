package cleanup

import (
	"log/slog"
	"slices"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

const (
	pageLimit  = 100
	bulkWindow = 14 * 24 * time.Hour

	defaultMessageDelay = 100 * time.Millisecond
	defaultPageDelay    = time.Second
)

// Result is handed back for every engine call. Deletion is not atomic:
// Deleted counts what actually went away, even when Err is set.
type Result struct {
	Deleted     int
	TargetFound bool
	Err         error
}

// Engine runs deletion operations against channels. Operations on the same
// channel must not overlap; the pagination cursors would collide. Callers
// serialize, usually through a Tracker.
type Engine struct {
	client MessageClient

	messageDelay time.Duration
	pageDelay    time.Duration
	now          func() time.Time
}

func NewEngine(client MessageClient) *Engine {
	return &Engine{
		client:       client,
		messageDelay: defaultMessageDelay,
		pageDelay:    defaultPageDelay,
		now:          time.Now,
	}
}

// DeleteRecent removes the amount most recent messages of a channel.
// Amount is bounded by the platform page size, 1 to 100.
func (e *Engine) DeleteRecent(channelID snowflake.ID, amount int) Result {
	if amount < 1 || amount > pageLimit {
		return Result{Err: ErrAmountRange}
	}
	messages, err := e.client.GetMessages(channelID, 0, amount)
	if err != nil {
		return Result{Err: classify("fetching messages", err)}
	}
	deleted, err := e.deleteBatch(channelID, messages)
	return Result{Deleted: deleted, Err: err}
}

// DeleteUntil removes every message newer than targetID, paging backward from
// the most recent message. The target itself and everything older survive.
// If the target is never seen the whole reachable history is gone by the time
// the loop ends; TargetFound tells the two apart.
func (e *Engine) DeleteUntil(channelID snowflake.ID, targetID snowflake.ID) Result {
	var before snowflake.ID
	var total int
	for {
		messages, err := e.client.GetMessages(channelID, before, pageLimit)
		if err != nil {
			return Result{Deleted: total, Err: classify("fetching messages", err)}
		}
		if len(messages) == 0 {
			return Result{Deleted: total}
		}
		// The cursor has to advance before anything is deleted; the oldest
		// message of this page may no longer exist by the next iteration.
		before = messages[len(messages)-1].ID

		if slices.ContainsFunc(messages, func(message discord.Message) bool {
			return message.ID == targetID
		}) {
			newer := make([]discord.Message, 0, len(messages))
			for _, message := range messages {
				if message.ID > targetID {
					newer = append(newer, message)
				}
			}
			deleted, err := e.deleteBatch(channelID, newer)
			return Result{Deleted: total + deleted, TargetFound: true, Err: err}
		}

		deleted, err := e.deleteBatch(channelID, messages)
		total += deleted
		if err != nil {
			return Result{Deleted: total, Err: err}
		}
		time.Sleep(e.pageDelay)
	}
}

// deleteBatch splits messages on the bulk age window, bulk deletes the recent
// side in one call and walks the aged side one delete at a time. The platform
// rejects bulk deletes containing messages older than the window. Individual
// failures are logged and skipped, except permission denials, which would
// fail every remaining delete the same way.
func (e *Engine) deleteBatch(channelID snowflake.ID, messages []discord.Message) (int, error) {
	cutoff := e.now().Add(-bulkWindow)
	var recent, aged []snowflake.ID
	for _, message := range messages {
		if message.ID.Time().After(cutoff) {
			recent = append(recent, message.ID)
		} else {
			aged = append(aged, message.ID)
		}
	}

	var deleted int
	if len(recent) > 0 {
		if err := e.client.BulkDeleteMessages(channelID, recent); err != nil {
			return deleted, classify("bulk deleting messages", err)
		}
		deleted += len(recent)
	}
	for _, id := range aged {
		err := e.client.DeleteMessage(channelID, id)
		switch {
		case err == nil:
			deleted++
		case isPermissionError(err):
			return deleted, classify("deleting message", err)
		default:
			slog.Warn("error while deleting an aged message",
				slog.Any("channel.id", channelID),
				slog.Any("message.id", id),
				tint.Err(err))
		}
		time.Sleep(e.messageDelay)
	}
	return deleted, nil
}
