package cleanup

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// Run identifies an in-flight cleanup on a channel.
type Run struct {
	UserID snowflake.ID
}

// Tracker serializes cleanups per channel. The engine assumes at most one
// in-flight operation per channel and does not enforce it itself; handlers
// register a run here before starting one.
type Tracker struct {
	mu   sync.Mutex
	runs map[snowflake.ID]*Run
}

func NewTracker() *Tracker {
	return &Tracker{
		runs: make(map[snowflake.ID]*Run),
	}
}

// Begin registers a run on channelID for userID. If the channel already has
// one, Begin reports false and returns the existing run instead.
func (t *Tracker) Begin(channelID, userID snowflake.ID) (*Run, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if run, ok := t.runs[channelID]; ok {
		return run, false
	}
	run := &Run{UserID: userID}
	t.runs[channelID] = run
	return run, true
}

func (t *Tracker) Run(channelID snowflake.ID) *Run {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs[channelID]
}

func (t *Tracker) End(channelID snowflake.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.runs, channelID)
}
