package note

import "time"

// Status messages shown by the client.
const (
	MessageInitializing = "Initializing..."
	MessageError        = "Error"
	MessageLoading      = "Loading..."
	MessageLoaded       = "Loaded"
	MessageLoadFailed   = "Failed To Load"
	MessageSaving       = "Saving..."
	MessageSaved        = "Saved"
	MessageSaveFailed   = "Failed To Save"
)

// DefaultClearDelay is how long a transient status message stays visible
// when no delay is configured.
const DefaultClearDelay = 2000 * time.Millisecond

// stopper is the handle of a scheduled clear task; *time.Timer satisfies it.
type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func timeAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// setMessageLocked replaces the status message and cancels the pending clear
// task. Unless skipAutoClear is set, a new clear task is scheduled that
// blanks exactly this message. Callers must hold c.mu.
func (c *Client) setMessageLocked(message string, skipAutoClear bool) {
	c.message = message
	c.messageGen++

	if c.clearTask != nil {
		c.clearTask.Stop()
		c.clearTask = nil
	}

	if !skipAutoClear && !c.closed {
		gen := c.messageGen
		c.clearTask = c.afterFunc(c.clearDelay, func() { c.clearMessage(gen) })
	}

	c.notifyLocked()
}

// clearMessage blanks the message set under generation gen. A task that
// fired after a newer message replaced its own is a no-op.
func (c *Client) clearMessage(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.messageGen {
		return
	}

	c.message = ""
	c.clearTask = nil
	c.notifyLocked()
}
