package tui

// stateChangedMsg is delivered when the note client reports a change.
type stateChangedMsg struct{}

// changesClosedMsg is delivered once the note client has been closed.
type changesClosedMsg struct{}
