package app

import "time"

// frameMsg drives pane and expansion animations. gen is the pane animation
// generation the tick was scheduled for.
type frameMsg struct {
	gen uint64
	at  time.Time
}

// configChangedMsg is sent when a watched config file changes on disk.
type configChangedMsg struct{}
