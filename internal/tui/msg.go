package tui

import "github.com/chrissnell/moonify/internal/timeline"

// MsgWindow carries a window snapshot from the window's listener into the
// program: animation frames and coalesced scrub and pan commits.
type MsgWindow struct {
	State timeline.State
}

// Bridge is the window listener. It keeps only the newest undelivered
// snapshot, so a slow renderer skips frames instead of replaying them.
type Bridge struct {
	ch chan timeline.State
}

func NewBridge() *Bridge {
	return &Bridge{ch: make(chan timeline.State, 1)}
}

// Push is a timeline.Listener. It never blocks.
func (b *Bridge) Push(s timeline.State) {
	for {
		select {
		case b.ch <- s:
			return
		default:
			select {
			case <-b.ch:
			default:
			}
		}
	}
}

func (b *Bridge) wait() MsgWindow {
	return MsgWindow{State: <-b.ch}
}
