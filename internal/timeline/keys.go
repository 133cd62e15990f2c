package timeline

// Keys names the key strings HandleKey reacts to. The names follow
// bubbletea's KeyMsg.String form.
type Keys struct {
	Back         []string
	Forward      []string
	ShiftBack    []string
	ShiftForward []string
	JumpBack     []string
	JumpForward  []string
	Today        []string
	Tomorrow     []string
}

func DefaultKeys() Keys {
	return Keys{
		Back:         []string{"left"},
		Forward:      []string{"right"},
		ShiftBack:    []string{"shift+left"},
		ShiftForward: []string{"shift+right"},
		JumpBack:     []string{"["},
		JumpForward:  []string{"]"},
		Today:        []string{"t"},
		Tomorrow:     []string{"y"},
	}
}

func has(keys []string, k string) bool {
	for _, s := range keys {
		if s == k {
			return true
		}
	}
	return false
}

// HandleKey applies the action bound to k and reports whether k was
// consumed. Current state is read at dispatch time.
func (w *Window) HandleKey(k string) bool {
	return w.HandleKeyWith(DefaultKeys(), k)
}

func (w *Window) HandleKeyWith(keys Keys, k string) bool {
	switch {
	case has(keys.Back, k):
		w.Step(-w.cfg.StepMinutes)
	case has(keys.Forward, k):
		w.Step(w.cfg.StepMinutes)
	case has(keys.ShiftBack, k):
		w.Step(-w.cfg.ShiftStepMinutes)
	case has(keys.ShiftForward, k):
		w.Step(w.cfg.ShiftStepMinutes)
	case has(keys.JumpBack, k):
		w.JumpBack()
	case has(keys.JumpForward, k):
		w.JumpForward()
	case has(keys.Today, k):
		w.Today(0)
	case has(keys.Tomorrow, k):
		w.Today(1)
	default:
		return false
	}
	return true
}
