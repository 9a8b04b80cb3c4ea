package state

func (s GameState) String() string {
	switch s {
	case Init:
		return "init"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Parse maps an fsm state name back to a GameState.
func Parse(name string) (GameState, bool) {
	switch name {
	case "init":
		return Init, true
	case "playing":
		return Playing, true
	case "ended":
		return Ended, true
	}
	return Init, false
}

func eventFor(s GameState) (string, bool) {
	switch s {
	case Init:
		return "reset", true
	case Playing:
		return "play", true
	case Ended:
		return "end", true
	}
	return "", false
}

// Names renders effects for logging.
func Names(effects []Effect) []string {
	out := make([]string, len(effects))
	for i, e := range effects {
		out[i] = string(e)
	}
	return out
}
