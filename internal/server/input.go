package server

import "unicode/utf8"

// Action is a viewer command decoded from terminal input.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionComplete
	ActionPause
	ActionStep
	ActionReseed
	ActionQuit
)

// parseInput converts raw bytes into actions. Escape sequences such as arrow
// keys are skipped.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'r', 'R':
			actions = append(actions, ActionReset)
		case 'c', 'C':
			actions = append(actions, ActionComplete)
		case 'p', 'P', ' ':
			actions = append(actions, ActionPause)
		case 'n', 'N':
			actions = append(actions, ActionStep)
		case 's', 'S':
			actions = append(actions, ActionReseed)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 0x1b:
			// A bare Esc arrives alone; anything longer is an unknown sequence.
			if len(data) == 1 {
				actions = append(actions, ActionQuit)
			}
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
