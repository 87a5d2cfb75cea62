// Package input turns raw terminal bytes into game actions.
package input

import "bufio"

// Action is one discrete command from the user.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUpLeft
	ActionMoveUpRight
	ActionMoveDownLeft
	ActionMoveDownRight
	ActionFire
	ActionToggleShield
	ActionTogglePause
	ActionRestart
	ActionToggleFirstPerson
	ActionCameraUp
	ActionCameraDown
	ActionCameraLeft
	ActionCameraRight
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:              "none",
	ActionMoveUp:            "move_up",
	ActionMoveDown:          "move_down",
	ActionMoveLeft:          "move_left",
	ActionMoveRight:         "move_right",
	ActionMoveUpLeft:        "move_up_left",
	ActionMoveUpRight:       "move_up_right",
	ActionMoveDownLeft:      "move_down_left",
	ActionMoveDownRight:     "move_down_right",
	ActionFire:              "fire",
	ActionToggleShield:      "toggle_shield",
	ActionTogglePause:       "toggle_pause",
	ActionRestart:           "restart",
	ActionToggleFirstPerson: "toggle_first_person",
	ActionCameraUp:          "camera_up",
	ActionCameraDown:        "camera_down",
	ActionCameraLeft:        "camera_left",
	ActionCameraRight:       "camera_right",
	ActionQuit:              "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Input is everything read since the previous frame.
type Input struct {
	Actions []Action
	Pressed []byte // Raw bytes, used for inactivity tracking
	Closed  bool   // The underlying reader hit EOF or an error
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// parses them into actions.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return Input{
		Actions: Parse(buf),
		Pressed: buf,
		Closed:  s.closed,
	}
}

// Parse maps a byte sequence onto actions. Arrow keys arrive as CSI
// (ESC [) or SS3 (ESC O) sequences and steer the camera, with or without
// modifier parameters. Other escape sequences are dropped whole.
func Parse(buf []byte) []Action {
	var actions []Action
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			end := sequenceEnd(buf, i)
			if end < len(buf) {
				if a, ok := arrowAction(buf[end]); ok {
					actions = append(actions, a)
				}
			}
			i = end
			continue
		}

		if a := keyAction(b); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// sequenceEnd returns the index of the final byte of the escape sequence
// starting at start, or len(buf) when the sequence is cut off. SS3 carries
// exactly one final byte; CSI ends at the first byte in 0x40-0x7E.
func sequenceEnd(buf []byte, start int) int {
	if buf[start+1] == 'O' {
		return min(start+2, len(buf))
	}
	for j := start + 2; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j
		}
	}
	return len(buf)
}

func arrowAction(code byte) (Action, bool) {
	switch code {
	case 'A':
		return ActionCameraUp, true
	case 'B':
		return ActionCameraDown, true
	case 'C':
		return ActionCameraRight, true
	case 'D':
		return ActionCameraLeft, true
	}
	return ActionNone, false
}

// keyAction maps a single byte onto an action.
func keyAction(b byte) Action {
	switch b {
	case 'w', 'W':
		return ActionMoveUp
	case 's', 'S':
		return ActionMoveDown
	case 'a', 'A':
		return ActionMoveLeft
	case 'd', 'D':
		return ActionMoveRight
	case 'q', 'Q':
		return ActionMoveUpLeft
	case 'e', 'E':
		return ActionMoveUpRight
	case 'z', 'Z':
		return ActionMoveDownLeft
	case 'c', 'C':
		return ActionMoveDownRight
	case 'f', 'F', '\n', '\r':
		return ActionFire
	case 'i', 'I':
		return ActionToggleShield
	case ' ':
		return ActionTogglePause
	case 'r', 'R':
		return ActionRestart
	case 'v', 'V':
		return ActionToggleFirstPerson
	case 'x', 'X', '\x03':
		return ActionQuit
	}
	return ActionNone
}
