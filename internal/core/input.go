package core

// Intent is a request from a host to the simulation. Hosts queue intents
// between steps; the session applies them at the top of the next step.
type Intent int

const (
	IntentJump      Intent = iota // Jump if grounded
	IntentDuckStart               // Crouch if grounded
	IntentDuckEnd                 // Stand up
	IntentRestart                 // Start over after the run ended
	// IntentGestureEnd clears the per-gesture jump latch on the player.
	// Only press/hold/release hosts send it.
	IntentGestureEnd
)

func (i Intent) String() string {
	switch i {
	case IntentJump:
		return "jump"
	case IntentDuckStart:
		return "duck-start"
	case IntentDuckEnd:
		return "duck-end"
	case IntentRestart:
		return "restart"
	case IntentGestureEnd:
		return "gesture-end"
	default:
		return "unknown"
	}
}

// Action is a host-level command decoded from a key press, before it is
// turned into intents or UI navigation.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionJump
	ActionDuck
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	ActionScoreboard
	ActionScreenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
