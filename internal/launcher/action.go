package launcher

// ActionKind enumerates the inputs the launcher reacts to.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionConfirm
	ActionDeleteBackward
	ActionMoveLeft
	ActionMoveRight
	ActionClose
	ActionInsert
)

func (k ActionKind) String() string {
	switch k {
	case ActionConfirm:
		return "confirm"
	case ActionDeleteBackward:
		return "delete-backward"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionClose:
		return "close"
	case ActionInsert:
		return "insert"
	default:
		return "none"
	}
}

// Action is a decoded key press. Char is only meaningful for ActionInsert.
type Action struct {
	Kind ActionKind
	Char rune
}

// Insert builds an ActionInsert for r.
func Insert(r rune) Action {
	return Action{Kind: ActionInsert, Char: r}
}

// Outcome tells the caller what to do after an action was handled.
type Outcome struct {
	Render bool
	Hide   bool
	Close  bool
}
