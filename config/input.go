package config

// ActionID represents a logical movement key
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionDuck
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionDuck:      "down",
	ActionJump:      "jump",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps an action name used in scripts ("left", "jump", ...) to its ID.
func ParseAction(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return 0, false
}
