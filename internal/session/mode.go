package session

// Mode is the top-level view shown to a visitor.
type Mode string

const (
	ModeLearn     Mode = "learn"
	ModeArchitect Mode = "architect"
	ModeVisualize Mode = "visualize"
)

// Modes lists every view in navigation order.
var Modes = []Mode{ModeLearn, ModeArchitect, ModeVisualize}

// ParseMode returns the Mode named by s, falling back to ModeLearn.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeArchitect:
		return ModeArchitect
	case ModeVisualize:
		return ModeVisualize
	default:
		return ModeLearn
	}
}
