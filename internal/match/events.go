package match

// Side identifies one half of the field.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// SideNone marks events that belong to neither paddle.
const SideNone Side = -1

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "--"
}

// EventKind enumerates the notifications the simulation hands to the audio
// collaborator.
type EventKind int

const (
	EventBorderCollision EventKind = iota
	EventPaddleCollision
	EventRoundWin
	EventCountdownEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBorderCollision:
		return "border_collision"
	case EventPaddleCollision:
		return "paddle_collision"
	case EventRoundWin:
		return "round_win"
	case EventCountdownEnd:
		return "countdown_end"
	}
	return "unknown"
}

// Event is a fire-and-forget notification emitted during a tick.
// Side is the paddle hit for PaddleCollision and the scorer for RoundWin.
// BorderCollision and CountdownEnd carry SideNone.
type Event struct {
	Kind EventKind
	Side Side
}
