package match

// Score is the running tally for one session.
type Score struct {
	Left  int
	Right int
}

// Award returns the score with one point added for side.
func (s Score) Award(side Side) Score {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
	return s
}

// Of returns the points held by side.
func (s Score) Of(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Reached reports whether either side has hit the win threshold.
func (s Score) Reached(winScore int) bool {
	return s.Left == winScore || s.Right == winScore
}

// Leader is the side with more points. Ties go to the right, which can only
// happen before a match is decided.
func (s Score) Leader() Side {
	if s.Left > s.Right {
		return SideLeft
	}
	return SideRight
}
