package snake

// Snapshot is a read-only copy of a session for rendering and tests.
type Snapshot struct {
	State     State
	Cause     Cause
	Crash     Coord // cell the head tried to enter when the session ended
	Turn      uint64
	Score     int
	Direction Direction
	Head      Coord
	Body      []Coord // neck first, tail last
	Food      []Coord
	Arena     Arena
}

// Snapshot returns a copy of the current state. Mutating the returned slices
// does not affect the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Cause:     s.cause,
		Crash:     s.crash,
		Turn:      s.turn,
		Score:     s.score,
		Direction: s.direction,
		Head:      s.head,
		Body:      append([]Coord(nil), s.body...),
		Food:      append([]Coord(nil), s.food...),
		Arena:     s.arena,
	}
}

// Occupies reports whether the snake covers c.
func (sn Snapshot) Occupies(c Coord) bool {
	return sn.Head == c || containsCoord(sn.Body, c)
}
