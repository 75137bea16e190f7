package snake

import "math/rand"

// State is the session lifecycle state.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause explains why a session reached GameOver.
type Cause int

const (
	CauseNone Cause = iota
	CauseSelfCollision
	CauseWallCollision
	CauseArenaFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseSelfCollision:
		return "self collision"
	case CauseWallCollision:
		return "wall collision"
	case CauseArenaFull:
		return "arena full"
	default:
		return "unknown"
	}
}

// Session is one game from creation to GameOver.
// It is not safe for concurrent use; the caller serializes ticks and commands.
type Session struct {
	arena     Arena
	picker    CellPicker
	state     State
	cause     Cause
	crash     Coord
	turn      uint64
	score     int
	head      Coord
	body      []Coord // neck first, tail last
	food      []Coord
	direction Direction
}

// New starts a Running session on the given arena.
// The snake is a lone head in the middle of the interior heading Up; food is
// spawned by the first tick. A nil picker gets a randomly seeded RandomPicker.
func New(arena Arena, picker CellPicker) (*Session, error) {
	if err := arena.Validate(); err != nil {
		return nil, err
	}
	if picker == nil {
		picker = NewRandomPicker(rand.Int63())
	}
	return &Session{
		arena:     arena,
		picker:    picker,
		state:     Running,
		head:      arena.Center(),
		direction: Up,
	}, nil
}

// SetDirection replaces the heading used by the next tick.
// Reversing into the neck is allowed and resolved by the collision checks.
// Ignored once the session is over or for an invalid direction.
func (s *Session) SetDirection(d Direction) {
	if s.state != Running || !d.Valid() {
		return
	}
	s.direction = d
}

// IsOver reports whether the session has ended.
func (s *Session) IsOver() bool {
	return s.state == GameOver
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	return s.score
}

// Len returns the snake length including the head.
func (s *Session) Len() int {
	return 1 + len(s.body)
}

// Tick advances the session by one movement step. No-op after GameOver.
//
// Order matters: move, tail check, border check, eat or trim, respawn food.
// The move is built on a prospective body that already holds the former head
// and is only committed once both collision checks pass.
func (s *Session) Tick() {
	if s.state != Running {
		return
	}
	s.turn++

	next := s.head.Step(s.direction)
	body := make([]Coord, 0, len(s.body)+1)
	body = append(body, s.head)
	body = append(body, s.body...)

	if containsCoord(body, next) {
		s.end(CauseSelfCollision, next)
		return
	}
	if s.arena.OnBorder(next) {
		s.end(CauseWallCollision, next)
		return
	}

	s.head = next
	s.body = body
	if i := s.foodIndex(next); i >= 0 {
		s.food = append(s.food[:i], s.food[i+1:]...)
		s.score++
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	s.respawnFood()
}

func (s *Session) end(cause Cause, crash Coord) {
	s.state = GameOver
	s.cause = cause
	s.crash = crash
}

func (s *Session) foodIndex(c Coord) int {
	for i, f := range s.food {
		if f == c {
			return i
		}
	}
	return -1
}

// respawnFood refills the food set to one item. Candidates come from the picker
// and are rejected while they lie on the border or overlap the snake. Head and
// body cells are distinct while running, so the free count below is exact.
func (s *Session) respawnFood() {
	if len(s.food) > 0 {
		return
	}
	if s.arena.Interior()-s.Len() <= 0 {
		s.end(CauseArenaFull, s.head)
		return
	}
	for len(s.food) == 0 {
		c := s.picker.PickCell(s.arena)
		if s.arena.OnBorder(c) || c == s.head || containsCoord(s.body, c) {
			continue
		}
		s.food = append(s.food, c)
	}
}
