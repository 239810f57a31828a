package snake

// Grid dimensions. The playfield is fixed; cells outside it are walls.
const (
	GridWidth  = 20
	GridHeight = 20
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for a step in this direction.
// Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Point is a grid cell, not a screen position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// InGrid reports whether p lies on the playfield.
func (p Point) InGrid() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Snake is an ordered body of cells with a heading.
// The head is body[0]; the tail is the last element.
type Snake struct {
	body          []Point
	heading       Direction
	pendingGrowth bool // Keep the tail on the next move
}

// NewSnake creates a three-segment snake centred on the grid, heading right.
func NewSnake() *Snake {
	x, y := GridWidth/2, GridHeight/2
	return &Snake{
		body: []Point{
			{X: x, Y: y}, // Head
			{X: x - 1, Y: y},
			{X: x - 2, Y: y},
		},
		heading: DirRight,
	}
}

// Move advances the snake one cell along its heading and reports whether
// the new head landed on food. The tail is dropped unless a growth is
// pending, so eating never lengthens the body on the same move.
func (s *Snake) Move(food Point) bool {
	newHead := s.Head().Add(s.heading.Delta())
	s.body = append([]Point{newHead}, s.body...)

	ate := newHead == food

	if s.pendingGrowth {
		s.pendingGrowth = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return ate
}

// Grow makes the next Move keep its tail.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// Head returns the front of the body.
// An empty body means the movement invariant was broken, so it panics.
func (s *Snake) Head() Point {
	if len(s.body) == 0 {
		panic("snake: head of empty body")
	}
	return s.body[0]
}

// SelfCollision reports whether any segment behind the head shares its cell.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Turn changes the heading unless d points straight back into the neck.
// It reports whether the new heading was accepted.
func (s *Snake) Turn(d Direction) bool {
	if d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Heading returns the direction of the next move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
