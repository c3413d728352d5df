package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether the point lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a grid-cell coordinate, not a pixel coordinate.
type Point struct {
	X, Y int
}

// Direction is one of the four movement headings.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Offset returns the unit step for the direction.
// The vertical axis grows upward: Up is y+1, Down is y-1.
func (d Direction) Offset() Point {
	switch d {
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	case Up:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: 0, Y: -1}
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	default:
		return "down"
	}
}

// Key is a logical code for one of the eight directional key bindings.
type Key int

const (
	KeyArrowLeft Key = iota
	KeyArrowRight
	KeyArrowDown
	KeyArrowUp
	KeyA
	KeyD
	KeyS
	KeyW
)

// Canonical start configuration, shared by first spawn and every reset.
var (
	StartHead      = Point{X: 3, Y: 3}
	StartTail      = Point{X: 3, Y: 2}
	StartDirection = Up
)

// Game constants
const (
	DefaultGridWidth  = 10
	DefaultGridHeight = 10
	MaxFoodOnGrid     = 1 // food items present at once under the current spawn policy
)
