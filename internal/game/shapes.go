package game

import "fmt"

// PieceKind identifies one of the seven tetrominoes.
type PieceKind int

const (
	I PieceKind = iota
	J
	L
	O
	S
	T
	Z

	numKinds = 7
)

// Kinds lists every piece kind in table order.
var Kinds = [numKinds]PieceKind{I, J, L, O, S, T, Z}

type rotation [4]Position

// shape is the static data for one kind. Rotation states are listed in
// clockwise order.
type shape struct {
	name      string
	color     Cell
	spawn     Position
	rotations [4]rotation
}

var shapes = [numKinds]shape{
	I: {
		name:  "I",
		color: Cyan,
		spawn: Position{Row: -1, Col: 3},
		rotations: [4]rotation{
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
	},
	J: {
		name:  "J",
		color: Blue,
		spawn: Position{Row: 0, Col: 3},
		rotations: [4]rotation{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
		},
	},
	L: {
		name:  "L",
		color: Orange,
		spawn: Position{Row: 0, Col: 3},
		rotations: [4]rotation{
			{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		},
	},
	O: {
		name:  "O",
		color: Yellow,
		spawn: Position{Row: 0, Col: 4},
		rotations: [4]rotation{
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
	},
	S: {
		name:  "S",
		color: Green,
		spawn: Position{Row: 0, Col: 3},
		rotations: [4]rotation{
			{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		},
	},
	T: {
		name:  "T",
		color: Purple,
		spawn: Position{Row: 0, Col: 3},
		rotations: [4]rotation{
			{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		},
	},
	Z: {
		name:  "Z",
		color: Red,
		spawn: Position{Row: 0, Col: 3},
		rotations: [4]rotation{
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		},
	},
}

// Valid reports whether k is one of the seven kinds.
func (k PieceKind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k PieceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return shapes[k].name
}

// Color returns the cell color this kind stamps into the field.
func (k PieceKind) Color() Cell {
	return shapes[k].color
}

// SpawnOffset returns the offset a piece of this kind is reset to.
func (k PieceKind) SpawnOffset() Position {
	return shapes[k].spawn
}

// Tiles returns the relative offsets for the given rotation state.
func (k PieceKind) Tiles(state int) [4]Position {
	return shapes[k].rotations[mod4(state)]
}

// MinColumns returns the narrowest field width that holds every kind at its
// spawn state.
func MinColumns() int {
	width := 0
	for _, kind := range Kinds {
		for _, pos := range NewPiece(kind).TilePositions() {
			width = max(width, pos.Col+1)
		}
	}
	return width
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}
