package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilePositionsDistinct(t *testing.T) {
	for _, kind := range Kinds {
		p := NewPiece(kind)
		for state := 0; state < 4; state++ {
			seen := make(map[Position]bool)
			for _, pos := range p.TilePositions() {
				seen[pos] = true
			}
			assert.Len(t, seen, 4, "%s rotation %d should cover 4 distinct cells", kind, state)
			p.RotateCW()
		}
	}
}

func TestSpawnInHiddenRows(t *testing.T) {
	f := NewField(1, 10)
	for _, kind := range Kinds {
		for _, pos := range NewPiece(kind).TilePositions() {
			assert.True(t, f.IsInside(pos.Row, pos.Col), "%s spawns outside at %+v", kind, pos)
			assert.Less(t, pos.Row, HiddenRows, "%s should spawn in the hidden rows", kind)
		}
	}
}

func TestMinColumns(t *testing.T) {
	assert.Equal(t, 7, MinColumns())

	f := NewField(1, MinColumns())
	for _, kind := range Kinds {
		for _, pos := range NewPiece(kind).TilePositions() {
			assert.True(t, f.IsInside(pos.Row, pos.Col), "%s spawns outside at %+v", kind, pos)
		}
	}
}

func TestRotateFullCircle(t *testing.T) {
	for _, kind := range Kinds {
		p := NewPiece(kind)
		p.Move(5, 2)
		start := p.TilePositions()
		for i := 0; i < 4; i++ {
			p.RotateCW()
		}
		assert.Equal(t, 0, p.Rotation(), "%s rotation state", kind)
		assert.Equal(t, Position{Row: kind.SpawnOffset().Row + 5, Col: kind.SpawnOffset().Col + 2}, p.Offset())
		assert.Equal(t, start, p.TilePositions(), "%s tiles after 4 clockwise turns", kind)
	}
}

func TestRotateCCWInvertsCW(t *testing.T) {
	p := NewPiece(T)
	for state := 0; state < 4; state++ {
		before := p.TilePositions()
		p.RotateCW()
		p.RotateCCW()
		assert.Equal(t, before, p.TilePositions())
		p.RotateCW()
	}

	p.Reset()
	p.RotateCCW()
	assert.Equal(t, 3, p.Rotation(), "counter-clockwise from 0 should wrap to 3")
}

func TestMoveAndReset(t *testing.T) {
	p := NewPiece(L)
	p.Move(3, -2)
	p.RotateCW()
	assert.Equal(t, Position{Row: 3, Col: 1}, p.Offset())

	// Moves are unconditional, even off the field.
	p.Move(0, -20)
	assert.Equal(t, -19, p.Offset().Col)

	p.Reset()
	assert.Equal(t, 0, p.Rotation())
	assert.Equal(t, L.SpawnOffset(), p.Offset())
}

func TestTilePositionsFollowState(t *testing.T) {
	p := NewPiece(I)
	assert.Equal(t, [4]Position{{0, 3}, {0, 4}, {0, 5}, {0, 6}}, p.TilePositions())

	p.RotateCW()
	assert.Equal(t, [4]Position{{-1, 5}, {0, 5}, {1, 5}, {2, 5}}, p.TilePositions())

	p.Move(2, 0)
	assert.Equal(t, [4]Position{{1, 5}, {2, 5}, {3, 5}, {4, 5}}, p.TilePositions())
}

func TestKindColors(t *testing.T) {
	seen := make(map[Cell]PieceKind)
	for _, kind := range Kinds {
		c := kind.Color()
		assert.NotEqual(t, Empty, c, "%s has no color", kind)
		if other, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %s", kind, other, c)
		}
		seen[c] = kind
	}
}

func TestPreview(t *testing.T) {
	grid := Preview(I)
	for c := 0; c < PreviewCols; c++ {
		assert.Equal(t, Cyan, grid[1][c])
		assert.Equal(t, Empty, grid[0][c])
	}

	grid = Preview(T)
	assert.Equal(t, [PreviewRows][PreviewCols]Cell{
		{Empty, Purple, Empty, Empty},
		{Purple, Purple, Purple, Empty},
		{Empty, Empty, Empty, Empty},
	}, grid)

	assert.Equal(t, [PreviewRows][PreviewCols]Cell{}, Preview(PieceKind(42)))
}
