package game

// Piece is a live tetromino: a kind plus mutable rotation state and offset.
// It does no bounds checking; callers verify fit against a Field and roll
// back.
type Piece struct {
	kind     PieceKind
	rotation int // Always in [0,4)
	offset   Position
}

// NewPiece creates a piece of the given kind at its spawn state.
func NewPiece(kind PieceKind) *Piece {
	return &Piece{
		kind:   kind,
		offset: kind.SpawnOffset(),
	}
}

func (p *Piece) Kind() PieceKind  { return p.kind }
func (p *Piece) Color() Cell      { return p.kind.Color() }
func (p *Piece) Rotation() int    { return p.rotation }
func (p *Piece) Offset() Position { return p.offset }

// TilePositions returns the absolute cells the piece covers. It is computed
// fresh from the current rotation and offset on every call.
func (p *Piece) TilePositions() [4]Position {
	tiles := p.kind.Tiles(p.rotation)
	for i := range tiles {
		tiles[i] = tiles[i].Add(p.offset)
	}
	return tiles
}

// RotateCW advances the rotation state, wrapping after the fourth state.
func (p *Piece) RotateCW() {
	p.rotation = (p.rotation + 1) % 4
}

// RotateCCW is the exact inverse of RotateCW.
func (p *Piece) RotateCCW() {
	p.rotation = (p.rotation + 3) % 4
}

// Move shifts the offset unconditionally.
func (p *Piece) Move(dRow, dCol int) {
	p.offset.Row += dRow
	p.offset.Col += dCol
}

// Reset returns the piece to rotation 0 at its spawn offset.
func (p *Piece) Reset() {
	p.rotation = 0
	p.offset = p.kind.SpawnOffset()
}
