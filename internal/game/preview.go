package game

const (
	PreviewRows = 3
	PreviewCols = 4
)

// Preview maps a kind at its spawn rotation into a small grid anchored at the
// top-left corner, for next and hold boxes.
func Preview(kind PieceKind) [PreviewRows][PreviewCols]Cell {
	var grid [PreviewRows][PreviewCols]Cell
	if !kind.Valid() {
		return grid
	}
	for _, pos := range kind.Tiles(0) {
		grid[pos.Row][pos.Col] = kind.Color()
	}
	return grid
}
