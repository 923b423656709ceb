package core

// Color identifies a style class for a screen cell.
// The platform layer maps each class to concrete terminal colors.
type Color uint8

// Predefined colors for HUD and overlay text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// Tile colors, one per tile value from 2 to 2048 plus one for anything larger.
const (
	ColorTileEmpty Color = iota + 32
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the color class for a tile value. 0 is an empty cell.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorTileEmpty
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		c++
		if c == ColorTileSuper {
			return ColorTileSuper
		}
	}
	return c
}
