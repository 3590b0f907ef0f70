package renderer

import "image"

// Tile is a rectangular region of the film rendered by one worker at a
// time. Tiles own disjoint pixel regions, so no pixel-write locking is
// needed.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions a width×height image into tiles of at most
// tileSize×tileSize pixels, covering every pixel exactly once
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
