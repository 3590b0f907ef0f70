package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid_CoversEveryPixelOnce(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tileSize int
	}{
		{"exact fit", 128, 64, 32},
		{"ragged edges", 100, 70, 32},
		{"single tile", 16, 16, 64},
		{"one pixel tiles", 5, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)

			covered := make([]int, tt.width*tt.height)
			for _, tile := range tiles {
				if tile.Bounds.Empty() {
					t.Fatalf("Tile %d has empty bounds", tile.ID)
				}
				if tile.Bounds.Dx() > tt.tileSize || tile.Bounds.Dy() > tt.tileSize {
					t.Fatalf("Tile %d exceeds tile size: %v", tile.ID, tile.Bounds)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}

			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel (%d,%d) covered %d times", i%tt.width, i/tt.width, count)
				}
			}
		})
	}
}

func TestNewTileGrid_IDsSequential(t *testing.T) {
	tiles := NewTileGrid(100, 100, 30)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Tile %d has ID %d", i, tile.ID)
		}
	}
}

func TestNewTileGrid_Bounds(t *testing.T) {
	tiles := NewTileGrid(100, 70, 64)
	if len(tiles) != 4 {
		t.Fatalf("Expected 4 tiles, got %d", len(tiles))
	}

	// The last tile covers the ragged bottom-right corner
	last := tiles[3]
	if last.Bounds != image.Rect(64, 64, 100, 70) {
		t.Errorf("Expected ragged corner tile, got %v", last.Bounds)
	}
}
