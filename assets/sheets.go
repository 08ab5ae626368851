package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameRect returns the source rectangle of a sheet index laid out row-major
// in columns columns.
func FrameRect(index, frameWidth, frameHeight, columns int) image.Rectangle {
	sx := (index % columns) * frameWidth
	sy := (index / columns) * frameHeight
	return image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)
}

type SheetLoader struct {
	cache map[string]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadSheet reads a PNG sprite sheet from disk, caching by path.
func (l *SheetLoader) LoadSheet(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Row tints of the placeholder sheet: down, left, up, right.
var placeholderRows = []color.RGBA{
	{R: 220, G: 90, B: 90, A: 255},
	{R: 90, G: 200, B: 110, A: 255},
	{R: 90, G: 140, B: 230, A: 255},
	{R: 230, G: 200, B: 80, A: 255},
}

// PlaceholderSheet draws a columns x rows sheet of colored bodies with a
// bobbing marker so walk cycles are visible without art assets.
func PlaceholderSheet(frameWidth, frameHeight, columns, rows int) *ebiten.Image {
	sheet := ebiten.NewImage(frameWidth*columns, frameHeight*rows)
	fw, fh := float32(frameWidth), float32(frameHeight)

	for row := 0; row < rows; row++ {
		body := placeholderRows[row%len(placeholderRows)]
		for col := 0; col < columns; col++ {
			x := float32(col) * fw
			y := float32(row) * fh
			vector.FillRect(sheet, x+fw*0.2, y+fh*0.15, fw*0.6, fh*0.75, body, false)

			// Marker bobs one pixel per column to read as a step cycle.
			bob := float32(col % 2)
			vector.FillRect(sheet, x+fw*0.35, y+fh*0.25+bob, fw*0.3, fh*0.15, color.White, false)
		}
	}

	return sheet
}
