// =======================
// render/snapshot.go
// =======================

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face7x13 cell geometry in pixels.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
)

// WritePNG rasterizes the frame with the fixed 7x13 terminal font,
// white on black, one glyph cell per grid cell, and PNG-encodes it.
func WritePNG(g *FrameGrid, w io.Writer) error {
	if g.Cols() <= 0 || g.Rows() <= 0 {
		return fmt.Errorf("failed to rasterize empty %dx%d frame", g.Cols(), g.Rows())
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Cols()*glyphWidth, g.Rows()*glyphHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	line := make([]rune, g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			ch := g.At(col, row)
			// The face only carries printable ASCII; anything else
			// becomes background so columns stay aligned.
			if ch < 0x20 || ch > 0x7e {
				ch = ' '
			}
			line[col] = ch
		}
		d.Dot = fixed.P(0, row*glyphHeight+glyphAscent)
		d.DrawString(string(line))
	}
	return png.Encode(w, img)
}

// SnapshotFile writes the frame as a PNG at path.
func SnapshotFile(g *FrameGrid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := WritePNG(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
