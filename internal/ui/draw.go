// internal/ui/draw.go
package ui

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BorderColor — обводка всех кнопок.
var BorderColor = color.RGBA{255, 255, 255, 255}

const borderWidth = 2

var (
	whiteOnce sync.Once
	whiteImg  *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	})
	return whiteImg
}

// fillPolygon заливает выпуклый контур и обводит его.
func fillPolygon(screen *ebiten.Image, pts [][2]float32, c color.RGBA) {
	path := vector.Path{}
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})

	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], borderWidth, BorderColor, true)
	}
}

// pulse — короткое увеличение после клика.
func pulse(since time.Time) float32 {
	elapsed := time.Since(since).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func insideCircle(mx, my, x, y, r float32) bool {
	dx, dy := mx-x, my-y
	return dx*dx+dy*dy <= r*r
}
