// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedColors — цвет кнопки для 1×, 2× и 3×.
var SpeedColors = []color.RGBA{
	{0, 255, 102, 255},
	{255, 221, 0, 255},
	{255, 0, 85, 255},
}

// SpeedButton переключает множитель скорости по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

// Multiplier — множитель, соответствующий состоянию кнопки.
func (b *SpeedButton) Multiplier() float64 {
	return float64(b.CurrentState + 1)
}

// SetMultiplier синхронизирует кнопку с игрой.
func (b *SpeedButton) SetMultiplier(m float64) {
	s := int(m) - 1
	if s >= 0 && s < len(SpeedColors) {
		b.CurrentState = s
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(b.LastClickTime)
	c := SpeedColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	fillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2},
	}, c)
	fillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2},
	}, c)
}

// IsClicked — круг вокруг кнопки, форма у неё сложная.
func (b *SpeedButton) IsClicked(mx, my float32) bool {
	return insideCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

// ToggleState переходит к следующей скорости и возвращает её.
func (b *SpeedButton) ToggleState() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(SpeedColors)
	b.LastClickTime = time.Now()
	return b.Multiplier()
}
