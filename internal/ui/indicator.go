// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Цвета индикатора по фазе волны.
var (
	IdleColor       = color.RGBA{0, 255, 102, 255}
	WaveColor       = color.RGBA{255, 0, 85, 255}
	TransitionColor = color.RGBA{255, 221, 0, 255}
)

// StateIndicator — круглая кнопка запуска волны, цвет показывает фазу.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor выбирает цвет по состоянию волны.
func PhaseColor(waveActive, transition bool) color.RGBA {
	switch {
	case transition:
		return TransitionColor
	case waveActive:
		return WaveColor
	}
	return IdleColor
}

func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	r := i.Radius * pulse(i.LastClickTime)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, borderWidth, BorderColor, true)
}

func (i *StateIndicator) IsClicked(mx, my float32) bool {
	return insideCircle(mx, my, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
