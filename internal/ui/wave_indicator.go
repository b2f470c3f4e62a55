// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-neon-defense/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{0, 243, 255, 255},
		BossColor:        color.RGBA{255, 0, 51, 255},
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны; последняя волна уровня — босс, красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, wavesInLevel int) {
	label := toRoman(wave)
	if label == "" {
		return
	}
	c := i.Color
	if wave == wavesInLevel {
		c = i.BossColor
	}

	t := i.OutlineThickness
	for y := -t; y <= t; y++ {
		for x := -t; x <= t; x++ {
			if x == 0 && y == 0 {
				continue
			}
			render.DrawText(screen, label, i.X+float64(x), i.Y+float64(y), i.OutlineColor, render.AlignCenter)
		}
	}
	render.DrawText(screen, label, i.X, i.Y, c, render.AlignCenter)
}
