// internal/render/theme.go
package render

import "image/color"

// Theme — палитра уровня.
type Theme struct {
	Name       string
	Background color.RGBA
	Path       color.RGBA // непрозрачный базовый цвет пути, альфа задаётся при отрисовке
	Enemy      color.RGBA
}

var themes = []Theme{
	{Name: "Neon", Background: rgb(0x050510), Path: rgb(0x00f3ff), Enemy: rgb(0xff0055)},
	{Name: "Inferno", Background: rgb(0x0a0505), Path: rgb(0xff6432), Enemy: rgb(0xff8800)},
	{Name: "Toxic", Background: rgb(0x050a05), Path: rgb(0x50ff50), Enemy: rgb(0xcc00ff)},
	{Name: "Void", Background: rgb(0x05050a), Path: rgb(0x7864ff), Enemy: rgb(0xff3366)},
	{Name: "Solar", Background: rgb(0x0a0a05), Path: rgb(0xffdc32), Enemy: rgb(0xff2200)},
	{Name: "Deep Sea", Background: rgb(0x050808), Path: rgb(0x00ffc8), Enemy: rgb(0xff4488)},
}

// ThemeFor — тема уровня, по кругу.
func ThemeFor(level int) Theme {
	if level < 1 {
		level = 1
	}
	return themes[(level-1)%len(themes)]
}

// WithAlpha возвращает цвет с заданной прозрачностью.
// color.RGBA хранит премультиплицированные компоненты.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// HPColor — от зелёного к красному по доле здоровья.
func HPColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return rgb(0x00ff66)
	case fraction > 0.3:
		return rgb(0xffdd00)
	default:
		return rgb(0xff0033)
	}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
