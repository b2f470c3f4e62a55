// internal/render/hud.go
package render

import (
	"fmt"
	"image/color"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт интерфейса.
var Face = text.NewGoXFace(basicfont.Face7x13)

// Выравнивание текста относительно точки привязки.
const (
	AlignStart  = text.AlignStart
	AlignCenter = text.AlignCenter
	AlignEnd    = text.AlignEnd
)

// DrawText пишет строку; align задаёт выравнивание относительно x.
func DrawText(screen *ebiten.Image, s string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	op.LineSpacing = 16
	text.Draw(screen, s, Face, op)
}

// StatusLine — верхняя строка HUD.
func StatusLine(s app.Snapshot) string {
	line := fmt.Sprintf("LV %d  WAVE %d/%d  GOLD %d  LIVES %d  SCORE %d  x%.0f",
		s.Level, s.Wave+1, s.WavesInLevel, s.Gold, s.Lives, s.Score, s.Speed)
	if s.WaveActive {
		line += fmt.Sprintf("  BARRICADES %d", s.BarricadeStock)
	}
	return line
}

// DrawHUD рисует строку состояния и подсказку следующей волны.
func DrawHUD(screen *ebiten.Image, s app.Snapshot, message string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, 20, color.RGBA{0, 0, 0, 160}, false)
	DrawText(screen, StatusLine(s), 6, 4, config.TextLightColor, text.AlignStart)

	theme := ThemeFor(s.Level)
	if !s.WaveActive && s.Preview != "" {
		DrawText(screen, "NEXT: "+s.Preview, 6, config.ScreenHeight-18, theme.Path, text.AlignStart)
	}
	if message != "" {
		DrawText(screen, message, config.ScreenWidth/2, config.ScreenHeight-36, config.ExitColor, text.AlignCenter)
	}
}

// DrawOverlay затемняет экран и пишет заголовок с пояснениями.
func DrawOverlay(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)
	y := float64(config.ScreenHeight)/2 - 40
	DrawText(screen, title, config.ScreenWidth/2, y, config.TextLightColor, text.AlignCenter)
	for _, l := range lines {
		y += 20
		DrawText(screen, l, config.ScreenWidth/2, y, config.TextLightColor, text.AlignCenter)
	}
}

// LevelSummary — строки экрана перехода между уровнями.
func LevelSummary(stats *app.LevelStats) []string {
	if stats == nil {
		return nil
	}
	next := ThemeFor(stats.Level + 1)
	return []string{
		fmt.Sprintf("Score %d   Gold %d   Towers %d", stats.Score, stats.Gold, stats.Towers),
		fmt.Sprintf("Waves %d   Kills %d   Leaks %d", stats.WavesCleared, stats.Kills, stats.Leaks),
		fmt.Sprintf("Next: Level %d - %s", stats.Level+1, next.Name),
		"Press ENTER to continue",
	}
}
