// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует кадр по снимку игры. Состояние игры он не трогает.
type Renderer struct {
	lib      *defs.Library
	fillImg  *ebiten.Image
	mapImage *ebiten.Image
	mapSeed  uint32
	mapLevel int
	hasMap   bool

	vs []ebiten.Vertex
	is []uint16
}

func NewRenderer(lib *defs.Library) *Renderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)
	return &Renderer{
		lib:      lib,
		fillImg:  fillImg,
		mapImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
}

// Draw рисует мир: карту, сущности и эффекты.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot, m app.MapView, gameTime float64) {
	if !r.hasMap || m.Seed != r.mapSeed || snap.Level != r.mapLevel {
		r.RenderMapImage(m, ThemeFor(snap.Level))
		r.mapSeed, r.mapLevel, r.hasMap = m.Seed, snap.Level, true
	}
	screen.DrawImage(r.mapImage, nil)

	for _, s := range snap.Structures {
		r.drawStructure(screen, s)
	}
	for _, t := range snap.Traps {
		r.drawTrap(screen, t)
	}
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	theme := ThemeFor(snap.Level)
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e, theme, gameTime)
	}
	for _, u := range snap.Sentinels {
		drawSentinel(screen, u)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.ProjectileRadius), r.towerColor(p.Source), true)
	}
	for _, ring := range snap.Rings {
		c := WithAlpha(r.towerColor(ring.Source), 160)
		vector.StrokeCircle(screen, float32(ring.X), float32(ring.Y), float32(ring.Radius), 2, c, true)
	}
}

// RenderMapImage создаёт предрендеренное изображение задника.
func (r *Renderer) RenderMapImage(m app.MapView, theme Theme) {
	r.mapImage.Fill(theme.Background)

	for x := 0; x <= config.ScreenWidth; x += int(config.GridSize) {
		a := uint8(8)
		if x%40 == 0 {
			a = 14
		}
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), config.ScreenHeight, 1, WithAlpha(theme.Path, a), false)
	}
	for y := 0; y <= config.ScreenHeight; y += int(config.GridSize) {
		a := uint8(8)
		if y%40 == 0 {
			a = 14
		}
		vector.StrokeLine(r.mapImage, 0, float32(y), config.ScreenWidth, float32(y), 1, WithAlpha(theme.Path, a), false)
	}

	for _, w := range m.Water {
		vector.DrawFilledCircle(r.mapImage, float32(w.X), float32(w.Y), float32(w.Radius), config.WaterColor, true)
	}

	if len(m.Path) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(m.Path[0].X), float32(m.Path[0].Y))
	for _, p := range m.Path[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	r.strokePath(r.mapImage, &path, float32(config.GridSize*2), WithAlpha(theme.Path, 50))
	r.strokePath(r.mapImage, &path, 2, WithAlpha(theme.Path, 150))

	first, last := m.Path[0], m.Path[len(m.Path)-1]
	vector.DrawFilledCircle(r.mapImage, float32(first.X), float32(first.Y), 8, config.EntryColor, true)
	vector.DrawFilledCircle(r.mapImage, float32(last.X), float32(last.Y), 8, config.ExitColor, true)
}

func (r *Renderer) strokePath(target *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r.drawTriangles(target, c)
}

func (r *Renderer) fillPolygon(target *ebiten.Image, points []point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].x), float32(points[0].y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.x), float32(p.y))
	}
	path.Close()
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.drawTriangles(target, c)
}

func (r *Renderer) drawTriangles(target *ebiten.Image, c color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX, r.vs[i].SrcY = 1, 1
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (r *Renderer) towerColor(kind string) color.RGBA {
	if def, ok := r.lib.Tower(defs.TowerKind(kind)); ok {
		return def.Tiers[0].Visuals.Color
	}
	return config.TextLightColor
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EnemyView, theme Theme, gameTime float64) {
	def, ok := r.lib.Enemy(defs.EnemyKind(e.Kind))
	if !ok {
		return
	}
	c := def.Visuals.Color
	if e.Kind == string(defs.EnemyBasic) {
		c = theme.Enemy
	}
	switch {
	case e.Poisoned:
		c = config.PoisonTint
	case e.Slowed:
		c = config.SlowTint
	}
	alpha := e.StealthAlpha
	if alpha < 1 {
		// мерцание невидимки
		alpha += 0.1 * math.Sin(gameTime*6)
	}
	c = WithAlpha(c, uint8(255*clamp01(alpha)))

	size := def.Visuals.Size
	r.fillPolygon(screen, shapePoints(def.Visuals.Shape, e.X, e.Y, size, gameTime), c)
	if e.Blocked {
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(size+3), 1, config.SentinelColor, true)
	}
	drawHPBar(screen, e.X, e.Y-size-6, size*2, float64(e.HP), float64(e.MaxHP))
}

func (r *Renderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	def, ok := r.lib.Tower(defs.TowerKind(t.Kind))
	if !ok {
		return
	}
	stats, _ := def.Tier(t.Tier)
	c := stats.Visuals.Color
	size := stats.Visuals.Size
	if size == 0 {
		size = 10
	}

	if t.Selected {
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), config.SelectionColor, true)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1, WithAlpha(c, 120), true)
	}
	r.fillPolygon(screen, polygon(t.X, t.Y, size, 4+t.Tier, t.Angle), DarkenColor(c))
	vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(size), 2, c, true)

	// ствол по направлению к цели
	bx := t.X + math.Cos(t.Angle)*size*1.3
	by := t.Y + math.Sin(t.Angle)*size*1.3
	vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(bx), float32(by), 3, c, true)

	if t.Rally != nil && t.Selected {
		vector.StrokeCircle(screen, float32(t.Rally.X), float32(t.Rally.Y), 6, 1, config.SentinelColor, true)
	}
}

func (r *Renderer) drawTrap(screen *ebiten.Image, t app.TrapView) {
	def, ok := r.lib.Trap(defs.TrapKind(t.Kind))
	if !ok {
		return
	}
	c := def.Visuals.Color
	vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius), 1, WithAlpha(c, 50), true)
	r.fillPolygon(screen, polygon(t.X, t.Y, 6, 4, math.Pi/4), WithAlpha(c, 200))
	if t.MaxUses > 1 {
		drawHPBar(screen, t.X, t.Y+9, 12, float64(t.Uses), float64(t.MaxUses))
	}
}

func (r *Renderer) drawStructure(screen *ebiten.Image, s app.StructureView) {
	def, ok := r.lib.Structure(defs.StructureKind(s.Kind))
	if !ok {
		return
	}
	half := config.GridSize / 2
	vector.DrawFilledRect(screen, float32(s.X-half), float32(s.Y-half), float32(config.GridSize), float32(config.GridSize), def.Visuals.Color, false)
	vector.StrokeRect(screen, float32(s.X-half), float32(s.Y-half), float32(config.GridSize), float32(config.GridSize), 1, DarkenColor(def.Visuals.Color), false)
	if s.HP < s.MaxHP {
		drawHPBar(screen, s.X, s.Y-half-4, config.GridSize, float64(s.HP), float64(s.MaxHP))
	}
}

func drawSentinel(screen *ebiten.Image, u app.SentinelView) {
	if !u.Alive {
		vector.StrokeCircle(screen, float32(u.X), float32(u.Y), 4, 1, WithAlpha(config.SentinelColor, 80), true)
		return
	}
	vector.DrawFilledCircle(screen, float32(u.X), float32(u.Y), 4, config.SentinelColor, true)
	drawHPBar(screen, u.X, u.Y-8, 10, u.HP, u.MaxHP)
}

func drawHPBar(screen *ebiten.Image, cx, y, width, hp, maxHP float64) {
	if maxHP <= 0 {
		return
	}
	frac := clamp01(hp / maxHP)
	x := cx - width/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 2, config.HPBarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*frac), 2, HPColor(frac), false)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
