// pkg/pathcurve/templates.go
package pathcurve

// RangeFunc возвращает случайное число в [min, max).
type RangeFunc func(min, max float64) float64

// Template — форма пути. Build рисует контрольные точки в координатах
// экрана 800×600; первая и последняя точки лежат за краем.
type Template struct {
	ID    string
	Name  string
	Build func(r RangeFunc) ([]Point, []WaterZone)
}

// DefaultTemplates — встроенный набор форм.
func DefaultTemplates() []Template {
	return []Template{
		{ID: "scurve", Name: "S-Curve", Build: buildSCurve},
		{ID: "zigzag", Name: "Zigzag", Build: buildZigzag},
		{ID: "spiral", Name: "Spiral", Build: buildSpiral},
		{ID: "loop", Name: "Loop", Build: buildLoop},
		{ID: "diamond", Name: "Diamond", Build: buildDiamond},
		{ID: "riverside", Name: "Riverside", Build: buildRiverside},
		{ID: "islands", Name: "Islands", Build: buildIslands},
		{ID: "lake", Name: "Lakeside", Build: buildLake},
		{ID: "canyon", Name: "Canyon", Build: buildCanyon},
		{ID: "switchback", Name: "Switchback", Build: buildSwitchback},
		{ID: "harbor", Name: "Harbor", Build: buildHarbor},
	}
}

// jitter — точка (x±dx, y±dy).
func jitter(r RangeFunc, x, dx, y, dy float64) Point {
	return Point{X: x + r(-dx, dx), Y: y + r(-dy, dy)}
}

func buildSCurve(r RangeFunc) ([]Point, []WaterZone) {
	yTop := 60 + r(0, 60)
	yMid := 280 + r(-40, 40)
	yBot := 500 + r(-40, 40)
	xBend1 := 620 + r(-60, 60)
	xBend2 := 140 + r(-40, 60)

	pts := []Point{
		{X: -20, Y: yTop},
		jitter(r, 100, 20, yTop, 10),
		jitter(r, 250, 20, yTop, 15),
		jitter(r, 400, 20, yTop, 10),
		{X: xBend1 - 80, Y: yTop + r(0, 20)},
		{X: xBend1, Y: yTop + 40 + r(0, 20)},
		{X: xBend1 + 20, Y: yMid - 40},
		{X: xBend1, Y: yMid},
		{X: xBend1 - 80, Y: yMid + 20 + r(0, 15)},
		jitter(r, 450, 20, yMid+30, 10),
		jitter(r, 300, 20, yMid+20, 10),
		{X: xBend2 + 40, Y: yMid + 30 + r(0, 20)},
		{X: xBend2, Y: yMid + 80 + r(0, 20)},
		{X: xBend2 - 20, Y: yBot - 40},
		{X: xBend2, Y: yBot},
		{X: xBend2 + 60, Y: yBot + r(-5, 15)},
		jitter(r, 300, 20, yBot, 10),
		jitter(r, 500, 20, yBot, 10),
		jitter(r, 680, 20, yBot, 10),
		{X: 820, Y: yBot + r(-10, 10)},
	}
	return pts, nil
}

func buildZigzag(r RangeFunc) ([]Point, []WaterZone) {
	rows := 4 + int(r(0, 1)*2)
	const margin = 60.0
	yStep := (600 - margin*2) / float64(rows-1)

	pts := []Point{{X: -20, Y: margin + r(-10, 10)}}
	for i := 0; i < rows; i++ {
		y := margin + float64(i)*yStep + r(-15, 15)
		if i%2 == 0 {
			pts = append(pts,
				Point{X: 100 + r(-20, 20), Y: y},
				jitter(r, 350, 30, y, 10),
				jitter(r, 600, 20, y, 10),
				Point{X: 720 + r(-20, 20), Y: y},
			)
		} else {
			pts = append(pts,
				Point{X: 700 + r(-20, 20), Y: y},
				jitter(r, 450, 30, y, 10),
				jitter(r, 200, 20, y, 10),
				Point{X: 80 + r(-20, 20), Y: y},
			)
		}
		if i < rows-1 {
			nextY := margin + float64(i+1)*yStep + r(-15, 15)
			var xEdge float64
			if i%2 == 0 {
				xEdge = 720 + r(-15, 15)
			} else {
				xEdge = 80 + r(-15, 15)
			}
			pts = append(pts, Point{X: xEdge, Y: y + (nextY-y)*0.5})
		}
	}

	last := pts[len(pts)-1]
	if last.X < 400 {
		pts = append(pts, Point{X: -20, Y: last.Y + r(-10, 10)})
	} else {
		pts = append(pts, Point{X: 820, Y: last.Y + r(-10, 10)})
	}
	return pts, nil
}

func buildSpiral(r RangeFunc) ([]Point, []WaterZone) {
	cx := 400 + r(-40, 40)
	cy := 300 + r(-30, 30)
	pts := []Point{
		{X: -20, Y: 80 + r(-20, 20)},
		jitter(r, 80, 10, 80, 10),
		jitter(r, 700, 20, 80, 15),
		jitter(r, 730, 15, 300, 20),
		jitter(r, 700, 20, 520, 15),
		jitter(r, 400, 20, 540, 15),
		jitter(r, 100, 15, 520, 15),
		jitter(r, 70, 10, 350, 20),
		jitter(r, 150, 15, 200, 15),
		jitter(r, 400, 20, 180, 15),
		jitter(r, 600, 15, 250, 15),
		jitter(r, 580, 15, 420, 15),
		jitter(r, 400, 20, 440, 15),
		jitter(r, 250, 15, 380, 15),
		jitter(r, cx, 15, cy, 15),
	}
	return pts, nil
}

func buildLoop(r RangeFunc) ([]Point, []WaterZone) {
	pts := []Point{
		{X: -20, Y: 150 + r(-20, 20)},
		jitter(r, 80, 15, 150, 15),
		jitter(r, 300, 20, 100, 15),
		jitter(r, 550, 20, 80, 15),
		jitter(r, 700, 15, 150, 15),
		jitter(r, 720, 10, 280, 15),
		jitter(r, 600, 15, 320, 10),
		jitter(r, 400, 20, 300, 15),
		jitter(r, 200, 15, 320, 15),
		jitter(r, 80, 10, 400, 15),
		jitter(r, 100, 15, 520, 15),
		jitter(r, 280, 20, 550, 15),
		jitter(r, 480, 20, 520, 15),
		jitter(r, 600, 15, 460, 15),
		jitter(r, 700, 15, 500, 15),
		{X: 820, Y: 500 + r(-15, 15)},
	}
	return pts, nil
}

func buildDiamond(r RangeFunc) ([]Point, []WaterZone) {
	cx := 400 + r(-30, 30)
	cy := 300 + r(-20, 20)
	pts := []Point{
		{X: -20, Y: cy + r(-10, 10)},
		jitter(r, 60, 10, cy, 5),
		jitter(r, 160, 15, cy-20, 10),
		jitter(r, cx-20, 10, 80, 15),
		jitter(r, cx+100, 10, 80, 10),
		jitter(r, 720, 15, cy-40, 10),
		jitter(r, 740, 10, cy, 10),
		jitter(r, 720, 15, cy+40, 10),
		jitter(r, cx+80, 15, 520, 15),
		jitter(r, cx-40, 15, 540, 15),
		jitter(r, 140, 15, cy+60, 10),
		jitter(r, 100, 10, cy+100, 10),
		jitter(r, 60, 10, 560, 10),
		{X: -20, Y: 570 + r(-10, 10)},
	}
	return pts, nil
}

func buildRiverside(r RangeFunc) ([]Point, []WaterZone) {
	riverY := 300 + r(-30, 30)
	pts := []Point{
		{X: -20, Y: 80 + r(-15, 15)},
		jitter(r, 100, 15, 80, 10),
		jitter(r, 250, 15, 120, 10),
		jitter(r, 400, 15, 100, 10),
		jitter(r, 600, 15, 130, 10),
		jitter(r, 720, 10, 160, 10),
		jitter(r, 740, 10, riverY-40, 10),
		// переход через реку
		jitter(r, 700, 15, riverY+30, 10),
		jitter(r, 580, 15, riverY+60, 10),
		jitter(r, 400, 15, riverY+80, 10),
		jitter(r, 200, 15, riverY+60, 10),
		jitter(r, 100, 10, riverY+100, 10),
		jitter(r, 80, 10, 500, 15),
		jitter(r, 200, 15, 540, 10),
		jitter(r, 450, 20, 550, 10),
		jitter(r, 700, 15, 530, 10),
		{X: 820, Y: 540 + r(-10, 10)},
	}
	water := []WaterZone{
		{X: 200 + r(-20, 20), Y: riverY, Radius: 90 + r(-10, 15)},
		{X: 400 + r(-20, 20), Y: riverY + r(-10, 10), Radius: 100 + r(-10, 15)},
		{X: 600 + r(-20, 20), Y: riverY + r(-10, 10), Radius: 85 + r(-10, 15)},
	}
	return pts, water
}

func buildIslands(r RangeFunc) ([]Point, []WaterZone) {
	pts := []Point{
		{X: -20, Y: 300 + r(-20, 20)},
		jitter(r, 60, 10, 280, 15),
		jitter(r, 150, 10, 200, 15),
		jitter(r, 250, 10, 140, 15),
		jitter(r, 380, 15, 120, 10),
		jitter(r, 500, 15, 180, 15),
		jitter(r, 550, 10, 300, 15),
		jitter(r, 450, 15, 380, 15),
		jitter(r, 300, 15, 420, 15),
		jitter(r, 200, 10, 480, 15),
		jitter(r, 350, 15, 530, 10),
		jitter(r, 550, 15, 500, 15),
		jitter(r, 680, 15, 420, 15),
		jitter(r, 740, 10, 300, 15),
		{X: 820, Y: 280 + r(-15, 15)},
	}
	water := []WaterZone{
		{X: 100 + r(-15, 15), Y: 100 + r(-15, 15), Radius: 70 + r(-10, 10)},
		{X: 650 + r(-15, 15), Y: 130 + r(-15, 15), Radius: 80 + r(-10, 10)},
		{X: 400 + r(-15, 15), Y: 280 + r(-15, 15), Radius: 60 + r(-10, 10)},
		{X: 130 + r(-15, 15), Y: 450 + r(-15, 15), Radius: 65 + r(-10, 10)},
		{X: 680 + r(-15, 15), Y: 540 + r(-10, 10), Radius: 70 + r(-10, 10)},
	}
	return pts, water
}

func buildLake(r RangeFunc) ([]Point, []WaterZone) {
	lx := 400 + r(-30, 30)
	ly := 300 + r(-20, 20)
	pts := []Point{
		{X: -20, Y: 100 + r(-15, 15)},
		jitter(r, 80, 10, 80, 10),
		jitter(r, 200, 15, 70, 10),
		jitter(r, 400, 15, 60, 10),
		jitter(r, 600, 15, 80, 10),
		jitter(r, 730, 10, 140, 10),
		jitter(r, 750, 10, 300, 15),
		jitter(r, 730, 10, 460, 10),
		jitter(r, 600, 15, 540, 10),
		jitter(r, 400, 15, 560, 10),
		jitter(r, 200, 15, 540, 10),
		jitter(r, 80, 10, 460, 10),
		jitter(r, 60, 10, 350, 15),
		{X: -20, Y: 300 + r(-15, 15)},
	}
	water := []WaterZone{
		{X: lx, Y: ly, Radius: 120 + r(-15, 20)},
		{X: lx - 60 + r(-10, 10), Y: ly + 30 + r(-10, 10), Radius: 60 + r(-10, 10)},
		{X: lx + 50 + r(-10, 10), Y: ly - 20 + r(-10, 10), Radius: 55 + r(-10, 10)},
	}
	return pts, water
}

func buildCanyon(r RangeFunc) ([]Point, []WaterZone) {
	pts := []Point{
		{X: 400 + r(-20, 20), Y: -20},
		jitter(r, 400, 15, 60, 10),
		jitter(r, 350, 20, 120, 10),
		jitter(r, 450, 20, 180, 10),
		jitter(r, 330, 20, 240, 10),
		jitter(r, 470, 20, 300, 10),
		jitter(r, 320, 20, 360, 10),
		jitter(r, 480, 20, 420, 10),
		jitter(r, 350, 20, 480, 10),
		jitter(r, 430, 20, 540, 10),
		{X: 400 + r(-15, 15), Y: 620},
	}
	return pts, nil
}

func buildSwitchback(r RangeFunc) ([]Point, []WaterZone) {
	pts := []Point{
		{X: -20, Y: 80 + r(-10, 10)},
		jitter(r, 650, 20, 80, 10),
		jitter(r, 720, 10, 120, 10),
		jitter(r, 720, 10, 180, 10),
		jitter(r, 650, 20, 210, 10),
		jitter(r, 150, 20, 210, 10),
		jitter(r, 80, 10, 250, 10),
		jitter(r, 80, 10, 310, 10),
		jitter(r, 150, 20, 340, 10),
		jitter(r, 650, 20, 340, 10),
		jitter(r, 720, 10, 380, 10),
		jitter(r, 720, 10, 440, 10),
		jitter(r, 650, 20, 470, 10),
		jitter(r, 150, 20, 470, 10),
		jitter(r, 80, 10, 510, 10),
		jitter(r, 80, 10, 560, 10),
		jitter(r, 150, 15, 570, 5),
		{X: 820, Y: 570 + r(-10, 10)},
	}
	return pts, nil
}

func buildHarbor(r RangeFunc) ([]Point, []WaterZone) {
	waterLine := 380 + r(-20, 20)
	pts := []Point{
		{X: -20, Y: 100 + r(-15, 15)},
		jitter(r, 100, 10, 80, 10),
		jitter(r, 300, 15, 100, 10),
		jitter(r, 500, 15, 70, 10),
		jitter(r, 700, 10, 100, 10),
		jitter(r, 740, 10, 200, 10),
		jitter(r, 700, 10, 300, 10),
		// спуск в гавань
		jitter(r, 580, 15, waterLine+40, 10),
		jitter(r, 400, 15, waterLine+80, 10),
		jitter(r, 220, 15, waterLine+40, 10),
		jitter(r, 100, 10, 300, 10),
		jitter(r, 60, 10, waterLine+100, 10),
		jitter(r, 150, 15, 550, 10),
		jitter(r, 400, 20, 570, 5),
		{X: 820, Y: 560 + r(-10, 10)},
	}
	water := []WaterZone{
		{X: 200 + r(-15, 15), Y: waterLine + 100, Radius: 100 + r(-10, 15)},
		{X: 400 + r(-15, 15), Y: waterLine + 120 + r(-10, 10), Radius: 110 + r(-10, 15)},
		{X: 600 + r(-15, 15), Y: waterLine + 90 + r(-10, 10), Radius: 95 + r(-10, 15)},
		{X: 300 + r(-10, 10), Y: waterLine + 160 + r(-5, 5), Radius: 70 + r(-5, 10)},
		{X: 550 + r(-10, 10), Y: waterLine + 155 + r(-5, 5), Radius: 65 + r(-5, 10)},
	}
	return pts, water
}
