// pkg/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// damagePopup — одна всплывающая цифра урона.
type damagePopup struct {
	x, y  float64 // экранные координаты
	text  string
	timer float64
}

// Renderer — отладочный рендер симуляции: клетки карты, враги, полоски
// здоровья и всплывающие цифры урона. Ядро о нем не знает: цифры приходят
// событиями диспетчера.
type Renderer struct {
	grid     *grid.Grid
	cellSize float64
	colors   MapColors
	fontFace font.Face
	mapImage *ebiten.Image // Предрендеренный задник карты
	popups   []damagePopup
}

// NewRenderer строит рендер и один раз отрисовывает задник карты.
func NewRenderer(g *grid.Grid, dispatcher *event.Dispatcher) *Renderer {
	r := &Renderer{
		grid:     g,
		cellSize: config.CellSize,
		colors: MapColors{
			BackgroundColor: config.BackgroundColor,
			PassableColor:   config.PassableColor,
			BlockedColor:    config.BlockedColor,
			GridLineColor:   config.GridLineColor,
			EntryColor:      config.EntryColor,
			ExitColor:       config.ExitColor,
			TextLightColor:  config.TextLightColor,
		},
		fontFace: basicfont.Face7x13,
		mapImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.renderMapImage()
	dispatcher.Subscribe(event.EnemyDamaged, r)
	return r
}

// OnEvent превращает событие урона во всплывающую цифру.
func (r *Renderer) OnEvent(e event.Event) {
	info, ok := e.Data.(event.DamageInfo)
	if !ok || info.Amount <= 0 {
		return
	}
	r.popups = append(r.popups, damagePopup{
		x:    info.X * r.cellSize,
		y:    info.Z * r.cellSize,
		text: fmt.Sprintf("%d", info.Amount),
	})
}

// Update продвигает анимацию всплывающих цифр.
func (r *Renderer) Update(deltaTime float64) {
	alive := r.popups[:0]
	for _, p := range r.popups {
		p.timer += deltaTime
		p.y -= config.DamagePopupRiseSpeed * deltaTime
		if p.timer < config.DamagePopupDuration {
			alive = append(alive, p)
		}
	}
	r.popups = alive
}

// renderMapImage отрисовывает статичную карту один раз при инициализации.
func (r *Renderer) renderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	cs := float32(r.cellSize)

	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			cell := grid.Cell{X: x, Y: y}
			clr := r.colors.PassableColor
			switch {
			case cell == r.grid.Entry:
				clr = r.colors.EntryColor
			case cell == r.grid.Exit:
				clr = r.colors.ExitColor
			case r.grid.Blocked[cell]:
				clr = r.colors.BlockedColor
			}
			px := float32(x) * cs
			py := float32(y) * cs
			vector.DrawFilledRect(r.mapImage, px, py, cs, cs, clr, false)
			vector.StrokeRect(r.mapImage, px, py, cs, cs, 1, r.colors.GridLineColor, false)
		}
	}
}

// Draw рисует кадр: карту, врагов и всплывающие цифры.
func (r *Renderer) Draw(screen *ebiten.Image, enemies map[types.EntityID]*enemy.Enemy) {
	screen.DrawImage(r.mapImage, nil)

	for _, e := range enemies {
		r.drawEnemy(screen, e)
	}
	r.drawPopups(screen)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *enemy.Enemy) {
	pos := e.Position()
	if pos.Y < 0 {
		// Терминальная позиция вне игрового объема не рисуется.
		return
	}
	cx := float32(pos.X * r.cellSize)
	cy := float32(pos.Z * r.cellSize)
	radius := float32(r.cellSize * config.EnemyRadiusFactor)

	clr, ok := config.ElementColors[string(e.Element())]
	if !ok {
		clr = config.ElementColors["normal"]
	}
	if e.Airborne() {
		// Летающих приподнимаем визуально и рисуем светлее.
		cy -= radius / 2
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, DarkenColor(clr), true)

	switch {
	case e.HasEffect(component.EffectStun):
		vector.StrokeCircle(screen, cx, cy, radius+2, 2, config.StunRingColor, true)
	case e.HasEffect(component.EffectSlow):
		vector.StrokeCircle(screen, cx, cy, radius+2, 2, config.SlowRingColor, true)
	}

	r.drawHealthBar(screen, e, cx, cy, radius)
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, e *enemy.Enemy, cx, cy, radius float32) {
	percent := utils.Clamp(e.Health()/e.MaxHealth(), 0, 1)
	width := float32(r.cellSize * config.HealthBarWidthFactor)
	barX := cx - width/2
	barY := cy - radius - 8

	// Полоска плавно краснеет по мере потери здоровья.
	front := color.RGBA{
		R: uint8(utils.Lerp(220, 50, percent)),
		G: uint8(utils.Lerp(60, 205, percent)),
		B: 50,
		A: 255,
	}
	vector.DrawFilledRect(screen, barX, barY, width, config.HealthBarHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, barX, barY, width*float32(percent), config.HealthBarHeight, front, false)
}

func (r *Renderer) drawPopups(screen *ebiten.Image) {
	for _, p := range r.popups {
		t := 1 - p.timer/config.DamagePopupDuration
		clr := FadeAlpha(r.colors.TextLightColor, t)
		text.Draw(screen, p.text, r.fontFace, int(p.x), int(p.y), clr)
	}
}
